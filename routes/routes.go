package routes

import (
	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"github.com/royalhouse/fellowship-backend/config"
	"github.com/royalhouse/fellowship-backend/internal/auditlog"
	"github.com/royalhouse/fellowship-backend/internal/auth"
	"github.com/royalhouse/fellowship-backend/internal/content"
	"github.com/royalhouse/fellowship-backend/internal/dashboard"
	"github.com/royalhouse/fellowship-backend/internal/event"
	"github.com/royalhouse/fellowship-backend/internal/gallery"
	"github.com/royalhouse/fellowship-backend/internal/leader"
	"github.com/royalhouse/fellowship-backend/internal/member"
	"github.com/royalhouse/fellowship-backend/internal/notification"
	"github.com/royalhouse/fellowship-backend/internal/reports"
	"github.com/royalhouse/fellowship-backend/internal/rotation"
	"github.com/royalhouse/fellowship-backend/internal/scripture"
	"github.com/royalhouse/fellowship-backend/middleware"

	_ "github.com/royalhouse/fellowship-backend/docs"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
)

// Wiring exposes the pieces main needs after route setup, chiefly the
// notification service whose Kafka consumer runs outside the router.
type Wiring struct {
	Notifications notification.Service
}

// Setup builds every repository, service and handler and mounts the public
// site routes plus the admin dashboard API.
func Setup(r *gin.Engine, db *gorm.DB, cfg *config.Config, store *content.Store, galleryRot *rotation.GalleryRotator, scriptureRot *rotation.ScriptureRotator) *Wiring {
	r.Use(cors.New(cors.Config{
		AllowOrigins:     cfg.CORSOrigins,
		AllowMethods:     []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowHeaders:     []string{"Origin", "Content-Type", "Authorization"},
		AllowCredentials: true,
	}))

	r.GET("/healthz", func(c *gin.Context) {
		c.JSON(200, gin.H{"status": "OK"})
	})
	r.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))

	api := r.Group("/api/v1")
	api.Use(middleware.AuditMiddleware())

	// ========== Audit Log ==========
	auditRepo := auditlog.NewRepository(db)
	auditSvc := auditlog.NewService(auditRepo)
	auditHandler := auditlog.NewHandler(auditSvc)

	// ========== Auth ==========
	authRepo := auth.NewRepository(db)
	authSvc := auth.NewService(authRepo, cfg)
	authHandler := auth.NewHandler(authSvc)

	authGroup := api.Group("/auth")
	{
		authGroup.POST("/login", middleware.RateLimiter(10), authHandler.Login)
		authGroup.POST("/refresh", authHandler.Refresh)
		authGroup.GET("/me", middleware.AuthMiddleware(cfg, authSvc), authHandler.Me)
	}

	// ========== Content Services ==========
	leaderSvc := leader.NewService(store)
	leaderHandler := leader.NewHandler(leaderSvc, auditSvc)

	gallerySvc := gallery.NewService(store, galleryRot)
	galleryHandler := gallery.NewHandler(gallerySvc, auditSvc)

	memberRepo := member.NewRepository(db)
	memberSvc := member.NewService(memberRepo, store)
	memberHandler := member.NewHandler(memberSvc, auditSvc)

	eventSvc := event.NewService(store)
	eventHandler := event.NewHandler(eventSvc, auditSvc)

	scriptureSvc := scripture.NewService(store)
	scriptureHandler := scripture.NewHandler(scriptureSvc, auditSvc)

	rotationHandler := rotation.NewHandler(galleryRot, scriptureRot)

	notifRepo := notification.NewRepository(db)
	notifSvc := notification.NewService(notifRepo, authRepo)
	notifHandler := notification.NewHandler(notifSvc)

	exporter := reports.NewExporter(store)
	reportsHandler := reports.NewHandler(exporter)

	dashboardHandler := dashboard.NewHandler(store, memberSvc)

	// ========== Public Site ==========
	{
		api.GET("/leaders", leaderHandler.ListLeaders)
		api.GET("/gallery", galleryHandler.ListImages)
		api.GET("/events", eventHandler.ListEvents)
		api.GET("/events/upcoming", eventHandler.UpcomingEvents)
		api.GET("/scriptures/active", scriptureHandler.ActiveScriptures)

		// Signup, rate limited per IP
		api.POST("/join", middleware.RateLimiter(5), memberHandler.Join)

		// Gallery slider + lightbox
		api.GET("/gallery/slider", rotationHandler.GetGallerySlider)
		api.POST("/gallery/slider/next", rotationHandler.GalleryNext)
		api.POST("/gallery/slider/previous", rotationHandler.GalleryPrevious)
		api.POST("/gallery/slider/jump", rotationHandler.GalleryJump)
		api.POST("/gallery/slider/play", rotationHandler.GalleryPlay)
		api.POST("/gallery/slider/hover", rotationHandler.GalleryHover)
		api.POST("/gallery/lightbox", rotationHandler.OpenLightbox)
		api.DELETE("/gallery/lightbox", rotationHandler.CloseLightbox)
		api.POST("/gallery/lightbox/next", rotationHandler.LightboxNext)
		api.POST("/gallery/lightbox/previous", rotationHandler.LightboxPrevious)

		// Scripture rotator
		api.GET("/scriptures/slider", rotationHandler.GetScriptureSlider)
		api.POST("/scriptures/slider/next", rotationHandler.ScriptureNext)
		api.POST("/scriptures/slider/previous", rotationHandler.ScripturePrevious)
		api.POST("/scriptures/slider/jump", rotationHandler.ScriptureJump)
	}

	// ========== Admin Dashboard ==========
	admin := api.Group("/admin")
	admin.Use(middleware.AuthMiddleware(cfg, authSvc), middleware.RequireAdmin())
	{
		admin.GET("/stats", dashboardHandler.Stats)

		admin.POST("/leaders", leaderHandler.CreateLeader)
		admin.PUT("/leaders/:id", leaderHandler.UpdateLeader)
		admin.DELETE("/leaders/:id", leaderHandler.DeleteLeader)

		admin.POST("/gallery", galleryHandler.CreateImage)
		admin.PUT("/gallery/:id", galleryHandler.UpdateImage)
		admin.DELETE("/gallery/:id", galleryHandler.DeleteImage)

		admin.GET("/members", memberHandler.ListMembers)
		admin.POST("/members", memberHandler.CreateMember)
		admin.PUT("/members/:id", memberHandler.UpdateMember)
		admin.DELETE("/members/:id", memberHandler.DeleteMember)

		admin.POST("/events", eventHandler.CreateEvent)
		admin.PUT("/events/:id", eventHandler.UpdateEvent)
		admin.DELETE("/events/:id", eventHandler.DeleteEvent)

		admin.GET("/scriptures", scriptureHandler.ListScriptures)
		admin.POST("/scriptures", scriptureHandler.CreateScripture)
		admin.PUT("/scriptures/:id", scriptureHandler.UpdateScripture)
		admin.POST("/scriptures/:id/activate", scriptureHandler.ActivateScripture)
		admin.DELETE("/scriptures/:id", scriptureHandler.DeleteScripture)

		admin.GET("/audit-logs", auditHandler.ListLogs)

		admin.GET("/notifications", notifHandler.ListNotifications)
		admin.POST("/notifications/:id/read", notifHandler.MarkRead)
		admin.POST("/notifications/read-all", notifHandler.MarkAllRead)
		admin.POST("/notifications/devices", notifHandler.RegisterDevice)

		admin.GET("/reports/members.xlsx", reportsHandler.DownloadMemberRoster)
		admin.GET("/reports/events.xlsx", reportsHandler.DownloadEventSchedule)
		admin.GET("/reports/members.pdf", reportsHandler.DownloadMemberRosterPDF)
	}

	return &Wiring{Notifications: notifSvc}
}
