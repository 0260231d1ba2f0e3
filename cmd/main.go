package main

import (
	"context"
	"log"
	"os"
	"os/signal"
	"syscall"

	"github.com/gin-gonic/gin"

	"github.com/royalhouse/fellowship-backend/config"
	"github.com/royalhouse/fellowship-backend/database"
	"github.com/royalhouse/fellowship-backend/internal/auditlog"
	"github.com/royalhouse/fellowship-backend/internal/auth"
	"github.com/royalhouse/fellowship-backend/internal/content"
	"github.com/royalhouse/fellowship-backend/internal/member"
	"github.com/royalhouse/fellowship-backend/internal/notification"
	"github.com/royalhouse/fellowship-backend/internal/rotation"
	"github.com/royalhouse/fellowship-backend/routes"
	"github.com/royalhouse/fellowship-backend/utils"
)

// @title Royal House Fellowship API
// @version 1.0
// @description Backend for the fellowship promo site and admin dashboard.
// @BasePath /api/v1
func main() {
	cfg := config.Load()
	db := database.Connect(cfg)

	// Auto-migrate models
	log.Println("🔄 Running database migrations...")
	if err := db.AutoMigrate(
		&auth.User{},
		&member.MemberRecord{},
		&auditlog.AuditLog{},
		&notification.InAppNotification{},
		&notification.FCMDeviceToken{},
	); err != nil {
		log.Fatalf("❌ DB AutoMigrate failed: %v", err)
	}
	log.Println("✅ Database migrations completed")

	if err := auth.SeedAdminUser(db, cfg); err != nil {
		log.Fatalf("❌ Failed to seed admin user: %v", err)
	}

	// Content store: Redis in production, in-memory fallback for local runs
	var kv content.KV
	if err := utils.InitRedis(cfg); err != nil {
		log.Printf("⚠️ Redis unavailable (%v), using in-memory content store", err)
		kv = content.NewMemoryKV()
	} else {
		kv = content.NewRedisKV(utils.GetRedisClient())
	}
	store := content.NewStore(kv)

	utils.InitializeKafka(cfg)
	defer utils.CloseKafka()

	log.Println("🔄 Initializing Firebase...")
	if err := utils.InitFirebase(); err != nil {
		log.Printf("⚠️ Firebase initialization failed: %v", err)
		log.Println("ℹ️ Continuing without Firebase (push notifications will be disabled)")
	}

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	// Start the two public rotators
	galleryRot := rotation.NewGalleryRotator(store)
	galleryRot.Start(ctx)
	defer galleryRot.Stop()

	scriptureRot := rotation.NewScriptureRotator(store)
	scriptureRot.Start(ctx)
	defer scriptureRot.Stop()

	// Scripture mutations refresh the rotator ahead of its next poll
	utils.StartConsumer(ctx, utils.TopicScriptureUpdates, "scripture-rotator", func([]byte) {
		scriptureRot.Notify(ctx)
	})

	// Setup Gin router
	router := gin.New()
	router.Use(gin.Logger())
	router.Use(gin.Recovery())

	wiring := routes.Setup(router, db, cfg, store, galleryRot, scriptureRot)
	wiring.Notifications.StartMemberJoinedConsumer(ctx)

	port := cfg.Port
	if port == "" {
		port = "8080"
	}

	// Shut the rotators down cleanly on SIGINT/SIGTERM
	go func() {
		sig := make(chan os.Signal, 1)
		signal.Notify(sig, syscall.SIGINT, syscall.SIGTERM)
		<-sig
		log.Println("👋 Shutting down...")
		cancel()
		galleryRot.Stop()
		scriptureRot.Stop()
		utils.CloseKafka()
		os.Exit(0)
	}()

	log.Printf("🚀 Server running on port %s", port)
	if err := router.Run(":" + port); err != nil {
		log.Fatalf("❌ Server failed: %v", err)
	}
}
