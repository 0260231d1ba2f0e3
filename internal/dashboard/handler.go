package dashboard

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/royalhouse/fellowship-backend/internal/content"
	"github.com/royalhouse/fellowship-backend/internal/event"
	"github.com/royalhouse/fellowship-backend/internal/member"
)

// Handler serves the admin dashboard overview numbers.
type Handler struct {
	Store   *content.Store
	Members member.Service
}

func NewHandler(store *content.Store, members member.Service) *Handler {
	return &Handler{Store: store, Members: members}
}

// ===========================
// 📈 Overview - GET /admin/stats
func (h *Handler) Stats(c *gin.Context) {
	ctx := c.Request.Context()

	schedule := event.BuildSchedule(h.Store.GetEvents(ctx), time.Now())

	memberCount, err := h.Members.Count(ctx)
	if err != nil {
		// The mirror still gives a usable number when the DB count fails
		memberCount = int64(len(h.Store.GetMembers(ctx)))
	}

	c.JSON(http.StatusOK, gin.H{
		"members":           memberCount,
		"leaders":           len(h.Store.GetLeaders(ctx)),
		"gallery_images":    len(h.Store.GetGalleryImages(ctx)),
		"events":            len(h.Store.GetEvents(ctx)),
		"upcoming_events":   len(schedule.Events),
		"scriptures":        len(h.Store.GetScriptures(ctx)),
		"active_scriptures": len(h.Store.ActiveScriptures(ctx)),
	})
}
