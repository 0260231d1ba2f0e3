package event

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/royalhouse/fellowship-backend/internal/auditlog"
	"github.com/royalhouse/fellowship-backend/middleware"
)

type Handler struct {
	Service Service
	Audit   auditlog.Service
}

func NewHandler(s Service, audit auditlog.Service) *Handler {
	return &Handler{Service: s, Audit: audit}
}

// ===========================
// 📆 Public listing - GET /events
func (h *Handler) ListEvents(c *gin.Context) {
	c.JSON(http.StatusOK, h.Service.List(c.Request.Context()))
}

// ===========================
// ⏭ Upcoming schedule - GET /events/upcoming
func (h *Handler) UpcomingEvents(c *gin.Context) {
	c.JSON(http.StatusOK, h.Service.Upcoming(c.Request.Context()))
}

// ===========================
// ➕ Create event - POST /admin/events
func (h *Handler) CreateEvent(c *gin.Context) {
	var in EventInput
	if err := c.ShouldBindJSON(&in); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request body"})
		return
	}

	rec, err := h.Service.Create(c.Request.Context(), in)
	if err != nil {
		if errors.Is(err, ErrMissingFields) {
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to save event"})
		return
	}

	h.audit(c, "event.create", map[string]interface{}{"event_id": rec.ID, "title": rec.Title})
	c.JSON(http.StatusCreated, rec)
}

// ===========================
// ✏️ Update event - PUT /admin/events/:id
func (h *Handler) UpdateEvent(c *gin.Context) {
	var in EventInput
	if err := c.ShouldBindJSON(&in); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request body"})
		return
	}

	rec, err := h.Service.Update(c.Request.Context(), c.Param("id"), in)
	if err != nil {
		switch {
		case errors.Is(err, ErrMissingFields):
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		case errors.Is(err, ErrNotFound):
			c.JSON(http.StatusNotFound, gin.H{"error": "event not found"})
		default:
			c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to save event"})
		}
		return
	}

	h.audit(c, "event.update", map[string]interface{}{"event_id": rec.ID})
	c.JSON(http.StatusOK, rec)
}

// ===========================
// 🗑 Delete event - DELETE /admin/events/:id
func (h *Handler) DeleteEvent(c *gin.Context) {
	id := c.Param("id")
	if err := h.Service.Delete(c.Request.Context(), id); err != nil {
		if errors.Is(err, ErrNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "event not found"})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to delete event"})
		return
	}

	h.audit(c, "event.delete", map[string]interface{}{"event_id": id})
	c.JSON(http.StatusOK, gin.H{"message": "event deleted"})
}

func (h *Handler) audit(c *gin.Context, action string, details map[string]interface{}) {
	if h.Audit == nil {
		return
	}
	var userID *uint
	if user, ok := middleware.GetUserFromContext(c); ok {
		userID = &user.ID
	}
	h.Audit.LogAction(c.Request.Context(), userID, action, details, middleware.GetIPFromContext(c), "success")
}
