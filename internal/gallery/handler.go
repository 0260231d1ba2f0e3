package gallery

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
// 🖼 Public listing - GET /gallery
func (h *Handler) ListImages(c *gin.Context) {
	c.JSON(http.StatusOK, h.Service.List(c.Request.Context()))
}

// ===========================
// ➕ Add image - POST /admin/gallery
func (h *Handler) CreateImage(c *gin.Context) {
	var in ImageInput
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
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to save image"})
		return
	}

	h.audit(c, "gallery.create", map[string]interface{}{"image_id": rec.ID, "title": rec.Title})
	c.JSON(http.StatusCreated, rec)
}

// ===========================
// ✏️ Update image - PUT /admin/gallery/:id
func (h *Handler) UpdateImage(c *gin.Context) {
	var in ImageInput
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
			c.JSON(http.StatusNotFound, gin.H{"error": "gallery image not found"})
		default:
			c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to save image"})
		}
		return
	}

	h.audit(c, "gallery.update", map[string]interface{}{"image_id": rec.ID})
	c.JSON(http.StatusOK, rec)
}

// ===========================
// 🗑 Remove image - DELETE /admin/gallery/:id
func (h *Handler) DeleteImage(c *gin.Context) {
	id := c.Param("id")
	if err := h.Service.Delete(c.Request.Context(), id); err != nil {
		if errors.Is(err, ErrNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "gallery image not found"})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to delete image"})
		return
	}

	h.audit(c, "gallery.delete", map[string]interface{}{"image_id": id})
	c.JSON(http.StatusOK, gin.H{"message": "image deleted"})
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
