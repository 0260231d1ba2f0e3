package scripture

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
// 📖 Public active scriptures - GET /scriptures/active
func (h *Handler) ActiveScriptures(c *gin.Context) {
	c.JSON(http.StatusOK, h.Service.Active(c.Request.Context()))
}

// ===========================
// 📚 Admin listing - GET /admin/scriptures
func (h *Handler) ListScriptures(c *gin.Context) {
	c.JSON(http.StatusOK, h.Service.List(c.Request.Context()))
}

// ===========================
// ➕ Create scripture - POST /admin/scriptures
func (h *Handler) CreateScripture(c *gin.Context) {
	var in ScriptureInput
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
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to save scripture"})
		return
	}

	h.audit(c, "scripture.create", map[string]interface{}{"scripture_id": rec.ID, "reference": rec.Reference})
	c.JSON(http.StatusCreated, rec)
}

// ===========================
// ✏️ Update scripture - PUT /admin/scriptures/:id
func (h *Handler) UpdateScripture(c *gin.Context) {
	var in ScriptureInput
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
			c.JSON(http.StatusNotFound, gin.H{"error": "scripture not found"})
		default:
			c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to save scripture"})
		}
		return
	}

	h.audit(c, "scripture.update", map[string]interface{}{"scripture_id": rec.ID})
	c.JSON(http.StatusOK, rec)
}

// ===========================
// 🌟 Set the displayed scripture - POST /admin/scriptures/:id/activate
func (h *Handler) ActivateScripture(c *gin.Context) {
	rec, err := h.Service.Activate(c.Request.Context(), c.Param("id"))
	if err != nil {
		if errors.Is(err, ErrNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "scripture not found"})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to activate scripture"})
		return
	}

	h.audit(c, "scripture.activate", map[string]interface{}{"scripture_id": rec.ID})
	c.JSON(http.StatusOK, rec)
}

// ===========================
// 🗑 Delete scripture - DELETE /admin/scriptures/:id
func (h *Handler) DeleteScripture(c *gin.Context) {
	id := c.Param("id")
	if err := h.Service.Delete(c.Request.Context(), id); err != nil {
		if errors.Is(err, ErrNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "scripture not found"})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to delete scripture"})
		return
	}

	h.audit(c, "scripture.delete", map[string]interface{}{"scripture_id": id})
	c.JSON(http.StatusOK, gin.H{"message": "scripture deleted"})
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
