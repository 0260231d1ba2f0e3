package leader

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
// 👥 Public listing - GET /leaders
func (h *Handler) ListLeaders(c *gin.Context) {
	c.JSON(http.StatusOK, h.Service.List(c.Request.Context()))
}

// ===========================
// ➕ Create leader - POST /admin/leaders
func (h *Handler) CreateLeader(c *gin.Context) {
	var in LeaderInput
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
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to save leader"})
		return
	}

	h.audit(c, "leader.create", map[string]interface{}{"leader_id": rec.ID, "name": rec.Name})
	c.JSON(http.StatusCreated, rec)
}

// ===========================
// ✏️ Update leader - PUT /admin/leaders/:id
func (h *Handler) UpdateLeader(c *gin.Context) {
	var in LeaderInput
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
			c.JSON(http.StatusNotFound, gin.H{"error": "leader not found"})
		default:
			c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to save leader"})
		}
		return
	}

	h.audit(c, "leader.update", map[string]interface{}{"leader_id": rec.ID})
	c.JSON(http.StatusOK, rec)
}

// ===========================
// 🗑 Delete leader - DELETE /admin/leaders/:id
func (h *Handler) DeleteLeader(c *gin.Context) {
	id := c.Param("id")
	if err := h.Service.Delete(c.Request.Context(), id); err != nil {
		if errors.Is(err, ErrNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "leader not found"})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to delete leader"})
		return
	}

	h.audit(c, "leader.delete", map[string]interface{}{"leader_id": id})
	c.JSON(http.StatusOK, gin.H{"message": "leader deleted"})
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
