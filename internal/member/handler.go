package member

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
// 🙋 Public signup - POST /join
func (h *Handler) Join(c *gin.Context) {
	var req JoinRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request body"})
		return
	}

	rec, err := h.Service.Join(c.Request.Context(), req)
	if err != nil {
		switch {
		case errors.Is(err, ErrMissingFields):
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		case errors.Is(err, ErrDuplicateEmail):
			c.JSON(http.StatusConflict, gin.H{"error": err.Error()})
		default:
			c.JSON(http.StatusInternalServerError, gin.H{"error": "signup failed, please try again"})
		}
		return
	}

	c.JSON(http.StatusCreated, gin.H{
		"message": "Welcome to the fellowship! 🎉",
		"member":  rec,
	})
}

// ===========================
// 🧑‍🎓 Admin listing - GET /admin/members
func (h *Handler) ListMembers(c *gin.Context) {
	c.JSON(http.StatusOK, h.Service.List(c.Request.Context()))
}

// ===========================
// ➕ Add member - POST /admin/members
func (h *Handler) CreateMember(c *gin.Context) {
	var req JoinRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request body"})
		return
	}

	rec, err := h.Service.Create(c.Request.Context(), req)
	if err != nil {
		switch {
		case errors.Is(err, ErrMissingFields):
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		case errors.Is(err, ErrDuplicateEmail):
			c.JSON(http.StatusConflict, gin.H{"error": err.Error()})
		default:
			c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to save member"})
		}
		return
	}

	h.audit(c, "member.create", map[string]interface{}{"member_id": rec.ID})
	c.JSON(http.StatusCreated, rec)
}

// ===========================
// ✏️ Update member - PUT /admin/members/:id
func (h *Handler) UpdateMember(c *gin.Context) {
	var req JoinRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request body"})
		return
	}

	rec, err := h.Service.Update(c.Request.Context(), c.Param("id"), req)
	if err != nil {
		switch {
		case errors.Is(err, ErrMissingFields):
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		case errors.Is(err, ErrNotFound):
			c.JSON(http.StatusNotFound, gin.H{"error": "member not found"})
		default:
			c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to save member"})
		}
		return
	}

	h.audit(c, "member.update", map[string]interface{}{"member_id": rec.ID})
	c.JSON(http.StatusOK, rec)
}

// ===========================
// 🗑 Remove member - DELETE /admin/members/:id
func (h *Handler) DeleteMember(c *gin.Context) {
	id := c.Param("id")
	if err := h.Service.Delete(c.Request.Context(), id); err != nil {
		if errors.Is(err, ErrNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "member not found"})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to delete member"})
		return
	}

	h.audit(c, "member.delete", map[string]interface{}{"member_id": id})
	c.JSON(http.StatusOK, gin.H{"message": "member removed"})
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
