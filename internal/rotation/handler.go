package rotation

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

// Handler exposes both rotators to the web client. All routes are public:
// the sliders live on the marketing pages.
type Handler struct {
	Gallery   *GalleryRotator
	Scripture *ScriptureRotator
}

func NewHandler(gallery *GalleryRotator, scripture *ScriptureRotator) *Handler {
	return &Handler{Gallery: gallery, Scripture: scripture}
}

// ===========================
// 🖼 Gallery slider - GET /gallery/slider
func (h *Handler) GetGallerySlider(c *gin.Context) {
	c.JSON(http.StatusOK, h.Gallery.Snapshot())
}

// POST /gallery/slider/next
func (h *Handler) GalleryNext(c *gin.Context) {
	changed := h.Gallery.Next()
	c.JSON(http.StatusOK, gin.H{"changed": changed, "state": h.Gallery.Snapshot()})
}

// POST /gallery/slider/previous
func (h *Handler) GalleryPrevious(c *gin.Context) {
	changed := h.Gallery.Previous()
	c.JSON(http.StatusOK, gin.H{"changed": changed, "state": h.Gallery.Snapshot()})
}

type jumpRequest struct {
	Index int `json:"index"`
}

// POST /gallery/slider/jump
func (h *Handler) GalleryJump(c *gin.Context) {
	var req jumpRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid input: " + err.Error()})
		return
	}
	changed := h.Gallery.JumpTo(req.Index)
	c.JSON(http.StatusOK, gin.H{"changed": changed, "state": h.Gallery.Snapshot()})
}

type playRequest struct {
	Playing bool `json:"playing"`
}

// POST /gallery/slider/play
func (h *Handler) GalleryPlay(c *gin.Context) {
	var req playRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid input: " + err.Error()})
		return
	}
	h.Gallery.SetPlaying(req.Playing)
	c.JSON(http.StatusOK, h.Gallery.Snapshot())
}

type hoverRequest struct {
	Hovered bool `json:"hovered"`
}

// POST /gallery/slider/hover
func (h *Handler) GalleryHover(c *gin.Context) {
	var req hoverRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid input: " + err.Error()})
		return
	}
	h.Gallery.SetHovered(req.Hovered)
	c.JSON(http.StatusOK, h.Gallery.Snapshot())
}

// ===========================
// 🔍 Lightbox - POST /gallery/lightbox
func (h *Handler) OpenLightbox(c *gin.Context) {
	var req jumpRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid input: " + err.Error()})
		return
	}
	if !h.Gallery.OpenLightbox(req.Index) {
		c.JSON(http.StatusBadRequest, gin.H{"error": "image index out of range"})
		return
	}
	c.JSON(http.StatusOK, h.Gallery.Snapshot())
}

// DELETE /gallery/lightbox
func (h *Handler) CloseLightbox(c *gin.Context) {
	h.Gallery.CloseLightbox()
	c.JSON(http.StatusOK, h.Gallery.Snapshot())
}

// POST /gallery/lightbox/next
func (h *Handler) LightboxNext(c *gin.Context) {
	changed := h.Gallery.LightboxNext()
	c.JSON(http.StatusOK, gin.H{"changed": changed, "state": h.Gallery.Snapshot()})
}

// POST /gallery/lightbox/previous
func (h *Handler) LightboxPrevious(c *gin.Context) {
	changed := h.Gallery.LightboxPrevious()
	c.JSON(http.StatusOK, gin.H{"changed": changed, "state": h.Gallery.Snapshot()})
}

// ===========================
// 📖 Scripture rotator - GET /scriptures/slider
func (h *Handler) GetScriptureSlider(c *gin.Context) {
	c.JSON(http.StatusOK, h.Scripture.Snapshot())
}

// POST /scriptures/slider/next
func (h *Handler) ScriptureNext(c *gin.Context) {
	changed := h.Scripture.Next()
	c.JSON(http.StatusOK, gin.H{"changed": changed, "state": h.Scripture.Snapshot()})
}

// POST /scriptures/slider/previous
func (h *Handler) ScripturePrevious(c *gin.Context) {
	changed := h.Scripture.Previous()
	c.JSON(http.StatusOK, gin.H{"changed": changed, "state": h.Scripture.Snapshot()})
}

// POST /scriptures/slider/jump
func (h *Handler) ScriptureJump(c *gin.Context) {
	var req jumpRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid input: " + err.Error()})
		return
	}
	changed := h.Scripture.JumpTo(req.Index)
	c.JSON(http.StatusOK, gin.H{"changed": changed, "state": h.Scripture.Snapshot()})
}
