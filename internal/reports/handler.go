package reports

import (
	"fmt"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
)

type Handler struct {
	Exporter *Exporter
}

func NewHandler(e *Exporter) *Handler {
	return &Handler{Exporter: e}
}

// ===========================
// ⬇️ Member roster - GET /admin/reports/members.xlsx
func (h *Handler) DownloadMemberRoster(c *gin.Context) {
	buf, err := h.Exporter.MemberRosterXLSX(c.Request.Context())
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to generate roster"})
		return
	}

	filename := fmt.Sprintf("members-%s.xlsx", time.Now().Format("2006-01-02"))
	c.Header("Content-Disposition", fmt.Sprintf(`attachment; filename="%s"`, filename))
	c.Data(http.StatusOK, "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet", buf.Bytes())
}

// ===========================
// ⬇️ Event schedule - GET /admin/reports/events.xlsx
func (h *Handler) DownloadEventSchedule(c *gin.Context) {
	buf, err := h.Exporter.EventScheduleXLSX(c.Request.Context())
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to generate schedule"})
		return
	}

	filename := fmt.Sprintf("events-%s.xlsx", time.Now().Format("2006-01-02"))
	c.Header("Content-Disposition", fmt.Sprintf(`attachment; filename="%s"`, filename))
	c.Data(http.StatusOK, "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet", buf.Bytes())
}

// ===========================
// ⬇️ Member roster PDF - GET /admin/reports/members.pdf
func (h *Handler) DownloadMemberRosterPDF(c *gin.Context) {
	buf, err := h.Exporter.MemberRosterPDF(c.Request.Context())
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to generate roster pdf"})
		return
	}

	filename := fmt.Sprintf("members-%s.pdf", time.Now().Format("2006-01-02"))
	c.Header("Content-Disposition", fmt.Sprintf(`attachment; filename="%s"`, filename))
	c.Data(http.StatusOK, "application/pdf", buf.Bytes())
}
