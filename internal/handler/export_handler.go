package handler

import (
	"fmt"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/eventum-app/eventum-api/internal/service"
	"github.com/eventum-app/eventum-api/pkg/response"
)

// ExportHandler serves range-filtered event exports.
type ExportHandler struct {
	service *service.ExportService
}

// NewExportHandler constructs an export handler.
func NewExportHandler(svc *service.ExportService) *ExportHandler {
	return &ExportHandler{service: svc}
}

// Export godoc
// @Summary Export events
// @Description Download events in CSV, PDF or iCalendar format
// @Tags Events
// @Produce octet-stream
// @Param format query string true "csv, pdf or ics"
// @Param startDate query string false "Range start (RFC 3339 or YYYY-MM-DD)"
// @Param endDate query string false "Range end (RFC 3339 or YYYY-MM-DD)"
// @Success 200
// @Failure 400 {object} response.Envelope
// @Router /exports/events [get]
func (h *ExportHandler) Export(c *gin.Context) {
	filter, err := service.ParseListRange(c.Query("startDate"), c.Query("endDate"))
	if err != nil {
		response.Error(c, err)
		return
	}
	doc, err := h.service.Export(c.Request.Context(), filter, c.Query("format"))
	if err != nil {
		response.Error(c, err)
		return
	}
	c.Header("Content-Disposition", fmt.Sprintf("attachment; filename=%q", doc.Filename))
	c.Data(http.StatusOK, doc.ContentType, doc.Content)
}
