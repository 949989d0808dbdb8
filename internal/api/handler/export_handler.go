package handler

import (
	"errors"
	"fmt"
	"net/http"
	"net/url"

	"github.com/gin-gonic/gin"

	"github.com/frostodev/sedona/internal/dto"
	"github.com/frostodev/sedona/internal/repository"
	"github.com/frostodev/sedona/internal/service"
	"github.com/frostodev/sedona/pkg/response"
)

const xlsxContentType = "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet"

// ExportHandler serves schedule downloads.
type ExportHandler struct {
	exportSvc *service.ExportService
}

func NewExportHandler(exportSvc *service.ExportService) *ExportHandler {
	return &ExportHandler{exportSvc: exportSvc}
}

// ExportRooms downloads the matched room schedules as an xlsx workbook.
// GET /api/v1/export/rooms?campus=&semester=&room=&hide_empty=
func (h *ExportHandler) ExportRooms(c *gin.Context) {
	params := dto.RoomSearchParams{
		Campus:    c.Query("campus"),
		Semester:  c.Query("semester"),
		Room:      c.Query("room"),
		HideEmpty: c.Query("hide_empty") == "true" || c.Query("hide_empty") == "1",
	}

	data, err := h.exportSvc.ExportRoomSchedules(c.Request.Context(), params)
	if err != nil {
		h.handleExportError(c, err)
		return
	}

	filename := fmt.Sprintf("rooms_%s_%s.xlsx", params.Semester, params.Room)
	c.Header("Content-Description", "File Transfer")
	c.Header("Content-Disposition", "attachment; filename*=UTF-8''"+url.QueryEscape(filename))
	c.Data(http.StatusOK, xlsxContentType, data)
}

func (h *ExportHandler) handleExportError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, service.ErrRoomInvalidParams):
		response.BadRequest(c, 16001, "incomplete or invalid parameters")
	case errors.Is(err, repository.ErrStorage):
		_ = c.Error(err)
		response.InternalError(c)
	default:
		_ = c.Error(err)
		response.InternalError(c)
	}
}
