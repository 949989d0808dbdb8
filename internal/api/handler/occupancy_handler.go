package handler

import (
	"errors"
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/frostodev/sedona/internal/dto"
	"github.com/frostodev/sedona/internal/repository"
	"github.com/frostodev/sedona/internal/service"
	"github.com/frostodev/sedona/pkg/response"
)

// OccupancyHandler serves the empty-room search endpoint.
type OccupancyHandler struct {
	occupancySvc *service.OccupancyService
}

func NewOccupancyHandler(occupancySvc *service.OccupancyService) *OccupancyHandler {
	return &OccupancyHandler{occupancySvc: occupancySvc}
}

// FindEmptyRooms reports room availability for the selected weekday/blocks.
// GET /api/v1/search/empty-rooms?campus=&semester=&weekday=&blocks=0&blocks=3
func (h *OccupancyHandler) FindEmptyRooms(c *gin.Context) {
	weekday, err := strconv.Atoi(c.Query("weekday"))
	if err != nil {
		response.BadRequest(c, 13001, "incomplete or invalid parameters")
		return
	}

	var blocks []int
	for _, raw := range c.QueryArray("blocks") {
		b, err := strconv.Atoi(raw)
		if err != nil {
			response.BadRequest(c, 13001, "incomplete or invalid parameters")
			return
		}
		blocks = append(blocks, b)
	}

	params := dto.EmptyRoomSearchParams{
		Campus:   c.Query("campus"),
		Semester: c.Query("semester"),
		Weekday:  weekday,
		Blocks:   blocks,
	}

	result, err := h.occupancySvc.FindEmptyRooms(c.Request.Context(), params)
	if err != nil {
		h.handleOccupancyError(c, err)
		return
	}

	response.OK(c, result)
}

func (h *OccupancyHandler) handleOccupancyError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, service.ErrOccupancyInvalidParams):
		response.BadRequest(c, 13001, "incomplete or invalid parameters")
	case errors.Is(err, repository.ErrStorage):
		_ = c.Error(err)
		response.InternalError(c)
	default:
		_ = c.Error(err)
		response.InternalError(c)
	}
}
