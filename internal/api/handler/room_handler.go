package handler

import (
	"errors"

	"github.com/gin-gonic/gin"

	"github.com/frostodev/sedona/internal/dto"
	"github.com/frostodev/sedona/internal/repository"
	"github.com/frostodev/sedona/internal/service"
	"github.com/frostodev/sedona/pkg/response"
)

// RoomHandler serves the room schedule search endpoint.
type RoomHandler struct {
	roomSvc *service.RoomService
}

func NewRoomHandler(roomSvc *service.RoomService) *RoomHandler {
	return &RoomHandler{roomSvc: roomSvc}
}

// SearchRooms returns the weekly grids of every room matching the query.
// GET /api/v1/search/rooms?campus=&semester=&room=&hide_empty=
func (h *RoomHandler) SearchRooms(c *gin.Context) {
	params := dto.RoomSearchParams{
		Campus:    c.Query("campus"),
		Semester:  c.Query("semester"),
		Room:      c.Query("room"),
		HideEmpty: c.Query("hide_empty") == "true" || c.Query("hide_empty") == "1",
	}

	result, err := h.roomSvc.SearchRooms(c.Request.Context(), params)
	if err != nil {
		h.handleRoomError(c, err)
		return
	}

	response.OK(c, result)
}

func (h *RoomHandler) handleRoomError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, service.ErrRoomInvalidParams):
		response.BadRequest(c, 12001, "incomplete or invalid parameters")
	case errors.Is(err, repository.ErrStorage):
		_ = c.Error(err)
		response.InternalError(c)
	default:
		_ = c.Error(err)
		response.InternalError(c)
	}
}
