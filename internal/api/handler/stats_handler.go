package handler

import (
	"errors"

	"github.com/gin-gonic/gin"

	"github.com/frostodev/sedona/internal/dto"
	"github.com/frostodev/sedona/internal/repository"
	"github.com/frostodev/sedona/internal/service"
	"github.com/frostodev/sedona/pkg/response"
)

// StatsHandler serves the statistics endpoint.
type StatsHandler struct {
	statsSvc *service.StatsService
}

func NewStatsHandler(statsSvc *service.StatsService) *StatsHandler {
	return &StatsHandler{statsSvc: statsSvc}
}

// GetStats returns totals and rankings, scoped or global.
// GET /api/v1/stats?campus=&semester=
func (h *StatsHandler) GetStats(c *gin.Context) {
	params := dto.StatsParams{
		Campus:   c.Query("campus"),
		Semester: c.Query("semester"),
	}

	result, err := h.statsSvc.GetStats(c.Request.Context(), params)
	if err != nil {
		h.handleStatsError(c, err)
		return
	}

	response.OK(c, result)
}

func (h *StatsHandler) handleStatsError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, service.ErrStatsInvalidParams):
		response.BadRequest(c, 15001, "incomplete or invalid parameters")
	case errors.Is(err, repository.ErrStorage):
		_ = c.Error(err)
		response.InternalError(c)
	default:
		_ = c.Error(err)
		response.InternalError(c)
	}
}
