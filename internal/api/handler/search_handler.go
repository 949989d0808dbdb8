package handler

import (
	"errors"

	"github.com/gin-gonic/gin"

	"github.com/frostodev/sedona/internal/dto"
	"github.com/frostodev/sedona/internal/repository"
	"github.com/frostodev/sedona/internal/service"
	"github.com/frostodev/sedona/pkg/response"
)

// SearchHandler serves the subject/section search endpoint.
type SearchHandler struct {
	searchSvc *service.SearchService
}

func NewSearchHandler(searchSvc *service.SearchService) *SearchHandler {
	return &SearchHandler{searchSvc: searchSvc}
}

// SearchSubjects runs one subject query.
// GET /api/v1/search/subjects?campus=&semester=&q=&hide_empty=
func (h *SearchHandler) SearchSubjects(c *gin.Context) {
	params := dto.SubjectSearchParams{
		Campus:    c.Query("campus"),
		Semester:  c.Query("semester"),
		Query:     c.Query("q"),
		HideEmpty: c.Query("hide_empty") == "true" || c.Query("hide_empty") == "1",
	}

	result, err := h.searchSvc.SearchSubjects(c.Request.Context(), params)
	if err != nil {
		h.handleSearchError(c, err)
		return
	}

	response.OK(c, result)
}

func (h *SearchHandler) handleSearchError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, service.ErrSearchInvalidParams):
		response.BadRequest(c, 11001, "incomplete or invalid parameters")
	case errors.Is(err, repository.ErrStorage):
		_ = c.Error(err)
		response.InternalError(c)
	default:
		_ = c.Error(err)
		response.InternalError(c)
	}
}
