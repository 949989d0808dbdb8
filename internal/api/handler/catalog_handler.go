package handler

import (
	"errors"
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/frostodev/sedona/internal/repository"
	"github.com/frostodev/sedona/internal/service"
	"github.com/frostodev/sedona/pkg/response"
)

// CatalogHandler serves the cascading selector lookups.
type CatalogHandler struct {
	catalogSvc *service.CatalogService
}

func NewCatalogHandler(catalogSvc *service.CatalogService) *CatalogHandler {
	return &CatalogHandler{catalogSvc: catalogSvc}
}

// ListCampuses lists all campuses.
// GET /api/v1/catalog/campuses
func (h *CatalogHandler) ListCampuses(c *gin.Context) {
	result, err := h.catalogSvc.ListCampuses(c.Request.Context())
	if err != nil {
		h.handleCatalogError(c, err)
		return
	}
	response.OK(c, result)
}

// ListSemesters lists the semester codes of one campus.
// GET /api/v1/catalog/semesters?campus=
func (h *CatalogHandler) ListSemesters(c *gin.Context) {
	result, err := h.catalogSvc.ListSemesters(c.Request.Context(), c.Query("campus"))
	if err != nil {
		h.handleCatalogError(c, err)
		return
	}
	response.OK(c, result)
}

// ListSubjects lists the subjects of one campus/semester scope.
// GET /api/v1/catalog/subjects?campus=&semester=
func (h *CatalogHandler) ListSubjects(c *gin.Context) {
	result, err := h.catalogSvc.ListSubjects(c.Request.Context(), c.Query("campus"), c.Query("semester"))
	if err != nil {
		h.handleCatalogError(c, err)
		return
	}
	response.OK(c, result)
}

// ListSections lists the sections of one subject.
// GET /api/v1/catalog/sections?subject_id=
func (h *CatalogHandler) ListSections(c *gin.Context) {
	subjectID, err := strconv.Atoi(c.Query("subject_id"))
	if err != nil {
		response.BadRequest(c, 14001, "incomplete or invalid parameters")
		return
	}

	result, err := h.catalogSvc.ListSections(c.Request.Context(), subjectID)
	if err != nil {
		h.handleCatalogError(c, err)
		return
	}
	response.OK(c, result)
}

func (h *CatalogHandler) handleCatalogError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, service.ErrCatalogInvalidParams):
		response.BadRequest(c, 14001, "incomplete or invalid parameters")
	case errors.Is(err, repository.ErrStorage):
		_ = c.Error(err)
		response.InternalError(c)
	default:
		_ = c.Error(err)
		response.InternalError(c)
	}
}
