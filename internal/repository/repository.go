package repository

import (
	"errors"

	"gorm.io/gorm"
)

// ErrStorage marks any storage failure crossing the repository boundary.
// Callers log the wrapped detail and answer with an opaque processing error;
// queries are not retried automatically.
var ErrStorage = errors.New("storage access failed")

// Scope is the mandatory (campus name, semester code) pair every schedule
// query is bounded by before any other filter applies.
type Scope struct {
	Campus   string
	Semester string
}

// Repository aggregates every repository interface.
type Repository struct {
	Schedule ScheduleRepository
	Catalog  CatalogRepository
	Stats    StatsRepository
}

// NewRepository builds the repository aggregate.
func NewRepository(db *gorm.DB) *Repository {
	return &Repository{
		Schedule: NewScheduleRepo(db),
		Catalog:  NewCatalogRepo(db),
		Stats:    NewStatsRepo(db),
	}
}
