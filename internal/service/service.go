package service

import (
	"time"

	"go.uber.org/zap"

	"github.com/frostodev/sedona/config"
	"github.com/frostodev/sedona/internal/repository"
	"github.com/frostodev/sedona/pkg/redis"
)

// Service aggregates all service instances.
type Service struct {
	Search    *SearchService
	Room      *RoomService
	Occupancy *OccupancyService
	Catalog   *CatalogService
	Stats     *StatsService
	Export    *ExportService
}

// NewService wires the services against the repository aggregate. The Redis
// client may be nil; caching is then disabled and everything reads straight
// from storage.
func NewService(repo *repository.Repository, cache *redis.Client, cfg *config.Config, logger *zap.Logger) *Service {
	room := NewRoomService(repo.Schedule, logger)
	ttl := time.Duration(cfg.Redis.CatalogTTLSec) * time.Second
	return &Service{
		Search:    NewSearchService(repo.Schedule, logger),
		Room:      room,
		Occupancy: NewOccupancyService(repo.Schedule, logger),
		Catalog:   NewCatalogService(repo.Catalog, cache, ttl, logger),
		Stats:     NewStatsService(repo.Stats, logger),
		Export:    NewExportService(room, logger),
	}
}
