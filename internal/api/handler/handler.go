package handler

import "github.com/frostodev/sedona/internal/service"

// Handler aggregates all handler instances.
type Handler struct {
	Search    *SearchHandler
	Room      *RoomHandler
	Occupancy *OccupancyHandler
	Catalog   *CatalogHandler
	Stats     *StatsHandler
	Export    *ExportHandler
}

// NewHandler builds the handler aggregate.
func NewHandler(svc *service.Service) *Handler {
	return &Handler{
		Search:    NewSearchHandler(svc.Search),
		Room:      NewRoomHandler(svc.Room),
		Occupancy: NewOccupancyHandler(svc.Occupancy),
		Catalog:   NewCatalogHandler(svc.Catalog),
		Stats:     NewStatsHandler(svc.Stats),
		Export:    NewExportHandler(svc.Export),
	}
}
