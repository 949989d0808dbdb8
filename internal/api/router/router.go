package router

import (
	"time"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"github.com/frostodev/sedona/config"
	"github.com/frostodev/sedona/internal/api/handler"
	"github.com/frostodev/sedona/internal/api/middleware"
	"github.com/frostodev/sedona/pkg/redis"
)

// Setup builds the Gin engine with all routes and middleware.
func Setup(cfg *config.Config, h *handler.Handler, rdb *redis.Client, logger *zap.Logger) *gin.Engine {
	gin.SetMode(gin.ReleaseMode)

	r := gin.New()

	r.Use(gin.Recovery())
	r.Use(middleware.RequestID())
	r.Use(middleware.Logger(logger))
	r.Use(middleware.SecurityHeaders())
	r.Use(middleware.CORS(cfg.Server.CORS.AllowOrigins))
	r.Use(middleware.BodyLimit(cfg.Server.MaxBodyBytes))
	if cfg.Server.RateLimit > 0 {
		window := time.Duration(cfg.Server.RateWindowSec) * time.Second
		r.Use(middleware.RateLimit(rdb, cfg.Server.RateLimit, window))
	}

	r.GET("/health", func(c *gin.Context) {
		c.JSON(200, gin.H{"status": "ok"})
	})

	v1 := r.Group("/api/v1")
	{
		catalog := v1.Group("/catalog")
		{
			catalog.GET("/campuses", h.Catalog.ListCampuses)
			catalog.GET("/semesters", h.Catalog.ListSemesters)
			catalog.GET("/subjects", h.Catalog.ListSubjects)
			catalog.GET("/sections", h.Catalog.ListSections)
		}

		search := v1.Group("/search")
		{
			search.GET("/subjects", h.Search.SearchSubjects)
			search.GET("/rooms", h.Room.SearchRooms)
			search.GET("/empty-rooms", h.Occupancy.FindEmptyRooms)
		}

		v1.GET("/stats", h.Stats.GetStats)

		export := v1.Group("/export")
		{
			export.GET("/rooms", h.Export.ExportRooms)
		}
	}

	return r
}
