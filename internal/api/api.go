package api

import (
	"net/http"
	"strings"
	"time"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"

	"github.com/gudangops/whmonitor/internal/api/handlers"
	"github.com/gudangops/whmonitor/internal/api/middleware"
	"github.com/gudangops/whmonitor/internal/cache"
	"github.com/gudangops/whmonitor/internal/repository"
	"github.com/gudangops/whmonitor/internal/service"
)

type Services struct {
	Inbound      *service.InboundService
	Inventory    *service.InventoryService
	Utilization  *service.UtilizationService
	Aging        *service.AgingService
	Manpower     *service.ManpowerService
	Productivity *service.ProductivityService
	Collections  repository.CollectionRepository
	ReportCache  cache.ReportCache
}

func NewRouter(services *Services, allowedOrigins []string) *gin.Engine {
	router := gin.New()

	router.Use(middleware.Logger())
	router.Use(middleware.Recovery())

	defaultOrigins := []string{"http://localhost:3000", "http://127.0.0.1:3000"}
	corsConfig := cors.Config{
		AllowOrigins:     defaultOrigins,
		AllowMethods:     []string{"GET", "POST", "OPTIONS"},
		AllowHeaders:     []string{"Origin", "Content-Type", "Accept", "Authorization"},
		ExposeHeaders:    []string{"Content-Length", "Content-Disposition"},
		AllowCredentials: true,
		MaxAge:           12 * time.Hour,
	}
	if len(allowedOrigins) > 0 {
		normalizedOrigins, allowAll := normalizeAllowedOrigins(allowedOrigins)
		if allowAll {
			corsConfig.AllowOrigins = nil
			corsConfig.AllowOriginFunc = func(origin string) bool { return true }
		} else if len(normalizedOrigins) > 0 {
			corsConfig.AllowOrigins = normalizedOrigins
		}
	}
	router.Use(cors.New(corsConfig))

	router.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
	})

	apiGroup := router.Group("/api/v1")

	if services != nil {
		reportHandler := handlers.NewReportHandler(
			services.Inbound,
			services.Inventory,
			services.Utilization,
			services.Aging,
			services.Manpower,
			services.Productivity,
		)

		dashboardGroup := apiGroup.Group("/dashboard")
		{
			dashboardGroup.GET("/inbound", reportHandler.GetInbound)
			dashboardGroup.GET("/inventory", reportHandler.GetInventory)
			dashboardGroup.GET("/utilization", reportHandler.GetUtilization)
			dashboardGroup.GET("/aging", reportHandler.GetAging)
			dashboardGroup.GET("/manpower", reportHandler.GetManpower)
		}

		productivityGroup := apiGroup.Group("/productivity")
		{
			productivityGroup.GET("", reportHandler.GetProductivity)
			productivityGroup.GET("/export", reportHandler.ExportProductivity)
		}

		// Unauthenticated page shared with brand owners.
		publicGroup := apiGroup.Group("/public")
		{
			publicGroup.GET("/aging", reportHandler.GetPublicAging)
			publicGroup.GET("/aging/export", reportHandler.ExportAging)
		}

		if services.Collections != nil {
			collectionHandler := handlers.NewCollectionHandler(services.Collections)
			collectionHandler.Register(apiGroup.Group("/collections"))
		}

		if services.ReportCache != nil {
			apiGroup.POST("/cache/invalidate", func(c *gin.Context) {
				if err := services.ReportCache.InvalidateAll(c.Request.Context()); err != nil {
					c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to invalidate report cache"})
					return
				}
				c.JSON(http.StatusOK, gin.H{"status": "invalidated"})
			})
		}
	}

	return router
}

func normalizeAllowedOrigins(origins []string) ([]string, bool) {
	var (
		parsed   []string
		allowAll bool
	)
	for _, origin := range origins {
		parts := strings.Split(origin, ",")
		for _, part := range parts {
			trimmed := strings.TrimSpace(part)
			if trimmed == "" {
				continue
			}
			if trimmed == "*" {
				allowAll = true
				continue
			}
			parsed = append(parsed, trimmed)
		}
	}
	return parsed, allowAll
}
