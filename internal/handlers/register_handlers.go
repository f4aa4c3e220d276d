package handlers

import (
	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/ulule/limiter/v3"
	"github.com/ulule/limiter/v3/drivers/store/memory"

	portssvc "github.com/tokopintar/tokokas/internal/core/ports/services"
	"github.com/tokopintar/tokokas/internal/middleware"
	"github.com/tokopintar/tokokas/internal/platform/config"
)

// RegisterRoutes sets up all application routes, injecting dependencies using interfaces
func RegisterRoutes(
	r *gin.Engine,
	cfg *config.Config,
	services *portssvc.ServiceContainer,
) error {

	// Add health check route
	r.GET("/health", func(c *gin.Context) {
		c.String(200, "OK")
	})
	r.GET("/", GetHome)

	// Allow the storefront origin to call the API
	r.Use(cors.New(cors.Config{
		AllowOrigins: []string{cfg.FrontendBaseURL},
		AllowMethods: []string{"GET", "POST"},
		AllowHeaders: []string{"Content-Type"},
	}))

	// Mutating routes share one IP rate limiter
	rate, err := limiter.NewRateFromFormatted(cfg.WriteRateLimit)
	if err != nil {
		return err
	}
	writeLimit := middleware.RateLimit(limiter.New(memory.NewStore(), rate))

	setupAPIV1Routes(r, services, writeLimit)
	return nil
}

// setupAPIV1Routes configures the /api/v1 group and delegates to specific entity route registrations
func setupAPIV1Routes(
	r *gin.Engine,
	services *portssvc.ServiceContainer,
	writeLimit gin.HandlerFunc,
) {
	v1 := r.Group("/api/v1")

	// Delegate route registration to specific handlers, passing required services
	registerJournalRoutes(v1, services.Journal, writeLimit)
	registerInventoryRoutes(v1, services.Inventory, writeLimit)
	registerReportingRoutes(v1, services.Reporting)
}
