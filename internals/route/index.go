// file: internals/route/index.go
package routes

import (
	"time"

	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"
	"gorm.io/gorm"

	"adverts_backend/internals/configs"
	routeDetails "adverts_backend/internals/route/details"
)

var startTime time.Time

func SetupRoutes(app *fiber.App, db *gorm.DB, cfg *configs.Config, log *zap.Logger) {
	startTime = time.Now()

	log.Info("setting up BaseRoutes...")
	BaseRoutes(app, db)

	// older clients still call /api/announcements
	log.Info("mounting Adverts routes...", zap.Int("max_announcements_per_user", cfg.MaxAnnouncementsPerUser))
	routeDetails.AdvertsRoutes(app.Group("/announcements"), db, cfg, log)
	routeDetails.AdvertsRoutes(app.Group("/api/announcements"), db, cfg, log)
}
