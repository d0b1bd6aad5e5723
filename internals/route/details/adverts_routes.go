package details

import (
	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"
	"gorm.io/gorm"

	"adverts_backend/internals/configs"
	annCtl "adverts_backend/internals/features/adverts/announcements/controller"
	annRepo "adverts_backend/internals/features/adverts/announcements/repository"
	annRoutes "adverts_backend/internals/features/adverts/announcements/route"
	annService "adverts_backend/internals/features/adverts/announcements/service"
)

// AdvertsRoutes wires repository -> mediator -> controller for one mount point.
func AdvertsRoutes(r fiber.Router, db *gorm.DB, cfg *configs.Config, log *zap.Logger) {
	repo := annRepo.NewAnnouncementRepository(db)
	mediator := annService.NewMediator(repo, log)
	ctl := annCtl.NewAnnouncementController(mediator, cfg.MaxAnnouncementsPerUser, log)

	annRoutes.AnnouncementRoutes(r, ctl)
}
