package routes

import (
	"github.com/gofiber/fiber/v2"

	annCtl "adverts_backend/internals/features/adverts/announcements/controller"
)

// AnnouncementRoutes mounts the CRUD endpoints on r (e.g. /announcements).
func AnnouncementRoutes(r fiber.Router, ann *annCtl.AnnouncementController) {
	r.Get("/", ann.List)
	r.Get("/:id", ann.GetByID)
	r.Post("/", ann.Create)
	r.Put("/:id", ann.Update)
	// /:id,:userId -> the whole "<id>,<userId>" segment lands in :id
	r.Delete("/:id", ann.Delete)
}
