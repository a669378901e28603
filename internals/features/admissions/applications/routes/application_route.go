package routes

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	appCtl "campushq_backend/internals/features/admissions/applications/controller"
)

func ApplicationAdminRoutes(r fiber.Router, db *gorm.DB) {
	ctl := appCtl.NewApplicationController(db)

	apps := r.Group("/applications")
	apps.Post("/", ctl.Create)
	apps.Get("/", ctl.List)
	apps.Get("/:id", ctl.GetByID)
	apps.Patch("/:id", ctl.Update)
	apps.Patch("/:id/status", ctl.Transition)
	apps.Delete("/:id", ctl.Delete)
}
