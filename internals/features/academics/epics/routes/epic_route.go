package routes

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	epicCtl "campushq_backend/internals/features/academics/epics/controller"
)

func EpicAdminRoutes(r fiber.Router, db *gorm.DB) {
	ctl := epicCtl.NewEpicController(db)

	epics := r.Group("/epics")
	epics.Post("/", ctl.Create)
	epics.Get("/", ctl.List)
	epics.Get("/:id", ctl.GetByID)
	epics.Patch("/:id", ctl.Update)
	epics.Delete("/:id", ctl.Delete)
}
