package routes

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	cohortCtl "campushq_backend/internals/features/academics/cohorts/controller"
)

func CohortAdminRoutes(r fiber.Router, db *gorm.DB) {
	ctl := cohortCtl.NewCohortController(db)

	cohorts := r.Group("/cohorts")
	cohorts.Post("/", ctl.Create)
	cohorts.Get("/", ctl.List)
	cohorts.Get("/:id", ctl.GetByID)
	cohorts.Patch("/:id", ctl.Update)
	cohorts.Delete("/:id", ctl.Delete)
}
