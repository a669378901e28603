package routes

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	feeCtl "campushq_backend/internals/features/finance/feestructures/controller"
)

func FeeStructureAdminRoutes(r fiber.Router, db *gorm.DB) {
	structCtl := feeCtl.NewFeeStructureController(db)
	schCtl := feeCtl.NewScholarshipController(db)
	waiverCtl := feeCtl.NewFeeWaiverController(db)

	structures := r.Group("/fee-structures")
	structures.Post("/", structCtl.Create)
	structures.Get("/", structCtl.List)
	structures.Get("/:id", structCtl.GetByID)
	structures.Patch("/:id", structCtl.Update)
	structures.Delete("/:id", structCtl.Delete)

	scholarships := r.Group("/scholarships")
	scholarships.Post("/", schCtl.Create)
	scholarships.Get("/", schCtl.List)
	scholarships.Patch("/:id", schCtl.Update)
	scholarships.Post("/grants", schCtl.Grant)
	scholarships.Delete("/grants/:id", schCtl.Revoke)

	waivers := r.Group("/fee-waivers")
	waivers.Post("/", waiverCtl.Create)
	waivers.Get("/", waiverCtl.List)
	waivers.Delete("/:id", waiverCtl.Delete)
}
