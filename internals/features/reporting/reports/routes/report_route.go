package routes

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	reportCtl "campushq_backend/internals/features/reporting/reports/controller"
)

func ReportAdminRoutes(r fiber.Router, db *gorm.DB) {
	ctl := reportCtl.NewReportController(db)

	reports := r.Group("/reports")
	reports.Post("/", ctl.Generate)
	reports.Get("/", ctl.List)
	reports.Get("/:id", ctl.GetByID)
	reports.Delete("/:id", ctl.Delete)
}
