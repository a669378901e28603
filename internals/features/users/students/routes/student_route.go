package routes

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	studentCtl "campushq_backend/internals/features/users/students/controller"
)

func StudentAdminRoutes(r fiber.Router, db *gorm.DB) {
	ctl := studentCtl.NewStudentController(db)

	students := r.Group("/students")
	students.Post("/", ctl.Create)
	students.Get("/", ctl.List)
	students.Get("/:id", ctl.GetByID)
	students.Patch("/:id", ctl.Update)
	students.Patch("/:id/payment-plan", ctl.SelectPaymentPlan)
	students.Delete("/:id", ctl.Delete)
}
