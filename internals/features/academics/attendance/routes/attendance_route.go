package routes

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	attCtl "campushq_backend/internals/features/academics/attendance/controller"
)

func AttendanceAdminRoutes(r fiber.Router, db *gorm.DB) {
	ctl := attCtl.NewAttendanceController(db)

	att := r.Group("/attendance")
	att.Post("/sessions", ctl.CreateSession)
	att.Get("/sessions", ctl.ListSessions)
	att.Delete("/sessions/:id", ctl.DeleteSession)

	att.Post("/sessions/:id/records", ctl.MarkRecords)
	att.Get("/sessions/:id/records", ctl.ListRecords)

	att.Get("/summary", ctl.Summary)
}
