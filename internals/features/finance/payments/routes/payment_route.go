package routes

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	payCtl "campushq_backend/internals/features/finance/payments/controller"
	featureMw "campushq_backend/internals/middlewares/features"
)

func PaymentAdminRoutes(r fiber.Router, db *gorm.DB) {
	txCtl := payCtl.NewTransactionController(db)
	feeCtl := payCtl.NewFeeScheduleController(db)

	txs := r.Group("/transactions")
	txs.Post("/", txCtl.Record)
	txs.Get("/", txCtl.List)
	txs.Patch("/:id/verify", featureMw.IsVerifier(), txCtl.Verify)

	r.Get("/students/:id/fee-schedule", feeCtl.StudentSchedule)
	r.Get("/cohorts/:id/fee-summary", feeCtl.CohortSummary)
}

func PaymentUserRoutes(r fiber.Router, db *gorm.DB) {
	feeCtl := payCtl.NewFeeScheduleController(db)

	r.Get("/me/fee-schedule", feeCtl.MySchedule)
}
