package route

import (
	"log"

	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	"campushq_backend/internals/configs"
	authMw "campushq_backend/internals/middlewares/auth"
	featureMw "campushq_backend/internals/middlewares/features"

	attendanceRoutes "campushq_backend/internals/features/academics/attendance/routes"
	cohortRoutes "campushq_backend/internals/features/academics/cohorts/routes"
	epicRoutes "campushq_backend/internals/features/academics/epics/routes"
	applicationRoutes "campushq_backend/internals/features/admissions/applications/routes"
	feeStructureRoutes "campushq_backend/internals/features/finance/feestructures/routes"
	paymentRoutes "campushq_backend/internals/features/finance/payments/routes"
	reportRoutes "campushq_backend/internals/features/reporting/reports/routes"
	authRoutes "campushq_backend/internals/features/users/auth/routes"
	studentRoutes "campushq_backend/internals/features/users/students/routes"
)

// SetupRoutes mounts every route group:
//
//	/api/auth  public auth endpoints
//	/api/a     institute staff (admin/finance), institute scoped
//	/api/u     any authenticated user (students included)
func SetupRoutes(app *fiber.App, db *gorm.DB) {
	BaseRoutes(app)
	authRoutes.AuthRoutes(app, db)

	jwt := authMw.AuthJWT(authMw.AuthJWTOpts{
		Secret:              configs.JWTSecret,
		AllowCookieFallback: true,
	})

	log.Println("[INFO] Setting up ADMIN group (/api/a)...")
	admin := app.Group("/api/a",
		jwt,
		featureMw.UseInstituteScope(),
		featureMw.IsInstituteAdmin(),
	)

	log.Println("[INFO] Setting up USER group (/api/u)...")
	user := app.Group("/api/u",
		jwt,
		featureMw.UseInstituteScope(),
	)

	log.Println("[INFO] Mounting academics routes...")
	cohortRoutes.CohortAdminRoutes(admin, db)
	epicRoutes.EpicAdminRoutes(admin, db)
	attendanceRoutes.AttendanceAdminRoutes(admin, db)

	log.Println("[INFO] Mounting admissions routes...")
	applicationRoutes.ApplicationAdminRoutes(admin, db)

	log.Println("[INFO] Mounting student routes...")
	studentRoutes.StudentAdminRoutes(admin, db)

	log.Println("[INFO] Mounting finance routes...")
	feeStructureRoutes.FeeStructureAdminRoutes(admin, db)
	paymentRoutes.PaymentAdminRoutes(admin, db)
	paymentRoutes.PaymentUserRoutes(user, db)

	log.Println("[INFO] Mounting report routes...")
	reportRoutes.ReportAdminRoutes(admin, db)
}
