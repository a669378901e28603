package routes

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	authCtl "campushq_backend/internals/features/users/auth/controller"
	"campushq_backend/internals/middlewares"
	authMw "campushq_backend/internals/middlewares/auth"

	"campushq_backend/internals/configs"
)

// AuthRoutes: /api/auth/login is public (rate limited); /api/auth/me requires
// a valid token.
func AuthRoutes(app *fiber.App, db *gorm.DB) {
	ctl := authCtl.NewAuthController(db)

	auth := app.Group("/api/auth")
	auth.Post("/login", middlewares.LoginRateLimiter(), ctl.Login)

	auth.Get("/me",
		authMw.AuthJWT(authMw.AuthJWTOpts{Secret: configs.JWTSecret, AllowCookieFallback: true}),
		ctl.Me,
	)
}
