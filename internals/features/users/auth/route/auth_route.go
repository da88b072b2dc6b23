package route

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	"lembagaku_backend/internals/features/users/auth/controller"
	"lembagaku_backend/internals/middlewares"
	authMiddleware "lembagaku_backend/internals/middlewares/auth"
)

func AuthRoutes(app *fiber.App, db *gorm.DB) {
	ctl := controller.NewAuthController(db)

	auth := app.Group("/api/auth")

	// public
	auth.Post("/login", middlewares.LoginRateLimiter(), ctl.Login)
	auth.Post("/login-google", middlewares.LoginRateLimiter(), ctl.LoginGoogle)
	auth.Post("/refresh-token", ctl.RefreshToken)
	auth.Post("/reset-password", middlewares.ForgotPasswordRateLimiter(), ctl.ResetPassword)

	// butuh token valid
	protected := auth.Group("", authMiddleware.AuthMiddleware(db))
	protected.Get("/me", ctl.Me)
	protected.Post("/logout", ctl.Logout)
	protected.Post("/change-password", ctl.ChangePassword)
}
