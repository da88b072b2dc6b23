package route

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	authRoute "lembagaku_backend/internals/features/users/auth/route"
	authMiddleware "lembagaku_backend/internals/middlewares/auth"
)

// SetupRoutes mendaftarkan seluruh route aplikasi.
// Urutannya: auth (sebagian publik) dulu, lalu grup admin /api/a yang
// seluruhnya di belakang JWT — permission per page dipasang di masing-masing
// route detail.
func SetupRoutes(app *fiber.App, db *gorm.DB) {
	authRoute.AuthRoutes(app, db)

	admin := app.Group("/api/a", authMiddleware.AuthMiddleware(db))

	registerUserRoutes(admin, db)
	registerLembagaRoutes(admin, db)
	registerAdmissionRoutes(admin, db)
	registerFinanceRoutes(admin, db)
}
