package route

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	userRoute "lembagaku_backend/internals/features/users/user/route"
	userRightRoute "lembagaku_backend/internals/features/users/user_rights/route"
)

func registerUserRoutes(admin fiber.Router, db *gorm.DB) {
	userRoute.UserAdminRoutes(admin, db)
	userRightRoute.UserRightAdminRoutes(admin, db)
}
