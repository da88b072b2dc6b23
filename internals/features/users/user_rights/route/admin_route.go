package route

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	"lembagaku_backend/internals/constants"
	"lembagaku_backend/internals/features/users/user_rights/controller"
	authMiddleware "lembagaku_backend/internals/middlewares/auth"
)

// Matrix permission hanya boleh diatur superadmin.
func UserRightAdminRoutes(admin fiber.Router, db *gorm.DB) {
	ctl := controller.NewUserRightController(db)

	group := admin.Group("/user-rights",
		authMiddleware.OnlyRoles(constants.RoleErrorSuperAdmin("user rights"), constants.SuperAdminOnly...),
	)
	group.Get("/:userId", ctl.GetByUser)
	group.Post("/", ctl.Upsert)
}
