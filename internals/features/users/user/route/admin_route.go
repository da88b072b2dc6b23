package route

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	"lembagaku_backend/internals/constants"
	"lembagaku_backend/internals/features/users/user/controller"
	gate "lembagaku_backend/internals/features/users/user_rights/service"
	authMiddleware "lembagaku_backend/internals/middlewares/auth"
)

func UserAdminRoutes(admin fiber.Router, db *gorm.DB) {
	ctl := controller.NewUserController(db)

	group := admin.Group("/users")
	group.Get("/", authMiddleware.RequirePermission(db, constants.PageUser, gate.ActionView), ctl.GetUsers)
	group.Get("/:id", authMiddleware.RequirePermission(db, constants.PageUser, gate.ActionView), ctl.GetUser)
	group.Post("/", authMiddleware.RequirePermission(db, constants.PageUser, gate.ActionAdd), ctl.CreateUser)
	group.Put("/:id", authMiddleware.RequirePermission(db, constants.PageUser, gate.ActionEdit), ctl.UpdateUser)
	group.Delete("/:id", authMiddleware.RequirePermission(db, constants.PageUser, gate.ActionDelete), ctl.DeleteUser)
}
