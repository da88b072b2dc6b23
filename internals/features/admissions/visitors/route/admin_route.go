package route

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	"lembagaku_backend/internals/constants"
	"lembagaku_backend/internals/features/admissions/visitors/controller"
	gate "lembagaku_backend/internals/features/users/user_rights/service"
	authMiddleware "lembagaku_backend/internals/middlewares/auth"
)

func VisitorAdminRoutes(admin fiber.Router, db *gorm.DB) {
	ctl := controller.NewVisitorController(db)

	group := admin.Group("/visitors")
	group.Get("/", authMiddleware.RequirePermission(db, constants.PageVisitor, gate.ActionView), ctl.GetVisitors)
	group.Get("/:id", authMiddleware.RequirePermission(db, constants.PageVisitor, gate.ActionView), ctl.GetVisitor)
	group.Post("/", authMiddleware.RequirePermission(db, constants.PageVisitor, gate.ActionAdd), ctl.CreateVisitor)
	group.Put("/:id", authMiddleware.RequirePermission(db, constants.PageVisitor, gate.ActionEdit), ctl.UpdateVisitor)
	group.Delete("/:id", authMiddleware.RequirePermission(db, constants.PageVisitor, gate.ActionDelete), ctl.DeleteVisitor)
	group.Post("/:id/restore", authMiddleware.RequirePermission(db, constants.PageVisitor, gate.ActionEdit), ctl.RestoreVisitor)
}
