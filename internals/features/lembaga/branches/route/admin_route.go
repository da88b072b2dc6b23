package route

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	"lembagaku_backend/internals/constants"
	"lembagaku_backend/internals/features/lembaga/branches/controller"
	gate "lembagaku_backend/internals/features/users/user_rights/service"
	authMiddleware "lembagaku_backend/internals/middlewares/auth"
)

func BranchAdminRoutes(admin fiber.Router, db *gorm.DB) {
	ctl := controller.NewBranchController(db)

	group := admin.Group("/branches")
	group.Get("/", authMiddleware.RequirePermission(db, constants.PageBranch, gate.ActionView), ctl.GetBranches)
	group.Get("/:id", authMiddleware.RequirePermission(db, constants.PageBranch, gate.ActionView), ctl.GetBranch)
	group.Post("/", authMiddleware.RequirePermission(db, constants.PageBranch, gate.ActionAdd), ctl.CreateBranch)
	group.Put("/:id", authMiddleware.RequirePermission(db, constants.PageBranch, gate.ActionEdit), ctl.UpdateBranch)
}
