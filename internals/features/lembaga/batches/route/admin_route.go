package route

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	"lembagaku_backend/internals/constants"
	"lembagaku_backend/internals/features/lembaga/batches/controller"
	gate "lembagaku_backend/internals/features/users/user_rights/service"
	authMiddleware "lembagaku_backend/internals/middlewares/auth"
)

func BatchAdminRoutes(admin fiber.Router, db *gorm.DB) {
	ctl := controller.NewBatchController(db)

	group := admin.Group("/batches")
	group.Get("/", authMiddleware.RequirePermission(db, constants.PageBatch, gate.ActionView), ctl.GetBatches)
	group.Post("/", authMiddleware.RequirePermission(db, constants.PageBatch, gate.ActionAdd), ctl.CreateBatch)
	group.Put("/:id", authMiddleware.RequirePermission(db, constants.PageBatch, gate.ActionEdit), ctl.UpdateBatch)
	group.Delete("/:id", authMiddleware.RequirePermission(db, constants.PageBatch, gate.ActionDelete), ctl.DeleteBatch)
	group.Post("/:id/restore", authMiddleware.RequirePermission(db, constants.PageBatch, gate.ActionEdit), ctl.RestoreBatch)
}
