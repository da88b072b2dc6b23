package route

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	"lembagaku_backend/internals/constants"
	"lembagaku_backend/internals/features/finance/fee_receipts/controller"
	gate "lembagaku_backend/internals/features/users/user_rights/service"
	authMiddleware "lembagaku_backend/internals/middlewares/auth"
)

func FeeReceiptAdminRoutes(admin fiber.Router, db *gorm.DB) {
	ctl := controller.NewFeeReceiptController(db)

	group := admin.Group("/fee-receipts")
	group.Get("/", authMiddleware.RequirePermission(db, constants.PageFeeReceipt, gate.ActionView), ctl.GetReceipts)
	group.Get("/:id", authMiddleware.RequirePermission(db, constants.PageFeeReceipt, gate.ActionView), ctl.GetReceipt)
	group.Post("/", authMiddleware.RequirePermission(db, constants.PageFeeReceipt, gate.ActionAdd), ctl.CreateReceipt)

	// ledger menempel di path students tapi dimiliki modul finance
	admin.Get("/students/:id/ledger",
		authMiddleware.RequirePermission(db, constants.PageFeeReceipt, gate.ActionView), ctl.GetStudentLedger)
}
