package route

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	feeReceiptRoute "lembagaku_backend/internals/features/finance/fee_receipts/route"
)

func registerFinanceRoutes(admin fiber.Router, db *gorm.DB) {
	feeReceiptRoute.FeeReceiptAdminRoutes(admin, db)
}
