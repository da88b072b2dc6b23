package route

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	"lembagaku_backend/internals/constants"
	"lembagaku_backend/internals/features/admissions/inquiries/controller"
	gate "lembagaku_backend/internals/features/users/user_rights/service"
	authMiddleware "lembagaku_backend/internals/middlewares/auth"
)

func InquiryAdminRoutes(admin fiber.Router, db *gorm.DB) {
	ctl := controller.NewInquiryController(db)

	group := admin.Group("/inquiries")
	group.Get("/", authMiddleware.RequirePermission(db, constants.PageInquiry, gate.ActionView), ctl.GetInquiries)
	group.Get("/:id", authMiddleware.RequirePermission(db, constants.PageInquiry, gate.ActionView), ctl.GetInquiry)
	group.Post("/", authMiddleware.RequirePermission(db, constants.PageInquiry, gate.ActionAdd), ctl.CreateInquiry)
	group.Put("/:id", authMiddleware.RequirePermission(db, constants.PageInquiry, gate.ActionEdit), ctl.UpdateInquiry)
	group.Post("/:id/photo", authMiddleware.RequirePermission(db, constants.PageInquiry, gate.ActionEdit), ctl.UploadInquiryPhoto)
	group.Delete("/:id", authMiddleware.RequirePermission(db, constants.PageInquiry, gate.ActionDelete), ctl.DeleteInquiry)
	group.Post("/:id/restore", authMiddleware.RequirePermission(db, constants.PageInquiry, gate.ActionEdit), ctl.RestoreInquiry)
}
