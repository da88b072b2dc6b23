package route

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	inquiryRoute "lembagaku_backend/internals/features/admissions/inquiries/route"
	visitorRoute "lembagaku_backend/internals/features/admissions/visitors/route"
)

func registerAdmissionRoutes(admin fiber.Router, db *gorm.DB) {
	inquiryRoute.InquiryAdminRoutes(admin, db)
	visitorRoute.VisitorAdminRoutes(admin, db)
}
