package route

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	"lembagaku_backend/internals/constants"
	"lembagaku_backend/internals/features/lembaga/attendance/controller"
	gate "lembagaku_backend/internals/features/users/user_rights/service"
	authMiddleware "lembagaku_backend/internals/middlewares/auth"
)

func AttendanceAdminRoutes(admin fiber.Router, db *gorm.DB) {
	ctl := controller.NewAttendanceController(db)

	group := admin.Group("/attendance")
	group.Get("/", authMiddleware.RequirePermission(db, constants.PageAttendance, gate.ActionView), ctl.GetAttendance)
	group.Post("/", authMiddleware.RequirePermission(db, constants.PageAttendance, gate.ActionAdd), ctl.MarkAttendance)
	group.Put("/:id", authMiddleware.RequirePermission(db, constants.PageAttendance, gate.ActionEdit), ctl.UpdateAttendance)
}
