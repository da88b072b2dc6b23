package route

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	"lembagaku_backend/internals/constants"
	"lembagaku_backend/internals/features/lembaga/students/controller"
	gate "lembagaku_backend/internals/features/users/user_rights/service"
	authMiddleware "lembagaku_backend/internals/middlewares/auth"
)

func StudentAdminRoutes(admin fiber.Router, db *gorm.DB) {
	ctl := controller.NewStudentController(db)

	group := admin.Group("/students")
	group.Get("/", authMiddleware.RequirePermission(db, constants.PageStudent, gate.ActionView), ctl.GetStudents)
	group.Get("/:id", authMiddleware.RequirePermission(db, constants.PageStudent, gate.ActionView), ctl.GetStudent)
	group.Post("/", authMiddleware.RequirePermission(db, constants.PageStudent, gate.ActionAdd), ctl.CreateStudent)
	group.Put("/:id", authMiddleware.RequirePermission(db, constants.PageStudent, gate.ActionEdit), ctl.UpdateStudent)
	group.Delete("/:id", authMiddleware.RequirePermission(db, constants.PageStudent, gate.ActionDelete), ctl.DeleteStudent)
	group.Post("/:id/restore", authMiddleware.RequirePermission(db, constants.PageStudent, gate.ActionEdit), ctl.RestoreStudent)
}
