package route

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	"lembagaku_backend/internals/constants"
	"lembagaku_backend/internals/features/hr/employees/controller"
	gate "lembagaku_backend/internals/features/users/user_rights/service"
	authMiddleware "lembagaku_backend/internals/middlewares/auth"
)

func EmployeeAdminRoutes(admin fiber.Router, db *gorm.DB) {
	ctl := controller.NewEmployeeController(db)

	group := admin.Group("/employees")
	group.Get("/", authMiddleware.RequirePermission(db, constants.PageEmployee, gate.ActionView), ctl.GetEmployees)
	group.Get("/:id", authMiddleware.RequirePermission(db, constants.PageEmployee, gate.ActionView), ctl.GetEmployee)
	group.Post("/", authMiddleware.RequirePermission(db, constants.PageEmployee, gate.ActionAdd), ctl.CreateEmployee)
	group.Put("/:id", authMiddleware.RequirePermission(db, constants.PageEmployee, gate.ActionEdit), ctl.UpdateEmployee)
	group.Delete("/:id", authMiddleware.RequirePermission(db, constants.PageEmployee, gate.ActionDelete), ctl.DeleteEmployee)
	group.Post("/:id/restore", authMiddleware.RequirePermission(db, constants.PageEmployee, gate.ActionEdit), ctl.RestoreEmployee)
}
