package route

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	"lembagaku_backend/internals/constants"
	"lembagaku_backend/internals/features/lembaga/courses/controller"
	gate "lembagaku_backend/internals/features/users/user_rights/service"
	authMiddleware "lembagaku_backend/internals/middlewares/auth"
)

func CourseAdminRoutes(admin fiber.Router, db *gorm.DB) {
	ctl := controller.NewCourseController(db)

	group := admin.Group("/courses")
	group.Get("/", authMiddleware.RequirePermission(db, constants.PageCourse, gate.ActionView), ctl.GetCourses)
	group.Get("/:id", authMiddleware.RequirePermission(db, constants.PageCourse, gate.ActionView), ctl.GetCourse)
	group.Post("/", authMiddleware.RequirePermission(db, constants.PageCourse, gate.ActionAdd), ctl.CreateCourse)
	group.Put("/:id", authMiddleware.RequirePermission(db, constants.PageCourse, gate.ActionEdit), ctl.UpdateCourse)
	group.Delete("/:id", authMiddleware.RequirePermission(db, constants.PageCourse, gate.ActionDelete), ctl.DeleteCourse)
	group.Post("/:id/restore", authMiddleware.RequirePermission(db, constants.PageCourse, gate.ActionEdit), ctl.RestoreCourse)
}
