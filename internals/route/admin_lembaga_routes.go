package route

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	employeeRoute "lembagaku_backend/internals/features/hr/employees/route"
	attendanceRoute "lembagaku_backend/internals/features/lembaga/attendance/route"
	batchRoute "lembagaku_backend/internals/features/lembaga/batches/route"
	branchRoute "lembagaku_backend/internals/features/lembaga/branches/route"
	courseRoute "lembagaku_backend/internals/features/lembaga/courses/route"
	studentRoute "lembagaku_backend/internals/features/lembaga/students/route"
)

func registerLembagaRoutes(admin fiber.Router, db *gorm.DB) {
	branchRoute.BranchAdminRoutes(admin, db)
	courseRoute.CourseAdminRoutes(admin, db)
	batchRoute.BatchAdminRoutes(admin, db)
	studentRoute.StudentAdminRoutes(admin, db)
	attendanceRoute.AttendanceAdminRoutes(admin, db)
	employeeRoute.EmployeeAdminRoutes(admin, db)
}
