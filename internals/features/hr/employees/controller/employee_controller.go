package controller

import (
	"log"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"gorm.io/gorm"

	"lembagaku_backend/internals/constants"
	"lembagaku_backend/internals/features/hr/employees/dto"
	"lembagaku_backend/internals/features/hr/employees/model"
	"lembagaku_backend/internals/features/hr/employees/service"
	helper "lembagaku_backend/internals/helpers"
)

type EmployeeController struct {
	DB        *gorm.DB
	Service   *service.EmployeeService
	Validator *validator.Validate
}

func NewEmployeeController(db *gorm.DB) *EmployeeController {
	return &EmployeeController{
		DB:        db,
		Service:   service.NewEmployeeService(db),
		Validator: validator.New(),
	}
}

func includeDeletedParam(c *fiber.Ctx) bool {
	return c.Query("include_deleted") == "true" &&
		constants.IsPrivilegedRole(helper.GetRoleFromToken(c))
}

// GET /api/a/employees
func (ctl *EmployeeController) GetEmployees(c *fiber.Ctx) error {
	paging := helper.ResolvePaging(c, 20, 100)

	q := ctl.DB.Model(&model.EmployeeModel{})
	q = helper.WithDeleted(q, "is_deleted", includeDeletedParam(c))
	q = helper.ApplyEnum(q, "role", c.Query("role"))
	q = helper.ApplyEnum(q, "gender", c.Query("gender"))
	q = helper.ApplyEnum(q, "is_active", c.Query("active"))
	q = helper.ApplySearch(q, c.Query("search"), "name", "email", "mobile")
	q = helper.ApplyDateRange(q, "date_of_joining", c.Query("from"), c.Query("to"))

	var total int64
	if err := q.Count(&total).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Gagal mengambil data employee")
	}

	var employees []model.EmployeeModel
	if err := q.Order("created_at DESC").
		Limit(paging.Limit).Offset(paging.Offset).
		Find(&employees).Error; err != nil {
		log.Println("[ERROR] Gagal ambil employees:", err)
		return helper.JsonError(c, fiber.StatusInternalServerError, "Gagal mengambil data employee")
	}

	return helper.JsonList(c, "Employees fetched successfully", dto.FromEmployeeModels(employees),
		helper.BuildPaginationFromPage(total, paging.Page, paging.PerPage))
}

// GET /api/a/employees/:id
func (ctl *EmployeeController) GetEmployee(c *fiber.Ctx) error {
	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "employee id invalid")
	}

	var emp model.EmployeeModel
	q := helper.WithDeleted(ctl.DB, "is_deleted", includeDeletedParam(c))
	if err := q.First(&emp, "id = ?", id).Error; err != nil {
		return helper.JsonError(c, fiber.StatusNotFound, "Employee tidak ditemukan")
	}
	resp := dto.FromEmployeeModel(&emp)
	return helper.JsonOK(c, "Employee fetched successfully", resp)
}

// POST /api/a/employees
func (ctl *EmployeeController) CreateEmployee(c *fiber.Ctx) error {
	var req dto.CreateEmployeeRequest
	if err := c.BodyParser(&req); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Invalid input format")
	}
	if err := ctl.Validator.Struct(&req); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, err.Error())
	}

	emp, err := ctl.Service.CreateWithLogin(req)
	if err != nil {
		return helper.JsonFromError(c, err)
	}
	resp := dto.FromEmployeeModel(emp)
	return helper.JsonCreated(c, "Employee created successfully", resp)
}

// PUT /api/a/employees/:id
func (ctl *EmployeeController) UpdateEmployee(c *fiber.Ctx) error {
	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "employee id invalid")
	}

	var req dto.UpdateEmployeeRequest
	if err := c.BodyParser(&req); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Invalid input format")
	}
	if err := ctl.Validator.Struct(&req); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, err.Error())
	}

	emp, err := ctl.Service.Update(id, req)
	if err != nil {
		return helper.JsonFromError(c, err)
	}
	resp := dto.FromEmployeeModel(emp)
	return helper.JsonUpdated(c, "Employee updated successfully", resp)
}

// DELETE /api/a/employees/:id
func (ctl *EmployeeController) DeleteEmployee(c *fiber.Ctx) error {
	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "employee id invalid")
	}
	if err := ctl.Service.SoftDelete(id); err != nil {
		return helper.JsonFromError(c, err)
	}
	return helper.JsonDeleted(c, "Employee deleted successfully", fiber.Map{"id": id})
}

// POST /api/a/employees/:id/restore
func (ctl *EmployeeController) RestoreEmployee(c *fiber.Ctx) error {
	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "employee id invalid")
	}
	emp, err := ctl.Service.Restore(id)
	if err != nil {
		return helper.JsonFromError(c, err)
	}
	resp := dto.FromEmployeeModel(emp)
	return helper.JsonUpdated(c, "Employee restored successfully", resp)
}
