package controller

import (
	"errors"
	"log"
	"strings"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"gorm.io/gorm"

	"nssportal_backend/internals/features/approval/engine"
	"nssportal_backend/internals/features/departments/dto"
	"nssportal_backend/internals/features/departments/model"
	helper "nssportal_backend/internals/helpers"
)

type DepartmentController struct {
	DB       *gorm.DB
	Validate *validator.Validate
}

func NewDepartmentController(db *gorm.DB) *DepartmentController {
	return &DepartmentController{DB: db, Validate: validator.New()}
}

// ✅ Create department (PC only, role-gated at the route)
func (ctl *DepartmentController) Create(c *fiber.Ctx) error {
	var req dto.CreateDepartmentRequest
	if err := c.BodyParser(&req); err != nil {
		return helper.Error(c, fiber.StatusBadRequest, "Invalid request body")
	}
	req.Normalize()
	if err := ctl.Validate.Struct(req); err != nil {
		return helper.ValidationError(c, err)
	}

	m := req.ToModel()
	if err := ctl.DB.WithContext(c.UserContext()).Create(m).Error; err != nil {
		if engine.IsUniqueViolation(err) {
			return helper.Error(c, fiber.StatusConflict, "Department code already exists")
		}
		log.Printf("[ERROR] department create: %v", err)
		return helper.Error(c, fiber.StatusInternalServerError, "Failed to create department")
	}

	return helper.SuccessWithCode(c, fiber.StatusCreated, "Department created", m)
}

// 📄 List departments (any authenticated role; feeds form dropdowns)
func (ctl *DepartmentController) List(c *fiber.Ctx) error {
	var rows []model.DepartmentModel
	q := ctl.DB.WithContext(c.UserContext()).Order("department_code ASC")
	if code := strings.TrimSpace(c.Query("code")); code != "" {
		q = q.Where("department_code = ?", strings.ToUpper(code))
	}
	if err := q.Find(&rows).Error; err != nil {
		return helper.Error(c, fiber.StatusInternalServerError, "Failed to list departments")
	}
	return helper.Success(c, "Departments", rows)
}

func (ctl *DepartmentController) GetByID(c *fiber.Ctx) error {
	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return helper.Error(c, fiber.StatusBadRequest, "Invalid department ID")
	}

	var m model.DepartmentModel
	if err := ctl.DB.WithContext(c.UserContext()).First(&m, "department_id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return helper.Error(c, fiber.StatusNotFound, "Record not found")
		}
		return helper.Error(c, fiber.StatusInternalServerError, "DB error")
	}
	return helper.Success(c, "Department", m)
}

// ✏️ Update department (PC only)
func (ctl *DepartmentController) Update(c *fiber.Ctx) error {
	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return helper.Error(c, fiber.StatusBadRequest, "Invalid department ID")
	}

	var req dto.UpdateDepartmentRequest
	if err := c.BodyParser(&req); err != nil {
		return helper.Error(c, fiber.StatusBadRequest, "Invalid request body")
	}
	if err := ctl.Validate.Struct(req); err != nil {
		return helper.ValidationError(c, err)
	}
	updates := req.Updates()
	if len(updates) == 0 {
		return helper.Error(c, fiber.StatusBadRequest, "Nothing to update")
	}

	res := ctl.DB.WithContext(c.UserContext()).
		Model(&model.DepartmentModel{}).
		Where("department_id = ?", id).
		Updates(updates)
	if res.Error != nil {
		return helper.Error(c, fiber.StatusInternalServerError, "Failed to update department")
	}
	if res.RowsAffected == 0 {
		return helper.Error(c, fiber.StatusNotFound, "Record not found")
	}
	return helper.Success(c, "Department updated", nil)
}

// 🗑 Delete department (PC only)
func (ctl *DepartmentController) Delete(c *fiber.Ctx) error {
	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return helper.Error(c, fiber.StatusBadRequest, "Invalid department ID")
	}

	res := ctl.DB.WithContext(c.UserContext()).
		Delete(&model.DepartmentModel{}, "department_id = ?", id)
	if res.Error != nil {
		return helper.Error(c, fiber.StatusInternalServerError, "Failed to delete department")
	}
	if res.RowsAffected == 0 {
		return helper.Error(c, fiber.StatusNotFound, "Record not found")
	}
	return helper.Success(c, "Department deleted", nil)
}
