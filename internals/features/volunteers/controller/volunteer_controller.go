package controller

import (
	"log"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"gorm.io/gorm"

	"nssportal_backend/internals/features/approval/engine"
	"nssportal_backend/internals/features/volunteers/dto"
	"nssportal_backend/internals/features/volunteers/model"
	helper "nssportal_backend/internals/helpers"
	authMiddleware "nssportal_backend/internals/middlewares/auth"
)

type VolunteerController struct {
	DB       *gorm.DB
	Engine   *engine.Engine
	Validate *validator.Validate
}

func NewVolunteerController(db *gorm.DB) *VolunteerController {
	return &VolunteerController{DB: db, Engine: engine.New(db), Validate: validator.New()}
}

// ✅ Create volunteer (any authenticated role; recorded against the creator)
func (ctl *VolunteerController) Create(c *fiber.Ctx) error {
	p, err := authMiddleware.PrincipalFromLocals(c)
	if err != nil {
		return err
	}

	var req dto.CreateVolunteerRequest
	if err := c.BodyParser(&req); err != nil {
		return helper.Error(c, fiber.StatusBadRequest, "Invalid request body")
	}
	req.Normalize()
	if err := ctl.Validate.Struct(req); err != nil {
		return helper.ValidationError(c, err)
	}

	m, err := req.ToModel(p.UserID)
	if err != nil {
		return helper.Error(c, fiber.StatusBadRequest, "Invalid department ID or join date")
	}

	if err := ctl.DB.WithContext(c.UserContext()).Create(m).Error; err != nil {
		if engine.IsUniqueViolation(err) {
			return helper.Error(c, fiber.StatusConflict, "A volunteer with this student ID already exists")
		}
		log.Printf("[ERROR] volunteer create: %v", err)
		return helper.Error(c, fiber.StatusInternalServerError, "Failed to create volunteer")
	}

	return helper.SuccessWithCode(c, fiber.StatusCreated, "Volunteer added", m)
}

// 📄 List volunteers, visibility-scoped per role
func (ctl *VolunteerController) List(c *fiber.Ctx) error {
	p, err := authMiddleware.PrincipalFromLocals(c)
	if err != nil {
		return err
	}

	scope, err := ctl.Engine.ScopeFor(c.UserContext(), p, engine.KindVolunteer)
	if err != nil {
		return helper.EngineError(c, err)
	}

	paging := helper.ResolvePaging(c, 20, 100)

	var total int64
	base := ctl.DB.WithContext(c.UserContext()).Model(&model.VolunteerModel{}).Scopes(scope)
	if err := base.Count(&total).Error; err != nil {
		return helper.Error(c, fiber.StatusInternalServerError, "Failed to count volunteers")
	}

	var rows []model.VolunteerModel
	if err := base.
		Order("volunteer_name ASC").
		Offset(paging.Offset).
		Limit(paging.Limit).
		Find(&rows).Error; err != nil {
		return helper.Error(c, fiber.StatusInternalServerError, "Failed to list volunteers")
	}

	return helper.Success(c, "Volunteers", fiber.Map{
		"items":      rows,
		"pagination": helper.BuildPaginationFromPage(total, paging.Page, paging.PerPage),
	})
}

// loadVisible loads one row and collapses invisible and missing to the same 404.
func (ctl *VolunteerController) loadVisible(c *fiber.Ctx, p engine.Principal) (*model.VolunteerModel, error) {
	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return nil, helper.Error(c, fiber.StatusBadRequest, "Invalid volunteer ID")
	}

	var m model.VolunteerModel
	if err := ctl.DB.WithContext(c.UserContext()).First(&m, "volunteer_id = ?", id).Error; err != nil {
		return nil, helper.EngineError(c, engine.LoadErr(err))
	}

	browse := ctl.Engine.BrowseDepartmentID(c.UserContext())
	visible, err := engine.CanSee(p, m.Target(), browse)
	if err != nil {
		return nil, helper.EngineError(c, err)
	}
	if !visible {
		return nil, helper.EngineError(c, engine.ErrForbidden)
	}
	return &m, nil
}

func (ctl *VolunteerController) GetByID(c *fiber.Ctx) error {
	p, err := authMiddleware.PrincipalFromLocals(c)
	if err != nil {
		return err
	}
	m, ferr := ctl.loadVisible(c, p)
	if m == nil {
		return ferr
	}
	return helper.Success(c, "Volunteer", m)
}

// ✏️ Update volunteer (creator or higher role)
func (ctl *VolunteerController) Update(c *fiber.Ctx) error {
	p, err := authMiddleware.PrincipalFromLocals(c)
	if err != nil {
		return err
	}
	m, ferr := ctl.loadVisible(c, p)
	if m == nil {
		return ferr
	}

	if err := ctl.Engine.Authorize(c.UserContext(), p, engine.ActionEdit, m.Target()); err != nil {
		return helper.EngineError(c, err)
	}

	var req dto.UpdateVolunteerRequest
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

	if err := ctl.DB.WithContext(c.UserContext()).
		Model(m).
		Updates(updates).Error; err != nil {
		return helper.Error(c, fiber.StatusInternalServerError, "Failed to update volunteer")
	}
	return helper.Success(c, "Volunteer updated", m)
}

// 🖼 Upload volunteer photo; stored as webp
func (ctl *VolunteerController) UploadPhoto(c *fiber.Ctx) error {
	p, err := authMiddleware.PrincipalFromLocals(c)
	if err != nil {
		return err
	}
	m, ferr := ctl.loadVisible(c, p)
	if m == nil {
		return ferr
	}

	if err := ctl.Engine.Authorize(c.UserContext(), p, engine.ActionEdit, m.Target()); err != nil {
		return helper.EngineError(c, err)
	}

	fileHeader, err := c.FormFile("photo")
	if err != nil {
		return helper.Error(c, fiber.StatusBadRequest, "Missing photo file")
	}

	path, err := helper.SavePhotoAsWebP("volunteers", fileHeader)
	if err != nil {
		log.Printf("[ERROR] volunteer photo: %v", err)
		return helper.Error(c, fiber.StatusBadRequest, "Could not process photo")
	}

	if err := ctl.DB.WithContext(c.UserContext()).
		Model(m).
		Update("volunteer_photo_url", path).Error; err != nil {
		return helper.Error(c, fiber.StatusInternalServerError, "Failed to save photo path")
	}
	return helper.Success(c, "Photo uploaded", fiber.Map{"volunteer_photo_url": path})
}

// 🗑 Delete volunteer (creator or higher role)
func (ctl *VolunteerController) Delete(c *fiber.Ctx) error {
	p, err := authMiddleware.PrincipalFromLocals(c)
	if err != nil {
		return err
	}
	m, ferr := ctl.loadVisible(c, p)
	if m == nil {
		return ferr
	}

	if err := ctl.Engine.Authorize(c.UserContext(), p, engine.ActionDelete, m.Target()); err != nil {
		return helper.EngineError(c, err)
	}

	if err := ctl.DB.WithContext(c.UserContext()).
		Delete(&model.VolunteerModel{}, "volunteer_id = ?", m.VolunteerID).Error; err != nil {
		return helper.Error(c, fiber.StatusInternalServerError, "Failed to delete volunteer")
	}
	return helper.Success(c, "Volunteer deleted", nil)
}
