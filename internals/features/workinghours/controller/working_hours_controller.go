package controller

import (
	"log"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"gorm.io/gorm"

	"nssportal_backend/internals/features/approval/engine"
	notify "nssportal_backend/internals/features/notifications/service"
	"nssportal_backend/internals/features/workinghours/dto"
	"nssportal_backend/internals/features/workinghours/model"
	helper "nssportal_backend/internals/helpers"
	authMiddleware "nssportal_backend/internals/middlewares/auth"
)

type WorkingHoursController struct {
	DB       *gorm.DB
	Engine   *engine.Engine
	Validate *validator.Validate
}

func NewWorkingHoursController(db *gorm.DB) *WorkingHoursController {
	return &WorkingHoursController{DB: db, Engine: engine.New(db), Validate: validator.New()}
}

// ✅ Submit a working-hours entry (SC role-gated at the route)
func (ctl *WorkingHoursController) Create(c *fiber.Ctx) error {
	p, err := authMiddleware.PrincipalFromLocals(c)
	if err != nil {
		return err
	}
	if p.DepartmentID == nil {
		return helper.EngineError(c, engine.ErrDepartmentUnresolved)
	}

	var req dto.CreateWorkingHoursRequest
	if err := c.BodyParser(&req); err != nil {
		return helper.Error(c, fiber.StatusBadRequest, "Invalid request body")
	}
	req.Normalize()
	if err := ctl.Validate.Struct(req); err != nil {
		return helper.ValidationError(c, err)
	}

	m, err := req.ToModel(p.UserID, *p.DepartmentID)
	if err != nil {
		return helper.Error(c, fiber.StatusBadRequest, err.Error())
	}

	if err := ctl.Engine.Authorize(c.UserContext(), p, engine.ActionSubmit, m.Target()); err != nil {
		return helper.EngineError(c, err)
	}

	if err := ctl.DB.WithContext(c.UserContext()).Create(m).Error; err != nil {
		log.Printf("[ERROR] working hours create: %v", err)
		return helper.Error(c, fiber.StatusInternalServerError, "Failed to save entry")
	}

	return helper.SuccessWithCode(c, fiber.StatusCreated, "Entry submitted", m)
}

// 📄 List entries, visibility-scoped (PC all, PO own department, SC own rows)
func (ctl *WorkingHoursController) List(c *fiber.Ctx) error {
	p, err := authMiddleware.PrincipalFromLocals(c)
	if err != nil {
		return err
	}

	scope, err := ctl.Engine.ScopeFor(c.UserContext(), p, engine.KindWorkingHours)
	if err != nil {
		return helper.EngineError(c, err)
	}

	paging := helper.ResolvePaging(c, 20, 100)

	base := ctl.DB.WithContext(c.UserContext()).Model(&model.WorkingHoursEntryModel{}).Scopes(scope)
	if status := c.Query("status"); status != "" {
		if _, ok := engine.ParseStatus(status); !ok {
			return helper.Error(c, fiber.StatusBadRequest, "Unknown status filter")
		}
		base = base.Where("entry_status = ?", status)
	}

	var total int64
	if err := base.Count(&total).Error; err != nil {
		return helper.Error(c, fiber.StatusInternalServerError, "Failed to count entries")
	}

	var rows []model.WorkingHoursEntryModel
	if err := base.
		Order("entry_date DESC, entry_created_at DESC").
		Offset(paging.Offset).
		Limit(paging.Limit).
		Find(&rows).Error; err != nil {
		return helper.Error(c, fiber.StatusInternalServerError, "Failed to list entries")
	}

	return helper.Success(c, "Working hours", fiber.Map{
		"items":      rows,
		"pagination": helper.BuildPaginationFromPage(total, paging.Page, paging.PerPage),
	})
}

func (ctl *WorkingHoursController) loadVisible(c *fiber.Ctx, p engine.Principal) (*model.WorkingHoursEntryModel, error) {
	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return nil, helper.Error(c, fiber.StatusBadRequest, "Invalid entry ID")
	}

	var m model.WorkingHoursEntryModel
	if err := ctl.DB.WithContext(c.UserContext()).First(&m, "entry_id = ?", id).Error; err != nil {
		return nil, helper.EngineError(c, engine.LoadErr(err))
	}

	visible, err := engine.CanSee(p, m.Target(), uuid.Nil)
	if err != nil {
		return nil, helper.EngineError(c, err)
	}
	if !visible {
		return nil, helper.EngineError(c, engine.ErrForbidden)
	}
	return &m, nil
}

func (ctl *WorkingHoursController) GetByID(c *fiber.Ctx) error {
	p, err := authMiddleware.PrincipalFromLocals(c)
	if err != nil {
		return err
	}
	m, ferr := ctl.loadVisible(c, p)
	if m == nil {
		return ferr
	}
	return helper.Success(c, "Entry", m)
}

// ✏️ Edit while pending (owner only); hours are recomputed, status stays pending
func (ctl *WorkingHoursController) Update(c *fiber.Ctx) error {
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

	var req dto.UpdateWorkingHoursRequest
	if err := c.BodyParser(&req); err != nil {
		return helper.Error(c, fiber.StatusBadRequest, "Invalid request body")
	}
	if err := ctl.Validate.Struct(req); err != nil {
		return helper.ValidationError(c, err)
	}

	updates, err := req.Updates(m)
	if err != nil {
		return helper.Error(c, fiber.StatusBadRequest, err.Error())
	}
	if len(updates) == 0 {
		return helper.Error(c, fiber.StatusBadRequest, "Nothing to update")
	}

	// conditional write: the pending precondition is re-checked in SQL so a
	// concurrent approval cannot be overwritten
	if err := ctl.Engine.ConditionalStatusUpdate(
		c.UserContext(),
		&model.WorkingHoursEntryModel{},
		"entry_id", "entry_status",
		m.EntryID,
		engine.ActionEdit, engine.KindWorkingHours,
		updates,
	); err != nil {
		return helper.EngineError(c, err)
	}

	var out model.WorkingHoursEntryModel
	if err := ctl.DB.WithContext(c.UserContext()).First(&out, "entry_id = ?", m.EntryID).Error; err != nil {
		return helper.EngineError(c, engine.LoadErr(err))
	}
	return helper.Success(c, "Entry updated", out)
}

// ✅/❌ Approve or reject (PO of the same department)
func (ctl *WorkingHoursController) SetStatus(c *fiber.Ctx) error {
	p, err := authMiddleware.PrincipalFromLocals(c)
	if err != nil {
		return err
	}
	m, ferr := ctl.loadVisible(c, p)
	if m == nil {
		return ferr
	}

	var req dto.SetStatusRequest
	if err := c.BodyParser(&req); err != nil {
		return helper.Error(c, fiber.StatusBadRequest, "Invalid request body")
	}
	if err := ctl.Validate.Struct(req); err != nil {
		return helper.ValidationError(c, err)
	}

	to, _ := engine.ParseStatus(req.Status)
	action, ok := engine.ActionForStatus(to)
	if !ok {
		return helper.Error(c, fiber.StatusBadRequest, "Unknown target status")
	}

	if err := ctl.Engine.Authorize(c.UserContext(), p, action, m.Target()); err != nil {
		return helper.EngineError(c, err)
	}

	if err := ctl.Engine.ConditionalStatusUpdate(
		c.UserContext(),
		&model.WorkingHoursEntryModel{},
		"entry_id", "entry_status",
		m.EntryID,
		action, engine.KindWorkingHours,
		map[string]any{"entry_status": string(to)},
	); err != nil {
		return helper.EngineError(c, err)
	}

	m.EntryStatus = string(to)
	notify.NotifyAsync(ctl.DB, m.EntryOwnerID, "Working hours "+string(to), fiber.Map{
		"entry_id":            m.EntryID,
		"entry_activity_name": m.EntryActivityName,
		"entry_status":        string(to),
	})

	return helper.Success(c, "Status updated", m)
}

// 🗑 Delete (owner; blocked once approved)
func (ctl *WorkingHoursController) Delete(c *fiber.Ctx) error {
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

	if err := ctl.Engine.ConditionalDelete(
		c.UserContext(),
		&model.WorkingHoursEntryModel{},
		"entry_id", "entry_status",
		m.EntryID,
		engine.KindWorkingHours,
	); err != nil {
		return helper.EngineError(c, err)
	}
	return helper.Success(c, "Entry deleted", nil)
}
