package controller

import (
	"log"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"gorm.io/gorm"

	"nssportal_backend/internals/features/approval/engine"
	"nssportal_backend/internals/features/events/dto"
	"nssportal_backend/internals/features/events/model"
	helper "nssportal_backend/internals/helpers"
	authMiddleware "nssportal_backend/internals/middlewares/auth"
)

type EventController struct {
	DB       *gorm.DB
	Engine   *engine.Engine
	Validate *validator.Validate
}

func NewEventController(db *gorm.DB) *EventController {
	return &EventController{DB: db, Engine: engine.New(db), Validate: validator.New()}
}

// ✅ Create an event (coordinator anywhere, officer inside own department)
func (ctl *EventController) Create(c *fiber.Ctx) error {
	p, err := authMiddleware.PrincipalFromLocals(c)
	if err != nil {
		return err
	}

	var req dto.CreateEventRequest
	if err := c.BodyParser(&req); err != nil {
		return helper.Error(c, fiber.StatusBadRequest, "Invalid request body")
	}
	req.Normalize()
	if err := ctl.Validate.Struct(req); err != nil {
		return helper.ValidationError(c, err)
	}

	m, err := req.ToModel(p.UserID, engine.Now())
	if err != nil {
		return helper.Error(c, fiber.StatusBadRequest, err.Error())
	}

	if err := ctl.Engine.Authorize(c.UserContext(), p, engine.ActionSubmit, m.Target()); err != nil {
		return helper.EngineError(c, err)
	}

	if err := ctl.DB.WithContext(c.UserContext()).Create(m).Error; err != nil {
		log.Printf("[ERROR] event create: %v", err)
		return helper.Error(c, fiber.StatusInternalServerError, "Failed to create event")
	}

	return helper.SuccessWithCode(c, fiber.StatusCreated, "Event created", m)
}

// 📄 List events, visibility-scoped per role
func (ctl *EventController) List(c *fiber.Ctx) error {
	p, err := authMiddleware.PrincipalFromLocals(c)
	if err != nil {
		return err
	}

	scope, err := ctl.Engine.ScopeFor(c.UserContext(), p, engine.KindEvent)
	if err != nil {
		return helper.EngineError(c, err)
	}

	paging := helper.ResolvePaging(c, 20, 100)

	base := ctl.DB.WithContext(c.UserContext()).Model(&model.EventModel{}).Scopes(scope)
	if mode := c.Query("mode"); mode != "" {
		base = base.Where("event_mode = ?", mode)
	}

	var total int64
	if err := base.Count(&total).Error; err != nil {
		return helper.Error(c, fiber.StatusInternalServerError, "Failed to count events")
	}

	var rows []model.EventModel
	if err := base.
		Order("event_date DESC").
		Offset(paging.Offset).
		Limit(paging.Limit).
		Find(&rows).Error; err != nil {
		return helper.Error(c, fiber.StatusInternalServerError, "Failed to list events")
	}

	// the stored status can be stale for events whose date passed since the
	// last write; recompute for serialization
	now := engine.Now()
	for i := range rows {
		rows[i].RefreshStatus(now)
	}

	return helper.Success(c, "Events", fiber.Map{
		"items":      rows,
		"pagination": helper.BuildPaginationFromPage(total, paging.Page, paging.PerPage),
	})
}

func (ctl *EventController) loadVisible(c *fiber.Ctx, p engine.Principal) (*model.EventModel, error) {
	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return nil, helper.Error(c, fiber.StatusBadRequest, "Invalid event ID")
	}

	var m model.EventModel
	if err := ctl.DB.WithContext(c.UserContext()).First(&m, "event_id = ?", id).Error; err != nil {
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

func (ctl *EventController) GetByID(c *fiber.Ctx) error {
	p, err := authMiddleware.PrincipalFromLocals(c)
	if err != nil {
		return err
	}
	m, ferr := ctl.loadVisible(c, p)
	if m == nil {
		return ferr
	}
	m.RefreshStatus(engine.Now())
	return helper.Success(c, "Event", m)
}

// ✏️ Update an event; the derived status is recomputed on every write
func (ctl *EventController) Update(c *fiber.Ctx) error {
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

	var req dto.UpdateEventRequest
	if err := c.BodyParser(&req); err != nil {
		return helper.Error(c, fiber.StatusBadRequest, "Invalid request body")
	}
	if err := ctl.Validate.Struct(req); err != nil {
		return helper.ValidationError(c, err)
	}

	updates, err := req.Updates(m, engine.Now())
	if err != nil {
		return helper.Error(c, fiber.StatusBadRequest, err.Error())
	}

	if err := ctl.DB.WithContext(c.UserContext()).
		Model(m).
		Updates(updates).Error; err != nil {
		return helper.Error(c, fiber.StatusInternalServerError, "Failed to update event")
	}
	return helper.Success(c, "Event updated", m)
}

// 🗑 Delete an event (coordinator, or officer of its department)
func (ctl *EventController) Delete(c *fiber.Ctx) error {
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
		Delete(&model.EventModel{}, "event_id = ?", m.EventID).Error; err != nil {
		return helper.Error(c, fiber.StatusInternalServerError, "Failed to delete event")
	}
	return helper.Success(c, "Event deleted", nil)
}
