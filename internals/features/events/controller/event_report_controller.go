package controller

import (
	"log"
	"strings"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"gorm.io/gorm"

	"nssportal_backend/internals/constants"
	"nssportal_backend/internals/features/approval/engine"
	"nssportal_backend/internals/features/events/dto"
	evModel "nssportal_backend/internals/features/events/model"
	notify "nssportal_backend/internals/features/notifications/service"
	helper "nssportal_backend/internals/helpers"
	authMiddleware "nssportal_backend/internals/middlewares/auth"
)

type EventReportController struct {
	DB       *gorm.DB
	Engine   *engine.Engine
	Validate *validator.Validate
}

func NewEventReportController(db *gorm.DB) *EventReportController {
	return &EventReportController{DB: db, Engine: engine.New(db), Validate: validator.New()}
}

// ✅ Submit a report document for an event (student coordinator)
//
// No existence pre-check: the unique index on (event, submitter) is the
// duplicate guard, so a racing double-submit still yields exactly one row.
func (ctl *EventReportController) Submit(c *fiber.Ctx) error {
	p, err := authMiddleware.PrincipalFromLocals(c)
	if err != nil {
		return err
	}

	eventID, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return helper.Error(c, fiber.StatusBadRequest, "Invalid event ID")
	}

	var event evModel.EventModel
	if err := ctl.DB.WithContext(c.UserContext()).First(&event, "event_id = ?", eventID).Error; err != nil {
		return helper.EngineError(c, engine.LoadErr(err))
	}

	// the event itself must be visible to the submitter
	browse := ctl.Engine.BrowseDepartmentID(c.UserContext())
	visible, err := engine.CanSee(p, event.Target(), browse)
	if err != nil {
		return helper.EngineError(c, err)
	}
	if !visible {
		return helper.EngineError(c, engine.ErrForbidden)
	}

	m := &evModel.EventReportModel{
		ReportEventID:      event.EventID,
		ReportSubmittedBy:  p.UserID,
		ReportDepartmentID: event.EventDepartmentID,
		ReportStatus:       string(engine.StatusPending),
		ReportComments:     strings.TrimSpace(c.FormValue("comments")),
	}

	if err := ctl.Engine.Authorize(c.UserContext(), p, engine.ActionSubmit, m.Target()); err != nil {
		return helper.EngineError(c, err)
	}

	fileHeader, err := c.FormFile("file")
	if err != nil {
		return helper.Error(c, fiber.StatusBadRequest, "Missing report file")
	}
	path, err := helper.SaveUploadedFile("reports", fileHeader)
	if err != nil {
		log.Printf("[ERROR] report file save: %v", err)
		return helper.Error(c, fiber.StatusBadRequest, "Could not store report file")
	}
	m.ReportFileURL = path

	if err := ctl.DB.WithContext(c.UserContext()).Create(m).Error; err != nil {
		if engine.IsUniqueViolation(err) {
			return helper.EngineError(c,
				engine.Denied(engine.ActionSubmit, engine.KindEventReport, engine.ReasonDuplicateSubmission))
		}
		log.Printf("[ERROR] report create: %v", err)
		return helper.Error(c, fiber.StatusInternalServerError, "Failed to save report")
	}

	ctl.notifyDepartmentOfficers(event.EventDepartmentID, "New event report submitted", fiber.Map{
		"report_id":  m.ReportID,
		"event_id":   event.EventID,
		"event_name": event.EventName,
	})

	return helper.SuccessWithCode(c, fiber.StatusCreated, "Report submitted", m)
}

// 📄 List reports, visibility-scoped per role
func (ctl *EventReportController) List(c *fiber.Ctx) error {
	p, err := authMiddleware.PrincipalFromLocals(c)
	if err != nil {
		return err
	}

	scope, err := ctl.Engine.ScopeFor(c.UserContext(), p, engine.KindEventReport)
	if err != nil {
		return helper.EngineError(c, err)
	}

	paging := helper.ResolvePaging(c, 20, 100)

	base := ctl.DB.WithContext(c.UserContext()).Model(&evModel.EventReportModel{}).Scopes(scope)
	if status := c.Query("status"); status != "" {
		if _, ok := engine.ParseStatus(status); !ok {
			return helper.Error(c, fiber.StatusBadRequest, "Unknown status filter")
		}
		base = base.Where("report_status = ?", status)
	}
	if ev := c.Query("event_id"); ev != "" {
		id, err := uuid.Parse(ev)
		if err != nil {
			return helper.Error(c, fiber.StatusBadRequest, "Invalid event ID filter")
		}
		base = base.Where("report_event_id = ?", id)
	}

	var total int64
	if err := base.Count(&total).Error; err != nil {
		return helper.Error(c, fiber.StatusInternalServerError, "Failed to count reports")
	}

	var rows []evModel.EventReportModel
	if err := base.
		Order("report_created_at DESC").
		Offset(paging.Offset).
		Limit(paging.Limit).
		Find(&rows).Error; err != nil {
		return helper.Error(c, fiber.StatusInternalServerError, "Failed to list reports")
	}

	return helper.Success(c, "Event reports", fiber.Map{
		"items":      rows,
		"pagination": helper.BuildPaginationFromPage(total, paging.Page, paging.PerPage),
	})
}

func (ctl *EventReportController) loadVisible(c *fiber.Ctx, p engine.Principal) (*evModel.EventReportModel, error) {
	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return nil, helper.Error(c, fiber.StatusBadRequest, "Invalid report ID")
	}

	var m evModel.EventReportModel
	if err := ctl.DB.WithContext(c.UserContext()).First(&m, "report_id = ?", id).Error; err != nil {
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

func (ctl *EventReportController) GetByID(c *fiber.Ctx) error {
	p, err := authMiddleware.PrincipalFromLocals(c)
	if err != nil {
		return err
	}
	m, ferr := ctl.loadVisible(c, p)
	if m == nil {
		return ferr
	}
	return helper.Success(c, "Report", m)
}

// ✅/❌ Approve or reject a pending report (officer of the same department)
func (ctl *EventReportController) SetStatus(c *fiber.Ctx) error {
	p, err := authMiddleware.PrincipalFromLocals(c)
	if err != nil {
		return err
	}
	m, ferr := ctl.loadVisible(c, p)
	if m == nil {
		return ferr
	}

	var req dto.SetReportStatusRequest
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

	now := engine.Now()
	if err := ctl.Engine.ConditionalStatusUpdate(
		c.UserContext(),
		&evModel.EventReportModel{},
		"report_id", "report_status",
		m.ReportID,
		action, engine.KindEventReport,
		map[string]any{
			"report_status":      string(to),
			"report_approved_by": p.UserID,
			"report_approved_at": now,
		},
	); err != nil {
		return helper.EngineError(c, err)
	}

	m.ReportStatus = string(to)
	m.ReportApprovedBy = &p.UserID
	m.ReportApprovedAt = &now
	notify.NotifyAsync(ctl.DB, m.ReportSubmittedBy, "Event report "+string(to), fiber.Map{
		"report_id":     m.ReportID,
		"event_id":      m.ReportEventID,
		"report_status": string(to),
	})

	return helper.Success(c, "Status updated", m)
}

// 🗑 Delete a report (submitter; blocked once approved — reject then resubmit)
func (ctl *EventReportController) Delete(c *fiber.Ctx) error {
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
		&evModel.EventReportModel{},
		"report_id", "report_status",
		m.ReportID,
		engine.KindEventReport,
	); err != nil {
		return helper.EngineError(c, err)
	}
	return helper.Success(c, "Report deleted", nil)
}

// notifyDepartmentOfficers fans a notification out to every officer of the
// department. Lookup failures only log; submission already succeeded.
func (ctl *EventReportController) notifyDepartmentOfficers(deptID uuid.UUID, title string, payload any) {
	var officerIDs []uuid.UUID
	if err := ctl.DB.
		Table("users").
		Where("user_role = ? AND user_department_id = ?", string(constants.RolePO), deptID).
		Pluck("user_id", &officerIDs).Error; err != nil {
		log.Printf("[ERROR] officer lookup for notifications: %v", err)
		return
	}
	notify.NotifyManyAsync(ctl.DB, officerIDs, title, payload)
}
