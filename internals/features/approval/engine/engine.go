package engine

import (
	"context"
	"errors"
	"strings"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"nssportal_backend/internals/configs"
	"nssportal_backend/internals/constants"
)

// Engine is the request-level orchestrator: it composes the visibility
// filter and the transition machine in front of every stateful mutation.
// It holds no mutable state between calls; everything is request-local.
type Engine struct {
	DB *gorm.DB
}

func New(db *gorm.DB) *Engine {
	return &Engine{DB: db}
}

// BrowseDepartmentID resolves the fixed reference department SC volunteer
// and event listings are scoped to. uuid.Nil on miss (fails closed).
func (e *Engine) BrowseDepartmentID(ctx context.Context) uuid.UUID {
	var id uuid.UUID
	err := e.DB.WithContext(ctx).
		Table("departments").
		Select("department_id").
		Where("department_code = ?", configs.SCBrowseDepartmentCode).
		Limit(1).
		Scan(&id).Error
	if err != nil {
		return uuid.Nil
	}
	return id
}

// ScopeFor returns the visibility scope for a list query by this principal.
func (e *Engine) ScopeFor(ctx context.Context, p Principal, kind EntityKind) (func(*gorm.DB) *gorm.DB, error) {
	var browse uuid.UUID
	if p.Role == constants.RoleSC && scBrowsesWholeDepartment(kind) {
		browse = e.BrowseDepartmentID(ctx)
	}
	return Scope(p, kind, browse)
}

// Authorize runs the fixed check order for one target row: visibility first,
// transition legality second. The order matters — a principal must never
// learn the status of a row outside their scope, not even as a denial reason.
func (e *Engine) Authorize(ctx context.Context, p Principal, action Action, t Target) error {
	var browse uuid.UUID
	if p.Role == constants.RoleSC && scBrowsesWholeDepartment(t.Kind) {
		browse = e.BrowseDepartmentID(ctx)
	}
	visible, err := CanSee(p, t, browse)
	if err != nil {
		return err
	}
	if !visible {
		return ErrForbidden
	}
	return CheckTransition(p, action, t)
}

// ActionForStatus maps a requested target status onto the engine action.
func ActionForStatus(to Status) (Action, bool) {
	switch to {
	case StatusApproved:
		return ActionApprove, true
	case StatusRejected:
		return ActionReject, true
	}
	return "", false
}

// ConditionalStatusUpdate performs the single atomic transition write:
// UPDATE ... SET <updates> WHERE <pk> = id AND <statusCol> = 'pending'.
// RowsAffected == 0 means the pending precondition no longer held (a
// concurrent decision won), reported as a terminal-state denial — never a
// silent success.
func (e *Engine) ConditionalStatusUpdate(ctx context.Context, model any, pkCol, statusCol string, id uuid.UUID, action Action, kind EntityKind, updates map[string]any) error {
	res := e.DB.WithContext(ctx).
		Model(model).
		Where(pkCol+" = ? AND "+statusCol+" = ?", id, StatusPending).
		Updates(updates)
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return Denied(action, kind, ReasonTerminalState)
	}
	return nil
}

// ConditionalDelete deletes only while the row is still in one of the
// allowed source states; approved rows are frozen for everyone.
func (e *Engine) ConditionalDelete(ctx context.Context, model any, pkCol, statusCol string, id uuid.UUID, kind EntityKind) error {
	res := e.DB.WithContext(ctx).
		Where(pkCol+" = ? AND "+statusCol+" <> ?", id, StatusApproved).
		Delete(model)
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return Denied(ActionDelete, kind, ReasonTerminalState)
	}
	return nil
}

// LoadTarget maps gorm.ErrRecordNotFound onto the taxonomy.
func LoadErr(err error) error {
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return ErrNotFound
	}
	return err
}

// --- PG error mapping ---

type pgSQLErr interface {
	SQLState() string
	Error() string
}

// IsUniqueViolation detects SQLSTATE 23505 without importing the driver,
// with a string fallback for wrapped drivers.
func IsUniqueViolation(err error) bool {
	if err == nil {
		return false
	}
	var pgErr pgSQLErr
	if errors.As(err, &pgErr) {
		return pgErr.SQLState() == "23505"
	}
	msg := strings.ToLower(err.Error())
	return strings.Contains(msg, "sqlstate 23505") ||
		strings.Contains(msg, "duplicate key") ||
		strings.Contains(msg, "unique constraint")
}

// Now is split out so tests can pin the clock for derived-status checks.
var Now = time.Now
