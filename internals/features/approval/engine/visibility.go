package engine

import (
	"github.com/google/uuid"
	"gorm.io/gorm"

	"nssportal_backend/internals/constants"
)

// Per-kind owner/department column names, used to push the visibility rules
// down into list queries.
type kindColumns struct {
	owner string
	dept  string
}

var columnsByKind = map[EntityKind]kindColumns{
	KindVolunteer:    {owner: "volunteer_added_by", dept: "volunteer_department_id"},
	KindWorkingHours: {owner: "entry_owner_id", dept: "entry_department_id"},
	KindEvent:        {owner: "event_created_by", dept: "event_department_id"},
	KindEventReport:  {owner: "report_submitted_by", dept: "report_department_id"},
}

// scBrowsesWholeDepartment: SC-facing volunteer and event listings are locked
// to one reference department instead of the SC's own rows. Explicit business
// rule carried from the source system, not ownership-scoped.
func scBrowsesWholeDepartment(kind EntityKind) bool {
	return kind == KindVolunteer || kind == KindEvent
}

// CanSee decides whether a single row is readable by the principal.
// scBrowseDept is the resolved reference department for SC browsing
// (uuid.Nil when unresolved, which fails closed).
func CanSee(p Principal, t Target, scBrowseDept uuid.UUID) (bool, error) {
	switch p.Role {
	case constants.RolePC:
		return true, nil
	case constants.RolePO:
		if p.DepartmentID == nil {
			return false, ErrDepartmentUnresolved
		}
		return t.DepartmentID == *p.DepartmentID, nil
	case constants.RoleSC:
		if scBrowsesWholeDepartment(t.Kind) {
			return scBrowseDept != uuid.Nil && t.DepartmentID == scBrowseDept, nil
		}
		return t.OwnerID == p.UserID, nil
	default:
		// unknown role: fail closed, never open
		return false, nil
	}
}

// VisibleRows filters rows down to the subset the principal may read.
func VisibleRows(p Principal, rows []Target, scBrowseDept uuid.UUID) ([]Target, error) {
	out := make([]Target, 0, len(rows))
	for _, t := range rows {
		ok, err := CanSee(p, t, scBrowseDept)
		if err != nil {
			return nil, err
		}
		if ok {
			out = append(out, t)
		}
	}
	return out, nil
}

// Scope returns a gorm scope applying the same visibility rules to a list
// query, so filtering happens in SQL instead of in memory.
func Scope(p Principal, kind EntityKind, scBrowseDept uuid.UUID) (func(*gorm.DB) *gorm.DB, error) {
	cols, ok := columnsByKind[kind]
	if !ok {
		return nil, ErrNotFound
	}

	switch p.Role {
	case constants.RolePC:
		return func(db *gorm.DB) *gorm.DB { return db }, nil
	case constants.RolePO:
		if p.DepartmentID == nil {
			return nil, ErrDepartmentUnresolved
		}
		dept := *p.DepartmentID
		return func(db *gorm.DB) *gorm.DB {
			return db.Where(cols.dept+" = ?", dept)
		}, nil
	case constants.RoleSC:
		if scBrowsesWholeDepartment(kind) {
			if scBrowseDept == uuid.Nil {
				return emptyScope, nil
			}
			return func(db *gorm.DB) *gorm.DB {
				return db.Where(cols.dept+" = ?", scBrowseDept)
			}, nil
		}
		owner := p.UserID
		return func(db *gorm.DB) *gorm.DB {
			return db.Where(cols.owner+" = ?", owner)
		}, nil
	default:
		return emptyScope, nil
	}
}

func emptyScope(db *gorm.DB) *gorm.DB {
	return db.Where("1 = 0")
}
