package database

import (
	"log"

	departmentModel "nssportal_backend/internals/features/departments/model"
	eventModel "nssportal_backend/internals/features/events/model"
	identityModel "nssportal_backend/internals/features/identity/model"
	notificationModel "nssportal_backend/internals/features/notifications/model"
	volunteerModel "nssportal_backend/internals/features/volunteers/model"
	workingHoursModel "nssportal_backend/internals/features/workinghours/model"
)

// MigrateAll keeps the schema in sync with the models. Order matters only for
// readability; gorm creates the unique indexes declared in the struct tags,
// including the duplicate-report guard on event_reports.
func MigrateAll() {
	err := DB.AutoMigrate(
		&departmentModel.DepartmentModel{},
		&identityModel.UserModel{},
		&identityModel.RefreshTokenModel{},
		&volunteerModel.VolunteerModel{},
		&eventModel.EventModel{},
		&eventModel.EventReportModel{},
		&workingHoursModel.WorkingHoursEntryModel{},
		&notificationModel.NotificationModel{},
	)
	if err != nil {
		log.Fatalf("❌ migration failed: %v", err)
	}
	log.Println("✅ Migrations applied.")
}
