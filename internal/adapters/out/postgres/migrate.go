package postgres

import (
	"laundry/internal/adapters/out/postgres/catalogrepo"
	"laundry/internal/adapters/out/postgres/employeerepo"
	"laundry/internal/adapters/out/postgres/jobrepo"
	"laundry/internal/adapters/out/postgres/orderrepo"

	"gorm.io/gorm"
)

// Migrate creates or updates every table the service owns.
func Migrate(db *gorm.DB) error {
	return db.AutoMigrate(
		&catalogrepo.ItemTypeDTO{},
		&employeerepo.EmployeeDTO{},
		&orderrepo.OrderDTO{},
		&orderrepo.ItemDTO{},
		&orderrepo.ProgressEventDTO{},
		&jobrepo.JobDTO{},
	)
}
