// Package employeerepo persists outlet staff and their shift windows.
package employeerepo

import (
	"context"
	"errors"

	"laundry/internal/core/domain/model/kernel"
	"laundry/internal/core/domain/model/staff"
	"laundry/internal/pkg/errs"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// EmployeeDTO stores shift bounds as HH:MM text. Super admins have neither an
// outlet nor a shift.
type EmployeeDTO struct {
	ID         uuid.UUID  `gorm:"type:uuid;primaryKey"`
	OutletID   *uuid.UUID `gorm:"type:uuid;index"`
	Name       string     `gorm:"type:varchar(128);not null"`
	Role       string     `gorm:"type:varchar(32);not null"`
	ShiftStart *string    `gorm:"type:varchar(5)"`
	ShiftEnd   *string    `gorm:"type:varchar(5)"`
}

func (EmployeeDTO) TableName() string {
	return "employees"
}

type GormEmployeeRepository struct {
	db *gorm.DB
}

func NewGormEmployeeRepository(db *gorm.DB) *GormEmployeeRepository {
	return &GormEmployeeRepository{db: db}
}

func (r *GormEmployeeRepository) Add(ctx context.Context, employee *staff.Employee) error {
	if err := employee.Validate(); err != nil {
		return err
	}

	dto := fromDomain(employee)
	return r.db.WithContext(ctx).Create(&dto).Error
}

func (r *GormEmployeeRepository) Get(ctx context.Context, id kernel.UUID) (*staff.Employee, error) {
	if err := id.Validate(); err != nil {
		return nil, err
	}

	var dto EmployeeDTO
	if err := r.db.WithContext(ctx).First(&dto, "id = ?", id.Bytes()).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, errs.NewObjectNotFoundError("employee", id.String())
		}
		return nil, err
	}

	return toDomain(dto)
}

func fromDomain(e *staff.Employee) EmployeeDTO {
	dto := EmployeeDTO{
		ID:   e.ID().Bytes(),
		Name: e.Name(),
		Role: e.Role().String(),
	}
	if outletID := e.OutletID(); outletID != nil {
		raw := outletID.Bytes()
		dto.OutletID = &raw
	}
	if shift := e.Shift(); shift != nil {
		start, end := shift.Start().String(), shift.End().String()
		dto.ShiftStart = &start
		dto.ShiftEnd = &end
	}
	return dto
}

func toDomain(dto EmployeeDTO) (*staff.Employee, error) {
	id, err := kernel.UUIDFromBytes(dto.ID[:])
	if err != nil {
		return nil, err
	}

	var outletID *kernel.UUID
	if dto.OutletID != nil {
		oID, oErr := kernel.UUIDFromBytes((*dto.OutletID)[:])
		if oErr != nil {
			return nil, oErr
		}
		outletID = &oID
	}

	var shift *staff.Shift
	if dto.ShiftStart != nil && dto.ShiftEnd != nil {
		s, sErr := staff.ParseShift(*dto.ShiftStart, *dto.ShiftEnd)
		if sErr != nil {
			return nil, sErr
		}
		shift = &s
	}

	role, err := staff.ParseRole(dto.Role)
	if err != nil {
		return nil, err
	}

	return staff.NewEmployee(id, outletID, dto.Name, role, shift)
}
