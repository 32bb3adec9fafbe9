// Package jobrepo persists stage jobs. At most one Ongoing job of a type may
// exist per order; the partial unique index enforces it under concurrency.
package jobrepo

import (
	"time"

	"laundry/internal/core/domain/model/job"
	"laundry/internal/core/domain/model/kernel"

	"github.com/google/uuid"
)

const ongoingIndex = "idx_jobs_ongoing_per_order"

type JobDTO struct {
	ID          uuid.UUID  `gorm:"type:uuid;primaryKey"`
	OrderID     uuid.UUID  `gorm:"type:uuid;not null;uniqueIndex:idx_jobs_ongoing_per_order,where:state = 'Ongoing'"`
	OutletID    uuid.UUID  `gorm:"type:uuid;not null;index"`
	Type        string     `gorm:"type:varchar(16);not null;uniqueIndex:idx_jobs_ongoing_per_order,where:state = 'Ongoing'"`
	State       string     `gorm:"type:varchar(16);not null;index"`
	WorkerID    *uuid.UUID `gorm:"type:uuid;index"`
	CreatedAt   time.Time  `gorm:"not null"`
	CompletedAt *time.Time
}

func (JobDTO) TableName() string {
	return "jobs"
}

func fromDomain(j *job.Job) JobDTO {
	var workerID *uuid.UUID
	if id := j.WorkerID(); id != nil {
		raw := id.Bytes()
		workerID = &raw
	}

	return JobDTO{
		ID:          j.ID().Bytes(),
		OrderID:     j.OrderID().Bytes(),
		OutletID:    j.OutletID().Bytes(),
		Type:        j.Type().String(),
		State:       j.State().String(),
		WorkerID:    workerID,
		CreatedAt:   j.CreatedAt(),
		CompletedAt: j.CompletedAt(),
	}
}

func toDomain(dto JobDTO) (*job.Job, error) {
	id, err := kernel.UUIDFromBytes(dto.ID[:])
	if err != nil {
		return nil, err
	}
	orderID, err := kernel.UUIDFromBytes(dto.OrderID[:])
	if err != nil {
		return nil, err
	}
	outletID, err := kernel.UUIDFromBytes(dto.OutletID[:])
	if err != nil {
		return nil, err
	}

	var workerID *kernel.UUID
	if dto.WorkerID != nil {
		wID, wErr := kernel.UUIDFromBytes((*dto.WorkerID)[:])
		if wErr != nil {
			return nil, wErr
		}
		workerID = &wID
	}

	jobType, err := job.ParseType(dto.Type)
	if err != nil {
		return nil, err
	}

	return job.RestoreJob(id, orderID, outletID, jobType, job.State(dto.State), workerID, dto.CreatedAt, dto.CompletedAt)
}

func toDomainList(dtos []JobDTO) ([]*job.Job, error) {
	jobs := make([]*job.Job, 0, len(dtos))
	for _, dto := range dtos {
		j, err := toDomain(dto)
		if err != nil {
			return nil, err
		}
		jobs = append(jobs, j)
	}
	return jobs, nil
}
