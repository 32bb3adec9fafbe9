package jobrepo

import (
	"context"
	"errors"
	"time"

	"laundry/internal/adapters/out/postgres/pgerr"
	"laundry/internal/core/domain/model/job"
	"laundry/internal/core/domain/model/kernel"
	"laundry/internal/pkg/errs"

	"gorm.io/gorm"
)

// GormJobRepository implements ports.JobRepository using GORM.
type GormJobRepository struct {
	db      *gorm.DB
	tracker aggregateTracker
}

type aggregateTracker interface {
	TrackAggregate(id kernel.UUID, aggregate any)
}

func NewGormJobRepository(db *gorm.DB, tracker aggregateTracker) *GormJobRepository {
	return &GormJobRepository{
		db:      db,
		tracker: tracker,
	}
}

// Add inserts a job. A concurrent second Ongoing job of the same type for the
// same order hits the partial unique index and surfaces as DuplicateJobError.
func (r *GormJobRepository) Add(ctx context.Context, aggregate *job.Job) error {
	if err := aggregate.Validate(); err != nil {
		return err
	}

	dto := fromDomain(aggregate)
	if err := r.db.WithContext(ctx).Create(&dto).Error; err != nil {
		if pgerr.IsUniqueViolation(err) && pgerr.ConstraintName(err) == ongoingIndex {
			return errs.NewDuplicateJobErrorWithCause(aggregate.OrderID().String(), aggregate.Type().String(), err)
		}
		return err
	}

	r.tracker.TrackAggregate(aggregate.ID(), aggregate)
	return nil
}

// Update writes a state change of an Ongoing job. The write only applies while
// the stored job is still Ongoing and unassigned or assigned to the same worker,
// so of two concurrent claims the second fails with InvalidStageError.
func (r *GormJobRepository) Update(ctx context.Context, aggregate *job.Job) error {
	if err := aggregate.Validate(); err != nil {
		return err
	}

	dto := fromDomain(aggregate)
	db := r.db.WithContext(ctx)
	result := db.Model(&JobDTO{}).
		Where("id = ? AND state = ? AND (worker_id IS NULL OR worker_id = ?)", dto.ID, job.Ongoing.String(), dto.WorkerID).
		Updates(map[string]any{
			"state":        dto.State,
			"worker_id":    dto.WorkerID,
			"completed_at": dto.CompletedAt,
		})
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return r.missingOrTaken(db, aggregate)
	}

	r.tracker.TrackAggregate(aggregate.ID(), aggregate)
	return nil
}

func (r *GormJobRepository) missingOrTaken(db *gorm.DB, aggregate *job.Job) error {
	var stored JobDTO
	if err := db.First(&stored, "id = ?", aggregate.ID().Bytes()).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return errs.NewObjectNotFoundError("job", aggregate.ID().String())
		}
		return err
	}
	if stored.State != job.Ongoing.String() {
		return errs.NewInvalidStageError(stored.State, "Job is already completed")
	}
	return errs.NewInvalidStageError(stored.State, "Job is already taken")
}

func (r *GormJobRepository) Get(ctx context.Context, id kernel.UUID) (*job.Job, error) {
	if err := id.Validate(); err != nil {
		return nil, err
	}

	var dto JobDTO
	if err := r.db.WithContext(ctx).First(&dto, "id = ?", id.Bytes()).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, errs.NewObjectNotFoundError("job", id.String())
		}
		return nil, err
	}

	return toDomain(dto)
}

func (r *GormJobRepository) ListByOrder(ctx context.Context, orderID kernel.UUID) ([]*job.Job, error) {
	if err := orderID.Validate(); err != nil {
		return nil, err
	}

	var dtos []JobDTO
	if err := r.db.WithContext(ctx).
		Where("order_id = ?", orderID.Bytes()).
		Order("created_at, id").
		Find(&dtos).Error; err != nil {
		return nil, err
	}

	return toDomainList(dtos)
}

func (r *GormJobRepository) ListUnassigned(ctx context.Context, olderThan time.Time) ([]*job.Job, error) {
	var dtos []JobDTO
	if err := r.db.WithContext(ctx).
		Where("state = ? AND worker_id IS NULL AND created_at < ?", job.Ongoing.String(), olderThan).
		Order("created_at").
		Find(&dtos).Error; err != nil {
		return nil, err
	}

	return toDomainList(dtos)
}
