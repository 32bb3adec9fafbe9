package queries

import (
	"context"

	"laundry/internal/core/domain/model/job"

	"gorm.io/gorm"
)

type ListOutletJobsQueryHandler struct {
	db *gorm.DB
}

func NewListOutletJobsQueryHandler(db *gorm.DB) ListOutletJobsQueryHandler {
	return ListOutletJobsQueryHandler{db: db}
}

// Handle returns Ongoing jobs of the outlet, oldest first.
func (h ListOutletJobsQueryHandler) Handle(ctx context.Context, query ListOutletJobsQuery) ([]JobView, error) {
	if err := query.Validate(); err != nil {
		return nil, err
	}

	where := `WHERE outlet_id = ? AND state = ?`
	args := []any{query.outletID.Bytes(), job.Ongoing.String()}
	if query.jobType != nil {
		where += ` AND type = ?`
		args = append(args, query.jobType.String())
	}
	if query.onlyUnassigned {
		where += ` AND worker_id IS NULL`
	}

	return listJobs(h.db.WithContext(ctx), where, args, "created_at, id")
}
