package commands

import (
	"time"

	"laundry/internal/core/domain/model/job"
	"laundry/internal/core/domain/model/order"
)

// OrderPayload is sent with order events.
type OrderPayload struct {
	OrderID    string    `json:"order_id"`
	OutletID   string    `json:"outlet_id"`
	Stage      string    `json:"stage"`
	LaundryFee string    `json:"laundry_fee,omitempty"`
	Note       string    `json:"note,omitempty"`
	At         time.Time `json:"at"`
}

// JobPayload is sent with job events.
type JobPayload struct {
	JobID    string `json:"job_id"`
	OrderID  string `json:"order_id"`
	OutletID string `json:"outlet_id"`
	Type     string `json:"type"`
	WorkerID string `json:"worker_id,omitempty"`
}

func orderPayload(o *order.Order, note string) OrderPayload {
	p := OrderPayload{
		OrderID:  o.ID().String(),
		OutletID: o.OutletID().String(),
		Note:     note,
		At:       o.UpdatedAt(),
	}
	if stage, err := o.CurrentStage(); err == nil {
		p.Stage = stage.String()
	}
	if fee, ok := o.LaundryFee(); ok {
		p.LaundryFee = fee.String()
	}
	return p
}

func jobPayload(j *job.Job) JobPayload {
	p := JobPayload{
		JobID:    j.ID().String(),
		OrderID:  j.OrderID().String(),
		OutletID: j.OutletID().String(),
		Type:     j.Type().String(),
	}
	if w := j.WorkerID(); w != nil {
		p.WorkerID = w.String()
	}
	return p
}
