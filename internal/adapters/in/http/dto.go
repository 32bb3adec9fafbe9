package http

import (
	"time"

	"laundry/internal/core/application/usecases/queries"
	"laundry/internal/core/domain/model/catalog"
	"laundry/internal/core/domain/model/job"
	"laundry/internal/core/domain/model/order"
	"laundry/internal/core/domain/model/staff"

	openapi_types "github.com/oapi-codegen/runtime/types"
	"github.com/shopspring/decimal"
)

type NewOrder struct {
	OrderID    *openapi_types.UUID `json:"order_id"`
	OutletID   openapi_types.UUID  `json:"outlet_id"`
	CustomerID openapi_types.UUID  `json:"customer_id"`
}

type ItemInput struct {
	ItemTypeID openapi_types.UUID `json:"item_type_id"`
	WeightKg   decimal.Decimal    `json:"weight_kg"`
	Quantity   int                `json:"quantity"`
}

type AssignItemsRequest struct {
	Items []ItemInput `json:"items"`
}

type AdvanceStageRequest struct {
	Stage string `json:"stage"`
}

type RaiseComplaintRequest struct {
	Description string `json:"description"`
}

type ResolveComplaintRequest struct {
	Resolution string `json:"resolution"`
}

type NewEmployee struct {
	EmployeeID *openapi_types.UUID `json:"employee_id"`
	OutletID   *openapi_types.UUID `json:"outlet_id"`
	Name       string              `json:"name"`
	Role       string              `json:"role"`
	ShiftStart string              `json:"shift_start"`
	ShiftEnd   string              `json:"shift_end"`
}

type NewItemType struct {
	Name string `json:"name"`
}

type Order struct {
	ID         string     `json:"id"`
	OutletID   string     `json:"outlet_id"`
	CustomerID string     `json:"customer_id"`
	Stage      string     `json:"stage"`
	LaundryFee *string    `json:"laundry_fee"`
	Paid       bool       `json:"paid"`
	PaidAt     *time.Time `json:"paid_at"`
	Version    int        `json:"version"`
	CreatedAt  time.Time  `json:"created_at"`
	UpdatedAt  time.Time  `json:"updated_at"`
}

type OrderPage struct {
	Total  int64   `json:"total"`
	Orders []Order `json:"orders"`
}

type OrderItem struct {
	ItemTypeID   string `json:"item_type_id"`
	ItemTypeName string `json:"item_type_name"`
	WeightKg     string `json:"weight_kg"`
	Quantity     int    `json:"quantity"`
}

type ProgressEvent struct {
	Sequence int       `json:"sequence"`
	Stage    string    `json:"stage"`
	At       time.Time `json:"at"`
	Note     string    `json:"note,omitempty"`
}

type OrderDetails struct {
	Order
	Items    []OrderItem     `json:"items"`
	Progress []ProgressEvent `json:"progress"`
	Jobs     []Job           `json:"jobs"`
}

type Job struct {
	ID          string     `json:"id"`
	OrderID     string     `json:"order_id"`
	OutletID    string     `json:"outlet_id"`
	Type        string     `json:"type"`
	State       string     `json:"state"`
	WorkerID    *string    `json:"worker_id"`
	CreatedAt   time.Time  `json:"created_at"`
	CompletedAt *time.Time `json:"completed_at"`
}

type Employee struct {
	ID       string  `json:"id"`
	OutletID *string `json:"outlet_id"`
	Name     string  `json:"name"`
	Role     string  `json:"role"`
	Shift    *string `json:"shift"`
}

type ItemType struct {
	ID   string `json:"id"`
	Name string `json:"name"`
}

func orderFromDomain(o *order.Order) Order {
	stage, _ := o.CurrentStage()
	response := Order{
		ID:         o.ID().String(),
		OutletID:   o.OutletID().String(),
		CustomerID: o.CustomerID().String(),
		Stage:      stage.String(),
		Paid:       o.IsPaid(),
		PaidAt:     o.PaidAt(),
		Version:    o.Version(),
		CreatedAt:  o.CreatedAt(),
		UpdatedAt:  o.UpdatedAt(),
	}
	if fee, ok := o.LaundryFee(); ok {
		s := fee.StringFixed(2)
		response.LaundryFee = &s
	}
	return response
}

func orderFromSummary(s queries.OrderSummary) Order {
	response := Order{
		ID:         s.ID.String(),
		OutletID:   s.OutletID.String(),
		CustomerID: s.CustomerID.String(),
		Stage:      s.Stage,
		Paid:       s.Paid,
		PaidAt:     s.PaidAt,
		Version:    s.Version,
		CreatedAt:  s.CreatedAt,
		UpdatedAt:  s.UpdatedAt,
	}
	if s.LaundryFee != nil {
		fee := s.LaundryFee.StringFixed(2)
		response.LaundryFee = &fee
	}
	return response
}

func orderDetailsFromView(v *queries.GetOrderQueryResponse) OrderDetails {
	details := OrderDetails{
		Order:    orderFromSummary(v.OrderSummary),
		Items:    make([]OrderItem, 0, len(v.Items)),
		Progress: make([]ProgressEvent, 0, len(v.Progress)),
		Jobs:     jobsFromViews(v.Jobs),
	}
	for _, item := range v.Items {
		details.Items = append(details.Items, OrderItem{
			ItemTypeID:   item.ItemTypeID.String(),
			ItemTypeName: item.ItemTypeName,
			WeightKg:     item.WeightKg.String(),
			Quantity:     item.Quantity,
		})
	}
	for _, e := range v.Progress {
		details.Progress = append(details.Progress, ProgressEvent{Sequence: e.Sequence, Stage: e.Stage, At: e.At, Note: e.Note})
	}
	return details
}

func jobFromDomain(j *job.Job) Job {
	response := Job{
		ID:          j.ID().String(),
		OrderID:     j.OrderID().String(),
		OutletID:    j.OutletID().String(),
		Type:        j.Type().String(),
		State:       j.State().String(),
		CreatedAt:   j.CreatedAt(),
		CompletedAt: j.CompletedAt(),
	}
	if w := j.WorkerID(); w != nil {
		s := w.String()
		response.WorkerID = &s
	}
	return response
}

func jobsFromViews(views []queries.JobView) []Job {
	jobs := make([]Job, 0, len(views))
	for _, v := range views {
		j := Job{
			ID:          v.ID.String(),
			OrderID:     v.OrderID.String(),
			OutletID:    v.OutletID.String(),
			Type:        v.Type,
			State:       v.State,
			CreatedAt:   v.CreatedAt,
			CompletedAt: v.CompletedAt,
		}
		if v.WorkerID != nil {
			s := v.WorkerID.String()
			j.WorkerID = &s
		}
		jobs = append(jobs, j)
	}
	return jobs
}

func employeeFromDomain(e *staff.Employee) Employee {
	response := Employee{
		ID:   e.ID().String(),
		Name: e.Name(),
		Role: e.Role().String(),
	}
	if outletID := e.OutletID(); outletID != nil {
		s := outletID.String()
		response.OutletID = &s
	}
	if shift := e.Shift(); shift != nil {
		s := shift.String()
		response.Shift = &s
	}
	return response
}

func itemTypeFromDomain(t *catalog.ItemType) ItemType {
	return ItemType{ID: t.ID().String(), Name: t.Name()}
}
