// Package orderrepo persists the order aggregate: the orders row, its weighed
// items and the append-only progress ledger.
package orderrepo

import (
	"time"

	"laundry/internal/core/domain/model/kernel"
	"laundry/internal/core/domain/model/order"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// OrderDTO is the orders row. Stage mirrors the latest progress event so list
// queries can filter without scanning the ledger.
type OrderDTO struct {
	ID         uuid.UUID        `gorm:"type:uuid;primaryKey"`
	OutletID   uuid.UUID        `gorm:"type:uuid;not null;index"`
	CustomerID uuid.UUID        `gorm:"type:uuid;not null;index"`
	Stage      string           `gorm:"type:varchar(32);not null;index"`
	LaundryFee *decimal.Decimal `gorm:"type:numeric(14,2)"`
	PaidAt     *time.Time
	Version    int       `gorm:"not null;default:1"`
	CreatedAt  time.Time `gorm:"not null"`
	UpdatedAt  time.Time `gorm:"not null"`

	Items    []ItemDTO          `gorm:"foreignKey:OrderID;constraint:OnDelete:CASCADE"`
	Progress []ProgressEventDTO `gorm:"foreignKey:OrderID;constraint:OnDelete:CASCADE"`
}

func (OrderDTO) TableName() string {
	return "orders"
}

type ItemDTO struct {
	ID         uint            `gorm:"primaryKey"`
	OrderID    uuid.UUID       `gorm:"type:uuid;not null;index"`
	ItemTypeID uuid.UUID       `gorm:"type:uuid;not null"`
	WeightKg   decimal.Decimal `gorm:"type:numeric(10,3);not null"`
	Quantity   int             `gorm:"not null"`
}

func (ItemDTO) TableName() string {
	return "order_items"
}

// ProgressEventDTO is one ledger row. The composite key rejects a second
// writer appending the same sequence number.
type ProgressEventDTO struct {
	OrderID  uuid.UUID `gorm:"type:uuid;primaryKey"`
	Sequence int       `gorm:"primaryKey;autoIncrement:false"`
	Stage    string    `gorm:"type:varchar(32);not null"`
	At       time.Time `gorm:"not null"`
	Note     string    `gorm:"type:text"`
}

func (ProgressEventDTO) TableName() string {
	return "progress_events"
}

func fromDomain(o *order.Order) (OrderDTO, error) {
	stage, err := o.CurrentStage()
	if err != nil {
		return OrderDTO{}, err
	}

	var fee *decimal.Decimal
	if f, ok := o.LaundryFee(); ok {
		fee = &f
	}

	return OrderDTO{
		ID:         o.ID().Bytes(),
		OutletID:   o.OutletID().Bytes(),
		CustomerID: o.CustomerID().Bytes(),
		Stage:      stage.String(),
		LaundryFee: fee,
		PaidAt:     o.PaidAt(),
		Version:    o.Version(),
		CreatedAt:  o.CreatedAt(),
		UpdatedAt:  o.UpdatedAt(),
	}, nil
}

func itemsFromDomain(orderID kernel.UUID, items []order.Item) []ItemDTO {
	dtos := make([]ItemDTO, 0, len(items))
	for _, item := range items {
		dtos = append(dtos, ItemDTO{
			OrderID:    orderID.Bytes(),
			ItemTypeID: item.ItemTypeID().Bytes(),
			WeightKg:   item.Weight().Kilograms(),
			Quantity:   item.Quantity(),
		})
	}
	return dtos
}

func progressFromDomain(orderID kernel.UUID, events []order.ProgressEvent) []ProgressEventDTO {
	dtos := make([]ProgressEventDTO, 0, len(events))
	for _, e := range events {
		dtos = append(dtos, ProgressEventDTO{
			OrderID:  orderID.Bytes(),
			Sequence: e.Sequence,
			Stage:    e.Stage.String(),
			At:       e.At,
			Note:     e.Note,
		})
	}
	return dtos
}

// toDomain rebuilds the aggregate. dto.Progress must be ordered by sequence.
func toDomain(dto OrderDTO) (*order.Order, error) {
	id, err := kernel.UUIDFromBytes(dto.ID[:])
	if err != nil {
		return nil, err
	}
	outletID, err := kernel.UUIDFromBytes(dto.OutletID[:])
	if err != nil {
		return nil, err
	}
	customerID, err := kernel.UUIDFromBytes(dto.CustomerID[:])
	if err != nil {
		return nil, err
	}

	items := make([]order.Item, 0, len(dto.Items))
	for _, itemDTO := range dto.Items {
		itemTypeID, idErr := kernel.UUIDFromBytes(itemDTO.ItemTypeID[:])
		if idErr != nil {
			return nil, idErr
		}
		weight, wErr := kernel.NewWeight(itemDTO.WeightKg)
		if wErr != nil {
			return nil, wErr
		}
		item, iErr := order.NewItem(itemTypeID, weight, itemDTO.Quantity)
		if iErr != nil {
			return nil, iErr
		}
		items = append(items, item)
	}

	events := make([]order.ProgressEvent, 0, len(dto.Progress))
	for _, e := range dto.Progress {
		stage, sErr := order.ParseStage(e.Stage)
		if sErr != nil {
			return nil, sErr
		}
		events = append(events, order.ProgressEvent{
			Sequence: e.Sequence,
			Stage:    stage,
			At:       e.At,
			Note:     e.Note,
		})
	}

	return order.RestoreOrder(order.Snapshot{
		ID:         id,
		OutletID:   outletID,
		CustomerID: customerID,
		Events:     events,
		Items:      items,
		LaundryFee: dto.LaundryFee,
		PaidAt:     dto.PaidAt,
		Version:    dto.Version,
		CreatedAt:  dto.CreatedAt,
		UpdatedAt:  dto.UpdatedAt,
	})
}
