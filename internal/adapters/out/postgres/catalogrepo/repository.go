// Package catalogrepo persists laundry item types.
package catalogrepo

import (
	"context"

	"laundry/internal/adapters/out/postgres/pgerr"
	"laundry/internal/core/domain/model/catalog"
	"laundry/internal/core/domain/model/kernel"
	"laundry/internal/pkg/errs"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type ItemTypeDTO struct {
	ID   uuid.UUID `gorm:"type:uuid;primaryKey"`
	Name string    `gorm:"type:varchar(128);not null;uniqueIndex"`
}

func (ItemTypeDTO) TableName() string {
	return "laundry_item_types"
}

type GormItemTypeRepository struct {
	db *gorm.DB
}

func NewGormItemTypeRepository(db *gorm.DB) *GormItemTypeRepository {
	return &GormItemTypeRepository{db: db}
}

// Add inserts an item type. Names are unique.
func (r *GormItemTypeRepository) Add(ctx context.Context, itemType *catalog.ItemType) error {
	if err := itemType.Validate(); err != nil {
		return err
	}

	dto := ItemTypeDTO{ID: itemType.ID().Bytes(), Name: itemType.Name()}
	if err := r.db.WithContext(ctx).Create(&dto).Error; err != nil {
		if pgerr.IsUniqueViolation(err) {
			return errs.NewValueIsInvalidErrorWithCause("item type name", err)
		}
		return err
	}
	return nil
}

func (r *GormItemTypeRepository) FindByIDs(ctx context.Context, ids []kernel.UUID) ([]*catalog.ItemType, error) {
	if len(ids) == 0 {
		return []*catalog.ItemType{}, nil
	}

	raw := make([]uuid.UUID, 0, len(ids))
	for _, id := range ids {
		raw = append(raw, id.Bytes())
	}

	var dtos []ItemTypeDTO
	if err := r.db.WithContext(ctx).Where("id IN ?", raw).Order("name").Find(&dtos).Error; err != nil {
		return nil, err
	}

	types := make([]*catalog.ItemType, 0, len(dtos))
	for _, dto := range dtos {
		id, err := kernel.UUIDFromBytes(dto.ID[:])
		if err != nil {
			return nil, err
		}
		t, err := catalog.NewItemType(id, dto.Name)
		if err != nil {
			return nil, err
		}
		types = append(types, t)
	}
	return types, nil
}
