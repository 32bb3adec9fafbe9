package ports

import (
	"context"

	"laundry/internal/core/domain/model/catalog"
	"laundry/internal/core/domain/model/kernel"
)

type ItemTypeRepository interface {
	Add(ctx context.Context, itemType *catalog.ItemType) error

	// FindByIDs returns the item types that exist among ids. Missing ids are
	// skipped, so callers compare the result length to detect unknown types.
	FindByIDs(ctx context.Context, ids []kernel.UUID) ([]*catalog.ItemType, error)
}
