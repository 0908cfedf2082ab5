package ports

import (
	"context"

	"littlelemon/internal/core/domain/model/kernel"
	"littlelemon/internal/core/domain/model/menu"
)

// MenuRepository is keyed storage for menu items and categories.
type MenuRepository interface {
	Get(ctx context.Context, id kernel.UUID) (*menu.MenuItem, error)
	Add(ctx context.Context, item *menu.MenuItem) error
	Update(ctx context.Context, item *menu.MenuItem) error
	Delete(ctx context.Context, id kernel.UUID) error

	GetCategory(ctx context.Context, id kernel.UUID) (*menu.Category, error)
	AddCategory(ctx context.Context, category *menu.Category) error
}
