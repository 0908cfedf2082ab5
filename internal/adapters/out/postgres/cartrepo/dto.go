// Package cartrepo persists cart lines. A cart is the set of lines owned by
// one user; there is no cart row of its own.
package cartrepo

import (
	"time"

	"littlelemon/internal/core/domain/model/cart"
	"littlelemon/internal/core/domain/model/kernel"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// LineDTO keeps one row per (user, menu item); the unit price is the price
// frozen when the item was first added.
type LineDTO struct {
	ID         uuid.UUID       `gorm:"type:uuid;primaryKey"`
	UserID     uuid.UUID       `gorm:"type:uuid;not null;uniqueIndex:idx_cart_user_menuitem"`
	MenuItemID uuid.UUID       `gorm:"type:uuid;not null;uniqueIndex:idx_cart_user_menuitem"`
	Quantity   int             `gorm:"not null"`
	UnitPrice  decimal.Decimal `gorm:"type:numeric(6,2);not null"`
	Price      decimal.Decimal `gorm:"type:numeric(8,2);not null"`
	AddedAt    time.Time       `gorm:"not null;index"`
}

func (LineDTO) TableName() string {
	return "cart_lines"
}

func fromDomain(owner kernel.UUID, l *cart.Line) LineDTO {
	return LineDTO{
		ID:         l.ID().Bytes(),
		UserID:     owner.Bytes(),
		MenuItemID: l.MenuItemID().Bytes(),
		Quantity:   l.Quantity(),
		UnitPrice:  l.UnitPrice().Decimal(),
		Price:      l.Price().Decimal(),
		AddedAt:    l.AddedAt().UTC(),
	}
}

func toDomain(dto LineDTO) (*cart.Line, error) {
	id, err := kernel.UUIDFromBytes(dto.ID[:])
	if err != nil {
		return nil, err
	}
	menuItemID, err := kernel.UUIDFromBytes(dto.MenuItemID[:])
	if err != nil {
		return nil, err
	}
	unitPrice, err := kernel.NewMoney(dto.UnitPrice)
	if err != nil {
		return nil, err
	}
	return cart.RestoreLine(id, menuItemID, dto.Quantity, unitPrice, dto.AddedAt.UTC())
}
