// Package menurepo provides keyed storage for menu items and categories.
package menurepo

import (
	"littlelemon/internal/core/domain/model/kernel"
	"littlelemon/internal/core/domain/model/menu"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

type CategoryDTO struct {
	ID    uuid.UUID `gorm:"type:uuid;primaryKey"`
	Slug  string    `gorm:"size:255;uniqueIndex;not null"`
	Title string    `gorm:"size:255;index;not null"`
}

func (CategoryDTO) TableName() string {
	return "categories"
}

type MenuItemDTO struct {
	ID         uuid.UUID       `gorm:"type:uuid;primaryKey"`
	Title      string          `gorm:"size:255;index;not null"`
	Price      decimal.Decimal `gorm:"type:numeric(6,2);index;not null"`
	Featured   bool            `gorm:"index;not null;default:false"`
	CategoryID uuid.UUID       `gorm:"type:uuid;index;not null"`
}

func (MenuItemDTO) TableName() string {
	return "menu_items"
}

func itemFromDomain(item *menu.MenuItem) MenuItemDTO {
	return MenuItemDTO{
		ID:         item.ID().Bytes(),
		Title:      item.Title(),
		Price:      item.Price().Decimal(),
		Featured:   item.Featured(),
		CategoryID: item.CategoryID().Bytes(),
	}
}

func itemToDomain(dto MenuItemDTO) (*menu.MenuItem, error) {
	id, err := kernel.UUIDFromBytes(dto.ID[:])
	if err != nil {
		return nil, err
	}
	categoryID, err := kernel.UUIDFromBytes(dto.CategoryID[:])
	if err != nil {
		return nil, err
	}
	price, err := kernel.NewMoney(dto.Price)
	if err != nil {
		return nil, err
	}
	return menu.NewMenuItem(id, dto.Title, price, dto.Featured, categoryID)
}

func categoryToDomain(dto CategoryDTO) (*menu.Category, error) {
	id, err := kernel.UUIDFromBytes(dto.ID[:])
	if err != nil {
		return nil, err
	}
	return menu.NewCategory(id, dto.Slug, dto.Title)
}
