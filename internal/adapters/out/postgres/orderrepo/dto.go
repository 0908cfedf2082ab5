// Package orderrepo provides data transfer objects and mapping functions for order persistence.
// An order is stored as one orders row plus one order_items row per item.
package orderrepo

import (
	"time"

	"littlelemon/internal/core/domain/model/kernel"
	"littlelemon/internal/core/domain/model/order"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// OrderDTO represents the database structure for persisting order aggregates.
// Indexed by owner and delivery crew for the scoped order listings.
type OrderDTO struct {
	ID             uuid.UUID       `gorm:"type:uuid;primaryKey"`
	UserID         uuid.UUID       `gorm:"type:uuid;index;not null"`
	DeliveryCrewID *uuid.UUID      `gorm:"type:uuid;index"`
	Status         int             `gorm:"index;not null;default:0"`
	Total          decimal.Decimal `gorm:"type:numeric(10,2);not null"`
	CreatedAt      time.Time       `gorm:"index;not null"`
	Items          []ItemDTO       `gorm:"foreignKey:OrderID;constraint:OnDelete:CASCADE"`
}

func (OrderDTO) TableName() string {
	return "orders"
}

// ItemDTO is one order line. Position keeps the cart order of the lines.
type ItemDTO struct {
	ID         uuid.UUID       `gorm:"type:uuid;primaryKey"`
	OrderID    uuid.UUID       `gorm:"type:uuid;not null;uniqueIndex:idx_order_item_menuitem"`
	MenuItemID uuid.UUID       `gorm:"type:uuid;not null;uniqueIndex:idx_order_item_menuitem"`
	Position   int             `gorm:"not null"`
	Quantity   int             `gorm:"not null"`
	UnitPrice  decimal.Decimal `gorm:"type:numeric(6,2);not null"`
	Price      decimal.Decimal `gorm:"type:numeric(8,2);not null"`
}

func (ItemDTO) TableName() string {
	return "order_items"
}

func fromDomain(o *order.Order) OrderDTO {
	var crewID *uuid.UUID
	if id := o.DeliveryCrew(); id != nil {
		raw := id.Bytes()
		crewID = &raw
	}

	items := o.Items()
	dtoItems := make([]ItemDTO, 0, len(items))
	for i, item := range items {
		dtoItems = append(dtoItems, ItemDTO{
			ID:         item.ID().Bytes(),
			OrderID:    o.ID().Bytes(),
			MenuItemID: item.MenuItemID().Bytes(),
			Position:   i,
			Quantity:   item.Quantity(),
			UnitPrice:  item.UnitPrice().Decimal(),
			Price:      item.LinePrice().Decimal(),
		})
	}

	return OrderDTO{
		ID:             o.ID().Bytes(),
		UserID:         o.Owner().Bytes(),
		DeliveryCrewID: crewID,
		Status:         int(o.Status()),
		Total:          o.Total().Decimal(),
		CreatedAt:      o.CreatedAt(),
		Items:          dtoItems,
	}
}

// toDomain rebuilds the aggregate with RestoreOrder, which re-checks the
// total against the items.
func toDomain(dto OrderDTO) (*order.Order, error) {
	id, err := kernel.UUIDFromBytes(dto.ID[:])
	if err != nil {
		return nil, err
	}
	owner, err := kernel.UUIDFromBytes(dto.UserID[:])
	if err != nil {
		return nil, err
	}

	var crewID *kernel.UUID
	if dto.DeliveryCrewID != nil {
		cID, crewErr := kernel.UUIDFromBytes((*dto.DeliveryCrewID)[:])
		if crewErr != nil {
			return nil, crewErr
		}
		crewID = &cID
	}

	total, err := kernel.NewMoney(dto.Total)
	if err != nil {
		return nil, err
	}

	items := make([]*order.Item, 0, len(dto.Items))
	for _, it := range dto.Items {
		item, itemErr := itemToDomain(it)
		if itemErr != nil {
			return nil, itemErr
		}
		items = append(items, item)
	}

	return order.RestoreOrder(id, owner, crewID, order.Status(dto.Status), total, dto.CreatedAt.UTC(), items)
}

func itemToDomain(dto ItemDTO) (*order.Item, error) {
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
	linePrice, err := kernel.NewMoney(dto.Price)
	if err != nil {
		return nil, err
	}
	return order.NewItem(id, menuItemID, dto.Quantity, unitPrice, linePrice)
}
