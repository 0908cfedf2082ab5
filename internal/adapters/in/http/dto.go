package http

import (
	"time"

	"littlelemon/internal/core/application/usecases/queries"
	"littlelemon/internal/core/domain/model/kernel"
	"littlelemon/internal/core/domain/model/menu"
	"littlelemon/internal/core/domain/model/order"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

type Category struct {
	ID    uuid.UUID `json:"id"`
	Slug  string    `json:"slug"`
	Title string    `json:"title"`
}

type CategoryInput struct {
	Slug  string `json:"slug"`
	Title string `json:"title"`
}

type MenuItem struct {
	ID       uuid.UUID `json:"id"`
	Title    string    `json:"title"`
	Price    string    `json:"price"`
	Featured bool      `json:"featured"`
	Category uuid.UUID `json:"category"`
}

// MenuItemInput accepts the price as a JSON string or number.
type MenuItemInput struct {
	Title    string          `json:"title"`
	Price    decimal.Decimal `json:"price"`
	Featured bool            `json:"featured"`
	Category uuid.UUID       `json:"category"`
}

type CartItemInput struct {
	MenuItem uuid.UUID `json:"menuitem"`
	Quantity int       `json:"quantity"`
}

type CartLine struct {
	ID        uuid.UUID `json:"id"`
	MenuItem  uuid.UUID `json:"menuitem"`
	Title     string    `json:"title"`
	Quantity  int       `json:"quantity"`
	UnitPrice string    `json:"unit_price"`
	Price     string    `json:"price"`
}

type Cart struct {
	Lines []CartLine `json:"lines"`
	Total string     `json:"total"`
}

type Order struct {
	ID           uuid.UUID  `json:"id"`
	User         uuid.UUID  `json:"user"`
	DeliveryCrew *uuid.UUID `json:"delivery_crew"`
	Status       int        `json:"status"`
	Total        string     `json:"total"`
	Date         time.Time  `json:"date"`
}

type OrderItem struct {
	ID        uuid.UUID `json:"id"`
	MenuItem  uuid.UUID `json:"menuitem"`
	Quantity  int       `json:"quantity"`
	UnitPrice string    `json:"unit_price"`
	Price     string    `json:"price"`
}

type OrderDetail struct {
	Order
	Items []OrderItem `json:"items"`
}

type MemberInput struct {
	UserID uuid.UUID `json:"user_id"`
}

type Member struct {
	ID       uuid.UUID `json:"id"`
	Username string    `json:"username"`
}

func optionalID(id *kernel.UUID) *uuid.UUID {
	if id == nil {
		return nil
	}
	v := id.Bytes()
	return &v
}

func categoryFromView(v queries.CategoryView) Category {
	return Category{ID: v.ID.Bytes(), Slug: v.Slug, Title: v.Title}
}

func categoryFromDomain(c *menu.Category) Category {
	return Category{ID: c.ID().Bytes(), Slug: c.Slug(), Title: c.Title()}
}

func menuItemFromView(v queries.MenuItemView) MenuItem {
	return MenuItem{
		ID:       v.ID.Bytes(),
		Title:    v.Title,
		Price:    v.Price.String(),
		Featured: v.Featured,
		Category: v.CategoryID.Bytes(),
	}
}

func menuItemFromDomain(m *menu.MenuItem) MenuItem {
	return MenuItem{
		ID:       m.ID().Bytes(),
		Title:    m.Title(),
		Price:    m.Price().String(),
		Featured: m.Featured(),
		Category: m.CategoryID().Bytes(),
	}
}

func cartFromView(v queries.CartView) Cart {
	lines := make([]CartLine, 0, len(v.Lines))
	for _, l := range v.Lines {
		lines = append(lines, CartLine{
			ID:        l.ID.Bytes(),
			MenuItem:  l.MenuItemID.Bytes(),
			Title:     l.Title,
			Quantity:  l.Quantity,
			UnitPrice: l.UnitPrice.String(),
			Price:     l.Price.String(),
		})
	}
	return Cart{Lines: lines, Total: v.Total.String()}
}

func orderFromView(v queries.OrderView) Order {
	return Order{
		ID:           v.ID.Bytes(),
		User:         v.UserID.Bytes(),
		DeliveryCrew: optionalID(v.DeliveryCrew),
		Status:       int(v.Status),
		Total:        v.Total.String(),
		Date:         v.Date,
	}
}

func orderDetailFromView(v queries.OrderDetailView) OrderDetail {
	items := make([]OrderItem, 0, len(v.Items))
	for _, it := range v.Items {
		items = append(items, OrderItem{
			ID:        it.ID.Bytes(),
			MenuItem:  it.MenuItemID.Bytes(),
			Quantity:  it.Quantity,
			UnitPrice: it.UnitPrice.String(),
			Price:     it.Price.String(),
		})
	}
	return OrderDetail{Order: orderFromView(v.OrderView), Items: items}
}

func orderFromDomain(o *order.Order) Order {
	return Order{
		ID:           o.ID().Bytes(),
		User:         o.Owner().Bytes(),
		DeliveryCrew: optionalID(o.DeliveryCrew()),
		Status:       int(o.Status()),
		Total:        o.Total().String(),
		Date:         o.CreatedAt(),
	}
}

func orderDetailFromDomain(o *order.Order) OrderDetail {
	items := make([]OrderItem, 0, len(o.Items()))
	for _, it := range o.Items() {
		items = append(items, OrderItem{
			ID:        it.ID().Bytes(),
			MenuItem:  it.MenuItemID().Bytes(),
			Quantity:  it.Quantity(),
			UnitPrice: it.UnitPrice().String(),
			Price:     it.LinePrice().String(),
		})
	}
	return OrderDetail{Order: orderFromDomain(o), Items: items}
}

func membersFromView(views []queries.MemberView) []Member {
	members := make([]Member, 0, len(views))
	for _, m := range views {
		members = append(members, Member{ID: m.ID.Bytes(), Username: m.Username})
	}
	return members
}
