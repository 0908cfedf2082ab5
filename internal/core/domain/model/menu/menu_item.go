package menu

import (
	"errors"
	"strings"
	"unicode/utf8"

	"littlelemon/internal/core/domain/model/kernel"
	"littlelemon/internal/pkg/errs"

	"github.com/shopspring/decimal"
)

const (
	// MaxTitleLength bounds MenuItem titles.
	MaxTitleLength = 255
)

// MaxPrice is the largest price a menu item may have (six digits, two decimals).
var MaxPrice = decimal.RequireFromString("9999.99")

var ErrMenuItemIsNotConstructed = errors.New("MenuItem must be created via NewMenuItem constructor")

// MenuItem is a dish on the menu.
//
// Invariants:
//   - title is 1..255 characters
//   - price is between 0.00 and 9999.99
//   - the category reference is a valid identifier
//
// Changing the price of a MenuItem never affects cart lines or order items
// that already captured it.
type MenuItem struct {
	id         kernel.UUID
	title      string
	price      kernel.Money
	featured   bool
	categoryID kernel.UUID

	isConstructed bool
}

// NewMenuItem validates and creates a menu item.
func NewMenuItem(
	id kernel.UUID,
	title string,
	price kernel.Money,
	featured bool,
	categoryID kernel.UUID,
) (*MenuItem, error) {
	item := &MenuItem{isConstructed: true}
	if err := errors.Join(
		item.setID(id),
		item.setTitle(title),
		item.setPrice(price),
		item.setCategory(categoryID),
	); err != nil {
		return nil, err
	}
	item.featured = featured
	return item, nil
}

func (m *MenuItem) Validate() error {
	if m == nil || !m.isConstructed {
		return ErrMenuItemIsNotConstructed
	}
	return nil
}

func (m *MenuItem) ID() kernel.UUID { return m.id }
func (m *MenuItem) Title() string { return m.title }
func (m *MenuItem) Price() kernel.Money { return m.price }
func (m *MenuItem) Featured() bool { return m.featured }
func (m *MenuItem) CategoryID() kernel.UUID { return m.categoryID }

// Update replaces every editable attribute. Either all of them are applied or
// none is.
func (m *MenuItem) Update(title string, price kernel.Money, featured bool, categoryID kernel.UUID) error {
	next := *m
	if err := errors.Join(
		next.setTitle(title),
		next.setPrice(price),
		next.setCategory(categoryID),
	); err != nil {
		return err
	}
	next.featured = featured
	*m = next
	return nil
}

func (m *MenuItem) setID(id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return err
	}
	m.id = id
	return nil
}

func (m *MenuItem) setTitle(title string) error {
	title = strings.TrimSpace(title)
	if title == "" {
		return errs.NewValueIsRequiredError("title")
	}
	if n := utf8.RuneCountInString(title); n > MaxTitleLength {
		return errs.NewValueIsOutOfRangeError("title length", n, 1, MaxTitleLength)
	}
	m.title = title
	return nil
}

func (m *MenuItem) setPrice(price kernel.Money) error {
	if err := price.Validate(); err != nil {
		return errs.NewValueIsRequiredErrorWithCause("price", err)
	}
	if price.Decimal().GreaterThan(MaxPrice) {
		return errs.NewValueIsOutOfRangeError("price", price.String(), "0.00", MaxPrice.StringFixed(2))
	}
	m.price = price
	return nil
}

func (m *MenuItem) setCategory(categoryID kernel.UUID) error {
	if err := categoryID.Validate(); err != nil {
		return errs.NewValueIsRequiredErrorWithCause("category", err)
	}
	m.categoryID = categoryID
	return nil
}
