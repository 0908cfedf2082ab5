package menu

import (
	"errors"
	"strings"

	"littlelemon/internal/core/domain/model/kernel"
	"littlelemon/internal/pkg/errs"
)

var ErrCategoryIsNotConstructed = errors.New("Category must be created via NewCategory constructor")

// Category groups menu items, e.g. "Mains" or "Desserts".
type Category struct {
	id    kernel.UUID
	slug  string
	title string

	isConstructed bool
}

func NewCategory(id kernel.UUID, slug, title string) (*Category, error) {
	c := &Category{isConstructed: true}
	if err := id.Validate(); err != nil {
		return nil, err
	}
	c.id = id

	slug = strings.TrimSpace(slug)
	title = strings.TrimSpace(title)
	var validationErrs []error
	if slug == "" {
		validationErrs = append(validationErrs, errs.NewValueIsRequiredError("slug"))
	}
	if title == "" {
		validationErrs = append(validationErrs, errs.NewValueIsRequiredError("title"))
	}
	if err := errors.Join(validationErrs...); err != nil {
		return nil, err
	}
	c.slug, c.title = slug, title
	return c, nil
}

func (c *Category) Validate() error {
	if c == nil || !c.isConstructed {
		return ErrCategoryIsNotConstructed
	}
	return nil
}

func (c *Category) ID() kernel.UUID { return c.id }
func (c *Category) Slug() string { return c.slug }
func (c *Category) Title() string { return c.title }
