package http

import (
	"encoding/json"
	"net/http"

	"littlelemon/internal/core/application/usecases/commands"
	"littlelemon/internal/core/application/usecases/queries"
	"littlelemon/internal/core/domain/model/kernel"
	"littlelemon/internal/pkg/errs"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"github.com/shopspring/decimal"
)

// ListMenuItems handles GET /api/menu-items?category=&ordering=.
func (s *Server) ListMenuItems(c echo.Context) error {
	p, err := principalFrom(c)
	if err != nil {
		return err
	}
	category, err := queryString(c, "category")
	if err != nil {
		return err
	}
	ordering, err := queryString(c, "ordering")
	if err != nil {
		return err
	}

	query, err := queries.NewListMenuItemsQuery(p, category, ordering)
	if err != nil {
		return err
	}
	items, err := s.h.ListMenuItems.Handle(c.Request().Context(), query)
	if err != nil {
		return err
	}

	response := make([]MenuItem, 0, len(items))
	for _, it := range items {
		response = append(response, menuItemFromView(it))
	}
	return c.JSON(http.StatusOK, response)
}

// GetMenuItem handles GET /api/menu-items/:id.
func (s *Server) GetMenuItem(c echo.Context) error {
	p, err := principalFrom(c)
	if err != nil {
		return err
	}
	id, err := pathUUID(c, "id")
	if err != nil {
		return err
	}

	query, err := queries.NewGetMenuItemQuery(p, id)
	if err != nil {
		return err
	}
	item, err := s.h.GetMenuItem.Handle(c.Request().Context(), query)
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, menuItemFromView(item))
}

// CreateMenuItem handles POST /api/menu-items.
func (s *Server) CreateMenuItem(c echo.Context) error {
	cmd, err := s.saveMenuItemCommand(c, kernel.NewUUID())
	if err != nil {
		return err
	}

	item, err := s.h.CreateMenuItem.Handle(c.Request().Context(), cmd)
	if err != nil {
		return err
	}
	return c.JSON(http.StatusCreated, menuItemFromDomain(item))
}

// UpdateMenuItem handles PUT /api/menu-items/:id.
func (s *Server) UpdateMenuItem(c echo.Context) error {
	id, err := pathUUID(c, "id")
	if err != nil {
		return err
	}
	cmd, err := s.saveMenuItemCommand(c, id)
	if err != nil {
		return err
	}

	item, err := s.h.UpdateMenuItem.Handle(c.Request().Context(), cmd)
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, menuItemFromDomain(item))
}

// PatchMenuItem handles PATCH /api/menu-items/:id. Fields missing from the
// body keep their stored value.
func (s *Server) PatchMenuItem(c echo.Context) error {
	p, err := principalFrom(c)
	if err != nil {
		return err
	}
	id, err := pathUUID(c, "id")
	if err != nil {
		return err
	}

	query, err := queries.NewGetMenuItemQuery(p, id)
	if err != nil {
		return err
	}
	current, err := s.h.GetMenuItem.Handle(c.Request().Context(), query)
	if err != nil {
		return err
	}

	var body map[string]json.RawMessage
	if err = json.NewDecoder(c.Request().Body).Decode(&body); err != nil {
		return errs.NewValueIsInvalidErrorWithCause("body", err)
	}
	merged, err := mergeMenuItemPatch(current, body)
	if err != nil {
		return err
	}

	cmd, err := commands.NewSaveMenuItemCommand(p, id, merged.Title, merged.Price, merged.Featured, merged.CategoryID)
	if err != nil {
		return err
	}
	item, err := s.h.UpdateMenuItem.Handle(c.Request().Context(), cmd)
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, menuItemFromDomain(item))
}

// DeleteMenuItem handles DELETE /api/menu-items/:id.
func (s *Server) DeleteMenuItem(c echo.Context) error {
	p, err := principalFrom(c)
	if err != nil {
		return err
	}
	id, err := pathUUID(c, "id")
	if err != nil {
		return err
	}

	cmd, err := commands.NewDeleteMenuItemCommand(p, id)
	if err != nil {
		return err
	}
	if err = s.h.DeleteMenuItem.Handle(c.Request().Context(), cmd); err != nil {
		return err
	}
	return c.NoContent(http.StatusNoContent)
}

func mergeMenuItemPatch(current queries.MenuItemView, body map[string]json.RawMessage) (queries.MenuItemView, error) {
	merged := current

	if raw, ok := body["title"]; ok {
		if err := json.Unmarshal(raw, &merged.Title); err != nil {
			return queries.MenuItemView{}, errs.NewValueIsInvalidErrorWithCause("title", err)
		}
	}
	if raw, ok := body["price"]; ok {
		var amount decimal.Decimal
		if err := json.Unmarshal(raw, &amount); err != nil {
			return queries.MenuItemView{}, errs.NewValueIsInvalidErrorWithCause("price", err)
		}
		price, err := kernel.NewMoney(amount)
		if err != nil {
			return queries.MenuItemView{}, err
		}
		merged.Price = price
	}
	if raw, ok := body["featured"]; ok {
		if err := json.Unmarshal(raw, &merged.Featured); err != nil {
			return queries.MenuItemView{}, errs.NewValueIsInvalidErrorWithCause("featured", err)
		}
	}
	if raw, ok := body["category"]; ok {
		var category uuid.UUID
		if err := json.Unmarshal(raw, &category); err != nil {
			return queries.MenuItemView{}, errs.NewValueIsInvalidErrorWithCause("category", err)
		}
		id, err := bodyUUID("category", category)
		if err != nil {
			return queries.MenuItemView{}, err
		}
		merged.CategoryID = id
	}

	return merged, nil
}

func (s *Server) saveMenuItemCommand(c echo.Context, id kernel.UUID) (commands.SaveMenuItemCommand, error) {
	p, err := principalFrom(c)
	if err != nil {
		return commands.SaveMenuItemCommand{}, err
	}

	var input MenuItemInput
	if err = c.Bind(&input); err != nil {
		return commands.SaveMenuItemCommand{}, err
	}

	price, err := kernel.NewMoney(input.Price)
	if err != nil {
		return commands.SaveMenuItemCommand{}, err
	}
	categoryID, err := bodyUUID("category", input.Category)
	if err != nil {
		return commands.SaveMenuItemCommand{}, err
	}

	return commands.NewSaveMenuItemCommand(p, id, input.Title, price, input.Featured, categoryID)
}

// ListCategories handles GET /api/categories.
func (s *Server) ListCategories(c echo.Context) error {
	p, err := principalFrom(c)
	if err != nil {
		return err
	}

	query, err := queries.NewListCategoriesQuery(p)
	if err != nil {
		return err
	}
	categories, err := s.h.ListCategories.Handle(c.Request().Context(), query)
	if err != nil {
		return err
	}

	response := make([]Category, 0, len(categories))
	for _, cat := range categories {
		response = append(response, categoryFromView(cat))
	}
	return c.JSON(http.StatusOK, response)
}

// CreateCategory handles POST /api/categories.
func (s *Server) CreateCategory(c echo.Context) error {
	p, err := principalFrom(c)
	if err != nil {
		return err
	}

	var input CategoryInput
	if err = c.Bind(&input); err != nil {
		return err
	}

	cmd, err := commands.NewCreateCategoryCommand(p, kernel.NewUUID(), input.Slug, input.Title)
	if err != nil {
		return err
	}
	category, err := s.h.CreateCategory.Handle(c.Request().Context(), cmd)
	if err != nil {
		return err
	}
	return c.JSON(http.StatusCreated, categoryFromDomain(category))
}
