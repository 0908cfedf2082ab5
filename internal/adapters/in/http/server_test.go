package http_test

import (
	"bytes"
	"encoding/json"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"testing"

	"littlelemon/cmd"
	httpin "littlelemon/internal/adapters/in/http"
	"littlelemon/internal/adapters/out/postgres/dbtest"
	"littlelemon/internal/core/domain/model/identity"
	"littlelemon/internal/core/domain/model/menu"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/suite"
	"gorm.io/gorm"
)

type ServerSuite struct {
	suite.Suite

	db   *gorm.DB
	echo *echo.Echo

	alice    *identity.User
	bob      *identity.User
	manager  *identity.User
	crew     *identity.User
	stranger *identity.User

	mains *menu.Category
	pasta *menu.MenuItem
	cake  *menu.MenuItem
}

func TestServerSuite(t *testing.T) {
	suite.Run(t, new(ServerSuite))
}

func (s *ServerSuite) SetupTest() {
	s.db = dbtest.NewSQLite(s.T())

	root := cmd.NewCompositionRoot(cmd.Config{}, s.db)
	e, err := httpin.NewEcho(root.CreateHTTPServer(), slog.New(slog.NewTextHandler(io.Discard, nil)))
	s.Require().NoError(err)
	s.echo = e

	s.alice = dbtest.SeedUser(s.T(), s.db, "alice", false)
	s.bob = dbtest.SeedUser(s.T(), s.db, "bob", false)
	s.manager = dbtest.SeedUser(s.T(), s.db, "maria", false, identity.GroupManager)
	s.crew = dbtest.SeedUser(s.T(), s.db, "dan", false, identity.GroupDeliveryCrew)
	s.stranger = dbtest.SeedUser(s.T(), s.db, "walter", false, "Waiters")

	s.mains = dbtest.SeedCategory(s.T(), s.db, "Mains")
	desserts := dbtest.SeedCategory(s.T(), s.db, "Desserts")
	s.pasta = dbtest.SeedMenuItem(s.T(), s.db, s.mains, "Pasta", "10.00")
	s.cake = dbtest.SeedMenuItem(s.T(), s.db, desserts, "Cake", "5.50")
}

func (s *ServerSuite) do(method, path string, as *identity.User, body any) *httptest.ResponseRecorder {
	var reader io.Reader
	if body != nil {
		raw, err := json.Marshal(body)
		s.Require().NoError(err)
		reader = bytes.NewReader(raw)
	}

	req := httptest.NewRequest(method, path, reader)
	if body != nil {
		req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	}
	if as != nil {
		req.Header.Set(httpin.HeaderUserID, as.ID().String())
	}

	rec := httptest.NewRecorder()
	s.echo.ServeHTTP(rec, req)
	return rec
}

func (s *ServerSuite) decode(rec *httptest.ResponseRecorder, into any) {
	s.Require().NoError(json.Unmarshal(rec.Body.Bytes(), into), rec.Body.String())
}

func (s *ServerSuite) addToCart(as *identity.User, item *menu.MenuItem, qty int) {
	rec := s.do(http.MethodPost, "/api/cart/menu-items", as, map[string]any{
		"menuitem": item.ID().String(),
		"quantity": qty,
	})
	s.Require().Equal(http.StatusCreated, rec.Code, rec.Body.String())
}

func (s *ServerSuite) placeOrder(as *identity.User) httpin.OrderDetail {
	rec := s.do(http.MethodPost, "/api/orders", as, nil)
	s.Require().Equal(http.StatusCreated, rec.Code, rec.Body.String())

	var detail httpin.OrderDetail
	s.decode(rec, &detail)
	return detail
}

func (s *ServerSuite) TestHealth() {
	rec := s.do(http.MethodGet, "/health", nil, nil)

	s.Equal(http.StatusOK, rec.Code)
	s.Equal("Healthy", rec.Body.String())
}

func (s *ServerSuite) TestUnauthenticatedRequestsAreRejected() {
	rec := s.do(http.MethodGet, "/api/menu-items", nil, nil)
	s.Equal(http.StatusUnauthorized, rec.Code)

	req := httptest.NewRequest(http.MethodGet, "/api/menu-items", nil)
	req.Header.Set(httpin.HeaderUserID, uuid.NewString())
	unknown := httptest.NewRecorder()
	s.echo.ServeHTTP(unknown, req)
	s.Equal(http.StatusUnauthorized, unknown.Code)

	req = httptest.NewRequest(http.MethodGet, "/api/menu-items", nil)
	req.Header.Set(httpin.HeaderUserID, "not-a-uuid")
	malformed := httptest.NewRecorder()
	s.echo.ServeHTTP(malformed, req)
	s.Equal(http.StatusUnauthorized, malformed.Code)

	var body httpin.ErrorResponse
	s.decode(malformed, &body)
	s.Equal(http.StatusUnauthorized, body.Code)
}

func (s *ServerSuite) TestUnrecognizedRoleIsDenied() {
	rec := s.do(http.MethodGet, "/api/menu-items", s.stranger, nil)
	s.Equal(http.StatusForbidden, rec.Code)
}

func (s *ServerSuite) TestListMenuItems_FilterAndOrdering() {
	rec := s.do(http.MethodGet, "/api/menu-items?ordering=-price", s.alice, nil)
	s.Require().Equal(http.StatusOK, rec.Code, rec.Body.String())

	var items []httpin.MenuItem
	s.decode(rec, &items)
	s.Require().Len(items, 2)
	s.Equal("Pasta", items[0].Title)
	s.Equal("10.00", items[0].Price)
	s.Equal("Cake", items[1].Title)

	rec = s.do(http.MethodGet, "/api/menu-items?category=mains", s.alice, nil)
	s.Require().Equal(http.StatusOK, rec.Code, rec.Body.String())
	items = nil
	s.decode(rec, &items)
	s.Require().Len(items, 1)
	s.Equal(s.pasta.ID().String(), items[0].ID.String())
}

func (s *ServerSuite) TestListMenuItems_UnknownOrderingIsBadRequest() {
	rec := s.do(http.MethodGet, "/api/menu-items?ordering=calories", s.alice, nil)
	s.Equal(http.StatusBadRequest, rec.Code)
}

func (s *ServerSuite) TestMenuItemWritesNeedManager() {
	input := map[string]any{
		"title":    "Soup",
		"price":    "4.25",
		"featured": true,
		"category": s.mains.ID().String(),
	}

	rec := s.do(http.MethodPost, "/api/menu-items", s.alice, input)
	s.Equal(http.StatusForbidden, rec.Code)

	rec = s.do(http.MethodPost, "/api/menu-items", s.manager, input)
	s.Require().Equal(http.StatusCreated, rec.Code, rec.Body.String())
	var created httpin.MenuItem
	s.decode(rec, &created)
	s.Equal("4.25", created.Price)
	s.True(created.Featured)

	rec = s.do(http.MethodGet, "/api/menu-items/"+created.ID.String(), s.alice, nil)
	s.Require().Equal(http.StatusOK, rec.Code)

	input["price"] = "4.75"
	rec = s.do(http.MethodPut, "/api/menu-items/"+created.ID.String(), s.manager, input)
	s.Require().Equal(http.StatusOK, rec.Code, rec.Body.String())
	var updated httpin.MenuItem
	s.decode(rec, &updated)
	s.Equal("4.75", updated.Price)

	rec = s.do(http.MethodDelete, "/api/menu-items/"+created.ID.String(), s.manager, nil)
	s.Equal(http.StatusForbidden, rec.Code)
}

func (s *ServerSuite) TestPatchMenuItem_KeepsAbsentFields() {
	path := "/api/menu-items/" + s.pasta.ID().String()

	rec := s.do(http.MethodPatch, path, s.alice, map[string]any{"price": "1.00"})
	s.Equal(http.StatusForbidden, rec.Code)

	rec = s.do(http.MethodPatch, path, s.manager, map[string]any{"price": "11.50", "featured": true})
	s.Require().Equal(http.StatusOK, rec.Code, rec.Body.String())
	var patched httpin.MenuItem
	s.decode(rec, &patched)
	s.Equal("Pasta", patched.Title)
	s.Equal("11.50", patched.Price)
	s.True(patched.Featured)
	s.Equal(s.mains.ID().String(), patched.Category.String())

	rec = s.do(http.MethodPatch, path, s.manager, map[string]any{})
	s.Equal(http.StatusBadRequest, rec.Code)

	rec = s.do(http.MethodPatch, "/api/menu-items/"+uuid.NewString(), s.manager, map[string]any{"title": "Ghost"})
	s.Equal(http.StatusNotFound, rec.Code)
}

func (s *ServerSuite) TestGetMenuItem_NotFoundAndMalformedID() {
	rec := s.do(http.MethodGet, "/api/menu-items/"+uuid.NewString(), s.alice, nil)
	s.Equal(http.StatusNotFound, rec.Code)

	rec = s.do(http.MethodGet, "/api/menu-items/42", s.alice, nil)
	s.Equal(http.StatusBadRequest, rec.Code)
}

func (s *ServerSuite) TestCategories() {
	rec := s.do(http.MethodPost, "/api/categories", s.manager, map[string]any{"slug": "drinks", "title": "Drinks"})
	s.Require().Equal(http.StatusCreated, rec.Code, rec.Body.String())

	rec = s.do(http.MethodGet, "/api/categories", s.alice, nil)
	s.Require().Equal(http.StatusOK, rec.Code)
	var categories []httpin.Category
	s.decode(rec, &categories)
	s.Len(categories, 3)

	rec = s.do(http.MethodPost, "/api/categories", s.alice, map[string]any{"slug": "wine", "title": "Wine"})
	s.Equal(http.StatusForbidden, rec.Code)
}

func (s *ServerSuite) TestCheckoutFlow() {
	s.addToCart(s.alice, s.pasta, 2)
	s.addToCart(s.alice, s.cake, 1)

	rec := s.do(http.MethodGet, "/api/cart/menu-items", s.alice, nil)
	s.Require().Equal(http.StatusOK, rec.Code)
	var cart httpin.Cart
	s.decode(rec, &cart)
	s.Len(cart.Lines, 2)
	s.Equal("25.50", cart.Total)

	detail := s.placeOrder(s.alice)
	s.Equal("25.50", detail.Total)
	s.Equal(0, detail.Status)
	s.Nil(detail.DeliveryCrew)
	s.Len(detail.Items, 2)
	s.Equal(s.alice.ID().String(), detail.User.String())

	rec = s.do(http.MethodGet, "/api/cart/menu-items", s.alice, nil)
	s.Require().Equal(http.StatusOK, rec.Code)
	cart = httpin.Cart{}
	s.decode(rec, &cart)
	s.Empty(cart.Lines)
	s.Equal("0.00", cart.Total)

	rec = s.do(http.MethodGet, "/api/orders/"+detail.ID.String(), s.alice, nil)
	s.Require().Equal(http.StatusOK, rec.Code, rec.Body.String())
	var fetched httpin.OrderDetail
	s.decode(rec, &fetched)
	s.Equal(detail.ID, fetched.ID)
	s.Len(fetched.Items, 2)
}

func (s *ServerSuite) TestPlaceOrder_EmptyCartIsBadRequest() {
	rec := s.do(http.MethodPost, "/api/orders", s.alice, nil)
	s.Equal(http.StatusBadRequest, rec.Code)

	var orders []httpin.Order
	rec = s.do(http.MethodGet, "/api/orders", s.alice, nil)
	s.Require().Equal(http.StatusOK, rec.Code)
	s.decode(rec, &orders)
	s.Empty(orders)
}

func (s *ServerSuite) TestAddCartItem_QuantityBounds() {
	for _, qty := range []int{0, 100} {
		rec := s.do(http.MethodPost, "/api/cart/menu-items", s.alice, map[string]any{
			"menuitem": s.cake.ID().String(),
			"quantity": qty,
		})
		s.Equal(http.StatusBadRequest, rec.Code, "quantity %d", qty)
	}

	s.addToCart(s.alice, s.cake, 98)
	rec := s.do(http.MethodPost, "/api/cart/menu-items", s.alice, map[string]any{
		"menuitem": s.cake.ID().String(),
		"quantity": 2,
	})
	s.Equal(http.StatusBadRequest, rec.Code)

	rec = s.do(http.MethodGet, "/api/cart/menu-items", s.alice, nil)
	s.Require().Equal(http.StatusOK, rec.Code)
	var cart httpin.Cart
	s.decode(rec, &cart)
	s.Require().Len(cart.Lines, 1)
	s.Equal(98, cart.Lines[0].Quantity)

	detail := s.placeOrder(s.alice)
	s.Equal("539.00", detail.Total)
}

func (s *ServerSuite) TestCartIsPrivate() {
	s.addToCart(s.alice, s.pasta, 1)

	rec := s.do(http.MethodGet, "/api/cart/menu-items", s.bob, nil)
	s.Require().Equal(http.StatusOK, rec.Code)
	var cart httpin.Cart
	s.decode(rec, &cart)
	s.Empty(cart.Lines)

	rec = s.do(http.MethodPost, "/api/cart/menu-items", s.manager, map[string]any{
		"menuitem": s.pasta.ID().String(),
		"quantity": 1,
	})
	s.Equal(http.StatusForbidden, rec.Code)

	rec = s.do(http.MethodDelete, "/api/cart/menu-items", s.alice, nil)
	s.Equal(http.StatusNoContent, rec.Code)
}

func (s *ServerSuite) TestOrderVisibility() {
	s.addToCart(s.alice, s.pasta, 1)
	order := s.placeOrder(s.alice)

	rec := s.do(http.MethodGet, "/api/orders/"+order.ID.String(), s.bob, nil)
	s.Equal(http.StatusForbidden, rec.Code)

	rec = s.do(http.MethodGet, "/api/orders/"+uuid.NewString(), s.alice, nil)
	s.Equal(http.StatusNotFound, rec.Code)

	rec = s.do(http.MethodGet, "/api/orders", s.crew, nil)
	s.Require().Equal(http.StatusOK, rec.Code)
	var orders []httpin.Order
	s.decode(rec, &orders)
	s.Empty(orders)

	rec = s.do(http.MethodGet, "/api/orders", s.manager, nil)
	s.Require().Equal(http.StatusOK, rec.Code)
	s.decode(rec, &orders)
	s.Len(orders, 1)
}

func (s *ServerSuite) TestManagerAssignsCrewAndCrewDelivers() {
	s.addToCart(s.alice, s.pasta, 1)
	order := s.placeOrder(s.alice)
	path := "/api/orders/" + order.ID.String()

	rec := s.do(http.MethodPatch, path, s.crew, map[string]any{"status": 1})
	s.Equal(http.StatusForbidden, rec.Code)

	rec = s.do(http.MethodPatch, path, s.manager, map[string]any{"total": "0.01"})
	s.Equal(http.StatusForbidden, rec.Code)

	rec = s.do(http.MethodPatch, path, s.manager, map[string]any{"delivery_crew": s.alice.ID().String()})
	s.Equal(http.StatusBadRequest, rec.Code)

	rec = s.do(http.MethodPatch, path, s.manager, map[string]any{"delivery_crew": s.crew.ID().String()})
	s.Require().Equal(http.StatusOK, rec.Code, rec.Body.String())
	var assigned httpin.Order
	s.decode(rec, &assigned)
	s.Require().NotNil(assigned.DeliveryCrew)
	s.Equal(s.crew.ID().String(), assigned.DeliveryCrew.String())
	s.Equal(0, assigned.Status)
	s.Equal("10.00", assigned.Total)

	rec = s.do(http.MethodGet, "/api/orders", s.crew, nil)
	s.Require().Equal(http.StatusOK, rec.Code)
	var orders []httpin.Order
	s.decode(rec, &orders)
	s.Len(orders, 1)

	rec = s.do(http.MethodPatch, path, s.crew, map[string]any{"delivery_crew": nil})
	s.Equal(http.StatusForbidden, rec.Code)

	rec = s.do(http.MethodPatch, path, s.crew, map[string]any{"status": 1})
	s.Require().Equal(http.StatusOK, rec.Code, rec.Body.String())
	var delivered httpin.Order
	s.decode(rec, &delivered)
	s.Equal(1, delivered.Status)

	rec = s.do(http.MethodPatch, path, s.manager, map[string]any{"status": 7})
	s.Equal(http.StatusBadRequest, rec.Code)
}

func (s *ServerSuite) TestManagerUnassignsCrew() {
	s.addToCart(s.alice, s.pasta, 1)
	order := s.placeOrder(s.alice)
	path := "/api/orders/" + order.ID.String()

	rec := s.do(http.MethodPut, path, s.manager, map[string]any{"delivery_crew": s.crew.ID().String()})
	s.Require().Equal(http.StatusOK, rec.Code, rec.Body.String())

	rec = s.do(http.MethodPatch, path, s.manager, map[string]any{"delivery_crew": nil})
	s.Require().Equal(http.StatusOK, rec.Code, rec.Body.String())
	var unassigned httpin.Order
	s.decode(rec, &unassigned)
	s.Nil(unassigned.DeliveryCrew)
}

func (s *ServerSuite) TestUpdateOrder_EmptyBodyIsBadRequest() {
	s.addToCart(s.alice, s.pasta, 1)
	order := s.placeOrder(s.alice)

	rec := s.do(http.MethodPatch, "/api/orders/"+order.ID.String(), s.alice, map[string]any{})
	s.Equal(http.StatusBadRequest, rec.Code)
}

func (s *ServerSuite) TestDeleteOrder() {
	s.addToCart(s.alice, s.pasta, 1)
	order := s.placeOrder(s.alice)
	path := "/api/orders/" + order.ID.String()

	rec := s.do(http.MethodDelete, path, s.alice, nil)
	s.Equal(http.StatusForbidden, rec.Code)

	rec = s.do(http.MethodDelete, path, s.manager, nil)
	s.Equal(http.StatusNoContent, rec.Code)

	rec = s.do(http.MethodGet, path, s.manager, nil)
	s.Equal(http.StatusNotFound, rec.Code)
}

func (s *ServerSuite) TestGroupMembership() {
	path := "/api/groups/delivery-crew/users"

	rec := s.do(http.MethodGet, path, s.alice, nil)
	s.Equal(http.StatusForbidden, rec.Code)

	rec = s.do(http.MethodPost, path, s.manager, map[string]any{"user_id": s.bob.ID().String()})
	s.Require().Equal(http.StatusCreated, rec.Code, rec.Body.String())

	rec = s.do(http.MethodGet, path, s.manager, nil)
	s.Require().Equal(http.StatusOK, rec.Code)
	var members []httpin.Member
	s.decode(rec, &members)
	s.Require().Len(members, 2)
	s.Equal("bob", members[0].Username)
	s.Equal("dan", members[1].Username)

	rec = s.do(http.MethodDelete, path+"/"+s.bob.ID().String(), s.manager, nil)
	s.Equal(http.StatusNoContent, rec.Code)

	rec = s.do(http.MethodPost, path, s.manager, map[string]any{"user_id": uuid.NewString()})
	s.Equal(http.StatusNotFound, rec.Code)

	rec = s.do(http.MethodPost, path, s.manager, map[string]any{})
	s.Equal(http.StatusBadRequest, rec.Code)
}

func (s *ServerSuite) TestUnknownRouteIsNotFound() {
	rec := s.do(http.MethodGet, "/api/specials", s.alice, nil)
	s.Equal(http.StatusNotFound, rec.Code)
}
