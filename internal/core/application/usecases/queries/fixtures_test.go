package queries_test

import (
	"testing"
	"time"

	"littlelemon/internal/adapters/out/postgres/cartrepo"
	"littlelemon/internal/adapters/out/postgres/dbtest"
	"littlelemon/internal/adapters/out/postgres/orderrepo"
	"littlelemon/internal/core/application/usecases/queries"
	"littlelemon/internal/core/domain/model/identity"
	"littlelemon/internal/core/domain/model/kernel"
	"littlelemon/internal/core/domain/model/menu"
	"littlelemon/internal/core/domain/model/order"

	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
)

type nopTracker struct{}

func (nopTracker) TrackAggregate(kernel.UUID, any) {}

// fixture is a small restaurant: one customer of each kind, one staff member
// of each group and a two-item menu.
type fixture struct {
	db *gorm.DB

	alice, bob identity.Principal
	manager    identity.Principal
	crew       identity.Principal
	superuser  identity.Principal
	stranger   identity.Principal
	crewUser   *identity.User

	mains, desserts *menu.Category
	pasta, cake     *menu.MenuItem
}

func newFixture(t *testing.T) *fixture {
	t.Helper()
	db := dbtest.NewSQLite(t)

	f := &fixture{db: db}
	f.alice = principal(t, dbtest.SeedUser(t, db, "alice", false))
	f.bob = principal(t, dbtest.SeedUser(t, db, "bob", false))
	f.manager = principal(t, dbtest.SeedUser(t, db, "mona", false, identity.GroupManager))
	f.crewUser = dbtest.SeedUser(t, db, "dan", false, identity.GroupDeliveryCrew)
	f.crew = principal(t, f.crewUser)
	f.superuser = principal(t, dbtest.SeedUser(t, db, "root", true))
	f.stranger = principal(t, dbtest.SeedUser(t, db, "walt", false, "Waiters"))

	f.mains = dbtest.SeedCategory(t, db, "Mains")
	f.desserts = dbtest.SeedCategory(t, db, "Desserts")
	f.pasta = dbtest.SeedMenuItem(t, db, f.mains, "Pasta", "10.00")
	f.cake = dbtest.SeedMenuItem(t, db, f.desserts, "Lemon cake", "5.50")
	return f
}

func principal(t *testing.T, u *identity.User) identity.Principal {
	t.Helper()
	p, err := identity.NewPrincipal(u)
	require.NoError(t, err)
	return p
}

// placeOrder stores an order of one pasta for owner, optionally assigned.
func (f *fixture) placeOrder(t *testing.T, owner identity.Principal, crew *kernel.UUID, createdAt time.Time) *order.Order {
	t.Helper()

	item, err := order.NewItem(kernel.NewUUID(), f.pasta.ID(), 1, f.pasta.Price(), f.pasta.Price())
	require.NoError(t, err)
	o, err := order.NewOrder(kernel.NewUUID(), owner.UserID(), []*order.Item{item}, createdAt)
	require.NoError(t, err)
	require.NoError(t, o.AssignDeliveryCrew(crew))
	require.NoError(t, orderrepo.NewGormOrderRepository(f.db, nopTracker{}).Add(t.Context(), o))
	return o
}

func (f *fixture) addToCart(t *testing.T, owner identity.Principal, item *menu.MenuItem, qty int) {
	t.Helper()

	repo := cartrepo.NewGormCartRepository(f.db, nopTracker{})
	c, err := repo.Get(t.Context(), owner.UserID())
	require.NoError(t, err)
	_, err = c.AddItem(kernel.NewUUID(), item.ID(), qty, item.Price(), time.Now())
	require.NoError(t, err)
	require.NoError(t, repo.Save(t.Context(), c))
}

func orderIDs(orders []queries.OrderView) []kernel.UUID {
	out := make([]kernel.UUID, 0, len(orders))
	for _, o := range orders {
		out = append(out, o.ID)
	}
	return out
}
