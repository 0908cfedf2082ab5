// Package dbtest opens migrated databases for tests: an in-memory SQLite
// database per test, or a PostgreSQL container for integration suites.
package dbtest

import (
	"context"
	"fmt"
	"strings"
	"sync/atomic"
	"testing"
	"time"

	postgres_adapter "littlelemon/internal/adapters/out/postgres"
	"littlelemon/internal/adapters/out/postgres/menurepo"
	"littlelemon/internal/adapters/out/postgres/userrepo"
	"littlelemon/internal/core/domain/model/identity"
	"littlelemon/internal/core/domain/model/kernel"
	"littlelemon/internal/core/domain/model/menu"

	"github.com/stretchr/testify/require"
	"github.com/testcontainers/testcontainers-go"
	"github.com/testcontainers/testcontainers-go/modules/postgres"
	"github.com/testcontainers/testcontainers-go/wait"
	gorm_postgres "gorm.io/driver/postgres"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

var dbSeq atomic.Int64

// NewSQLite returns a migrated in-memory database private to t.
// A single connection keeps every statement on the same in-memory database.
func NewSQLite(t testing.TB) *gorm.DB {
	t.Helper()

	name := strings.NewReplacer("/", "_", " ", "_").Replace(t.Name())
	dsn := fmt.Sprintf("file:%s_%d?mode=memory&cache=shared", name, dbSeq.Add(1))

	db, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{Logger: logger.Default.LogMode(logger.Silent)})
	require.NoError(t, err)

	sqlDB, err := db.DB()
	require.NoError(t, err)
	sqlDB.SetMaxOpenConns(1)
	t.Cleanup(func() { _ = sqlDB.Close() })

	require.NoError(t, postgres_adapter.Migrate(db))
	return db
}

// Postgres is a running PostgreSQL container with a migrated schema.
type Postgres struct {
	Container *postgres.PostgresContainer
	DB        *gorm.DB
}

// StartPostgres starts postgres:15-alpine and migrates it.
func StartPostgres(ctx context.Context) (*Postgres, error) {
	container, err := postgres.Run(ctx,
		"postgres:15-alpine",
		postgres.WithDatabase("testdb"),
		postgres.WithUsername("testuser"),
		postgres.WithPassword("testpass"),
		testcontainers.WithWaitStrategy(
			wait.ForLog("database system is ready to accept connections").
				WithOccurrence(2).
				WithStartupTimeout(30*time.Second),
		),
	)
	if err != nil {
		return nil, err
	}

	dsn, err := container.ConnectionString(ctx, "sslmode=disable")
	if err != nil {
		_ = container.Terminate(ctx)
		return nil, err
	}

	db, err := gorm.Open(gorm_postgres.Open(dsn), &gorm.Config{Logger: logger.Default.LogMode(logger.Silent)})
	if err != nil {
		_ = container.Terminate(ctx)
		return nil, err
	}

	if err := postgres_adapter.Migrate(db); err != nil {
		_ = container.Terminate(ctx)
		return nil, err
	}

	return &Postgres{Container: container, DB: db}, nil
}

// Truncate empties every table except the seeded groups.
func (p *Postgres) Truncate() error {
	return p.DB.Exec(
		"TRUNCATE TABLE order_items, orders, cart_lines, menu_items, categories, user_groups, users",
	).Error
}

func (p *Postgres) Terminate(ctx context.Context) error {
	return p.Container.Terminate(ctx)
}

type nopTracker struct{}

func (nopTracker) TrackAggregate(kernel.UUID, any) {}

// SeedUser stores a user with the given groups.
func SeedUser(t testing.TB, db *gorm.DB, username string, superuser bool, groups ...string) *identity.User {
	t.Helper()

	u, err := identity.RestoreUser(kernel.NewUUID(), username, superuser, groups)
	require.NoError(t, err)
	require.NoError(t, userrepo.NewGormUserDirectory(db, nopTracker{}).Add(context.Background(), u))
	return u
}

// SeedCategory stores a category whose slug is the lower-cased title.
func SeedCategory(t testing.TB, db *gorm.DB, title string) *menu.Category {
	t.Helper()

	c, err := menu.NewCategory(kernel.NewUUID(), strings.ToLower(title), title)
	require.NoError(t, err)
	require.NoError(t, menurepo.NewGormMenuRepository(db, nopTracker{}).AddCategory(context.Background(), c))
	return c
}

// SeedMenuItem stores a menu item priced at price ("12.50").
func SeedMenuItem(t testing.TB, db *gorm.DB, category *menu.Category, title, price string) *menu.MenuItem {
	t.Helper()

	p, err := kernel.MoneyFromString(price)
	require.NoError(t, err)
	item, err := menu.NewMenuItem(kernel.NewUUID(), title, p, false, category.ID())
	require.NoError(t, err)
	require.NoError(t, menurepo.NewGormMenuRepository(db, nopTracker{}).Add(context.Background(), item))
	return item
}
