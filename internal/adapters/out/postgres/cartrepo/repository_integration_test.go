package cartrepo_test

import (
	"context"
	"testing"
	"time"

	"littlelemon/internal/adapters/out/postgres/cartrepo"
	"littlelemon/internal/adapters/out/postgres/dbtest"
	"littlelemon/internal/core/domain/model/identity"
	"littlelemon/internal/core/domain/model/kernel"

	"github.com/stretchr/testify/suite"
	"gorm.io/gorm"
)

// CartRepositoryIntegrationTestSuite checks the row locking of cart reads on
// PostgreSQL, which SQLite cannot reproduce.
type CartRepositoryIntegrationTestSuite struct {
	suite.Suite
	pg    *dbtest.Postgres
	owner *identity.User
}

func TestCartRepositoryIntegrationTestSuite(t *testing.T) {
	if testing.Short() {
		t.Skip("skipping PostgreSQL integration suite in short mode")
	}
	suite.Run(t, new(CartRepositoryIntegrationTestSuite))
}

func (suite *CartRepositoryIntegrationTestSuite) SetupSuite() {
	pg, err := dbtest.StartPostgres(context.Background())
	suite.Require().NoError(err)
	suite.pg = pg
}

func (suite *CartRepositoryIntegrationTestSuite) SetupTest() {
	suite.Require().NoError(suite.pg.Truncate())
	suite.owner = dbtest.SeedUser(suite.T(), suite.pg.DB, "alice", false)
}

func (suite *CartRepositoryIntegrationTestSuite) TearDownSuite() {
	if suite.pg != nil {
		suite.Require().NoError(suite.pg.Terminate(context.Background()))
	}
}

// addInTx runs one read-modify-write of the owner's cart inside tx.
func (suite *CartRepositoryIntegrationTestSuite) addInTx(tx *gorm.DB, menuItemID kernel.UUID, qty int) error {
	ctx := suite.T().Context()
	repo := cartrepo.NewGormCartRepository(tx, &tracker{})

	c, err := repo.Get(ctx, suite.owner.ID())
	if err != nil {
		return err
	}
	price, err := kernel.MoneyFromString("3.00")
	if err != nil {
		return err
	}
	if _, err = c.AddItem(kernel.NewUUID(), menuItemID, qty, price, time.Now()); err != nil {
		return err
	}
	return repo.Save(ctx, c)
}

func (suite *CartRepositoryIntegrationTestSuite) TestConcurrentFirstAddsOfSameItemMerge() {
	item := kernel.NewUUID()

	first := suite.pg.DB.Begin()
	suite.Require().NoError(first.Error)
	suite.Require().NoError(suite.addInTx(first, item, 1))

	done := make(chan error, 1)
	go func() {
		second := suite.pg.DB.Begin()
		if second.Error != nil {
			done <- second.Error
			return
		}
		if err := suite.addInTx(second, item, 2); err != nil {
			second.Rollback()
			done <- err
			return
		}
		done <- second.Commit().Error
	}()

	select {
	case err := <-done:
		first.Rollback()
		suite.Require().Failf("second writer was not blocked", "finished with %v", err)
	case <-time.After(300 * time.Millisecond):
	}

	suite.Require().NoError(first.Commit().Error)
	suite.Require().NoError(<-done)

	got, err := cartrepo.NewGormCartRepository(suite.pg.DB, &tracker{}).Get(suite.T().Context(), suite.owner.ID())
	suite.Require().NoError(err)
	suite.Require().Len(got.Lines(), 1)
	suite.Equal(3, got.Lines()[0].Quantity())
	suite.Equal("9.00", got.Total().String())
}
