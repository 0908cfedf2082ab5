package postgres

import (
	"fmt"

	"littlelemon/internal/adapters/out/postgres/cartrepo"
	"littlelemon/internal/adapters/out/postgres/menurepo"
	"littlelemon/internal/adapters/out/postgres/orderrepo"
	"littlelemon/internal/adapters/out/postgres/userrepo"
	"littlelemon/internal/core/domain/model/identity"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// Models lists every persisted DTO in migration order.
func Models() []any {
	return []any{
		&userrepo.UserDTO{},
		&userrepo.GroupDTO{},
		&userrepo.UserGroupDTO{},
		&menurepo.CategoryDTO{},
		&menurepo.MenuItemDTO{},
		&cartrepo.LineDTO{},
		&orderrepo.OrderDTO{},
		&orderrepo.ItemDTO{},
	}
}

// Migrate creates or updates the schema and seeds the staff groups.
func Migrate(db *gorm.DB) error {
	if err := db.AutoMigrate(Models()...); err != nil {
		return fmt.Errorf("auto-migrate: %w", err)
	}

	for _, name := range identity.KnownGroups() {
		if err := db.Clauses(clause.OnConflict{DoNothing: true}).
			Create(&userrepo.GroupDTO{Name: name}).Error; err != nil {
			return fmt.Errorf("seed group %q: %w", name, err)
		}
	}
	return nil
}
