package userrepo

import (
	"context"
	"errors"

	"littlelemon/internal/core/domain/model/identity"
	"littlelemon/internal/core/domain/model/kernel"
	"littlelemon/internal/pkg/errs"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

type aggregateTracker interface {
	TrackAggregate(id kernel.UUID, aggregate any)
}

// GormUserDirectory implements ports.UserDirectory using GORM.
type GormUserDirectory struct {
	db      *gorm.DB
	tracker aggregateTracker
}

func NewGormUserDirectory(db *gorm.DB, tracker aggregateTracker) *GormUserDirectory {
	return &GormUserDirectory{db: db, tracker: tracker}
}

// Get returns the user with its group memberships.
func (r *GormUserDirectory) Get(ctx context.Context, id kernel.UUID) (*identity.User, error) {
	if err := id.Validate(); err != nil {
		return nil, err
	}

	db := r.db.WithContext(ctx)

	var dto UserDTO
	if err := db.First(&dto, "id = ?", id.Bytes()).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, errs.NewObjectNotFoundError("user", id.String())
		}
		return nil, err
	}

	var groups []string
	if err := db.Model(&UserGroupDTO{}).
		Where("user_id = ?", dto.ID).
		Order("group_name").
		Pluck("group_name", &groups).Error; err != nil {
		return nil, err
	}

	return identity.RestoreUser(id, dto.Username, dto.IsSuperuser, groups)
}

// Add stores a new user and its memberships.
func (r *GormUserDirectory) Add(ctx context.Context, user *identity.User) error {
	if err := user.Validate(); err != nil {
		return err
	}

	err := r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		dto := UserDTO{ID: user.ID().Bytes(), Username: user.Username(), IsSuperuser: user.IsSuperuser()}
		if err := tx.Create(&dto).Error; err != nil {
			return err
		}
		for _, g := range user.Groups() {
			if err := r.ensureGroup(tx, g); err != nil {
				return err
			}
			if err := tx.Create(&UserGroupDTO{UserID: dto.ID, GroupName: g}).Error; err != nil {
				return err
			}
		}
		return nil
	})
	if err != nil {
		return err
	}

	r.tracker.TrackAggregate(user.ID(), user)
	return nil
}

func (r *GormUserDirectory) AddToGroup(ctx context.Context, userID kernel.UUID, group string) error {
	db := r.db.WithContext(ctx)
	if err := r.ensureMembershipTargets(db, userID, group); err != nil {
		return err
	}

	return db.Clauses(clause.OnConflict{DoNothing: true}).
		Create(&UserGroupDTO{UserID: userID.Bytes(), GroupName: group}).Error
}

// RemoveFromGroup succeeds when the user was not a member.
func (r *GormUserDirectory) RemoveFromGroup(ctx context.Context, userID kernel.UUID, group string) error {
	db := r.db.WithContext(ctx)
	if err := r.ensureMembershipTargets(db, userID, group); err != nil {
		return err
	}

	return db.Where("user_id = ? AND group_name = ?", userID.Bytes(), group).
		Delete(&UserGroupDTO{}).Error
}

func (r *GormUserDirectory) ensureMembershipTargets(db *gorm.DB, userID kernel.UUID, group string) error {
	if err := userID.Validate(); err != nil {
		return err
	}

	var count int64
	if err := db.Model(&GroupDTO{}).Where("name = ?", group).Count(&count).Error; err != nil {
		return err
	}
	if count == 0 {
		return errs.NewObjectNotFoundError("group", group)
	}

	if err := db.Model(&UserDTO{}).Where("id = ?", userID.Bytes()).Count(&count).Error; err != nil {
		return err
	}
	if count == 0 {
		return errs.NewObjectNotFoundError("user", userID.String())
	}
	return nil
}

func (r *GormUserDirectory) ensureGroup(db *gorm.DB, name string) error {
	return db.Clauses(clause.OnConflict{DoNothing: true}).Create(&GroupDTO{Name: name}).Error
}
