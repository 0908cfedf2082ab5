package cartrepo

import (
	"context"
	"time"

	"littlelemon/internal/adapters/out/postgres/rowlock"
	"littlelemon/internal/core/domain/model/cart"
	"littlelemon/internal/core/domain/model/kernel"

	"github.com/google/uuid"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

type aggregateTracker interface {
	TrackAggregate(id kernel.UUID, aggregate any)
}

type ownerRow struct {
	ID uuid.UUID
}

// GormCartRepository implements ports.CartRepository using GORM.
type GormCartRepository struct {
	db      *gorm.DB
	tracker aggregateTracker
}

func NewGormCartRepository(db *gorm.DB, tracker aggregateTracker) *GormCartRepository {
	return &GormCartRepository{db: db, tracker: tracker}
}

// Get loads and locks the owner's lines, oldest first. The owner's user row
// is locked first: an empty cart has no line rows to lock, and two first adds
// of the same item would otherwise both insert a line.
func (r *GormCartRepository) Get(ctx context.Context, owner kernel.UUID) (*cart.Cart, error) {
	if err := owner.Validate(); err != nil {
		return nil, err
	}

	var holders []ownerRow
	if err := rowlock.ForUpdate(r.db.WithContext(ctx)).
		Table("users").
		Select("id").
		Where("id = ?", owner.Bytes()).
		Find(&holders).Error; err != nil {
		return nil, err
	}

	var dtos []LineDTO
	if err := rowlock.ForUpdate(r.db.WithContext(ctx)).
		Where("user_id = ?", owner.Bytes()).
		Order("added_at, id").
		Find(&dtos).Error; err != nil {
		return nil, err
	}

	lines := make([]*cart.Line, 0, len(dtos))
	for _, dto := range dtos {
		l, err := toDomain(dto)
		if err != nil {
			return nil, err
		}
		lines = append(lines, l)
	}

	return cart.RestoreCart(owner, lines)
}

// Save upserts every line; quantity and line price follow the domain state.
func (r *GormCartRepository) Save(ctx context.Context, c *cart.Cart) error {
	if err := c.Validate(); err != nil {
		return err
	}
	if c.IsEmpty() {
		return nil
	}

	lines := c.Lines()
	dtos := make([]LineDTO, 0, len(lines))
	for _, l := range lines {
		dtos = append(dtos, fromDomain(c.Owner(), l))
	}

	if err := r.db.WithContext(ctx).Clauses(clause.OnConflict{
		Columns:   []clause.Column{{Name: "id"}},
		DoUpdates: clause.AssignmentColumns([]string{"quantity", "price"}),
	}).Create(&dtos).Error; err != nil {
		return err
	}

	r.tracker.TrackAggregate(c.Owner(), c)
	return nil
}

// RemoveLines deletes only the listed lines of owner. Lines of other users
// are never touched even if their ids are passed.
func (r *GormCartRepository) RemoveLines(ctx context.Context, owner kernel.UUID, lineIDs []kernel.UUID) error {
	if err := owner.Validate(); err != nil {
		return err
	}
	if len(lineIDs) == 0 {
		return nil
	}

	ids := make([]uuid.UUID, 0, len(lineIDs))
	for _, id := range lineIDs {
		ids = append(ids, id.Bytes())
	}

	return r.db.WithContext(ctx).
		Where("user_id = ? AND id IN ?", owner.Bytes(), ids).
		Delete(&LineDTO{}).Error
}

func (r *GormCartRepository) Clear(ctx context.Context, owner kernel.UUID) error {
	if err := owner.Validate(); err != nil {
		return err
	}

	return r.db.WithContext(ctx).Where("user_id = ?", owner.Bytes()).Delete(&LineDTO{}).Error
}

func (r *GormCartRepository) RemoveAddedBefore(ctx context.Context, cutoff time.Time) (int64, error) {
	result := r.db.WithContext(ctx).Where("added_at < ?", cutoff.UTC()).Delete(&LineDTO{})
	return result.RowsAffected, result.Error
}
