package itemrepo

import (
	"context"
	"errors"

	"gorm.io/gorm"

	"stowage/internal/core/domain/model/cargo"
	"stowage/internal/pkg/errs"
)

// GormItemRepository implements ports.ItemRepository using GORM.
type GormItemRepository struct {
	db      *gorm.DB
	tracker aggregateTracker
}

type aggregateTracker interface {
	TrackAggregate(id string, aggregate any)
}

func NewGormItemRepository(db *gorm.DB, tracker aggregateTracker) *GormItemRepository {
	return &GormItemRepository{
		db:      db,
		tracker: tracker,
	}
}

func (r *GormItemRepository) Add(ctx context.Context, aggregate *cargo.Item) error {
	if err := aggregate.Validate(); err != nil {
		return err
	}

	dto := fromDomain(aggregate)
	if err := r.db.WithContext(ctx).Create(&dto).Error; err != nil {
		return err
	}

	r.tracker.TrackAggregate(aggregate.ID(), aggregate)
	return nil
}

// Update writes every column so that cleared optional fields become null.
func (r *GormItemRepository) Update(ctx context.Context, aggregate *cargo.Item) error {
	if err := aggregate.Validate(); err != nil {
		return err
	}

	dto := fromDomain(aggregate)
	result := r.db.WithContext(ctx).Model(&ItemDTO{}).Where("id = ?", dto.ID).Select("*").Updates(&dto)
	if result.Error != nil {
		return result.Error
	}

	if result.RowsAffected == 0 {
		return errs.NewObjectNotFoundError("item", dto.ID)
	}

	r.tracker.TrackAggregate(aggregate.ID(), aggregate)
	return nil
}

func (r *GormItemRepository) Delete(ctx context.Context, id string) error {
	result := r.db.WithContext(ctx).Delete(&ItemDTO{}, "id = ?", id)
	if result.Error != nil {
		return result.Error
	}

	if result.RowsAffected == 0 {
		return errs.NewObjectNotFoundError("item", id)
	}
	return nil
}

func (r *GormItemRepository) Get(ctx context.Context, id string) (*cargo.Item, error) {
	if id == "" {
		return nil, errs.NewValueIsRequiredError("id")
	}

	var dto ItemDTO
	if err := r.db.WithContext(ctx).First(&dto, "id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, errs.NewObjectNotFoundError("item", id)
		}
		return nil, err
	}

	return toDomain(dto)
}

func (r *GormItemRepository) GetByIDs(ctx context.Context, ids []string) ([]*cargo.Item, error) {
	if len(ids) == 0 {
		return []*cargo.Item{}, nil
	}
	return r.find(r.db.WithContext(ctx).Where("id IN ?", ids))
}

// GetByContainer joins the placements table.
func (r *GormItemRepository) GetByContainer(ctx context.Context, containerID string) ([]*cargo.Item, error) {
	return r.find(r.db.WithContext(ctx).
		Table("items").
		Select("items.*").
		Joins("JOIN placements ON placements.item_id = items.id").
		Where("placements.container_id = ?", containerID).
		Order("items.id"))
}

func (r *GormItemRepository) GetAllUsable(ctx context.Context) ([]*cargo.Item, error) {
	return r.find(r.db.WithContext(ctx).Where("waste_reason IS NULL").Order("id"))
}

func (r *GormItemRepository) GetAllWaste(ctx context.Context) ([]*cargo.Item, error) {
	return r.find(r.db.WithContext(ctx).Where("waste_reason IS NOT NULL").Order("waste_marked_at, id"))
}

func (r *GormItemRepository) find(query *gorm.DB) ([]*cargo.Item, error) {
	var dtos []ItemDTO
	if err := query.Find(&dtos).Error; err != nil {
		return nil, err
	}

	items := make([]*cargo.Item, 0, len(dtos))
	for _, dto := range dtos {
		item, err := toDomain(dto)
		if err != nil {
			return nil, err
		}
		items = append(items, item)
	}

	return items, nil
}
