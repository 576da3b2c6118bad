package returnmanifestrepo

import (
	"context"
	"errors"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"stowage/internal/core/domain/model/plan"
	"stowage/internal/pkg/errs"
)

// GormReturnManifestRepository implements ports.ReturnManifestRepository using GORM.
type GormReturnManifestRepository struct {
	db      *gorm.DB
	tracker aggregateTracker
}

type aggregateTracker interface {
	TrackAggregate(id string, aggregate any)
}

func NewGormReturnManifestRepository(db *gorm.DB, tracker aggregateTracker) *GormReturnManifestRepository {
	return &GormReturnManifestRepository{
		db:      db,
		tracker: tracker,
	}
}

// Add stores the manifest with its items.
func (r *GormReturnManifestRepository) Add(ctx context.Context, aggregate *plan.ReturnManifest) error {
	if err := aggregate.Validate(); err != nil {
		return err
	}

	dto := fromDomain(aggregate)
	if err := r.db.WithContext(ctx).Create(&dto).Error; err != nil {
		return err
	}

	r.tracker.TrackAggregate(aggregate.ID().String(), aggregate)
	return nil
}

// Update writes the completion time; the item list of a manifest never changes.
func (r *GormReturnManifestRepository) Update(ctx context.Context, aggregate *plan.ReturnManifest) error {
	if err := aggregate.Validate(); err != nil {
		return err
	}

	result := r.db.WithContext(ctx).
		Model(&ReturnManifestDTO{}).
		Where("id = ?", aggregate.ID()).
		Update("completed_at", aggregate.CompletedAt())
	if result.Error != nil {
		return result.Error
	}

	if result.RowsAffected == 0 {
		return errs.NewObjectNotFoundError("return manifest", aggregate.ID().String())
	}

	r.tracker.TrackAggregate(aggregate.ID().String(), aggregate)
	return nil
}

func (r *GormReturnManifestRepository) Get(ctx context.Context, id uuid.UUID) (*plan.ReturnManifest, error) {
	if id == uuid.Nil {
		return nil, errs.NewValueIsRequiredError("id")
	}

	var dto ReturnManifestDTO
	err := r.db.WithContext(ctx).
		Preload("Items", func(db *gorm.DB) *gorm.DB {
			return db.Order("position")
		}).
		First(&dto, "id = ?", id).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, errs.NewObjectNotFoundError("return manifest", id.String())
		}
		return nil, err
	}

	return toDomain(dto)
}
