package containerrepo

import (
	"context"
	"errors"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"stowage/internal/core/domain/model/storage"
	"stowage/internal/pkg/errs"
)

// GormContainerRepository implements ports.ContainerRepository using GORM.
type GormContainerRepository struct {
	db      *gorm.DB
	tracker aggregateTracker
}

type aggregateTracker interface {
	TrackAggregate(id string, aggregate any)
}

func NewGormContainerRepository(db *gorm.DB, tracker aggregateTracker) *GormContainerRepository {
	return &GormContainerRepository{
		db:      db,
		tracker: tracker,
	}
}

func (r *GormContainerRepository) Add(ctx context.Context, aggregate *storage.Container) error {
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

// Update writes every column, including an available volume of zero.
func (r *GormContainerRepository) Update(ctx context.Context, aggregate *storage.Container) error {
	if err := aggregate.Validate(); err != nil {
		return err
	}

	dto := fromDomain(aggregate)
	result := r.db.WithContext(ctx).Model(&ContainerDTO{}).Where("id = ?", dto.ID).Select("*").Updates(&dto)
	if result.Error != nil {
		return result.Error
	}

	if result.RowsAffected == 0 {
		return errs.NewObjectNotFoundError("container", dto.ID)
	}

	r.tracker.TrackAggregate(aggregate.ID(), aggregate)
	return nil
}

func (r *GormContainerRepository) Get(ctx context.Context, id string) (*storage.Container, error) {
	return r.get(r.db.WithContext(ctx), id)
}

// GetForUpdate takes a FOR UPDATE row lock; it only serializes writers inside a
// transaction.
func (r *GormContainerRepository) GetForUpdate(ctx context.Context, id string) (*storage.Container, error) {
	return r.get(r.db.WithContext(ctx).Clauses(clause.Locking{Strength: clause.LockingStrengthUpdate}), id)
}

func (r *GormContainerRepository) GetAll(ctx context.Context) ([]*storage.Container, error) {
	return r.getAll(r.db.WithContext(ctx))
}

// GetAllForUpdate locks rows in id order, the order every locking caller uses.
func (r *GormContainerRepository) GetAllForUpdate(ctx context.Context) ([]*storage.Container, error) {
	return r.getAll(r.db.WithContext(ctx).Clauses(clause.Locking{Strength: clause.LockingStrengthUpdate}))
}

func (r *GormContainerRepository) get(db *gorm.DB, id string) (*storage.Container, error) {
	if id == "" {
		return nil, errs.NewValueIsRequiredError("id")
	}

	var dto ContainerDTO
	if err := db.First(&dto, "id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, errs.NewObjectNotFoundError("container", id)
		}
		return nil, err
	}

	return toDomain(dto)
}

func (r *GormContainerRepository) getAll(db *gorm.DB) ([]*storage.Container, error) {
	var dtos []ContainerDTO
	if err := db.Order("id").Find(&dtos).Error; err != nil {
		return nil, err
	}

	containers := make([]*storage.Container, 0, len(dtos))
	for _, dto := range dtos {
		c, err := toDomain(dto)
		if err != nil {
			return nil, err
		}
		containers = append(containers, c)
	}

	return containers, nil
}
