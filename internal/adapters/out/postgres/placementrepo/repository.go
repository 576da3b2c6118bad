package placementrepo

import (
	"context"
	"errors"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"stowage/internal/core/domain/model/placement"
	"stowage/internal/pkg/errs"
)

// GormPlacementRepository implements ports.PlacementRepository using GORM.
type GormPlacementRepository struct {
	db *gorm.DB
}

func NewGormPlacementRepository(db *gorm.DB) *GormPlacementRepository {
	return &GormPlacementRepository{db: db}
}

// Save upserts on item_id.
func (r *GormPlacementRepository) Save(ctx context.Context, p placement.Placement) error {
	if err := p.Validate(); err != nil {
		return err
	}

	dto := fromDomain(p)
	return r.db.WithContext(ctx).
		Clauses(clause.OnConflict{
			Columns:   []clause.Column{{Name: "item_id"}},
			UpdateAll: true,
		}).
		Create(&dto).Error
}

func (r *GormPlacementRepository) Delete(ctx context.Context, itemID string) error {
	result := r.db.WithContext(ctx).Delete(&PlacementDTO{}, "item_id = ?", itemID)
	if result.Error != nil {
		return result.Error
	}

	if result.RowsAffected == 0 {
		return errs.NewObjectNotFoundError("placement", itemID)
	}
	return nil
}

func (r *GormPlacementRepository) GetByItem(ctx context.Context, itemID string) (placement.Placement, error) {
	var dto PlacementDTO
	if err := r.db.WithContext(ctx).First(&dto, "item_id = ?", itemID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return placement.Placement{}, errs.NewObjectNotFoundError("placement", itemID)
		}
		return placement.Placement{}, err
	}

	return toDomain(dto)
}

// GetByContainer returns the placements front to back.
func (r *GormPlacementRepository) GetByContainer(ctx context.Context, containerID string) ([]placement.Placement, error) {
	return r.find(r.db.WithContext(ctx).Where("container_id = ?", containerID).Order("start_depth, item_id"))
}

func (r *GormPlacementRepository) GetAll(ctx context.Context) ([]placement.Placement, error) {
	return r.find(r.db.WithContext(ctx).Order("container_id, start_depth, item_id"))
}

func (r *GormPlacementRepository) find(query *gorm.DB) ([]placement.Placement, error) {
	var dtos []PlacementDTO
	if err := query.Find(&dtos).Error; err != nil {
		return nil, err
	}

	placements := make([]placement.Placement, 0, len(dtos))
	for _, dto := range dtos {
		p, err := toDomain(dto)
		if err != nil {
			return nil, err
		}
		placements = append(placements, p)
	}

	return placements, nil
}
