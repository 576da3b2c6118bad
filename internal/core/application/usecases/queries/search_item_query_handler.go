package queries

import (
	"context"
	"fmt"

	"gorm.io/gorm"

	"stowage/internal/core/domain/model/kernel"
	"stowage/internal/core/domain/model/placement"
	"stowage/internal/core/domain/services"
)

// SearchItemQueryHandler locates an item and explains how to retrieve it.
// Only placed items are found; among several name matches the most important
// one wins.
type SearchItemQueryHandler struct {
	db        *gorm.DB
	costModel services.RetrievalCostModel
}

func NewSearchItemQueryHandler(db *gorm.DB) SearchItemQueryHandler {
	return SearchItemQueryHandler{db: db, costModel: services.NewRetrievalCostModel()}
}

type placementRow struct {
	ItemID      string
	ContainerID string
	StartWidth  float64
	StartDepth  float64
	StartHeight float64
	EndWidth    float64
	EndDepth    float64
	EndHeight   float64
}

func (r placementRow) toDomain() (placement.Placement, error) {
	return placement.RestorePlacement(
		r.ItemID,
		r.ContainerID,
		kernel.Coordinates{Width: r.StartWidth, Depth: r.StartDepth, Height: r.StartHeight},
		kernel.Coordinates{Width: r.EndWidth, Depth: r.EndDepth, Height: r.EndHeight},
	)
}

type searchRow struct {
	placementRow
	Name    string
	Zone    string
	IsWaste bool
}

func (h SearchItemQueryHandler) Handle(ctx context.Context, query SearchItemQuery) (SearchItemResponse, error) {
	if err := query.Validate(); err != nil {
		return SearchItemResponse{}, err
	}

	condition, arg := "i.id = ?", query.ItemID()
	if arg == "" {
		condition, arg = "i.name ILIKE ?", "%"+query.ItemName()+"%"
	}

	var row searchRow
	err := h.db.WithContext(ctx).Raw(`
		SELECT
			i.id AS item_id,
			i.name,
			i.waste_reason IS NOT NULL AS is_waste,
			p.container_id,
			c.zone,
			p.start_width,
			p.start_depth,
			p.start_height,
			p.end_width,
			p.end_depth,
			p.end_height
		FROM items i
		JOIN placements p ON p.item_id = i.id
		JOIN containers c ON c.id = p.container_id
		WHERE `+condition+`
		ORDER BY i.priority DESC, i.id
		LIMIT 1
	`, arg).Scan(&row).Error
	if err != nil {
		return SearchItemResponse{}, err
	}
	if row.ItemID == "" {
		return SearchItemResponse{}, nil
	}

	target, err := row.toDomain()
	if err != nil {
		return SearchItemResponse{}, err
	}

	neighbours, err := h.containerPlacements(ctx, row.ContainerID)
	if err != nil {
		return SearchItemResponse{}, err
	}

	steps, err := h.costModel.Cost(&target, neighbours)
	if err != nil {
		return SearchItemResponse{}, err
	}

	instructions, err := h.costModel.Instructions(row.ItemID, row.Name, row.Zone, &target, neighbours)
	if err != nil {
		return SearchItemResponse{}, err
	}

	return SearchItemResponse{
		Found:          true,
		ItemID:         row.ItemID,
		Name:           row.Name,
		ContainerID:    row.ContainerID,
		Zone:           row.Zone,
		Start:          target.Start(),
		End:            target.End(),
		IsWaste:        row.IsWaste,
		RetrievalSteps: steps,
		Instructions:   instructions,
	}, nil
}

func (h SearchItemQueryHandler) containerPlacements(ctx context.Context, containerID string) ([]placement.Placement, error) {
	var rows []placementRow
	err := h.db.WithContext(ctx).Raw(`
		SELECT
			item_id,
			container_id,
			start_width,
			start_depth,
			start_height,
			end_width,
			end_depth,
			end_height
		FROM placements
		WHERE container_id = ?
	`, containerID).Scan(&rows).Error
	if err != nil {
		return nil, err
	}

	placements := make([]placement.Placement, 0, len(rows))
	for _, r := range rows {
		p, pErr := r.toDomain()
		if pErr != nil {
			return nil, fmt.Errorf("placement of %s: %w", r.ItemID, pErr)
		}
		placements = append(placements, p)
	}
	return placements, nil
}
