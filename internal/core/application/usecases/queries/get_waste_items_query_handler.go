package queries

import (
	"context"
	"time"

	"gorm.io/gorm"

	"stowage/internal/core/domain/model/kernel"
)

type GetWasteItemsQueryHandler struct {
	db *gorm.DB
}

func NewGetWasteItemsQueryHandler(db *gorm.DB) GetWasteItemsQueryHandler {
	return GetWasteItemsQueryHandler{db: db}
}

type wasteRow struct {
	ItemID        string
	Name          string
	WasteReason   string
	WasteMarkedAt time.Time
	Volume        float64
	Mass          float64
	ContainerID   *string
	StartWidth    *float64
	StartDepth    *float64
	StartHeight   *float64
	EndWidth      *float64
	EndDepth      *float64
	EndHeight     *float64
}

func (h GetWasteItemsQueryHandler) Handle(ctx context.Context, query GetWasteItemsQuery) ([]GetWasteItemsResponse, error) {
	if err := query.Validate(); err != nil {
		return nil, err
	}

	var rows []wasteRow
	err := h.db.WithContext(ctx).Raw(`
		SELECT
			i.id AS item_id,
			i.name,
			i.waste_reason,
			i.waste_marked_at,
			i.width * i.depth * i.height AS volume,
			i.mass,
			p.container_id,
			p.start_width,
			p.start_depth,
			p.start_height,
			p.end_width,
			p.end_depth,
			p.end_height
		FROM items i
		LEFT JOIN placements p ON p.item_id = i.id
		WHERE i.waste_reason IS NOT NULL
		ORDER BY i.waste_marked_at, i.id
	`).Scan(&rows).Error
	if err != nil {
		return nil, err
	}

	result := make([]GetWasteItemsResponse, 0, len(rows))
	for _, r := range rows {
		item := GetWasteItemsResponse{
			ItemID:   r.ItemID,
			Name:     r.Name,
			Reason:   r.WasteReason,
			MarkedAt: r.WasteMarkedAt,
			Volume:   r.Volume,
			Mass:     r.Mass,
		}
		if r.ContainerID != nil {
			item.Position = &WasteItemPosition{
				ContainerID: *r.ContainerID,
				Start:       kernel.Coordinates{Width: deref(r.StartWidth), Depth: deref(r.StartDepth), Height: deref(r.StartHeight)},
				End:         kernel.Coordinates{Width: deref(r.EndWidth), Depth: deref(r.EndDepth), Height: deref(r.EndHeight)},
			}
		}
		result = append(result, item)
	}

	return result, nil
}

func deref(v *float64) float64 {
	if v == nil {
		return 0
	}
	return *v
}
