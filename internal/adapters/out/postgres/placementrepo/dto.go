// Package placementrepo stores the active placement of each item.
package placementrepo

import (
	"stowage/internal/core/domain/model/kernel"
	"stowage/internal/core/domain/model/placement"
)

// PlacementDTO is the placements table row; item_id is the key, so an item has
// at most one placement.
type PlacementDTO struct {
	ItemID      string         `gorm:"type:varchar(64);primaryKey"`
	ContainerID string         `gorm:"type:varchar(64);not null;index"`
	Start       CoordinatesDTO `gorm:"embedded;embeddedPrefix:start_"`
	End         CoordinatesDTO `gorm:"embedded;embeddedPrefix:end_"`
}

func (PlacementDTO) TableName() string {
	return "placements"
}

type CoordinatesDTO struct {
	Width  float64 `gorm:"type:double precision;not null"`
	Depth  float64 `gorm:"type:double precision;not null"`
	Height float64 `gorm:"type:double precision;not null"`
}

func fromDomain(p placement.Placement) PlacementDTO {
	return PlacementDTO{
		ItemID:      p.ItemID(),
		ContainerID: p.ContainerID(),
		Start:       coordinatesFromDomain(p.Start()),
		End:         coordinatesFromDomain(p.End()),
	}
}

func coordinatesFromDomain(c kernel.Coordinates) CoordinatesDTO {
	return CoordinatesDTO{Width: c.Width, Depth: c.Depth, Height: c.Height}
}

func toDomain(dto PlacementDTO) (placement.Placement, error) {
	return placement.RestorePlacement(
		dto.ItemID,
		dto.ContainerID,
		kernel.Coordinates{Width: dto.Start.Width, Depth: dto.Start.Depth, Height: dto.Start.Height},
		kernel.Coordinates{Width: dto.End.Width, Depth: dto.End.Depth, Height: dto.End.Height},
	)
}
