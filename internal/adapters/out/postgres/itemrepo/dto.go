// Package itemrepo persists cargo items together with their waste mark.
package itemrepo

import (
	"time"

	"stowage/internal/core/domain/model/cargo"
	"stowage/internal/core/domain/model/kernel"
)

// ItemDTO is the items table row. WasteReason and WasteMarkedAt are both set
// for waste items and both null otherwise.
type ItemDTO struct {
	ID            string     `gorm:"type:varchar(64);primaryKey"`
	Name          string     `gorm:"type:varchar(255);not null;index"`
	Width         float64    `gorm:"type:double precision;not null"`
	Depth         float64    `gorm:"type:double precision;not null"`
	Height        float64    `gorm:"type:double precision;not null"`
	Mass          float64    `gorm:"type:double precision;not null"`
	Priority      int        `gorm:"type:int;not null"`
	PreferredZone string     `gorm:"type:varchar(255);not null"`
	ExpiryDate    *time.Time `gorm:"type:timestamptz"`
	UsageLimit    *int       `gorm:"type:int"`
	WasteReason   *string    `gorm:"type:varchar(32);index"`
	WasteMarkedAt *time.Time `gorm:"type:timestamptz"`
}

func (ItemDTO) TableName() string {
	return "items"
}

func fromDomain(item *cargo.Item) ItemDTO {
	dim := item.Dimension()
	dto := ItemDTO{
		ID:            item.ID(),
		Name:          item.Name(),
		Width:         dim.Width,
		Depth:         dim.Depth,
		Height:        dim.Height,
		Mass:          item.Mass(),
		Priority:      item.Priority(),
		PreferredZone: item.PreferredZone(),
		ExpiryDate:    item.ExpiryDate(),
		UsageLimit:    item.UsageLimit(),
	}

	if w, ok := item.Waste(); ok {
		reason := w.Reason().String()
		markedAt := w.MarkedAt()
		dto.WasteReason = &reason
		dto.WasteMarkedAt = &markedAt
	}

	return dto
}

func toDomain(dto ItemDTO) (*cargo.Item, error) {
	dim, err := kernel.NewDimension(dto.Width, dto.Depth, dto.Height)
	if err != nil {
		return nil, err
	}

	var waste *cargo.Waste
	if dto.WasteReason != nil && dto.WasteMarkedAt != nil {
		reason, parseErr := cargo.ParseWasteReason(*dto.WasteReason)
		if parseErr != nil {
			return nil, parseErr
		}
		w, wasteErr := cargo.NewWaste(reason, *dto.WasteMarkedAt)
		if wasteErr != nil {
			return nil, wasteErr
		}
		waste = &w
	}

	return cargo.RestoreItem(
		dto.ID,
		dto.Name,
		dim,
		dto.Mass,
		dto.Priority,
		dto.PreferredZone,
		dto.ExpiryDate,
		dto.UsageLimit,
		waste,
	)
}
