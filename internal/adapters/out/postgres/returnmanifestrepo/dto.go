// Package returnmanifestrepo persists return manifests and their item lists.
package returnmanifestrepo

import (
	"time"

	"github.com/google/uuid"

	"stowage/internal/core/domain/model/cargo"
	"stowage/internal/core/domain/model/plan"
)

type ReturnManifestDTO struct {
	ID                   uuid.UUID       `gorm:"type:uuid;primaryKey"`
	UndockingContainerID string          `gorm:"type:varchar(64);not null;index"`
	UndockingDate        time.Time       `gorm:"type:timestamptz;not null"`
	CompletedAt          *time.Time      `gorm:"type:timestamptz"`
	Items                []ReturnItemDTO `gorm:"foreignKey:ManifestID;constraint:OnDelete:CASCADE"`
}

func (ReturnManifestDTO) TableName() string {
	return "return_manifests"
}

// ReturnItemDTO is one manifest line; Position keeps the selection order.
type ReturnItemDTO struct {
	ManifestID    uuid.UUID `gorm:"type:uuid;primaryKey"`
	Position      int       `gorm:"type:int;primaryKey;autoIncrement:false"`
	ItemID        string    `gorm:"type:varchar(64);not null;index"`
	Name          string    `gorm:"type:varchar(255);not null"`
	Reason        string    `gorm:"type:varchar(32);not null"`
	FromContainer string    `gorm:"type:varchar(64)"`
	Volume        float64   `gorm:"type:double precision;not null"`
	Mass          float64   `gorm:"type:double precision;not null"`
}

func (ReturnItemDTO) TableName() string {
	return "return_manifest_items"
}

func fromDomain(m *plan.ReturnManifest) ReturnManifestDTO {
	items := make([]ReturnItemDTO, 0, len(m.Items()))
	for i, it := range m.Items() {
		items = append(items, ReturnItemDTO{
			ManifestID:    m.ID(),
			Position:      i,
			ItemID:        it.ItemID,
			Name:          it.Name,
			Reason:        it.Reason.String(),
			FromContainer: it.FromContainer,
			Volume:        it.Volume,
			Mass:          it.Mass,
		})
	}

	return ReturnManifestDTO{
		ID:                   m.ID(),
		UndockingContainerID: m.UndockingContainerID(),
		UndockingDate:        m.UndockingDate(),
		CompletedAt:          m.CompletedAt(),
		Items:                items,
	}
}

func toDomain(dto ReturnManifestDTO) (*plan.ReturnManifest, error) {
	items := make([]plan.ReturnItem, 0, len(dto.Items))
	for _, it := range dto.Items {
		reason, err := cargo.ParseWasteReason(it.Reason)
		if err != nil {
			return nil, err
		}
		items = append(items, plan.ReturnItem{
			ItemID:        it.ItemID,
			Name:          it.Name,
			Reason:        reason,
			FromContainer: it.FromContainer,
			Volume:        it.Volume,
			Mass:          it.Mass,
		})
	}

	return plan.RestoreReturnManifest(dto.ID, dto.UndockingContainerID, dto.UndockingDate, items, dto.CompletedAt)
}
