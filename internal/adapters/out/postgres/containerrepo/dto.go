// Package containerrepo persists storage containers.
package containerrepo

import (
	"stowage/internal/core/domain/model/kernel"
	"stowage/internal/core/domain/model/storage"
)

// ContainerDTO is the containers table row.
type ContainerDTO struct {
	ID              string  `gorm:"type:varchar(64);primaryKey"`
	Zone            string  `gorm:"type:varchar(255);not null;index"`
	Width           float64 `gorm:"type:double precision;not null"`
	Depth           float64 `gorm:"type:double precision;not null"`
	Height          float64 `gorm:"type:double precision;not null"`
	AvailableVolume float64 `gorm:"type:double precision;not null"`
}

func (ContainerDTO) TableName() string {
	return "containers"
}

func fromDomain(c *storage.Container) ContainerDTO {
	dim := c.Dimension()
	return ContainerDTO{
		ID:              c.ID(),
		Zone:            c.Zone(),
		Width:           dim.Width,
		Depth:           dim.Depth,
		Height:          dim.Height,
		AvailableVolume: c.AvailableVolume(),
	}
}

func toDomain(dto ContainerDTO) (*storage.Container, error) {
	dim, err := kernel.NewDimension(dto.Width, dto.Depth, dto.Height)
	if err != nil {
		return nil, err
	}
	return storage.RestoreContainer(dto.ID, dto.Zone, dim, dto.AvailableVolume)
}
