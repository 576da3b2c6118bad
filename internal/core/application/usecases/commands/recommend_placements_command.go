package commands

import (
	"errors"
	"time"

	"stowage/internal/core/domain/model/cargo"
	"stowage/internal/core/domain/model/kernel"
	"stowage/internal/core/domain/model/storage"
	"stowage/internal/pkg/errs"
	"stowage/internal/pkg/guard"
)

var ErrRecommendPlacementsCommandIsNotConstructed = errors.New(
	"RecommendPlacementsCommand must be created via NewRecommendPlacementsCommand constructor",
)

// ItemInput is an item as submitted for stowage. Its fields are validated when the
// item is created, so a malformed item is rejected alone instead of failing the batch.
type ItemInput struct {
	ID            string
	Name          string
	Width         float64
	Depth         float64
	Height        float64
	Mass          float64
	Priority      int
	PreferredZone string
	ExpiryDate    *time.Time
	UsageLimit    *int
}

func (in ItemInput) toItem() (*cargo.Item, error) {
	dim := kernel.Dimension{Width: in.Width, Depth: in.Depth, Height: in.Height}
	return cargo.NewItem(in.ID, in.Name, dim, in.Mass, in.Priority, in.PreferredZone, in.ExpiryDate, in.UsageLimit)
}

// ContainerInput is a container as submitted with a placement request.
type ContainerInput struct {
	ID     string
	Zone   string
	Width  float64
	Depth  float64
	Height float64
}

func (in ContainerInput) toContainer() (*storage.Container, error) {
	dim, err := kernel.NewDimension(in.Width, in.Depth, in.Height)
	if err != nil {
		return nil, err
	}
	return storage.NewContainer(in.ID, in.Zone, dim)
}

// RecommendPlacementsCommand asks the engine to stow new items. Containers listed
// with the request are registered when unknown; the engine then chooses among all
// containers of the station.
type RecommendPlacementsCommand struct {
	items      []ItemInput
	containers []ContainerInput
	guard      guard.ConstructorGuard
}

func NewRecommendPlacementsCommand(items []ItemInput, containers []ContainerInput) (RecommendPlacementsCommand, error) {
	if len(items) == 0 {
		return RecommendPlacementsCommand{}, errs.NewValueIsRequiredError("items")
	}

	return RecommendPlacementsCommand{
		items:      items,
		containers: containers,
		guard:      guard.NewConstructorGuard(),
	}, nil
}

func (c RecommendPlacementsCommand) Items() []ItemInput {
	return c.items
}

func (c RecommendPlacementsCommand) Containers() []ContainerInput {
	return c.containers
}

func (c RecommendPlacementsCommand) Validate() error {
	return c.guard.Validate(ErrRecommendPlacementsCommandIsNotConstructed)
}
