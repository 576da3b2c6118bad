package commands

import (
	"context"
	"errors"

	"stowage/internal/core/domain/model/placement"
	"stowage/internal/core/domain/model/storage"
	"stowage/internal/core/domain/services"
	"stowage/internal/core/ports"
	"stowage/internal/pkg/errs"
)

// ErrItemAlreadyPlaced is reported for a submitted item that already has a placement.
var ErrItemAlreadyPlaced = errors.New("item is already placed")

// RecommendPlacementsResult lists what the engine did with the submitted items.
type RecommendPlacementsResult struct {
	Placements  []placement.Placement
	Unplaceable []services.Unplaceable
	Rejected    []services.Rejection
}

// RecommendPlacementsCommandHandler registers the submitted items and containers,
// runs the placement engine over the station's containers and books the result.
type RecommendPlacementsCommandHandler struct {
	uowFactory UoWFactory
	engine     services.PlacementEngine
}

func NewRecommendPlacementsCommandHandler(
	uowFactory UoWFactory,
	engine services.PlacementEngine,
) RecommendPlacementsCommandHandler {
	return RecommendPlacementsCommandHandler{
		uowFactory: uowFactory,
		engine:     engine,
	}
}

func (h RecommendPlacementsCommandHandler) Handle(
	ctx context.Context,
	command RecommendPlacementsCommand,
) (RecommendPlacementsResult, error) {
	if err := command.Validate(); err != nil {
		return RecommendPlacementsResult{}, err
	}

	uow := h.uowFactory.Create()
	if err := uow.Begin(ctx); err != nil {
		return RecommendPlacementsResult{}, err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	itemRepo := uow.ItemRepository()
	containerRepo := uow.ContainerRepository()
	placementRepo := uow.PlacementRepository()

	for _, in := range command.Containers() {
		if err := h.registerContainer(ctx, containerRepo, in); err != nil {
			return RecommendPlacementsResult{}, err
		}
	}

	var (
		requests []services.PlacementRequest
		rejected []services.Rejection
		seen     = make(map[string]struct{}, len(command.Items()))
	)
	for _, in := range command.Items() {
		if _, dup := seen[in.ID]; dup {
			rejected = append(rejected, services.Rejection{ItemID: in.ID, Err: services.ErrDuplicateItem})
			continue
		}
		seen[in.ID] = struct{}{}

		item, err := itemRepo.Get(ctx, in.ID)
		switch {
		case errors.Is(err, errs.ErrObjectNotFound):
			if item, err = in.toItem(); err != nil {
				rejected = append(rejected, services.Rejection{ItemID: in.ID, Err: err})
				continue
			}
			if err = itemRepo.Add(ctx, item); err != nil {
				return RecommendPlacementsResult{}, err
			}
		case err != nil:
			return RecommendPlacementsResult{}, err
		default:
			_, err = placementRepo.GetByItem(ctx, item.ID())
			if err == nil {
				rejected = append(rejected, services.Rejection{ItemID: item.ID(), Err: ErrItemAlreadyPlaced})
				continue
			}
			if !errors.Is(err, errs.ErrObjectNotFound) {
				return RecommendPlacementsResult{}, err
			}
		}
		requests = append(requests, services.RequestFromItem(item))
	}

	containers, err := containerRepo.GetAllForUpdate(ctx)
	if err != nil {
		return RecommendPlacementsResult{}, err
	}

	result, err := h.engine.Recommend(requests, containers)
	if err != nil {
		return RecommendPlacementsResult{}, err
	}

	byID := make(map[string]*storage.Container, len(containers))
	for _, c := range containers {
		byID[c.ID()] = c
	}

	var touched []*storage.Container
	for _, p := range result.Placements {
		c := byID[p.ContainerID()]
		if err = c.Reserve(p.Volume()); err != nil {
			return RecommendPlacementsResult{}, err
		}
		if err = placementRepo.Save(ctx, p); err != nil {
			return RecommendPlacementsResult{}, err
		}
		if !containsContainer(touched, c) {
			touched = append(touched, c)
		}
	}

	for _, c := range touched {
		if err = containerRepo.Update(ctx, c); err != nil {
			return RecommendPlacementsResult{}, err
		}
	}

	if err = uow.Commit(ctx); err != nil {
		return RecommendPlacementsResult{}, err
	}

	return RecommendPlacementsResult{
		Placements:  result.Placements,
		Unplaceable: result.Unplaceable,
		Rejected:    append(rejected, result.Rejected...),
	}, nil
}

func (h RecommendPlacementsCommandHandler) registerContainer(
	ctx context.Context,
	repo ports.ContainerRepository,
	in ContainerInput,
) error {
	_, err := repo.Get(ctx, in.ID)
	if !errors.Is(err, errs.ErrObjectNotFound) {
		return err
	}

	c, err := in.toContainer()
	if err != nil {
		return err
	}
	return repo.Add(ctx, c)
}

func containsContainer(list []*storage.Container, c *storage.Container) bool {
	for _, x := range list {
		if x.IsEqual(c) {
			return true
		}
	}
	return false
}
