package commands

import (
	"context"

	"stowage/internal/core/domain/services"
)

// IdentifyWasteCommandHandler runs the waste inspector over all usable items.
type IdentifyWasteCommandHandler struct {
	uowFactory ItemUoWFactory
	inspector  services.WasteInspector
}

func NewIdentifyWasteCommandHandler(uowFactory ItemUoWFactory) IdentifyWasteCommandHandler {
	return IdentifyWasteCommandHandler{
		uowFactory: uowFactory,
		inspector:  services.NewWasteInspector(),
	}
}

// Handle returns the items newly flagged by this run.
func (h IdentifyWasteCommandHandler) Handle(ctx context.Context, command IdentifyWasteCommand) ([]services.WasteFinding, error) {
	if err := command.Validate(); err != nil {
		return nil, err
	}

	uow := h.uowFactory.Create()
	if err := uow.Begin(ctx); err != nil {
		return nil, err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	itemRepo := uow.ItemRepository()

	items, err := itemRepo.GetAllUsable(ctx)
	if err != nil {
		return nil, err
	}

	findings, err := h.inspector.Inspect(items, command.Now())
	if err != nil {
		return nil, err
	}

	flagged := make(map[string]bool, len(findings))
	for _, f := range findings {
		flagged[f.ItemID] = true
	}
	for _, item := range items {
		if !flagged[item.ID()] {
			continue
		}
		if err = itemRepo.Update(ctx, item); err != nil {
			return nil, err
		}
	}

	if err = uow.Commit(ctx); err != nil {
		return nil, err
	}

	return findings, nil
}
