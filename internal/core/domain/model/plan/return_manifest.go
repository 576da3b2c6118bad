package plan

import (
	"errors"
	"slices"
	"time"

	"github.com/google/uuid"

	"stowage/internal/core/domain/model/cargo"
	"stowage/internal/pkg/errs"
	"stowage/internal/pkg/guard"
)

var (
	// ErrReturnManifestIsNotConstructed is returned when using an improperly initialized manifest.
	ErrReturnManifestIsNotConstructed = errors.New("ReturnManifest must be created via NewReturnManifest or RestoreReturnManifest constructors")
	// ErrReturnManifestIsCompleted is returned when completing a manifest twice.
	ErrReturnManifestIsCompleted = errors.New("return manifest is already completed")
)

// ReturnItem is a waste item loaded for return, with the figures that count
// against the undocking limits.
type ReturnItem struct {
	ItemID string
	Name   string
	Reason cargo.WasteReason
	// FromContainer is where the item is stored now, empty when it has no placement.
	FromContainer string
	Volume        float64
	Mass          float64
}

// NewReturnItem captures a waste item for a manifest.
func NewReturnItem(item *cargo.Item, fromContainer string) (ReturnItem, error) {
	if err := item.Validate(); err != nil {
		return ReturnItem{}, err
	}
	w, ok := item.Waste()
	if !ok {
		return ReturnItem{}, errs.NewValueIsInvalidErrorWithCause("item", errors.New(item.ID()+" is not waste"))
	}

	return ReturnItem{
		ItemID:        item.ID(),
		Name:          item.Name(),
		Reason:        w.Reason(),
		FromContainer: fromContainer,
		Volume:        item.Volume(),
		Mass:          item.Mass(),
	}, nil
}

// ReturnManifest lists the waste selected for an undocking container.
//
// Business rules:
//   - totals always equal the sums over the listed items
//   - a manifest is completed at most once, when the container undocks
type ReturnManifest struct {
	id                   uuid.UUID
	undockingContainerID string
	undockingDate        time.Time
	items                []ReturnItem
	totalVolume          float64
	totalMass            float64
	completedAt          *time.Time
	guard                guard.ConstructorGuard
}

// NewReturnManifest creates a manifest with a fresh identifier.
//
// Example:
//
//	manifest, err := plan.NewReturnManifest("contW", undocking, items)
func NewReturnManifest(undockingContainerID string, undockingDate time.Time, items []ReturnItem) (*ReturnManifest, error) {
	return RestoreReturnManifest(uuid.New(), undockingContainerID, undockingDate, items, nil)
}

// RestoreReturnManifest rebuilds a manifest from persisted state.
func RestoreReturnManifest(
	id uuid.UUID,
	undockingContainerID string,
	undockingDate time.Time,
	items []ReturnItem,
	completedAt *time.Time,
) (*ReturnManifest, error) {
	var errList []error
	if id == uuid.Nil {
		errList = append(errList, errs.NewValueIsRequiredError("id"))
	}
	errList = append(errList, required("undockingContainerID", undockingContainerID))
	if undockingDate.IsZero() {
		errList = append(errList, errs.NewValueIsRequiredError("undockingDate"))
	}
	if err := errors.Join(errList...); err != nil {
		return nil, err
	}

	m := &ReturnManifest{
		id:                   id,
		undockingContainerID: undockingContainerID,
		undockingDate:        undockingDate,
		items:                slices.Clone(items),
		guard:                guard.NewConstructorGuard(),
	}
	for _, it := range items {
		m.totalVolume += it.Volume
		m.totalMass += it.Mass
	}
	if completedAt != nil {
		at := *completedAt
		m.completedAt = &at
	}

	return m, nil
}

func (m *ReturnManifest) ID() uuid.UUID {
	return m.id
}

func (m *ReturnManifest) UndockingContainerID() string {
	return m.undockingContainerID
}

func (m *ReturnManifest) UndockingDate() time.Time {
	return m.undockingDate
}

// Items returns a copy of the listed items.
func (m *ReturnManifest) Items() []ReturnItem {
	return slices.Clone(m.items)
}

// ItemIDs returns the ids of the listed items in manifest order.
func (m *ReturnManifest) ItemIDs() []string {
	ids := make([]string, 0, len(m.items))
	for _, it := range m.items {
		ids = append(ids, it.ItemID)
	}
	return ids
}

func (m *ReturnManifest) TotalVolume() float64 {
	return m.totalVolume
}

func (m *ReturnManifest) TotalMass() float64 {
	return m.totalMass
}

// CompletedAt returns when the container undocked, nil while the manifest is open.
func (m *ReturnManifest) CompletedAt() *time.Time {
	if m.completedAt == nil {
		return nil
	}
	at := *m.completedAt
	return &at
}

func (m *ReturnManifest) IsCompleted() bool {
	return m.completedAt != nil
}

// Complete records the undocking.
func (m *ReturnManifest) Complete(at time.Time) error {
	if m.IsCompleted() {
		return ErrReturnManifestIsCompleted
	}
	if at.IsZero() {
		return errs.NewValueIsRequiredError("completedAt")
	}
	m.completedAt = &at
	return nil
}

func (m *ReturnManifest) Validate() error {
	if m == nil {
		return ErrReturnManifestIsNotConstructed
	}
	return m.guard.Validate(ErrReturnManifestIsNotConstructed)
}
