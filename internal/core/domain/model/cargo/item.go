package cargo

import (
	"errors"
	"fmt"
	"time"

	"stowage/internal/core/domain/model/kernel"
	"stowage/internal/pkg/errs"
	"stowage/internal/pkg/guard"
)

const (
	// PriorityMin is the lowest accepted item priority.
	PriorityMin = 1
	// PriorityMax is the highest accepted item priority.
	PriorityMax = 100
)

var (
	// ErrItemIsNotConstructed is returned when using an improperly initialized Item.
	ErrItemIsNotConstructed = errors.New("Item must be created via NewItem or RestoreItem constructors")
	// ErrItemIsWaste is returned when an operation needs an item that is still usable.
	ErrItemIsWaste = errors.New("item is flagged as waste")
)

// Item is a piece of cargo aboard the station. It is an aggregate root that owns
// the item's identity, geometry and consumption state.
//
// Business rules:
//   - id, name and preferred zone are required, priority lies in [PriorityMin..PriorityMax]
//   - dimension is a validated kernel.Dimension, mass is not negative
//   - an optional usage limit counts the remaining uses; reaching 0 flags the item as waste
//   - an optional expiry date flags the item as waste once the date has passed
//   - the waste flag is monotonic
type Item struct {
	id            string
	name          string
	dimension     kernel.Dimension
	mass          float64
	priority      int
	preferredZone string
	expiryDate    *time.Time
	usageLimit    *int
	waste         *Waste
	guard         guard.ConstructorGuard
}

// NewItem creates a usable (non-waste) item.
//
// Example:
//
//	dim, _ := kernel.NewDimension(10, 10, 20)
//	uses := 30
//	item, err := cargo.NewItem("ITEM001", "Food Packet", dim, 0.5, 80, "Crew Quarters", nil, &uses)
func NewItem(
	id string,
	name string,
	dimension kernel.Dimension,
	mass float64,
	priority int,
	preferredZone string,
	expiryDate *time.Time,
	usageLimit *int,
) (*Item, error) {
	return RestoreItem(id, name, dimension, mass, priority, preferredZone, expiryDate, usageLimit, nil)
}

// RestoreItem rebuilds an item from persisted state, including an existing waste mark.
func RestoreItem(
	id string,
	name string,
	dimension kernel.Dimension,
	mass float64,
	priority int,
	preferredZone string,
	expiryDate *time.Time,
	usageLimit *int,
	waste *Waste,
) (*Item, error) {
	item := &Item{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		item.setID(id),
		item.setName(name),
		item.setDimension(dimension),
		item.setMass(mass),
		item.setPriority(priority),
		item.setPreferredZone(preferredZone),
		item.setExpiryDate(expiryDate),
		item.setUsageLimit(usageLimit),
		item.setWaste(waste),
	); err != nil {
		return nil, err
	}

	return item, nil
}

// Validate checks the item was created through a constructor.
func (i *Item) Validate() error {
	if i == nil {
		return ErrItemIsNotConstructed
	}
	return i.guard.Validate(ErrItemIsNotConstructed)
}

// IsEqual compares items by identity.
func (i *Item) IsEqual(other *Item) bool {
	return other != nil && i.id == other.id
}

func (i *Item) ID() string {
	return i.id
}

func (i *Item) Name() string {
	return i.name
}

func (i *Item) Dimension() kernel.Dimension {
	return i.dimension
}

// Volume returns the volume of the item's bounding box.
func (i *Item) Volume() float64 {
	return i.dimension.Volume()
}

func (i *Item) Mass() float64 {
	return i.mass
}

func (i *Item) Priority() int {
	return i.priority
}

func (i *Item) PreferredZone() string {
	return i.preferredZone
}

// ExpiryDate returns a copy of the expiry date, nil when the item never expires.
func (i *Item) ExpiryDate() *time.Time {
	if i.expiryDate == nil {
		return nil
	}
	d := *i.expiryDate
	return &d
}

// UsageLimit returns a copy of the remaining uses, nil when usage is unlimited.
func (i *Item) UsageLimit() *int {
	if i.usageLimit == nil {
		return nil
	}
	u := *i.usageLimit
	return &u
}

// IsWaste reports whether the item has been flagged as waste.
func (i *Item) IsWaste() bool {
	return i.waste != nil
}

// Waste returns the waste mark and whether the item carries one.
func (i *Item) Waste() (Waste, bool) {
	if i.waste == nil {
		return Waste{}, false
	}
	return *i.waste, true
}

// IsExpired reports whether the expiry date lies before the calendar day of now.
func (i *Item) IsExpired(now time.Time) bool {
	return i.expiryDate != nil && dateOf(*i.expiryDate).Before(dateOf(now))
}

// IsDepleted reports whether a limited item has no uses left.
func (i *Item) IsDepleted() bool {
	return i.usageLimit != nil && *i.usageLimit <= 0
}

// MarkWaste flags the item as waste. Calling it on an item that is already waste
// keeps the first mark and returns nil.
func (i *Item) MarkWaste(reason WasteReason, at time.Time) error {
	if i.waste != nil {
		return nil
	}

	w, err := NewWaste(reason, at)
	if err != nil {
		return err
	}

	i.waste = &w
	return nil
}

// CheckExpiry flags the item as Expired waste when its expiry date has passed.
// It reports whether this call set the flag.
func (i *Item) CheckExpiry(now time.Time) (bool, error) {
	if i.IsWaste() || !i.IsExpired(now) {
		return false, nil
	}
	if err := i.MarkWaste(Expired, now); err != nil {
		return false, err
	}
	return true, nil
}

// Inspect flags an expired or depleted item as waste. It returns the reason and
// true when this call set the flag, false when nothing changed.
func (i *Item) Inspect(now time.Time) (WasteReason, bool, error) {
	if i.IsWaste() {
		return UnknownReason, false, nil
	}

	var reason WasteReason
	switch {
	case i.IsExpired(now):
		reason = Expired
	case i.IsDepleted():
		reason = OutOfUses
	default:
		return UnknownReason, false, nil
	}

	if err := i.MarkWaste(reason, now); err != nil {
		return UnknownReason, false, err
	}
	return reason, true, nil
}

// Use consumes uses of the item. It returns the remaining uses (nil for unlimited
// items) and flags the item as OutOfUses waste when the count reaches zero.
func (i *Item) Use(uses int, at time.Time) (*int, error) {
	if i.IsWaste() {
		return nil, ErrItemIsWaste
	}
	if uses <= 0 {
		return nil, errs.NewValueIsInvalidErrorWithCause("uses", fmt.Errorf("%d is not greater than 0", uses))
	}
	if i.usageLimit == nil {
		return nil, nil //nolint:nilnil // unlimited items have no remaining count
	}

	remaining := max(0, *i.usageLimit-uses)
	i.usageLimit = &remaining

	if remaining == 0 {
		if err := i.MarkWaste(OutOfUses, at); err != nil {
			return nil, err
		}
	}

	return i.UsageLimit(), nil
}

func (i *Item) setID(id string) error {
	if id == "" {
		return errs.NewValueIsRequiredError("id")
	}
	i.id = id
	return nil
}

func (i *Item) setName(name string) error {
	if name == "" {
		return errs.NewValueIsRequiredError("name")
	}
	i.name = name
	return nil
}

func (i *Item) setDimension(dimension kernel.Dimension) error {
	if err := dimension.Validate(); err != nil {
		return err
	}
	i.dimension = dimension
	return nil
}

func (i *Item) setMass(mass float64) error {
	if mass < 0 {
		return errs.NewValueIsInvalidErrorWithCause("mass", fmt.Errorf("%g is negative", mass))
	}
	i.mass = mass
	return nil
}

func (i *Item) setPriority(priority int) error {
	if priority < PriorityMin || priority > PriorityMax {
		return errs.NewValueIsOutOfRangeError("priority", priority, PriorityMin, PriorityMax)
	}
	i.priority = priority
	return nil
}

func (i *Item) setPreferredZone(zone string) error {
	if zone == "" {
		return errs.NewValueIsRequiredError("preferredZone")
	}
	i.preferredZone = zone
	return nil
}

func (i *Item) setExpiryDate(expiryDate *time.Time) error {
	if expiryDate == nil {
		i.expiryDate = nil
		return nil
	}
	d := dateOf(*expiryDate)
	i.expiryDate = &d
	return nil
}

func (i *Item) setUsageLimit(usageLimit *int) error {
	if usageLimit == nil {
		i.usageLimit = nil
		return nil
	}
	if *usageLimit < 0 {
		return errs.NewValueIsInvalidErrorWithCause("usageLimit", fmt.Errorf("%d is negative", *usageLimit))
	}
	u := *usageLimit
	i.usageLimit = &u
	return nil
}

func (i *Item) setWaste(waste *Waste) error {
	if waste == nil {
		i.waste = nil
		return nil
	}
	if err := waste.reason.Validate(); err != nil {
		return err
	}
	w := *waste
	i.waste = &w
	return nil
}

// dateOf drops the clock part so expiry compares by calendar day.
func dateOf(t time.Time) time.Time {
	y, m, d := t.Date()
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}
