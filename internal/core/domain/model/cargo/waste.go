package cargo

import (
	"fmt"
	"time"

	"stowage/internal/pkg/errs"
)

// WasteReason explains why an item was flagged as waste.
type WasteReason int

const (
	// UnknownReason is the zero value and never valid on a waste mark.
	UnknownReason WasteReason = iota
	// Expired items passed their expiry date.
	Expired
	// OutOfUses items exhausted their usage limit.
	OutOfUses
)

func getWasteReasonStrings() map[WasteReason]string {
	return map[WasteReason]string{
		Expired:   "Expired",
		OutOfUses: "Out of Uses",
	}
}

func (r WasteReason) String() string {
	if s, ok := getWasteReasonStrings()[r]; ok {
		return s
	}
	return "Unknown"
}

// Validate rejects reasons outside the known set.
func (r WasteReason) Validate() error {
	if _, ok := getWasteReasonStrings()[r]; !ok {
		return errs.NewValueIsInvalidErrorWithCause("reason", fmt.Errorf("%d is not a valid waste reason", r))
	}
	return nil
}

// ParseWasteReason is the inverse of WasteReason.String.
func ParseWasteReason(s string) (WasteReason, error) {
	for r, str := range getWasteReasonStrings() {
		if str == s {
			return r, nil
		}
	}
	return UnknownReason, errs.NewValueIsInvalidErrorWithCause("reason", fmt.Errorf("%q is not a valid waste reason", s))
}

// Waste records when and why an item was flagged.
type Waste struct {
	reason   WasteReason
	markedAt time.Time
}

// NewWaste creates a waste mark.
func NewWaste(reason WasteReason, markedAt time.Time) (Waste, error) {
	if err := reason.Validate(); err != nil {
		return Waste{}, err
	}
	if markedAt.IsZero() {
		return Waste{}, errs.NewValueIsRequiredError("markedAt")
	}
	return Waste{reason: reason, markedAt: markedAt}, nil
}

// Reason returns why the item became waste.
func (w Waste) Reason() WasteReason {
	return w.reason
}

// MarkedAt returns when the item became waste.
func (w Waste) MarkedAt() time.Time {
	return w.markedAt
}
