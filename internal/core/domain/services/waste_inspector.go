package services

import (
	"time"

	"stowage/internal/core/domain/model/cargo"
)

// WasteFinding is an item newly flagged by the inspector.
type WasteFinding struct {
	ItemID string
	Reason cargo.WasteReason
}

// WasteInspector flags expired and depleted items as waste.
//
// Expiry is checked first, so an item both expired and out of uses is flagged
// Expired. Items already flagged keep their original mark and are not reported.
// Unlike the other services the inspector updates the items it is given; the
// caller persists them.
type WasteInspector struct{}

func NewWasteInspector() WasteInspector {
	return WasteInspector{}
}

// Inspect marks items as waste as of now and returns the new findings in input order.
func (WasteInspector) Inspect(items []*cargo.Item, now time.Time) ([]WasteFinding, error) {
	var findings []WasteFinding
	for _, it := range items {
		if err := it.Validate(); err != nil {
			return nil, err
		}

		reason, flagged, err := it.Inspect(now)
		if err != nil {
			return nil, err
		}
		if flagged {
			findings = append(findings, WasteFinding{ItemID: it.ID(), Reason: reason})
		}
	}
	return findings, nil
}
