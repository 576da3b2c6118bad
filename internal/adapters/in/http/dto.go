package http

import (
	"fmt"
	"time"

	"stowage/internal/core/domain/model/kernel"
	"stowage/internal/generated/servers"
)

// Conversions between the generated wire types and the domain.

func coordinatesFromDomain(c kernel.Coordinates) servers.Coordinates {
	return servers.Coordinates{Width: c.Width, Depth: c.Depth, Height: c.Height}
}

func coordinatesToDomain(c servers.Coordinates) kernel.Coordinates {
	return kernel.Coordinates{Width: c.Width, Depth: c.Depth, Height: c.Height}
}

func positionFromDomain(start, end kernel.Coordinates) servers.Position {
	return servers.Position{
		StartCoordinates: coordinatesFromDomain(start),
		EndCoordinates:   coordinatesFromDomain(end),
	}
}

func value[T any](p *T) T {
	var zero T
	if p == nil {
		return zero
	}
	return *p
}

func optional(s string) *string {
	if s == "" {
		return nil
	}
	return &s
}

// parseTime accepts a calendar date or an RFC 3339 timestamp. An empty value
// yields fallback.
func parseTime(field, value string, fallback time.Time) (time.Time, error) {
	if value == "" {
		return fallback, nil
	}
	if t, err := time.Parse(time.DateOnly, value); err == nil {
		return t, nil
	}
	t, err := time.Parse(time.RFC3339, value)
	if err != nil {
		return time.Time{}, fmt.Errorf("%w: %s: %q is neither a date nor an RFC 3339 timestamp", errBadRequest, field, value)
	}
	return t, nil
}

func parseOptionalDate(field string, value *string) (*time.Time, error) {
	if value == nil || *value == "" {
		return nil, nil //nolint:nilnil // absent date
	}
	t, err := parseTime(field, *value, time.Time{})
	if err != nil {
		return nil, err
	}
	return &t, nil
}
