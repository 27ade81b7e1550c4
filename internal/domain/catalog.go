package domain

import (
	"sort"
	"strings"
)

type PointKind string

const (
	PointKindDropoff PointKind = "dropoff"
	PointKindPickup  PointKind = "pickup"
)

// CatalogEvent is a single bookable occasion with its drop-off and
// pick-up points. The catalog is loaded once at startup and shared
// read-only by all sessions.
type CatalogEvent struct {
	ID             string  `json:"id"`
	Name           string  `json:"name"`
	Description    string  `json:"description"`
	DropoffOptions []Point `json:"dropoff_options"`
	PickupOptions  []Point `json:"pickup_options"`
}

func (e *CatalogEvent) Points(kind PointKind) []Point {
	if kind == PointKindPickup {
		return e.PickupOptions
	}
	return e.DropoffOptions
}

// Point is a physical drop-off/pick-up location. AvailableSlots maps a
// date key (a calendar date "2006-01-02" or a range
// "2006-01-02 - 2006-01-09") to the time windows open on that date.
type Point struct {
	PointName      string              `json:"point_name"`
	AvailableSlots map[string][]string `json:"available_slots"`
}

// SlotsFor returns the time windows open on the given date key, or nil.
func (p *Point) SlotsFor(dateKey string) []string {
	return p.AvailableSlots[dateKey]
}

// DateKeys returns the point's date keys that have at least one time
// window, sorted by their (start) date. A key with an empty window list
// is equivalent to absence and is never offered.
func (p *Point) DateKeys() []string {
	keys := make([]string, 0, len(p.AvailableSlots))
	for k, windows := range p.AvailableSlots {
		if len(windows) > 0 {
			keys = append(keys, k)
		}
	}
	sort.Slice(keys, func(i, j int) bool {
		return rangeStart(keys[i]) < rangeStart(keys[j])
	})
	return keys
}

// rangeStart extracts the start date of a date key; ISO dates compare
// correctly as strings.
func rangeStart(dateKey string) string {
	if start, _, ok := strings.Cut(dateKey, " - "); ok {
		return start
	}
	return dateKey
}
