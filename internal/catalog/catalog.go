package catalog

import (
	"encoding/json"
	"fmt"
	"os"
	"sync/atomic"

	"github.com/nikfrants/biketransfer/internal/domain"
)

// Catalog is the read-only set of bookable events loaded at startup.
// It is immutable after construction and safe for concurrent readers.
type Catalog struct {
	events []domain.CatalogEvent
	byID   map[string]*domain.CatalogEvent
}

type catalogFile struct {
	Events []domain.CatalogEvent `json:"events"`
}

// Load reads the event catalog from a JSON file.
func Load(path string) (*Catalog, error) {
	raw, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read catalog file: %w", err)
	}

	var f catalogFile
	if err := json.Unmarshal(raw, &f); err != nil {
		return nil, fmt.Errorf("parse catalog file %s: %w", path, err)
	}

	return New(f.Events), nil
}

func New(events []domain.CatalogEvent) *Catalog {
	c := &Catalog{
		events: events,
		byID:   make(map[string]*domain.CatalogEvent, len(events)),
	}
	for i := range c.events {
		c.byID[c.events[i].ID] = &c.events[i]
	}
	return c
}

// Events returns the catalog events in file order.
func (c *Catalog) Events() []domain.CatalogEvent {
	return c.events
}

func (c *Catalog) GetEvent(id string) (*domain.CatalogEvent, error) {
	e, ok := c.byID[id]
	if !ok {
		return nil, domain.ErrEventNotFound
	}
	return e, nil
}

// GetPoint looks a point up by numeric index into the ordered list for
// the requested kind. An out-of-range index is a not-found, not a crash.
func (c *Catalog) GetPoint(eventID string, kind domain.PointKind, index int) (*domain.Point, error) {
	e, err := c.GetEvent(eventID)
	if err != nil {
		return nil, err
	}

	points := e.Points(kind)
	if index < 0 || index >= len(points) {
		return nil, domain.ErrPointNotFound
	}
	return &points[index], nil
}

// Provider hands out the current catalog. A reload swaps the whole
// structure atomically: an in-flight transition sees either the old or
// the new catalog, never a mix.
type Provider struct {
	current atomic.Pointer[Catalog]
}

func NewProvider(c *Catalog) *Provider {
	p := &Provider{}
	p.current.Store(c)
	return p
}

func (p *Provider) Current() *Catalog {
	return p.current.Load()
}

func (p *Provider) Replace(c *Catalog) {
	p.current.Store(c)
}

// The provider satisfies the same lookup surface as the catalog itself,
// always against the current snapshot.

func (p *Provider) Events() []domain.CatalogEvent {
	return p.Current().Events()
}

func (p *Provider) GetEvent(id string) (*domain.CatalogEvent, error) {
	return p.Current().GetEvent(id)
}

func (p *Provider) GetPoint(eventID string, kind domain.PointKind, index int) (*domain.Point, error) {
	return p.Current().GetPoint(eventID, kind, index)
}
