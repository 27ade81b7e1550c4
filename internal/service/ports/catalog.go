package ports

import (
	"github.com/nikfrants/biketransfer/internal/domain"
)

// Catalog is the read-only event/point/slot lookup. Implementations are
// immutable snapshots; no context needed, lookups never block.
type Catalog interface {
	Events() []domain.CatalogEvent
	GetEvent(id string) (*domain.CatalogEvent, error)
	GetPoint(eventID string, kind domain.PointKind, index int) (*domain.Point, error)
}
