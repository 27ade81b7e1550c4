package ports

import (
	"context"

	"github.com/nikfrants/biketransfer/internal/domain"
)

type ProfileRepo interface {
	GetByUserID(ctx context.Context, userID int64) (*domain.ClientProfile, error)
	// Upsert merges the provided fields into the existing profile,
	// creating one if absent. Empty fields are preserved.
	Upsert(ctx context.Context, userID int64, upd domain.ProfileUpdate) error
}
