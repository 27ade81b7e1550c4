package ports

import (
	"context"

	"github.com/nikfrants/biketransfer/internal/domain"
)

type ApplicationRepo interface {
	Create(ctx context.Context, a *domain.Application) error
	GetByID(ctx context.Context, id string) (*domain.Application, error)
	Delete(ctx context.Context, id string) (bool, error)
	ListByUser(ctx context.Context, userID int64) ([]*domain.Application, error)
}
