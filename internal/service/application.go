package service

import (
	"context"
	"fmt"

	"github.com/oklog/ulid/v2"

	"github.com/nikfrants/biketransfer/internal/domain"
	"github.com/nikfrants/biketransfer/internal/service/ports"
)

// ApplicationService exposes repository-level operations on submitted
// applications for the admin surface. Records are append-only; delete
// is the single administrative exception.
type ApplicationService struct {
	repo ports.ApplicationRepo
}

func NewApplicationService(repo ports.ApplicationRepo) *ApplicationService {
	return &ApplicationService{repo: repo}
}

func (s *ApplicationService) GetByID(ctx context.Context, id string) (*domain.Application, error) {
	if err := checkApplicationID(id); err != nil {
		return nil, err
	}
	return s.repo.GetByID(ctx, id)
}

func (s *ApplicationService) Delete(ctx context.Context, id string) (bool, error) {
	if err := checkApplicationID(id); err != nil {
		return false, err
	}
	return s.repo.Delete(ctx, id)
}

func (s *ApplicationService) ListByUser(ctx context.Context, userID int64) ([]*domain.Application, error) {
	return s.repo.ListByUser(ctx, userID)
}

// checkApplicationID rejects ids that cannot be application ids, so a
// typo in an admin request reads as a 400 rather than a lookup miss.
func checkApplicationID(id string) error {
	if _, err := ulid.Parse(id); err != nil {
		return fmt.Errorf("%w: malformed application id %q", domain.ErrValidation, id)
	}
	return nil
}
