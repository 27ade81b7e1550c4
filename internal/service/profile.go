package service

import (
	"context"

	"github.com/nikfrants/biketransfer/internal/domain"
	"github.com/nikfrants/biketransfer/internal/service/ports"
)

type ProfileService struct {
	repo ports.ProfileRepo
}

func NewProfileService(repo ports.ProfileRepo) *ProfileService {
	return &ProfileService{repo: repo}
}

func (s *ProfileService) GetByUserID(ctx context.Context, userID int64) (*domain.ClientProfile, error) {
	return s.repo.GetByUserID(ctx, userID)
}
