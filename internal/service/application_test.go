package service

import (
	"context"
	"testing"

	"github.com/oklog/ulid/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/nikfrants/biketransfer/internal/domain"
	"github.com/nikfrants/biketransfer/internal/service/ports/mocks"
)

func TestApplicationService_GetByID_MalformedID(t *testing.T) {
	repo := mocks.NewMockApplicationRepo(t)
	svc := NewApplicationService(repo)

	app, err := svc.GetByID(context.Background(), "not-an-id")

	assert.Nil(t, app)
	assert.ErrorIs(t, err, domain.ErrValidation)
}

func TestApplicationService_Delete_MalformedID(t *testing.T) {
	repo := mocks.NewMockApplicationRepo(t)
	svc := NewApplicationService(repo)

	deleted, err := svc.Delete(context.Background(), "")

	assert.False(t, deleted)
	assert.ErrorIs(t, err, domain.ErrValidation)
}

func TestApplicationService_GetByID_ValidID(t *testing.T) {
	repo := mocks.NewMockApplicationRepo(t)
	svc := NewApplicationService(repo)

	id := ulid.Make().String()
	want := &domain.Application{ID: id, UserID: 101}
	repo.EXPECT().GetByID(mock.Anything, id).Return(want, nil)

	got, err := svc.GetByID(context.Background(), id)

	require.NoError(t, err)
	assert.Same(t, want, got)
}
