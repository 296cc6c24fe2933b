package service

import (
	"context"
	"errors"
	"testing"

	"github.com/avdeenkov/seatbooker/internal/domain"
	"github.com/avdeenkov/seatbooker/internal/service/ports/mocks"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func TestUserService_LoginOrCreate_NewUser(t *testing.T) {
	repo := mocks.NewMockUserRepo(t)
	svc := NewUserService(repo)

	repo.EXPECT().Upsert(mock.Anything, mock.Anything).RunAndReturn(
		func(_ context.Context, u *domain.User) (*domain.User, error) {
			assert.Equal(t, "alice", u.Username)
			assert.NotEmpty(t, u.ID)
			return u, nil
		})

	user, err := svc.LoginOrCreate(context.Background(), "alice")

	require.NoError(t, err)
	assert.Equal(t, "alice", user.Username)
	assert.NotEmpty(t, user.ID)
}

func TestUserService_LoginOrCreate_ExistingUser(t *testing.T) {
	repo := mocks.NewMockUserRepo(t)
	svc := NewUserService(repo)

	existing := &domain.User{ID: "u1", Username: "alice"}
	repo.EXPECT().Upsert(mock.Anything, mock.Anything).Return(existing, nil)

	user, err := svc.LoginOrCreate(context.Background(), "alice")

	require.NoError(t, err)
	assert.Equal(t, "u1", user.ID)
}

func TestUserService_LoginOrCreate_TrimsWhitespace(t *testing.T) {
	repo := mocks.NewMockUserRepo(t)
	svc := NewUserService(repo)

	repo.EXPECT().Upsert(mock.Anything, mock.Anything).RunAndReturn(
		func(_ context.Context, u *domain.User) (*domain.User, error) {
			assert.Equal(t, "alice", u.Username)
			return u, nil
		})

	_, err := svc.LoginOrCreate(context.Background(), "  alice  ")

	require.NoError(t, err)
}

func TestUserService_LoginOrCreate_EmptyUsername(t *testing.T) {
	repo := mocks.NewMockUserRepo(t)
	svc := NewUserService(repo)

	_, err := svc.LoginOrCreate(context.Background(), "   ")

	require.Error(t, err)
	assert.ErrorIs(t, err, domain.ErrValidation)
}

func TestUserService_LoginOrCreate_RepoError(t *testing.T) {
	repo := mocks.NewMockUserRepo(t)
	svc := NewUserService(repo)

	repo.EXPECT().Upsert(mock.Anything, mock.Anything).Return(nil, errors.New("db error"))

	_, err := svc.LoginOrCreate(context.Background(), "alice")

	require.Error(t, err)
}
