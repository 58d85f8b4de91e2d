package service

import (
	"Pulse/internal/api/dto"
	"Pulse/internal/model"
	"Pulse/internal/pkg/security"
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSyncUser_CreatesNewUser(t *testing.T) {
	userRepo := newFakeUserRepo()
	svc := NewUserService(userRepo)

	password := "secret123"
	user, err := svc.SyncUser(context.Background(), &dto.SyncUserDTO{
		FirebaseUID: "fb-new",
		Username:    "alice",
		Email:       "alice@example.com",
		Password:    &password,
	})
	require.NoError(t, err)

	assert.Equal(t, "alice", user.Username)
	assert.True(t, user.IsFirstLogin)

	// 密码散列存储且不出现在返回对象里
	stored := userRepo.users[user.UserID]
	require.NotNil(t, stored.Password)
	assert.NotEqual(t, password, *stored.Password)
	assert.True(t, security.CheckPassword(password, *stored.Password))
}

func TestSyncUser_UpdatesExistingUser(t *testing.T) {
	userRepo := newFakeUserRepo(&model.User{ID: 1, FirebaseUID: "fb-1", Username: "old"})
	svc := NewUserService(userRepo)

	user, err := svc.SyncUser(context.Background(), &dto.SyncUserDTO{
		FirebaseUID: "fb-1",
		Username:    "renamed",
	})
	require.NoError(t, err)
	assert.Equal(t, uint64(1), user.UserID)
}

func TestGetUser_NotFound(t *testing.T) {
	svc := NewUserService(newFakeUserRepo())

	_, err := svc.GetUser(context.Background(), 42)
	assert.ErrorIs(t, err, ErrUserNotFound)
}

func TestCheckAuth(t *testing.T) {
	userRepo := newFakeUserRepo(&model.User{ID: 1, FirebaseUID: "fb-1", Username: "alice"})
	svc := NewUserService(userRepo)

	result, err := svc.CheckAuth(context.Background(), "fb-1")
	require.NoError(t, err)
	assert.True(t, result.Authenticated)
	require.NotNil(t, result.User)
	assert.Equal(t, "alice", result.User.Username)

	claims, err := security.ValidateToken(result.Token)
	require.NoError(t, err)
	assert.Equal(t, uint64(1), claims.UserID)
}

func TestCheckAuth_UnknownIdentity(t *testing.T) {
	svc := NewUserService(newFakeUserRepo())

	result, err := svc.CheckAuth(context.Background(), "fb-missing")
	require.NoError(t, err)
	assert.False(t, result.Authenticated)
	assert.Nil(t, result.User)
	assert.Empty(t, result.Token)
}
