package service

import (
	"Pulse/internal/api/dto"
	"Pulse/internal/model"
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestUpsertKeys_ClearsFirstLogin(t *testing.T) {
	userRepo := newFakeUserRepo(&model.User{ID: 1, FirebaseUID: "fb-1", IsFirstLogin: true})
	apiKeyRepo := &fakeAPIKeyRepo{}
	svc := NewAPIKeyService(apiKeyRepo, userRepo)

	token := "yt-token"
	err := svc.UpsertKeys(context.Background(), &dto.APIKeysDTO{UserID: 1, YoutubeKey: &token})
	require.NoError(t, err)

	saved := apiKeyRepo.keys[1]
	require.NotNil(t, saved)
	assert.Equal(t, "yt-token", *saved.YoutubeKey)
	assert.Nil(t, saved.TwitterKey)
	assert.False(t, userRepo.users[1].IsFirstLogin)
}

func TestUpsertKeys_UserNotFound(t *testing.T) {
	svc := NewAPIKeyService(&fakeAPIKeyRepo{}, newFakeUserRepo())

	err := svc.UpsertKeys(context.Background(), &dto.APIKeysDTO{UserID: 5})
	assert.ErrorIs(t, err, ErrUserNotFound)
}

func TestGetKeys(t *testing.T) {
	userRepo := newFakeUserRepo(&model.User{ID: 1, FirebaseUID: "fb-1"})
	apiKeyRepo := &fakeAPIKeyRepo{}
	svc := NewAPIKeyService(apiKeyRepo, userRepo)

	_, err := svc.GetKeys(context.Background(), 1)
	assert.ErrorIs(t, err, ErrAPIKeysNotFound)

	token := "ig-token"
	require.NoError(t, apiKeyRepo.Upsert(context.Background(), &model.APIKey{UserID: 1, InstagramKey: &token}))

	keys, err := svc.GetKeys(context.Background(), 1)
	require.NoError(t, err)
	assert.Equal(t, "ig-token", *keys.InstagramKey)
	assert.Nil(t, keys.YoutubeKey)
}
