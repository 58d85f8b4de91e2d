package service

import (
	"Pulse/internal/api/dto"
	"Pulse/internal/model"
	"Pulse/internal/repository"
	"context"
	log "log/slog"
)

type APIKeyService interface {
	UpsertKeys(ctx context.Context, req *dto.APIKeysDTO) error
	GetKeys(ctx context.Context, userID uint64) (*dto.APIKeysDTO, error)
}

type APIKeyServiceImpl struct {
	apiKeyRepo repository.APIKeyRepo
	userRepo   repository.UserRepo
}

func NewAPIKeyService(apiKeyRepo repository.APIKeyRepo, userRepo repository.UserRepo) APIKeyService {
	return &APIKeyServiceImpl{apiKeyRepo: apiKeyRepo, userRepo: userRepo}
}

// UpsertKeys 覆盖写入用户的平台凭据，首次保存后清掉首登标记
func (s *APIKeyServiceImpl) UpsertKeys(ctx context.Context, req *dto.APIKeysDTO) error {
	user, err := s.userRepo.GetUserById(ctx, req.UserID)
	if err != nil {
		return err
	}
	if user == nil {
		return ErrUserNotFound
	}

	keys := &model.APIKey{
		UserID:       req.UserID,
		YoutubeKey:   req.YoutubeKey,
		InstagramKey: req.InstagramKey,
		TwitterKey:   req.TwitterKey,
		FacebookKey:  req.FacebookKey,
	}
	if err := s.apiKeyRepo.Upsert(ctx, keys); err != nil {
		return err
	}

	if user.IsFirstLogin {
		if err := s.userRepo.UpdateUserFirstLogin(ctx, req.UserID, false); err != nil {
			log.WarnContext(ctx, "first login flag clear failed", "user_id", req.UserID, "err", err)
		}
	}
	return nil
}

func (s *APIKeyServiceImpl) GetKeys(ctx context.Context, userID uint64) (*dto.APIKeysDTO, error) {
	keys, err := s.apiKeyRepo.GetByUserId(ctx, userID)
	if err != nil {
		return nil, err
	}
	if keys == nil {
		return nil, ErrAPIKeysNotFound
	}

	return &dto.APIKeysDTO{
		UserID:       keys.UserID,
		YoutubeKey:   keys.YoutubeKey,
		InstagramKey: keys.InstagramKey,
		TwitterKey:   keys.TwitterKey,
		FacebookKey:  keys.FacebookKey,
	}, nil
}
