package platform

import (
	"Pulse/internal/model"
	"context"

	"github.com/pkg/errors"
)

// stubAdapter 未接入的平台，调用立即失败而不是返回伪造数据
type stubAdapter struct {
	platform string
}

func newStubAdapter(platform string) *stubAdapter {
	return &stubAdapter{platform: platform}
}

func (s *stubAdapter) Platform() string {
	return s.platform
}

func (s *stubAdapter) FetchStats(ctx context.Context, userID uint64, credential string, windowDays int) (*model.PlatformStats, error) {
	if err := validateFetchArgs(credential, windowDays); err != nil {
		return nil, err
	}
	return nil, errors.Wrap(ErrAdapterNotImplemented, s.platform)
}

func (s *stubAdapter) FetchPosts(ctx context.Context, userID uint64, credential string, windowDays int) ([]*model.Post, error) {
	stats, err := s.FetchStats(ctx, userID, credential, windowDays)
	if err != nil {
		return nil, err
	}
	return stats.Posts, nil
}
