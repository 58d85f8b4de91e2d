package platform

import (
	"Pulse/internal/api/config"
	"Pulse/internal/pkg/consts"
	"time"
)

// Factory 将平台标识映射到适配器实例，无状态，定义域封闭
type Factory struct {
	adapters map[string]Adapter
}

func NewFactory(cfg config.PlatformsConfig) *Factory {
	timeout := time.Duration(cfg.TimeoutSeconds) * time.Second
	if timeout <= 0 {
		timeout = 10 * time.Second
	}

	return &Factory{
		adapters: map[string]Adapter{
			consts.PlatformYoutube:   NewYoutubeAdapter(cfg.YoutubeBaseURL, timeout),
			consts.PlatformInstagram: newStubAdapter(consts.PlatformInstagram),
			consts.PlatformTwitter:   newStubAdapter(consts.PlatformTwitter),
			consts.PlatformFacebook:  newStubAdapter(consts.PlatformFacebook),
		},
	}
}

func (s *Factory) GetAdapter(platform string) (Adapter, error) {
	adapter, ok := s.adapters[platform]
	if !ok {
		return nil, ErrUnsupportedPlatform
	}
	return adapter, nil
}
