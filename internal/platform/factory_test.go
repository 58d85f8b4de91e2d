package platform

import (
	"Pulse/internal/api/config"
	"Pulse/internal/pkg/consts"
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFactory_GetAdapter(t *testing.T) {
	factory := NewFactory(config.PlatformsConfig{})

	for _, name := range consts.Platforms {
		adapter, err := factory.GetAdapter(name)
		require.NoError(t, err)
		assert.Equal(t, name, adapter.Platform())
	}

	_, err := factory.GetAdapter("tiktok")
	assert.ErrorIs(t, err, ErrUnsupportedPlatform)
}

func TestStubAdapter_NotImplemented(t *testing.T) {
	factory := NewFactory(config.PlatformsConfig{})

	adapter, err := factory.GetAdapter(consts.PlatformInstagram)
	require.NoError(t, err)

	_, err = adapter.FetchStats(context.Background(), 1, "ig-token", 7)
	assert.ErrorIs(t, err, ErrAdapterNotImplemented)

	// 参数校验先于未实现错误
	_, err = adapter.FetchStats(context.Background(), 1, "", 7)
	assert.ErrorIs(t, err, ErrEmptyCredential)
}
