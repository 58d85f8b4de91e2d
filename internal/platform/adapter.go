package platform

import (
	"Pulse/internal/model"
	"context"

	"github.com/pkg/errors"
)

var (
	// ErrUnsupportedPlatform 平台标识不在封闭集合内
	ErrUnsupportedPlatform = errors.New("unsupported platform")
	// ErrAdapterNotImplemented 平台适配器未实现，是一等预期失败，由调用方决定降级
	ErrAdapterNotImplemented = errors.New("platform adapter not implemented")
	// ErrEmptyCredential 凭据为空
	ErrEmptyCredential = errors.New("credential must not be empty")
	// ErrInvalidWindow 时间窗必须为正整数天数
	ErrInvalidWindow = errors.New("window days must be positive")
)

// Adapter 将平台凭据与时间窗请求翻译为标准化统计对象。
// 任何出站调用失败都以错误返回，适配器自身从不以成功伪装部分数据。
type Adapter interface {
	Platform() string
	FetchStats(ctx context.Context, userID uint64, credential string, windowDays int) (*model.PlatformStats, error)
	FetchPosts(ctx context.Context, userID uint64, credential string, windowDays int) ([]*model.Post, error)
}

func validateFetchArgs(credential string, windowDays int) error {
	if credential == "" {
		return ErrEmptyCredential
	}
	if windowDays <= 0 {
		return ErrInvalidWindow
	}
	return nil
}
