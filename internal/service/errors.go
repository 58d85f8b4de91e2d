package service

import (
	"errors"
)

const (
	BadRequest          = 400
	Unauthorized        = 401
	Forbidden           = 403
	NotFound            = 404
	InternalServerError = 500
)

var (
	ErrParamInvalid         = errors.New("参数错误")
	ErrUserNotFound         = errors.New("用户不存在")
	ErrAPIKeysNotFound      = errors.New("未配置平台凭据")
	ErrStatsNotFound        = errors.New("平台统计不存在")
	ErrUnsupportedPlatform  = errors.New("不支持的平台")
	ErrUpgradeRequired      = errors.New("免费档最多查看7天数据，请升级订阅")
	ErrPlanInvalid          = errors.New("订阅计划无效")
	ErrSubscriptionNotFound = errors.New("订阅不存在")
	ErrSignatureMismatch    = errors.New("支付签名校验失败")
	ErrPaymentNotConfigured = errors.New("支付网关未配置")
	ErrFileNotSupported     = errors.New("不支持的文件类型")
	UnExpectedError         = errors.New("系统异常，请稍后重试")
)

var ErrorMap = map[error]int{
	ErrParamInvalid:         BadRequest,
	ErrUserNotFound:         NotFound,
	ErrAPIKeysNotFound:      NotFound,
	ErrStatsNotFound:        NotFound,
	ErrUnsupportedPlatform:  BadRequest,
	ErrUpgradeRequired:      Forbidden,
	ErrPlanInvalid:          BadRequest,
	ErrSubscriptionNotFound: NotFound,
	ErrSignatureMismatch:    BadRequest,
	ErrPaymentNotConfigured: InternalServerError,
	ErrFileNotSupported:     BadRequest,
	UnExpectedError:         InternalServerError,
}
