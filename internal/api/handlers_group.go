package api

import "Pulse/internal/api/handler"

// HandlersGroup 封装了所有已初始化的 Handler 实例
type HandlersGroup struct {
	UserHandler         *handler.UserHandler
	APIKeyHandler       *handler.APIKeyHandler
	StatsHandler        *handler.StatsHandler
	PostHandler         *handler.PostHandler
	SubscriptionHandler *handler.SubscriptionHandler
}
