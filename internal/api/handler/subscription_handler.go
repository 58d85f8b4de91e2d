package handler

import (
	"Pulse/internal/api/dto"
	"Pulse/internal/pkg/response"
	"Pulse/internal/service"

	"github.com/gin-gonic/gin"
)

type SubscriptionHandler struct {
	subscriptionSvc service.SubscriptionService
}

func NewSubscriptionHandler(subscriptionSvc service.SubscriptionService) *SubscriptionHandler {
	return &SubscriptionHandler{subscriptionSvc: subscriptionSvc}
}

// CreateOrder 在支付网关创建订单
func (s *SubscriptionHandler) CreateOrder(c *gin.Context) {
	req := &dto.CreateOrderDTO{}
	if err := c.ShouldBindJSON(req); err != nil {
		response.Error(c, err)
		return
	}

	order, err := s.subscriptionSvc.CreateOrder(c.Request.Context(), req)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.Success(c, order)
}

// Activate 支付完成后开通订阅
func (s *SubscriptionHandler) Activate(c *gin.Context) {
	req := &dto.CreateSubscriptionDTO{}
	if err := c.ShouldBindJSON(req); err != nil {
		response.Error(c, err)
		return
	}

	subscription, err := s.subscriptionSvc.Activate(c.Request.Context(), req)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.Success(c, subscription)
}

func (s *SubscriptionHandler) GetActive(c *gin.Context) {
	userID, err := parseUserID(c)
	if err != nil {
		response.Error(c, err)
		return
	}

	subscription, err := s.subscriptionSvc.GetActive(c.Request.Context(), userID)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.Success(c, subscription)
}
