package service

import (
	"Pulse/internal/api/dto"
	"Pulse/internal/model"
	"Pulse/internal/pkg/consts"
	"Pulse/internal/pkg/payment"
	"Pulse/internal/pkg/redis"
	"Pulse/internal/repository"
	"context"
	"fmt"
	log "log/slog"
	"time"

	"github.com/google/uuid"
	"github.com/jinzhu/copier"
)

type SubscriptionService interface {
	CreateOrder(ctx context.Context, req *dto.CreateOrderDTO) (*dto.OrderDTO, error)
	Activate(ctx context.Context, req *dto.CreateSubscriptionDTO) (*dto.SubscriptionDTO, error)
	GetActive(ctx context.Context, userID uint64) (*dto.SubscriptionDTO, error)
}

type SubscriptionServiceImpl struct {
	subscriptionRepo repository.SubscriptionRepo
	userRepo         repository.UserRepo
	gateway          *payment.Client
}

func NewSubscriptionService(
	subscriptionRepo repository.SubscriptionRepo,
	userRepo repository.UserRepo,
	gateway *payment.Client,
) SubscriptionService {
	return &SubscriptionServiceImpl{
		subscriptionRepo: subscriptionRepo,
		userRepo:         userRepo,
		gateway:          gateway,
	}
}

// CreateOrder 按计划价格在支付网关创建订单
func (s *SubscriptionServiceImpl) CreateOrder(ctx context.Context, req *dto.CreateOrderDTO) (*dto.OrderDTO, error) {
	amount, ok := consts.PlanPrices[req.Plan]
	if !ok {
		return nil, ErrPlanInvalid
	}
	if s.gateway == nil || !s.gateway.Configured() {
		return nil, ErrPaymentNotConfigured
	}

	receipt := fmt.Sprintf("pulse-%s", uuid.NewString())
	order, err := s.gateway.CreateOrder(ctx, amount, "INR", receipt)
	if err != nil {
		return nil, err
	}

	if client := redis.GetRdbClient(); client != nil {
		if err := redis.SetWithExpiration(ctx, consts.OrderReceiptKey+order.ID, receipt, 24*time.Hour); err != nil {
			log.WarnContext(ctx, "order receipt cache failed", "order_id", order.ID, "err", err)
		}
	}

	return &dto.OrderDTO{
		OrderID:  order.ID,
		Amount:   order.Amount,
		Currency: order.Currency,
		KeyID:    s.gateway.KeyID(),
	}, nil
}

// Activate 支付完成后开通订阅：可选签名校验，按计划推算到期日，
// 落订阅记录并置位用户 Pro 标记
func (s *SubscriptionServiceImpl) Activate(ctx context.Context, req *dto.CreateSubscriptionDTO) (*dto.SubscriptionDTO, error) {
	if _, ok := consts.PlanPrices[req.Plan]; !ok {
		return nil, ErrPlanInvalid
	}

	user, err := s.userRepo.GetUserById(ctx, req.UserID)
	if err != nil {
		return nil, err
	}
	if user == nil {
		return nil, ErrUserNotFound
	}

	if req.Signature != nil && *req.Signature != "" {
		if s.gateway == nil || !s.gateway.Configured() {
			return nil, ErrPaymentNotConfigured
		}
		if !s.gateway.VerifySignature(req.OrderID, req.PaymentID, *req.Signature) {
			return nil, ErrSignatureMismatch
		}
	}

	// 同一用户的并发开通串行化
	lockKey := consts.SubscriptionLock + fmt.Sprint(req.UserID)
	lockValue := uuid.NewString()
	if client := redis.GetRdbClient(); client != nil {
		acquired, err := redis.TryLock(ctx, lockKey, lockValue, 10*time.Second, 3)
		if err != nil {
			return nil, err
		}
		if !acquired {
			return nil, UnExpectedError
		}
		defer redis.UnLock(ctx, lockKey, lockValue)
	}

	startDate := time.Now()
	var endDate time.Time
	switch req.Plan {
	case consts.PlanMonthly:
		endDate = startDate.AddDate(0, 1, 0)
	case consts.PlanAnnual:
		endDate = startDate.AddDate(1, 0, 0)
	}

	subscription := &model.Subscription{
		UserID:    req.UserID,
		Plan:      req.Plan,
		PaymentID: req.PaymentID,
		OrderID:   req.OrderID,
		StartDate: startDate,
		EndDate:   endDate,
		Status:    consts.SubscriptionStatusActive,
	}
	if err := s.subscriptionRepo.CreateSubscription(ctx, subscription); err != nil {
		return nil, err
	}

	if _, err := s.userRepo.UpdateUserIsPro(ctx, req.UserID, true); err != nil {
		return nil, err
	}

	return toSubscriptionDTO(subscription), nil
}

func (s *SubscriptionServiceImpl) GetActive(ctx context.Context, userID uint64) (*dto.SubscriptionDTO, error) {
	subscription, err := s.subscriptionRepo.GetActiveByUserId(ctx, userID, time.Now())
	if err != nil {
		return nil, err
	}
	if subscription == nil {
		return nil, ErrSubscriptionNotFound
	}
	return toSubscriptionDTO(subscription), nil
}

func toSubscriptionDTO(subscription *model.Subscription) *dto.SubscriptionDTO {
	out := &dto.SubscriptionDTO{}
	_ = copier.Copy(out, subscription)
	return out
}
