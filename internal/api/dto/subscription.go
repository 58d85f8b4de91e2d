package dto

import "time"

// CreateOrderDTO 创建支付订单
type CreateOrderDTO struct {
	Plan string `json:"plan" binding:"required"`
}

// OrderDTO 网关订单信息，前端用于拉起支付
type OrderDTO struct {
	OrderID  string `json:"orderId"`
	Amount   int64  `json:"amount"`
	Currency string `json:"currency"`
	KeyID    string `json:"keyId"`
}

// CreateSubscriptionDTO 支付完成后的订阅开通请求
type CreateSubscriptionDTO struct {
	UserID    uint64  `json:"userId" binding:"required"`
	Plan      string  `json:"plan" binding:"required"`
	PaymentID string  `json:"paymentId" binding:"required"`
	OrderID   string  `json:"orderId" binding:"required"`
	Signature *string `json:"signature"`
}

// SubscriptionDTO 订阅记录
type SubscriptionDTO struct {
	ID        uint64    `json:"id"`
	UserID    uint64    `json:"userId"`
	Plan      string    `json:"plan"`
	PaymentID string    `json:"paymentId"`
	OrderID   string    `json:"orderId"`
	StartDate time.Time `json:"startDate"`
	EndDate   time.Time `json:"endDate"`
	Status    string    `json:"status"`
}
