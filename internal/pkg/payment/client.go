package payment

import (
	"Pulse/internal/api/config"
	"context"
	"crypto/hmac"
	"crypto/sha256"
	"encoding/hex"
	"time"

	"github.com/go-resty/resty/v2"
	"github.com/pkg/errors"
)

// Client 第三方支付网关客户端。未配置密钥时仅订阅购买功能降级，
// 其余接口不受影响。
type Client struct {
	http      *resty.Client
	keyID     string
	keySecret string
}

func NewClient(cfg config.PaymentConfig) *Client {
	client := resty.New().
		SetBaseURL(cfg.BaseURL).
		SetTimeout(10 * time.Second).
		SetBasicAuth(cfg.KeyID, cfg.KeySecret)

	return &Client{
		http:      client,
		keyID:     cfg.KeyID,
		keySecret: cfg.KeySecret,
	}
}

// Configured 支付网关密钥是否就绪
func (s *Client) Configured() bool {
	return s.keyID != "" && s.keySecret != ""
}

// KeyID 公开密钥标识，前端拉起支付时需要
func (s *Client) KeyID() string {
	return s.keyID
}

// Order 网关侧订单
type Order struct {
	ID       string `json:"id"`
	Amount   int64  `json:"amount"`
	Currency string `json:"currency"`
	Receipt  string `json:"receipt"`
	Status   string `json:"status"`
}

type createOrderRequest struct {
	Amount   int64  `json:"amount"`
	Currency string `json:"currency"`
	Receipt  string `json:"receipt"`
}

// CreateOrder 在网关创建一笔订单，金额为最小货币单位
func (s *Client) CreateOrder(ctx context.Context, amount int64, currency string, receipt string) (*Order, error) {
	var order Order
	resp, err := s.http.R().
		SetContext(ctx).
		SetBody(&createOrderRequest{
			Amount:   amount,
			Currency: currency,
			Receipt:  receipt,
		}).
		SetResult(&order).
		Post("/orders")
	if err != nil {
		return nil, errors.Wrap(err, "payment gateway order request failed")
	}
	if resp.IsError() {
		return nil, errors.Errorf("payment gateway order request returned %s", resp.Status())
	}
	if order.ID == "" {
		return nil, errors.New("payment gateway order response missing id")
	}

	return &order, nil
}

// VerifySignature 校验回调签名：hex(HMAC-SHA256(orderID|paymentID, keySecret))
func (s *Client) VerifySignature(orderID string, paymentID string, signature string) bool {
	mac := hmac.New(sha256.New, []byte(s.keySecret))
	mac.Write([]byte(orderID + "|" + paymentID))
	expected := hex.EncodeToString(mac.Sum(nil))
	return hmac.Equal([]byte(expected), []byte(signature))
}
