package dto

// Response 统一响应封装
type Response struct {
	Code    int         `json:"code"`
	Message string      `json:"message"`
	Data    interface{} `json:"data"`

	// Upgrade 免费档超出数据窗口时的升级提示
	Upgrade bool `json:"upgrade,omitempty"`
}
