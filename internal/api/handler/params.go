package handler

import (
	"Pulse/internal/service"
	"strconv"

	"github.com/gin-gonic/gin"
)

// parseUserID 读取必填的 userId 查询参数，要求为正整数
func parseUserID(c *gin.Context) (uint64, error) {
	raw := c.Query("userId")
	if raw == "" {
		return 0, service.ErrParamInvalid
	}
	userID, err := strconv.ParseUint(raw, 10, 64)
	if err != nil || userID == 0 {
		return 0, service.ErrParamInvalid
	}
	return userID, nil
}

// parseIntDefault 读取可选的整数查询参数，缺省取 def，非法或非正视为参数错误
func parseIntDefault(c *gin.Context, name string, def int) (int, error) {
	raw := c.Query(name)
	if raw == "" {
		return def, nil
	}
	value, err := strconv.Atoi(raw)
	if err != nil || value <= 0 {
		return 0, service.ErrParamInvalid
	}
	return value, nil
}
