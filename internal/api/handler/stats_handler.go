package handler

import (
	"Pulse/internal/pkg/consts"
	"Pulse/internal/pkg/response"
	"Pulse/internal/service"

	"github.com/gin-gonic/gin"
)

type StatsHandler struct {
	statsSvc service.StatsService
	userSvc  service.UserService
}

func NewStatsHandler(statsSvc service.StatsService, userSvc service.UserService) *StatsHandler {
	return &StatsHandler{statsSvc: statsSvc, userSvc: userSvc}
}

// GetStats 查询统计。platform 省略或为 all 时返回全平台数组，
// 指定平台时返回单个条目。免费档只能查看 7 天以内的窗口。
func (s *StatsHandler) GetStats(c *gin.Context) {
	userID, err := parseUserID(c)
	if err != nil {
		response.Error(c, err)
		return
	}
	days, err := parseIntDefault(c, "days", consts.DefaultDays)
	if err != nil {
		response.Error(c, err)
		return
	}

	user, err := s.userSvc.GetUser(c.Request.Context(), userID)
	if err != nil {
		response.Error(c, err)
		return
	}
	if !user.IsPro && days > consts.FreeTierMaxDays {
		response.Error(c, service.ErrUpgradeRequired)
		return
	}

	platform := c.Query("platform")
	if platform == "" || platform == consts.PlatformAll {
		stats, err := s.statsSvc.GetAllPlatformStats(c.Request.Context(), userID, days)
		if err != nil {
			response.Error(c, err)
			return
		}
		response.Success(c, stats)
		return
	}

	stats, err := s.statsSvc.GetPlatformStats(c.Request.Context(), userID, platform, days)
	if err != nil {
		response.Error(c, err)
		return
	}
	if stats == nil {
		response.Error(c, service.ErrStatsNotFound)
		return
	}
	response.Success(c, stats)
}
