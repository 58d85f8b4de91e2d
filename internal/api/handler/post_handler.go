package handler

import (
	"Pulse/internal/pkg/consts"
	"Pulse/internal/pkg/response"
	"Pulse/internal/service"

	"github.com/gin-gonic/gin"
)

type PostHandler struct {
	statsSvc service.StatsService
	userSvc  service.UserService
}

func NewPostHandler(statsSvc service.StatsService, userSvc service.UserService) *PostHandler {
	return &PostHandler{statsSvc: statsSvc, userSvc: userSvc}
}

// GetPosts 查询帖子列表，跨平台按发布时间倒序，支持分页
func (s *PostHandler) GetPosts(c *gin.Context) {
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
	page, err := parseIntDefault(c, "page", consts.DefaultPage)
	if err != nil {
		response.Error(c, err)
		return
	}
	limit, err := parseIntDefault(c, "limit", consts.DefaultLimit)
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

	result, err := s.statsSvc.GetPosts(c.Request.Context(), userID, c.Query("platform"), days, page, limit)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.Success(c, result)
}
