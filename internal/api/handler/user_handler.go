package handler

import (
	"Pulse/internal/api/dto"
	"Pulse/internal/pkg/response"
	"Pulse/internal/pkg/util"
	"Pulse/internal/service"

	"github.com/gin-gonic/gin"
)

type UserHandler struct {
	userSvc service.UserService
}

func NewUserHandler(userSvc service.UserService) *UserHandler {
	return &UserHandler{userSvc: userSvc}
}

// SyncUser 按外部身份标识创建或更新用户
func (s *UserHandler) SyncUser(c *gin.Context) {
	req := &dto.SyncUserDTO{}
	if err := c.ShouldBindJSON(req); err != nil {
		response.Error(c, err)
		return
	}
	if err := util.ValidateDTO(req); err != nil {
		response.Fail(c, response.BadRequest, err.Error())
		return
	}

	user, err := s.userSvc.SyncUser(c.Request.Context(), req)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.Success(c, user)
}

func (s *UserHandler) GetUser(c *gin.Context) {
	userID, err := parseUserID(c)
	if err != nil {
		response.Error(c, err)
		return
	}

	user, err := s.userSvc.GetUser(c.Request.Context(), userID)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.Success(c, user)
}

// CheckAuth 校验外部身份是否已建档，并签发内部 Token
func (s *UserHandler) CheckAuth(c *gin.Context) {
	firebaseUID := c.Query("firebaseUid")
	if firebaseUID == "" {
		response.Error(c, service.ErrParamInvalid)
		return
	}

	result, err := s.userSvc.CheckAuth(c.Request.Context(), firebaseUID)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.Success(c, result)
}

// UploadAvatar 上传头像文件，成功返回公共访问地址
func (s *UserHandler) UploadAvatar(c *gin.Context) {
	userID, err := parseUserID(c)
	if err != nil {
		response.Error(c, err)
		return
	}

	file, err := c.FormFile("avatar")
	if err != nil {
		response.Error(c, service.ErrParamInvalid)
		return
	}

	url, err := s.userSvc.UpdateAvatar(c.Request.Context(), userID, file)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.Success(c, gin.H{"avatarUrl": url})
}
