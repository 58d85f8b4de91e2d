package handler

import (
	"Pulse/internal/api/dto"
	"Pulse/internal/pkg/response"
	"Pulse/internal/service"

	"github.com/gin-gonic/gin"
)

type APIKeyHandler struct {
	apiKeySvc service.APIKeyService
}

func NewAPIKeyHandler(apiKeySvc service.APIKeyService) *APIKeyHandler {
	return &APIKeyHandler{apiKeySvc: apiKeySvc}
}

// SaveKeys 覆盖保存用户的平台凭据
func (s *APIKeyHandler) SaveKeys(c *gin.Context) {
	req := &dto.APIKeysDTO{}
	if err := c.ShouldBindJSON(req); err != nil {
		response.Error(c, err)
		return
	}

	if err := s.apiKeySvc.UpsertKeys(c.Request.Context(), req); err != nil {
		response.Error(c, err)
		return
	}
	response.Success(c, nil)
}

func (s *APIKeyHandler) GetKeys(c *gin.Context) {
	userID, err := parseUserID(c)
	if err != nil {
		response.Error(c, err)
		return
	}

	keys, err := s.apiKeySvc.GetKeys(c.Request.Context(), userID)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.Success(c, keys)
}
