// Package handler 提供 HTTP 请求处理器
package handler

import (
	"net/http"

	"ai-story-api/internal/domain/repository"
	"ai-story-api/internal/interfaces/http/dto"
	"ai-story-api/internal/interfaces/http/middleware"
	"ai-story-api/pkg/logger"

	"github.com/gin-gonic/gin"
)

// UserHandler 用户处理器
type UserHandler struct {
	userRepo repository.UserRepository
}

// NewUserHandler 创建用户处理器
func NewUserHandler(userRepo repository.UserRepository) *UserHandler {
	return &UserHandler{
		userRepo: userRepo,
	}
}

// Me 获取当前用户信息
// @Summary 获取当前用户信息
// @Tags Users
// @Produce json
// @Success 200 {object} map[string]dto.UserDTO
// @Failure 404 {object} dto.ErrorResponse
// @Router /api/me [get]
func (h *UserHandler) Me(c *gin.Context) {
	ctx := c.Request.Context()
	userID := middleware.GetUserID(c)

	user, err := h.userRepo.GetByID(ctx, userID)
	if err != nil {
		logger.Error(ctx, "failed to get user", err)
		dto.InternalError(c, "获取用户信息失败")
		return
	}

	if user == nil {
		dto.NotFound(c, "用户不存在")
		return
	}

	c.JSON(http.StatusOK, gin.H{"user": dto.ToUserDTO(user)})
}
