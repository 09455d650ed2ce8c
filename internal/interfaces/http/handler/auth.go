// Package handler 提供 HTTP 请求处理器
package handler

import (
	"net/http"

	"ai-story-api/internal/application/auth"
	"ai-story-api/internal/interfaces/http/dto"
	"ai-story-api/pkg/logger"
	"ai-story-api/pkg/utils"

	"github.com/gin-gonic/gin"
)

// AuthHandler 认证处理器
type AuthHandler struct {
	authService *auth.Service
	jwtManager  *utils.JWTManager
}

// NewAuthHandler 创建认证处理器
func NewAuthHandler(authService *auth.Service, jwtManager *utils.JWTManager) *AuthHandler {
	return &AuthHandler{
		authService: authService,
		jwtManager:  jwtManager,
	}
}

// Register 注册
// @Summary 用户注册
// @Description 创建新用户，用户名与邮箱全局唯一
// @Tags Auth
// @Accept json
// @Produce json
// @Param body body dto.RegisterRequest true "注册信息"
// @Success 201 {object} dto.RegisterResponse
// @Failure 400 {object} dto.ErrorResponse
// @Router /api/register [post]
func (h *AuthHandler) Register(c *gin.Context) {
	ctx := c.Request.Context()

	var req dto.RegisterRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		dto.BadRequest(c, "请求格式错误")
		return
	}

	user, err := h.authService.Register(ctx, req.Username, req.Email, req.Password)
	if err != nil {
		dto.FromError(c, err)
		return
	}

	c.JSON(http.StatusCreated, dto.RegisterResponse{
		Message: "注册成功",
		User:    dto.ToUserDTO(user),
	})
}

// Login 登录
// @Summary 用户登录
// @Description 校验用户名密码并签发 AccessToken
// @Tags Auth
// @Accept json
// @Produce json
// @Param body body dto.LoginRequest true "登录信息"
// @Success 200 {object} dto.LoginResponse
// @Failure 401 {object} dto.ErrorResponse
// @Router /api/login [post]
func (h *AuthHandler) Login(c *gin.Context) {
	ctx := c.Request.Context()

	var req dto.LoginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		dto.BadRequest(c, "请求格式错误")
		return
	}

	user, err := h.authService.Authenticate(ctx, req.Username, req.Password)
	if err != nil {
		dto.FromError(c, err)
		return
	}

	accessToken, err := h.jwtManager.GenerateToken(user.ID)
	if err != nil {
		logger.Error(ctx, "failed to generate token", err, "user_id", user.ID)
		dto.InternalError(c, "登录失败")
		return
	}

	c.JSON(http.StatusOK, dto.LoginResponse{
		Message:     "登录成功",
		AccessToken: accessToken,
		User:        dto.ToUserDTO(user),
	})
}
