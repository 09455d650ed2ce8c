// Package handler 提供 HTTP 请求处理器
package handler

import (
	"context"
	"net/http"
	"strconv"

	"ai-story-api/internal/application/story"
	"ai-story-api/internal/interfaces/http/dto"
	"ai-story-api/internal/interfaces/http/middleware"

	"github.com/gin-gonic/gin"
)

// StoryHandler 故事处理器
type StoryHandler struct {
	storyService *story.Service
}

// NewStoryHandler 创建故事处理器
func NewStoryHandler(storyService *story.Service) *StoryHandler {
	return &StoryHandler{
		storyService: storyService,
	}
}

// Generate 生成故事
// @Summary 生成故事
// @Description 调用上游大模型生成故事并保存
// @Tags Stories
// @Accept json
// @Produce json
// @Param body body dto.GenerateRequest true "生成参数"
// @Success 200 {object} dto.GenerateResponse
// @Failure 400 {object} dto.ErrorResponse
// @Failure 500 {object} dto.ErrorResponse
// @Failure 504 {object} dto.ErrorResponse
// @Router /api/generate [post]
func (h *StoryHandler) Generate(c *gin.Context) {
	userID := middleware.GetUserID(c)

	var req dto.GenerateRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		dto.BadRequest(c, "请求格式错误")
		return
	}

	// 客户端断开不中止生成：已发出的上游调用及落库照常完成
	ctx := context.WithoutCancel(c.Request.Context())

	result, err := h.storyService.Generate(ctx, userID, req.Outline, req.Genre, int(req.WordCount))
	if err != nil {
		dto.FromError(c, err)
		return
	}

	c.JSON(http.StatusOK, dto.GenerateResponse{
		Success:   true,
		Story:     result.Content,
		Genre:     result.GenreName,
		WordCount: result.WordCount,
		StoryID:   result.StoryID,
	})
}

// List 获取当前用户的故事列表
// @Summary 获取故事列表
// @Description 按创建时间倒序返回，正文截断为预览
// @Tags Stories
// @Produce json
// @Success 200 {object} dto.StoryListResponse
// @Router /api/stories [get]
func (h *StoryHandler) List(c *gin.Context) {
	ctx := c.Request.Context()
	userID := middleware.GetUserID(c)

	stories, err := h.storyService.List(ctx, userID)
	if err != nil {
		dto.FromError(c, err)
		return
	}

	c.JSON(http.StatusOK, dto.StoryListResponse{
		Stories: dto.ToStoryDTOs(stories),
	})
}

// Get 获取单条故事
// @Summary 获取单条故事
// @Description 返回完整正文；他人的故事按不存在处理
// @Tags Stories
// @Produce json
// @Param id path int true "故事 ID"
// @Success 200 {object} dto.StoryDetailResponse
// @Failure 404 {object} dto.ErrorResponse
// @Router /api/stories/{id} [get]
func (h *StoryHandler) Get(c *gin.Context) {
	ctx := c.Request.Context()
	userID := middleware.GetUserID(c)

	storyID, err := strconv.ParseUint(c.Param("id"), 10, 64)
	if err != nil {
		dto.NotFound(c, "故事不存在")
		return
	}

	s, err := h.storyService.Get(ctx, userID, uint(storyID))
	if err != nil {
		dto.FromError(c, err)
		return
	}

	c.JSON(http.StatusOK, dto.StoryDetailResponse{
		Story: dto.ToStoryDTO(s, false),
	})
}
