// Package story 提供故事生成编排
package story

import (
	"context"
	"errors"
	"strings"
	"time"

	"ai-story-api/internal/domain/entity"
	"ai-story-api/internal/domain/repository"
	"ai-story-api/internal/infrastructure/llm"
	apperrors "ai-story-api/pkg/errors"
	"ai-story-api/pkg/logger"
	"ai-story-api/pkg/metrics"
)

// DefaultWordCount 未指定目标字数时的默认值
const DefaultWordCount = 5000

// Generator 上游文本生成接口
type Generator interface {
	Generate(ctx context.Context, systemPrompt, userPrompt string) (string, error)
}

// GenerateResult 一次生成成功后的结果
type GenerateResult struct {
	StoryID   uint
	Content   string
	GenreName string
	WordCount int
}

// Service 故事服务
type Service struct {
	stories   repository.StoryRepository
	generator Generator
}

// NewService 创建故事服务
func NewService(stories repository.StoryRepository, generator Generator) *Service {
	return &Service{
		stories:   stories,
		generator: generator,
	}
}

// Generate 执行一次完整的生成流程：
// 校验 → 组装提示词 → 调用上游 → 持久化 → 返回结果。
//
// 上游调用失败时不落库；持久化失败时已生成的正文随错误丢弃。
func (s *Service) Generate(ctx context.Context, userID uint, outline, genre string, wordCount int) (*GenerateResult, error) {
	outline = strings.TrimSpace(outline)
	if outline == "" {
		return nil, apperrors.New(apperrors.CodeInvalidParam, "请输入故事大纲")
	}
	if wordCount <= 0 {
		wordCount = DefaultWordCount
	}

	prompts := BuildPrompts(genre, outline, wordCount)

	start := time.Now()
	content, err := s.generator.Generate(ctx, prompts.System, prompts.User)
	metrics.StoryGenerationDuration.WithLabelValues(prompts.GenreName).Observe(time.Since(start).Seconds())
	if err != nil {
		metrics.StoryGenerationTotal.WithLabelValues(prompts.GenreName, "error").Inc()
		return nil, mapGenerateError(err)
	}

	story := entity.NewStory(userID, outline, prompts.GenreName, content)
	if err := s.stories.Create(ctx, story); err != nil {
		metrics.StoryGenerationTotal.WithLabelValues(prompts.GenreName, "error").Inc()
		return nil, apperrors.Wrap(err, apperrors.CodeDatabaseError, "保存故事失败")
	}

	metrics.StoryGenerationTotal.WithLabelValues(prompts.GenreName, "success").Inc()
	metrics.StoryWordCount.WithLabelValues(prompts.GenreName).Observe(float64(story.WordCount))

	logger.Info(ctx, "story generated",
		"user_id", userID,
		"story_id", story.ID,
		"genre", prompts.GenreName,
		"word_count", story.WordCount,
	)

	return &GenerateResult{
		StoryID:   story.ID,
		Content:   content,
		GenreName: prompts.GenreName,
		WordCount: story.WordCount,
	}, nil
}

// List 获取用户全部故事，按创建时间倒序
func (s *Service) List(ctx context.Context, userID uint) ([]*entity.Story, error) {
	stories, err := s.stories.ListByUser(ctx, userID)
	if err != nil {
		return nil, apperrors.Wrap(err, apperrors.CodeDatabaseError, "获取故事列表失败")
	}
	return stories, nil
}

// Get 获取用户名下的单条故事；不存在或不属于该用户时返回 404 类错误
func (s *Service) Get(ctx context.Context, userID, storyID uint) (*entity.Story, error) {
	story, err := s.stories.GetByUserAndID(ctx, userID, storyID)
	if err != nil {
		return nil, apperrors.Wrap(err, apperrors.CodeDatabaseError, "获取故事失败")
	}
	if story == nil {
		return nil, apperrors.New(apperrors.CodeStoryNotFound, "故事不存在")
	}
	return story, nil
}

// mapGenerateError 将上游客户端错误映射为应用错误
func mapGenerateError(err error) *apperrors.AppError {
	if errors.Is(err, llm.ErrTimeout) {
		return apperrors.New(apperrors.CodeUpstreamTimeout, "请求超时，请稍后重试")
	}

	var upErr *llm.UpstreamError
	if errors.As(err, &upErr) {
		return apperrors.Wrap(err, apperrors.CodeUpstreamError, "API调用失败: "+upErr.Body)
	}

	if errors.Is(err, llm.ErrMalformedResponse) {
		return apperrors.Wrap(err, apperrors.CodeUpstreamMalformed, "上游响应格式异常")
	}

	return apperrors.Wrap(err, apperrors.CodeGenerationFailed, err.Error())
}
