package database

import (
	"context"
	"errors"
	"fmt"

	"gorm.io/gorm"

	"ai-story-api/internal/domain/entity"
)

// StoryRepository 故事仓储实现
type StoryRepository struct {
	client *Client
}

// NewStoryRepository 创建故事仓储
func NewStoryRepository(client *Client) *StoryRepository {
	return &StoryRepository{client: client}
}

// Create 创建故事记录
func (r *StoryRepository) Create(ctx context.Context, story *entity.Story) error {
	ctx, span := tracer.Start(ctx, "database.StoryRepository.Create")
	defer span.End()

	if err := r.client.db.WithContext(ctx).Create(story).Error; err != nil {
		span.RecordError(err)
		return fmt.Errorf("failed to create story: %w", err)
	}
	return nil
}

// ListByUser 获取用户故事列表，按创建时间倒序
func (r *StoryRepository) ListByUser(ctx context.Context, userID uint) ([]*entity.Story, error) {
	ctx, span := tracer.Start(ctx, "database.StoryRepository.ListByUser")
	defer span.End()

	var stories []*entity.Story
	if err := r.client.db.WithContext(ctx).
		Where("user_id = ?", userID).
		Order("created_at DESC").
		Find(&stories).Error; err != nil {
		span.RecordError(err)
		return nil, fmt.Errorf("failed to list stories: %w", err)
	}
	return stories, nil
}

// GetByUserAndID 获取用户名下的单条故事
//
// 他人的故事按不存在处理，调用方无法探测其存在性。
func (r *StoryRepository) GetByUserAndID(ctx context.Context, userID, storyID uint) (*entity.Story, error) {
	ctx, span := tracer.Start(ctx, "database.StoryRepository.GetByUserAndID")
	defer span.End()

	var story entity.Story
	if err := r.client.db.WithContext(ctx).
		First(&story, "id = ? AND user_id = ?", storyID, userID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		span.RecordError(err)
		return nil, fmt.Errorf("failed to get story: %w", err)
	}
	return &story, nil
}
