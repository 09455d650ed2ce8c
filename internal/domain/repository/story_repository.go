// Package repository 定义领域仓储接口
package repository

import (
	"context"

	"ai-story-api/internal/domain/entity"
)

// StoryRepository 故事仓储接口
type StoryRepository interface {
	// Create 创建故事记录并回填自增 ID
	Create(ctx context.Context, story *entity.Story) error

	// ListByUser 获取某用户的全部故事，按创建时间倒序
	ListByUser(ctx context.Context, userID uint) ([]*entity.Story, error)

	// GetByUserAndID 获取某用户名下的单条故事；
	// 不存在或属于其他用户时均返回 (nil, nil)，不泄露他人记录的存在性
	GetByUserAndID(ctx context.Context, userID, storyID uint) (*entity.Story, error)
}
