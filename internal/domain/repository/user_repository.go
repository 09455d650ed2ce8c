// Package repository 定义领域仓储接口
package repository

import (
	"context"
	"errors"

	"ai-story-api/internal/domain/entity"
)

// ErrDuplicateKey 唯一约束冲突（username 或 email 已存在）
var ErrDuplicateKey = errors.New("duplicate key")

// UserRepository 用户仓储接口
type UserRepository interface {
	// Create 创建用户；username 或 email 冲突时返回唯一约束错误
	Create(ctx context.Context, user *entity.User) error

	// GetByID 根据 ID 获取用户，不存在时返回 (nil, nil)
	GetByID(ctx context.Context, id uint) (*entity.User, error)

	// GetByUsername 根据用户名获取用户，不存在时返回 (nil, nil)
	GetByUsername(ctx context.Context, username string) (*entity.User, error)

	// ExistsByUsernameOrEmail 检查用户名或邮箱是否已被占用
	ExistsByUsernameOrEmail(ctx context.Context, username, email string) (bool, error)
}
