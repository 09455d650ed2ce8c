package database

import (
	"context"
	"errors"
	"fmt"

	"gorm.io/gorm"

	"ai-story-api/internal/domain/entity"
	"ai-story-api/internal/domain/repository"
)

// UserRepository 用户仓储实现
type UserRepository struct {
	client *Client
}

// NewUserRepository 创建用户仓储
func NewUserRepository(client *Client) *UserRepository {
	return &UserRepository{client: client}
}

// Create 创建用户
//
// 并发重复注册时以数据库唯一索引为准，冲突统一返回 repository.ErrDuplicateKey。
func (r *UserRepository) Create(ctx context.Context, user *entity.User) error {
	ctx, span := tracer.Start(ctx, "database.UserRepository.Create")
	defer span.End()

	if err := r.client.db.WithContext(ctx).Create(user).Error; err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return repository.ErrDuplicateKey
		}
		span.RecordError(err)
		return fmt.Errorf("failed to create user: %w", err)
	}
	return nil
}

// GetByID 根据 ID 获取用户
func (r *UserRepository) GetByID(ctx context.Context, id uint) (*entity.User, error) {
	ctx, span := tracer.Start(ctx, "database.UserRepository.GetByID")
	defer span.End()

	var user entity.User
	if err := r.client.db.WithContext(ctx).First(&user, "id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		span.RecordError(err)
		return nil, fmt.Errorf("failed to get user: %w", err)
	}
	return &user, nil
}

// GetByUsername 根据用户名获取用户
func (r *UserRepository) GetByUsername(ctx context.Context, username string) (*entity.User, error) {
	ctx, span := tracer.Start(ctx, "database.UserRepository.GetByUsername")
	defer span.End()

	var user entity.User
	if err := r.client.db.WithContext(ctx).First(&user, "username = ?", username).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		span.RecordError(err)
		return nil, fmt.Errorf("failed to get user by username: %w", err)
	}
	return &user, nil
}

// ExistsByUsernameOrEmail 检查用户名或邮箱是否已被占用
func (r *UserRepository) ExistsByUsernameOrEmail(ctx context.Context, username, email string) (bool, error) {
	ctx, span := tracer.Start(ctx, "database.UserRepository.ExistsByUsernameOrEmail")
	defer span.End()

	var count int64
	if err := r.client.db.WithContext(ctx).Model(&entity.User{}).
		Where("username = ? OR email = ?", username, email).
		Count(&count).Error; err != nil {
		span.RecordError(err)
		return false, fmt.Errorf("failed to check user exists: %w", err)
	}
	return count > 0, nil
}
