// Package auth 提供用户注册与凭证校验
package auth

import (
	"context"
	"errors"
	"strings"
	"unicode/utf8"

	"ai-story-api/internal/domain/entity"
	"ai-story-api/internal/domain/repository"
	apperrors "ai-story-api/pkg/errors"
	"ai-story-api/pkg/logger"
)

// MinPasswordLength 密码最短长度
const MinPasswordLength = 6

// Service 凭证服务
type Service struct {
	users repository.UserRepository
}

// NewService 创建凭证服务
func NewService(users repository.UserRepository) *Service {
	return &Service{users: users}
}

// Register 注册新用户
//
// 存在性预检查只是优化；并发重复注册以数据库唯一索引为准，
// 约束冲突与预检查命中返回同一个冲突错误。
func (s *Service) Register(ctx context.Context, username, email, password string) (*entity.User, error) {
	username = strings.TrimSpace(username)
	email = strings.TrimSpace(email)

	if username == "" || email == "" || password == "" {
		return nil, apperrors.New(apperrors.CodeInvalidParam, "请填写所有字段")
	}
	// 最短长度按字符计，多字节密码不按字节数放宽
	if utf8.RuneCountInString(password) < MinPasswordLength {
		return nil, apperrors.New(apperrors.CodeInvalidParam, "密码至少6位")
	}

	exists, err := s.users.ExistsByUsernameOrEmail(ctx, username, email)
	if err != nil {
		return nil, apperrors.Wrap(err, apperrors.CodeDatabaseError, "注册失败")
	}
	if exists {
		return nil, apperrors.New(apperrors.CodeConflict, "用户名或邮箱已存在")
	}

	user := entity.NewUser(username, email)
	if err := user.SetPassword(password); err != nil {
		return nil, apperrors.Wrap(err, apperrors.CodeInternalError, "注册失败")
	}

	if err := s.users.Create(ctx, user); err != nil {
		if errors.Is(err, repository.ErrDuplicateKey) {
			return nil, apperrors.New(apperrors.CodeConflict, "用户名或邮箱已存在")
		}
		return nil, apperrors.Wrap(err, apperrors.CodeDatabaseError, "注册失败")
	}

	logger.Info(ctx, "user registered", "user_id", user.ID, "username", user.Username)
	return user, nil
}

// Authenticate 校验用户名与密码
//
// 用户不存在与密码错误返回同一个错误，避免用户名枚举。
func (s *Service) Authenticate(ctx context.Context, username, password string) (*entity.User, error) {
	username = strings.TrimSpace(username)

	user, err := s.users.GetByUsername(ctx, username)
	if err != nil {
		return nil, apperrors.Wrap(err, apperrors.CodeDatabaseError, "登录失败")
	}
	if user == nil || !user.CheckPassword(password) {
		return nil, apperrors.New(apperrors.CodeUnauthorized, "用户名或密码错误")
	}

	return user, nil
}
