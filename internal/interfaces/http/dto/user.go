// Package dto 提供 HTTP 层数据传输对象
package dto

import (
	"time"

	"ai-story-api/internal/domain/entity"
)

// UserDTO 对外序列化的用户信息；绝不包含密码散列
type UserDTO struct {
	ID        uint      `json:"id"`
	Username  string    `json:"username"`
	Email     string    `json:"email"`
	CreatedAt time.Time `json:"created_at"`
}

// ToUserDTO 将领域实体转换为 DTO
func ToUserDTO(u *entity.User) *UserDTO {
	if u == nil {
		return nil
	}
	return &UserDTO{
		ID:        u.ID,
		Username:  u.Username,
		Email:     u.Email,
		CreatedAt: u.CreatedAt,
	}
}
