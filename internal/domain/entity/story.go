// Package entity 定义领域实体
package entity

import (
	"time"
	"unicode/utf8"
)

// PreviewLength 列表展示时正文截断长度（按字符计）
const PreviewLength = 200

// Story 故事生成结果实体
//
// 仅在一次生成成功后创建，此后不可变更。
type Story struct {
	ID        uint      `json:"id" gorm:"primaryKey"`
	UserID    uint      `json:"user_id" gorm:"index;not null"`
	Title     string    `json:"title,omitempty" gorm:"size:200"` // AI 生成，可能没有标题
	Outline   string    `json:"outline" gorm:"type:text;not null"`
	Genre     string    `json:"genre" gorm:"size:50;not null"`
	WordCount int       `json:"word_count" gorm:"not null"`
	Content   string    `json:"content" gorm:"type:text;not null"`
	CreatedAt time.Time `json:"created_at"`
}

// TableName 指定表名
func (Story) TableName() string {
	return "stories"
}

// NewStory 创建故事记录，字数为正文的字符数（派生字段，不可独立设置）
func NewStory(userID uint, outline, genre, content string) *Story {
	return &Story{
		UserID:    userID,
		Outline:   outline,
		Genre:     genre,
		WordCount: utf8.RuneCountInString(content),
		Content:   content,
		CreatedAt: time.Now(),
	}
}

// Preview 返回用于列表展示的截断正文
func (s *Story) Preview() string {
	runes := []rune(s.Content)
	if len(runes) <= PreviewLength {
		return s.Content
	}
	return string(runes[:PreviewLength]) + "..."
}
