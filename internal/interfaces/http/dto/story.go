// Package dto 提供 HTTP 层数据传输对象
package dto

import (
	"strconv"
	"strings"
	"time"

	"ai-story-api/internal/domain/entity"
)

// GenerateRequest 故事生成请求
//
// genre 缺失或未识别时回退到科幻；wordCount 缺失时默认 5000。
type GenerateRequest struct {
	Outline   string    `json:"outline"`
	Genre     string    `json:"genre"`
	WordCount WordCount `json:"wordCount"`
}

// WordCount 目标字数，兼容数字与数字字符串两种写法
//
// 无法解析时置零，由服务层回退到默认字数。
type WordCount int

// UnmarshalJSON 实现宽松解析
func (w *WordCount) UnmarshalJSON(data []byte) error {
	s := strings.TrimSpace(string(data))
	s = strings.Trim(s, `"`)
	if s == "" || s == "null" {
		*w = 0
		return nil
	}
	n, err := strconv.Atoi(s)
	if err != nil {
		*w = 0
		return nil
	}
	*w = WordCount(n)
	return nil
}

// GenerateResponse 故事生成响应，正文完整返回
type GenerateResponse struct {
	Success   bool   `json:"success"`
	Story     string `json:"story"`
	Genre     string `json:"genre"`
	WordCount int    `json:"word_count"`
	StoryID   uint   `json:"story_id"`
}

// StoryDTO 对外序列化的故事信息
type StoryDTO struct {
	ID        uint      `json:"id"`
	Outline   string    `json:"outline"`
	Genre     string    `json:"genre"`
	WordCount int       `json:"word_count"`
	Content   string    `json:"content"`
	CreatedAt time.Time `json:"created_at"`
}

// StoryListResponse 故事列表响应，正文按预览截断
type StoryListResponse struct {
	Stories []*StoryDTO `json:"stories"`
}

// StoryDetailResponse 单条故事响应，正文完整返回
type StoryDetailResponse struct {
	Story *StoryDTO `json:"story"`
}

// ToStoryDTO 将领域实体转换为 DTO；preview 为真时截断正文
func ToStoryDTO(s *entity.Story, preview bool) *StoryDTO {
	if s == nil {
		return nil
	}
	content := s.Content
	if preview {
		content = s.Preview()
	}
	return &StoryDTO{
		ID:        s.ID,
		Outline:   s.Outline,
		Genre:     s.Genre,
		WordCount: s.WordCount,
		Content:   content,
		CreatedAt: s.CreatedAt,
	}
}

// ToStoryDTOs 批量转换故事列表（预览形式）
func ToStoryDTOs(stories []*entity.Story) []*StoryDTO {
	dtos := make([]*StoryDTO, 0, len(stories))
	for _, s := range stories {
		dtos = append(dtos, ToStoryDTO(s, true))
	}
	return dtos
}
