package story

import (
	"context"
	"errors"
	"net/http"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"ai-story-api/internal/domain/entity"
	"ai-story-api/internal/infrastructure/llm"
	apperrors "ai-story-api/pkg/errors"
)

// mockGenerator 记录提示词并返回预设结果
type mockGenerator struct {
	systemPrompt string
	userPrompt   string
	content      string
	err          error
	calls        int
}

func (m *mockGenerator) Generate(_ context.Context, systemPrompt, userPrompt string) (string, error) {
	m.calls++
	m.systemPrompt = systemPrompt
	m.userPrompt = userPrompt
	if m.err != nil {
		return "", m.err
	}
	return m.content, nil
}

// mockStoryRepo 内存版故事仓储
type mockStoryRepo struct {
	stories   []*entity.Story
	createErr error
	nextID    uint
}

func (m *mockStoryRepo) Create(_ context.Context, story *entity.Story) error {
	if m.createErr != nil {
		return m.createErr
	}
	m.nextID++
	story.ID = m.nextID
	m.stories = append(m.stories, story)
	return nil
}

func (m *mockStoryRepo) ListByUser(_ context.Context, userID uint) ([]*entity.Story, error) {
	var out []*entity.Story
	for i := len(m.stories) - 1; i >= 0; i-- {
		if m.stories[i].UserID == userID {
			out = append(out, m.stories[i])
		}
	}
	return out, nil
}

func (m *mockStoryRepo) GetByUserAndID(_ context.Context, userID, storyID uint) (*entity.Story, error) {
	for _, s := range m.stories {
		if s.ID == storyID && s.UserID == userID {
			return s, nil
		}
	}
	return nil, nil
}

func appErrorOf(t *testing.T, err error) *apperrors.AppError {
	t.Helper()
	require.Error(t, err)
	appErr := apperrors.AsAppError(err)
	require.NotNil(t, appErr)
	return appErr
}

func TestService_Generate(t *testing.T) {
	gen := &mockGenerator{content: "这是一篇完整的科幻小说。"}
	repo := &mockStoryRepo{}
	svc := NewService(repo, gen)

	result, err := svc.Generate(t.Context(), 7, "  未来世界的最后一台机器  ", "scifi", 3000)
	require.NoError(t, err)

	assert.Equal(t, uint(1), result.StoryID)
	assert.Equal(t, "这是一篇完整的科幻小说。", result.Content)
	assert.Equal(t, "科幻", result.GenreName)
	// 字数按字符计，而不是字节数
	assert.Equal(t, 12, result.WordCount)

	require.Len(t, repo.stories, 1)
	stored := repo.stories[0]
	assert.Equal(t, uint(7), stored.UserID)
	assert.Equal(t, "未来世界的最后一台机器", stored.Outline)
	assert.Equal(t, "科幻", stored.Genre)

	assert.Equal(t, "故事大纲：未来世界的最后一台机器", gen.userPrompt)
	assert.Contains(t, gen.systemPrompt, "3000字左右的科幻小说")
}

func TestService_GenerateEmptyOutline(t *testing.T) {
	gen := &mockGenerator{content: "不应被调用"}
	repo := &mockStoryRepo{}
	svc := NewService(repo, gen)

	for _, outline := range []string{"", "   ", "\t\n"} {
		_, err := svc.Generate(t.Context(), 1, outline, "scifi", 1000)
		appErr := appErrorOf(t, err)
		assert.Equal(t, apperrors.CodeInvalidParam, appErr.Code)
		assert.Equal(t, "请输入故事大纲", appErr.Message)
	}
	assert.Zero(t, gen.calls, "校验失败时不得调用上游")
	assert.Empty(t, repo.stories)
}

func TestService_GenerateDefaultWordCount(t *testing.T) {
	gen := &mockGenerator{content: "正文"}
	svc := NewService(&mockStoryRepo{}, gen)

	for _, wordCount := range []int{0, -100} {
		_, err := svc.Generate(t.Context(), 1, "大纲", "scifi", wordCount)
		require.NoError(t, err)
		assert.Contains(t, gen.systemPrompt, "5000字左右")
	}
}

func TestService_GenerateUnknownGenreFallsBack(t *testing.T) {
	gen := &mockGenerator{content: "正文"}
	repo := &mockStoryRepo{}
	svc := NewService(repo, gen)

	result, err := svc.Generate(t.Context(), 1, "大纲", "horror", 1000)
	require.NoError(t, err)
	assert.Equal(t, "科幻", result.GenreName)
	assert.Equal(t, "科幻", repo.stories[0].Genre)
}

func TestService_GenerateUpstreamFailures(t *testing.T) {
	tests := []struct {
		name       string
		err        error
		wantStatus int
		wantMsg    string
	}{
		{
			name:       "timeout",
			err:        llm.ErrTimeout,
			wantStatus: http.StatusGatewayTimeout,
			wantMsg:    "请求超时，请稍后重试",
		},
		{
			name:       "upstream error",
			err:        &llm.UpstreamError{StatusCode: 429, Body: `{"error":"rate limited"}`},
			wantStatus: http.StatusInternalServerError,
			wantMsg:    `API调用失败: {"error":"rate limited"}`,
		},
		{
			name:       "malformed response",
			err:        llm.ErrMalformedResponse,
			wantStatus: http.StatusInternalServerError,
			wantMsg:    "上游响应格式异常",
		},
		{
			name:       "transport error",
			err:        errors.New("connection refused"),
			wantStatus: http.StatusInternalServerError,
			wantMsg:    "connection refused",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			repo := &mockStoryRepo{}
			svc := NewService(repo, &mockGenerator{err: tt.err})

			_, err := svc.Generate(t.Context(), 1, "大纲", "scifi", 1000)
			appErr := appErrorOf(t, err)
			assert.Equal(t, tt.wantStatus, appErr.HTTPStatus)
			assert.Equal(t, tt.wantMsg, appErr.Message)
			assert.Empty(t, repo.stories, "上游失败时不得落库")
		})
	}
}

func TestService_GeneratePersistFailure(t *testing.T) {
	repo := &mockStoryRepo{createErr: errors.New("disk full")}
	svc := NewService(repo, &mockGenerator{content: strings.Repeat("字", 100)})

	_, err := svc.Generate(t.Context(), 1, "大纲", "scifi", 1000)
	appErr := appErrorOf(t, err)
	assert.Equal(t, apperrors.CodeDatabaseError, appErr.Code)
	assert.Equal(t, "保存故事失败", appErr.Message)
}

func TestService_Get(t *testing.T) {
	repo := &mockStoryRepo{}
	svc := NewService(repo, &mockGenerator{content: "正文"})

	result, err := svc.Generate(t.Context(), 1, "大纲", "scifi", 1000)
	require.NoError(t, err)

	story, err := svc.Get(t.Context(), 1, result.StoryID)
	require.NoError(t, err)
	assert.Equal(t, "正文", story.Content)

	// 他人名下或不存在时给出同样的 404
	for _, args := range [][2]uint{{2, result.StoryID}, {1, 9999}} {
		_, err := svc.Get(t.Context(), args[0], args[1])
		appErr := appErrorOf(t, err)
		assert.Equal(t, apperrors.CodeStoryNotFound, appErr.Code)
		assert.Equal(t, "故事不存在", appErr.Message)
	}
}

func TestService_List(t *testing.T) {
	repo := &mockStoryRepo{}
	svc := NewService(repo, &mockGenerator{content: "正文"})

	for _, outline := range []string{"第一篇", "第二篇"} {
		_, err := svc.Generate(t.Context(), 1, outline, "scifi", 1000)
		require.NoError(t, err)
	}

	stories, err := svc.List(t.Context(), 1)
	require.NoError(t, err)
	require.Len(t, stories, 2)
	assert.Equal(t, "第二篇", stories[0].Outline)

	stories, err = svc.List(t.Context(), 2)
	require.NoError(t, err)
	assert.Empty(t, stories)
}
