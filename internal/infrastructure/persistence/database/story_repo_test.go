package database

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"ai-story-api/internal/domain/entity"
)

func TestStoryRepository_CreateAssignsID(t *testing.T) {
	client := newTestClient(t)
	repo := NewStoryRepository(client)
	ctx := t.Context()

	story := entity.NewStory(1, "一段大纲", "科幻", "正文内容")
	require.NoError(t, repo.Create(ctx, story))
	assert.NotZero(t, story.ID)
}

func TestStoryRepository_ListByUserNewestFirst(t *testing.T) {
	client := newTestClient(t)
	repo := NewStoryRepository(client)
	ctx := t.Context()

	base := time.Now().Add(-time.Hour)
	for i, outline := range []string{"第一篇", "第二篇", "第三篇"} {
		story := entity.NewStory(1, outline, "科幻", "正文")
		story.CreatedAt = base.Add(time.Duration(i) * time.Minute)
		require.NoError(t, repo.Create(ctx, story))
	}
	// 其他用户的记录不应出现
	other := entity.NewStory(2, "别人的", "悬疑", "正文")
	require.NoError(t, repo.Create(ctx, other))

	stories, err := repo.ListByUser(ctx, 1)
	require.NoError(t, err)
	require.Len(t, stories, 3)
	assert.Equal(t, "第三篇", stories[0].Outline)
	assert.Equal(t, "第二篇", stories[1].Outline)
	assert.Equal(t, "第一篇", stories[2].Outline)
}

func TestStoryRepository_GetByUserAndID(t *testing.T) {
	client := newTestClient(t)
	repo := NewStoryRepository(client)
	ctx := t.Context()

	story := entity.NewStory(1, "大纲", "科幻", "正文")
	require.NoError(t, repo.Create(ctx, story))

	got, err := repo.GetByUserAndID(ctx, 1, story.ID)
	require.NoError(t, err)
	require.NotNil(t, got)
	assert.Equal(t, story.ID, got.ID)

	// 他人的故事按不存在处理
	got, err = repo.GetByUserAndID(ctx, 2, story.ID)
	require.NoError(t, err)
	assert.Nil(t, got)

	got, err = repo.GetByUserAndID(ctx, 1, 9999)
	require.NoError(t, err)
	assert.Nil(t, got)
}
