//go:build wireinject
// +build wireinject

// Package wire 提供依赖注入配置
package wire

import (
	"github.com/google/wire"

	"ai-story-api/internal/application/auth"
	"ai-story-api/internal/application/story"
	"ai-story-api/internal/config"
	"ai-story-api/internal/domain/repository"
	"ai-story-api/internal/infrastructure/llm"
	"ai-story-api/internal/infrastructure/persistence/database"
	"ai-story-api/internal/interfaces/http/handler"
	"ai-story-api/internal/interfaces/http/router"
)

// AppSet 应用依赖集合
var AppSet = wire.NewSet(
	provideDatabaseClient,
	provideLLMClient,
	provideJWTManager,

	database.NewUserRepository,
	database.NewStoryRepository,
	wire.Bind(new(repository.UserRepository), new(*database.UserRepository)),
	wire.Bind(new(repository.StoryRepository), new(*database.StoryRepository)),
	wire.Bind(new(story.Generator), new(*llm.Client)),

	auth.NewService,
	story.NewService,

	handler.NewAuthHandler,
	handler.NewUserHandler,
	handler.NewStoryHandler,
	handler.NewHealthHandler,

	router.New,
)

// InitializeApp 组装完整的 HTTP 应用
func InitializeApp(cfg *config.Config) (*router.Router, func(), error) {
	wire.Build(AppSet)
	return nil, nil, nil
}
