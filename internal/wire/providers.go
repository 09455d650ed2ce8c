// Package wire 提供依赖注入配置
package wire

import (
	"ai-story-api/internal/config"
	"ai-story-api/internal/infrastructure/llm"
	"ai-story-api/internal/infrastructure/persistence/database"
	"ai-story-api/pkg/utils"
)

// provideDatabaseClient 创建数据库客户端并完成表结构迁移
func provideDatabaseClient(cfg *config.Config) (*database.Client, func(), error) {
	client, err := database.NewClient(&cfg.Database)
	if err != nil {
		return nil, nil, err
	}

	if err := client.AutoMigrate(); err != nil {
		_ = client.Close()
		return nil, nil, err
	}

	cleanup := func() {
		_ = client.Close()
	}
	return client, cleanup, nil
}

// provideLLMClient 创建上游生成客户端
func provideLLMClient(cfg *config.Config) *llm.Client {
	return llm.NewClient(&cfg.LLM)
}

// provideJWTManager 创建 JWT 管理器
func provideJWTManager(cfg *config.Config) *utils.JWTManager {
	return utils.NewJWTManager(
		cfg.Security.JWT.Secret,
		cfg.Security.JWT.Issuer,
		cfg.Security.JWT.Expiration,
	)
}
