package database

import (
	"fmt"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"ai-story-api/internal/config"
)

// newTestClient 基于命名内存 SQLite 创建隔离的测试客户端
func newTestClient(t *testing.T) *Client {
	t.Helper()

	name := strings.ReplaceAll(t.Name(), "/", "_")
	cfg := &config.DatabaseConfig{
		DSN:             fmt.Sprintf("file:%s?mode=memory&cache=shared", name),
		MaxOpenConns:    1,
		MaxIdleConns:    1,
		ConnMaxLifetime: time.Minute,
	}

	client, err := NewClient(cfg)
	require.NoError(t, err, "failed to open test database")
	require.NoError(t, client.AutoMigrate(), "failed to migrate schema")

	t.Cleanup(func() {
		_ = client.Close()
	})
	return client
}

func TestClient_HealthCheck(t *testing.T) {
	client := newTestClient(t)
	require.NoError(t, client.HealthCheck(t.Context()))
}
