// Package llm 提供上游大模型聊天补全接口客户端
package llm

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"

	"go.opentelemetry.io/otel"

	"ai-story-api/internal/config"
	"ai-story-api/pkg/logger"
	"ai-story-api/pkg/metrics"
)

var tracer = otel.Tracer("llm")

var (
	// ErrTimeout 上游调用超出时间预算（可由用户稍后重试）
	ErrTimeout = errors.New("llm request timed out")
	// ErrMalformedResponse 上游返回 200 但缺少预期的 choices/content 结构
	ErrMalformedResponse = errors.New("llm response missing expected content")
)

// UpstreamError 上游返回非 200 状态码
type UpstreamError struct {
	StatusCode int
	Body       string
}

func (e *UpstreamError) Error() string {
	return fmt.Sprintf("llm upstream returned %d: %s", e.StatusCode, e.Body)
}

// chatMessage 聊天消息
type chatMessage struct {
	Role    string `json:"role"`
	Content string `json:"content"`
}

// chatRequest 聊天补全请求体
type chatRequest struct {
	Model       string        `json:"model"`
	Messages    []chatMessage `json:"messages"`
	Temperature float64       `json:"temperature"`
	MaxTokens   int           `json:"max_tokens"`
}

// chatResponse 聊天补全响应体
type chatResponse struct {
	Choices []struct {
		Message struct {
			Content string `json:"content"`
		} `json:"message"`
	} `json:"choices"`
}

// Client 聊天补全客户端
//
// 单次调用，无重试；超时预算由配置给定（默认 120s）。
type Client struct {
	cfg    *config.LLMConfig
	client *http.Client
}

// NewClient 创建客户端
func NewClient(cfg *config.LLMConfig) *Client {
	return &Client{
		cfg: cfg,
		client: &http.Client{
			Timeout: cfg.Timeout,
		},
	}
}

// Generate 发送 system/user 两条消息并返回首个补全内容
func (c *Client) Generate(ctx context.Context, systemPrompt, userPrompt string) (string, error) {
	ctx, span := tracer.Start(ctx, "llm.Client.Generate")
	defer span.End()

	payload := chatRequest{
		Model: c.cfg.Model,
		Messages: []chatMessage{
			{Role: "system", Content: systemPrompt},
			{Role: "user", Content: userPrompt},
		},
		Temperature: c.cfg.Temperature,
		MaxTokens:   c.cfg.MaxTokens,
	}

	body, err := json.Marshal(payload)
	if err != nil {
		return "", fmt.Errorf("failed to marshal llm request: %w", err)
	}

	url := strings.TrimSuffix(c.cfg.BaseURL, "/") + "/chat/completions"
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, url, bytes.NewReader(body))
	if err != nil {
		return "", fmt.Errorf("failed to build llm request: %w", err)
	}
	req.Header.Set("Authorization", "Bearer "+c.cfg.APIKey)
	req.Header.Set("Content-Type", "application/json")

	start := time.Now()
	resp, err := c.client.Do(req)
	duration := time.Since(start)
	metrics.LLMCallDuration.WithLabelValues(c.cfg.Model).Observe(duration.Seconds())

	if err != nil {
		if isTimeout(err) {
			metrics.LLMCallTotal.WithLabelValues(c.cfg.Model, "timeout").Inc()
			span.RecordError(ErrTimeout)
			return "", ErrTimeout
		}
		metrics.LLMCallTotal.WithLabelValues(c.cfg.Model, "error").Inc()
		span.RecordError(err)
		return "", fmt.Errorf("llm request failed: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		respBody, _ := io.ReadAll(resp.Body)
		metrics.LLMCallTotal.WithLabelValues(c.cfg.Model, "upstream_error").Inc()
		upErr := &UpstreamError{StatusCode: resp.StatusCode, Body: string(respBody)}
		span.RecordError(upErr)
		return "", upErr
	}

	var result chatResponse
	if err := json.NewDecoder(resp.Body).Decode(&result); err != nil {
		metrics.LLMCallTotal.WithLabelValues(c.cfg.Model, "malformed").Inc()
		span.RecordError(err)
		return "", ErrMalformedResponse
	}
	if len(result.Choices) == 0 || result.Choices[0].Message.Content == "" {
		metrics.LLMCallTotal.WithLabelValues(c.cfg.Model, "malformed").Inc()
		span.RecordError(ErrMalformedResponse)
		return "", ErrMalformedResponse
	}

	metrics.LLMCallTotal.WithLabelValues(c.cfg.Model, "success").Inc()
	logger.Debug(ctx, "llm call completed",
		"model", c.cfg.Model,
		"duration_ms", duration.Milliseconds(),
	)

	return result.Choices[0].Message.Content, nil
}

// isTimeout 判断传输层错误是否为超时
func isTimeout(err error) bool {
	if errors.Is(err, context.DeadlineExceeded) {
		return true
	}
	var netErr interface{ Timeout() bool }
	return errors.As(err, &netErr) && netErr.Timeout()
}
