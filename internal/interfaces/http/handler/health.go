// Package handler 提供 HTTP 请求处理器
package handler

import (
	"context"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"ai-story-api/internal/infrastructure/persistence/database"
)

// HealthHandler 健康检查处理器
type HealthHandler struct {
	db *database.Client
}

// NewHealthHandler 创建健康检查处理器
func NewHealthHandler(db *database.Client) *HealthHandler {
	return &HealthHandler{db: db}
}

// HealthResponse 健康检查响应
type HealthResponse struct {
	Status string `json:"status"`
}

type readinessCheck struct {
	Status    string `json:"status"`
	Error     string `json:"error,omitempty"`
	LatencyMs int64  `json:"latency_ms,omitempty"`
}

type readinessResponse struct {
	Status string                     `json:"status"`
	Checks map[string]*readinessCheck `json:"checks,omitempty"`
}

// Health 健康检查接口
// @Summary 健康检查
// @Tags System
// @Produce json
// @Success 200 {object} HealthResponse
// @Router /api/health [get]
func (h *HealthHandler) Health(c *gin.Context) {
	c.JSON(http.StatusOK, HealthResponse{
		Status: "ok",
	})
}

// Ready 就绪检查接口
// @Summary 就绪检查
// @Tags System
// @Produce json
// @Success 200 {object} readinessResponse
// @Router /ready [get]
func (h *HealthHandler) Ready(c *gin.Context) {
	ctx, cancel := context.WithTimeout(c.Request.Context(), 2*time.Second)
	defer cancel()

	checks := map[string]*readinessCheck{
		"database": {Status: "unknown"},
	}

	ready := true

	if h == nil || h.db == nil {
		checks["database"].Status = "missing"
		checks["database"].Error = "database client not configured"
		ready = false
	} else {
		start := time.Now()
		err := h.db.HealthCheck(ctx)
		checks["database"].LatencyMs = time.Since(start).Milliseconds()
		if err != nil {
			checks["database"].Status = "error"
			checks["database"].Error = err.Error()
			ready = false
		} else {
			checks["database"].Status = "ok"
		}
	}

	resp := readinessResponse{
		Status: "ok",
		Checks: checks,
	}
	if !ready {
		resp.Status = "not_ready"
		c.JSON(http.StatusServiceUnavailable, resp)
		return
	}
	c.JSON(http.StatusOK, resp)
}
