package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"ai-story-api/pkg/utils"
)

func newAuthRouter(jwtManager *utils.JWTManager) *gin.Engine {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	r.GET("/protected", Auth(jwtManager), func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"user_id": GetUserID(c)})
	})
	return r
}

func TestAuth_ValidToken(t *testing.T) {
	jwtManager := utils.NewJWTManager("test-secret", "test", time.Hour)
	router := newAuthRouter(jwtManager)

	token, err := jwtManager.GenerateToken(42)
	require.NoError(t, err)

	req := httptest.NewRequest(http.MethodGet, "/protected", nil)
	req.Header.Set("Authorization", "Bearer "+token)
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)
	assert.JSONEq(t, `{"user_id":42}`, w.Body.String())
}

func TestAuth_Rejections(t *testing.T) {
	jwtManager := utils.NewJWTManager("test-secret", "test", time.Hour)
	router := newAuthRouter(jwtManager)

	expired, err := utils.NewJWTManager("test-secret", "test", -time.Hour).GenerateToken(42)
	require.NoError(t, err)
	otherSecret, err := utils.NewJWTManager("other-secret", "test", time.Hour).GenerateToken(42)
	require.NoError(t, err)

	tests := []struct {
		name    string
		header  string
		wantMsg string
	}{
		{"no header", "", "missing authorization header"},
		{"no bearer prefix", "Token abc", "invalid authorization format"},
		{"bare token", "abc", "invalid authorization format"},
		{"garbage token", "Bearer garbage", "invalid token"},
		{"wrong secret", "Bearer " + otherSecret, "invalid token"},
		{"expired", "Bearer " + expired, "token expired"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := httptest.NewRequest(http.MethodGet, "/protected", nil)
			if tt.header != "" {
				req.Header.Set("Authorization", tt.header)
			}
			w := httptest.NewRecorder()
			router.ServeHTTP(w, req)

			assert.Equal(t, http.StatusUnauthorized, w.Code)
			assert.JSONEq(t, `{"error":"`+tt.wantMsg+`"}`, w.Body.String())
		})
	}
}
