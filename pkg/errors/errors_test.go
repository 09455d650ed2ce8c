package errors

import (
	"errors"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCodeToHTTPStatus(t *testing.T) {
	tests := []struct {
		code ErrorCode
		want int
	}{
		{CodeInvalidParam, http.StatusBadRequest},
		{CodeConflict, http.StatusBadRequest},
		{CodeUnauthorized, http.StatusUnauthorized},
		{CodeTokenExpired, http.StatusUnauthorized},
		{CodeTokenInvalid, http.StatusUnauthorized},
		{CodeTokenMissing, http.StatusUnauthorized},
		{CodeNotFound, http.StatusNotFound},
		{CodeUserNotFound, http.StatusNotFound},
		{CodeStoryNotFound, http.StatusNotFound},
		{CodeUpstreamTimeout, http.StatusGatewayTimeout},
		{CodeUpstreamError, http.StatusInternalServerError},
		{CodeDatabaseError, http.StatusInternalServerError},
		{CodeUnknown, http.StatusInternalServerError},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, New(tt.code, "x").HTTPStatus, string(tt.code))
	}
}

func TestWrapUnwrap(t *testing.T) {
	cause := errors.New("connection reset")
	appErr := Wrap(cause, CodeDatabaseError, "查询失败")

	assert.ErrorIs(t, appErr, cause)
	assert.Contains(t, appErr.Error(), "查询失败")
	assert.Contains(t, appErr.Error(), "connection reset")
}

func TestAsAppError(t *testing.T) {
	appErr := New(CodeNotFound, "missing")
	got := AsAppError(appErr)
	assert.Same(t, appErr, got)

	plain := errors.New("boom")
	got = AsAppError(plain)
	require.NotNil(t, got)
	assert.Equal(t, CodeUnknown, got.Code)
	assert.ErrorIs(t, got, plain)
}

func TestIsAppError(t *testing.T) {
	assert.True(t, IsAppError(New(CodeConflict, "x")))
	assert.False(t, IsAppError(errors.New("x")))
}

func TestWithDetail(t *testing.T) {
	appErr := New(CodeInvalidParam, "bad input").WithDetail("field: outline")
	assert.Equal(t, "field: outline", appErr.Detail)
}
