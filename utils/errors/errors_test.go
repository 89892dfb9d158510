package errors

import (
	"bytes"
	stderrors "errors"
	"fmt"
	"log/slog"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestAppError_HTTPStatusCode(t *testing.T) {
	tests := []struct {
		name     string
		err      *AppError
		expected int
	}{
		{"invalid input", InvalidInputError("bad", nil, nil), http.StatusBadRequest},
		{"not found", NotFoundError("missing", nil, nil), http.StatusNotFound},
		{"rate limited", RateLimitedError("slow down", nil, nil), http.StatusForbidden},
		{"source unavailable", SourceUnavailableError("down", nil, nil), http.StatusBadGateway},
		{"store", StoreError("redis", nil, nil), http.StatusInternalServerError},
		{"unknown", UnknownError("?", nil, nil), http.StatusInternalServerError},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, tt.err.HTTPStatusCode())
		})
	}
}

func TestAppError_SentinelMatching(t *testing.T) {
	cause := stderrors.New("connection refused")
	err := fmt.Errorf("refresh: %w", StoreError("failed to read feed", cause, nil))

	assert.True(t, IsStoreError(err))
	assert.False(t, IsSourceUnavailable(err))
	assert.ErrorIs(t, err, cause)

	appErr, ok := AsAppError(err)
	require.True(t, ok)
	assert.Equal(t, ErrCodeStore, appErr.Code)

	assert.True(t, IsRateLimited(RateLimitedError("x", nil, nil)))
	assert.True(t, IsNotFound(NotFoundError("x", nil, nil)))
	assert.True(t, IsInvalidInput(InvalidInputError("x", nil, nil)))
	assert.False(t, stderrors.Is(UnknownError("x", nil, nil), ErrSourceUnavailable))
}

func TestAppError_Error(t *testing.T) {
	assert.Equal(t, "NOT_FOUND: book not found", NotFoundError("book not found", nil, nil).Error())
	assert.Equal(t,
		"SOURCE_UNAVAILABLE: digest fetch failed (caused by: boom)",
		SourceUnavailableError("digest fetch failed", stderrors.New("boom"), nil).Error(),
	)
}

func TestLogError(t *testing.T) {
	var buf bytes.Buffer
	logger := slog.New(slog.NewTextHandler(&buf, nil))

	LogError(logger, SourceUnavailableError("digest fetch failed", stderrors.New("boom"), map[string]interface{}{"category": "tech"}), "refresh")

	out := buf.String()
	assert.Contains(t, out, "error_code=SOURCE_UNAVAILABLE")
	assert.Contains(t, out, "category=tech")
	assert.Contains(t, out, "cause=boom")

	assert.NotPanics(t, func() { LogError(nil, stderrors.New("x"), "op") })
}
