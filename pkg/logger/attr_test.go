package logger_test

import (
	"errors"
	"log/slog"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dmitrymomot/toastkit/pkg/logger"
)

func TestGroup(t *testing.T) {
	attr := logger.Group("toast", slog.String("id", "1"), slog.Int("seq", 2))
	require.Equal(t, "toast", attr.Key)
	require.Equal(t, slog.KindGroup, attr.Value.Kind())
	g := attr.Value.Group()
	require.Len(t, g, 2)
	assert.Equal(t, "id", g[0].Key)
	assert.Equal(t, "seq", g[1].Key)
}

func TestErrors(t *testing.T) {
	err1 := errors.New("first")
	err2 := errors.New("second")

	attr := logger.Errors(err1, nil, err2)
	require.Equal(t, "errors", attr.Key)
	g := attr.Value.Group()
	require.Len(t, g, 2)
	assert.Equal(t, err1, g[0].Value.Any())
	assert.Equal(t, err2, g[1].Value.Any())

	assert.True(t, logger.Errors(nil).Equal(slog.Attr{}))
}

func TestError(t *testing.T) {
	err := errors.New("boom")
	attr := logger.Error(err)
	require.Equal(t, "error", attr.Key)
	assert.Equal(t, err, attr.Value.Any())

	assert.True(t, logger.Error(nil).Equal(slog.Attr{}))
}

func TestToastAttrs(t *testing.T) {
	id := logger.ToastID("abc")
	assert.Equal(t, "toast_id", id.Key)
	assert.Equal(t, "abc", id.Value.String())

	pos := logger.Position("top-left")
	assert.Equal(t, "position", pos.Key)
	assert.Equal(t, "top-left", pos.Value.String())
	assert.True(t, logger.Position("").Equal(slog.Attr{}))

	reason := logger.Reason("evicted")
	assert.Equal(t, "reason", reason.Key)
	assert.Equal(t, "evicted", reason.Value.String())

	subs := logger.Subscribers(3)
	assert.Equal(t, "subscribers", subs.Key)
	assert.Equal(t, int64(3), subs.Value.Int64())
}

func TestRequestID(t *testing.T) {
	attr := logger.RequestID("abc")
	require.Equal(t, "request_id", attr.Key)
	assert.Equal(t, "abc", attr.Value.Any())
	assert.True(t, logger.RequestID(nil).Equal(slog.Attr{}))
}
