package xlog_test

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"log/slog"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/omeyang/xaddr/pkg/observability/xlog"
)

func build(t *testing.T, b *xlog.Builder) xlog.Logger {
	t.Helper()
	logger, cleanup, err := b.Build()
	require.NoError(t, err)
	t.Cleanup(func() { assert.NoError(t, cleanup()) })
	return logger
}

func TestLogger_Levels(t *testing.T) {
	var buf bytes.Buffer
	logger := build(t, xlog.New().SetOutput(&buf).SetLevel(xlog.LevelWarn))
	ctx := context.Background()

	logger.Debug(ctx, "debug message")
	logger.Info(ctx, "info message")
	logger.Warn(ctx, "warn message")
	logger.Error(ctx, "error message", xlog.Err(errors.New("boom")))

	out := buf.String()
	assert.NotContains(t, out, "debug message")
	assert.NotContains(t, out, "info message")
	assert.Contains(t, out, "warn message")
	assert.Contains(t, out, "error=boom")

	assert.False(t, logger.Enabled(ctx, xlog.LevelInfo))
	logger.SetLevel(xlog.LevelDebug)
	assert.True(t, logger.Enabled(ctx, xlog.LevelDebug))
}

func TestLogger_JSONWith(t *testing.T) {
	var buf bytes.Buffer
	logger := build(t, xlog.New().SetOutput(&buf).SetFormat("JSON"))
	derived := logger.With(xlog.Component("listwatch"))

	derived.Info(context.Background(), "reloaded", xlog.Count(3), xlog.Path("/etc/allow.txt"))

	var rec map[string]any
	require.NoError(t, json.Unmarshal(buf.Bytes(), &rec))
	assert.Equal(t, "reloaded", rec["msg"])
	assert.Equal(t, "listwatch", rec[xlog.KeyComponent])
	assert.EqualValues(t, 3, rec[xlog.KeyCount])
	assert.Equal(t, "/etc/allow.txt", rec[xlog.KeyPath])

	// 派生 Logger 共享级别
	logger.SetLevel(xlog.LevelError)
	buf.Reset()
	derived.Info(context.Background(), "hidden")
	assert.Empty(t, buf.String())
}

func TestLogger_AddSource(t *testing.T) {
	var buf bytes.Buffer
	logger := build(t, xlog.New().SetOutput(&buf).SetAddSource(true))
	logger.Info(context.Background(), "where")
	assert.Contains(t, buf.String(), "xlog_test.go")
}

func TestLogger_NilContext(t *testing.T) {
	var buf bytes.Buffer
	logger := build(t, xlog.New().SetOutput(&buf))
	//nolint:staticcheck // 验证 nil context 不 panic
	logger.Info(nil, "nil ctx")
	assert.Contains(t, buf.String(), "nil ctx")
}

type failWriter struct{}

func (failWriter) Write([]byte) (int, error) { return 0, errors.New("disk full") }

func TestLogger_OnError(t *testing.T) {
	var got []error
	logger := build(t, xlog.New().SetOutput(failWriter{}).SetOnError(func(err error) {
		got = append(got, err)
	}))
	logger.Info(context.Background(), "lost")
	require.Len(t, got, 1)
	assert.ErrorContains(t, got[0], "disk full")
}

func TestBuilder_Errors(t *testing.T) {
	_, _, err := xlog.New().SetLevelString("verbose").Build()
	assert.ErrorIs(t, err, xlog.ErrUnknownLevel)

	_, _, err = xlog.New().SetFormat("xml").Build()
	assert.ErrorIs(t, err, xlog.ErrUnknownFormat)

	_, _, err = xlog.New().SetOutput(nil).Build()
	assert.ErrorIs(t, err, xlog.ErrNilOutput)

	_, _, err = xlog.New().SetRotation("  ", xlog.Rotation{}).Build()
	assert.ErrorIs(t, err, xlog.ErrEmptyFilename)

	_, _, err = xlog.New().SetRotation("a.log", xlog.Rotation{MaxSizeMB: -1}).Build()
	assert.Error(t, err)

	// 保留第一个错误
	_, _, err = xlog.New().SetFormat("xml").SetLevelString("verbose").Build()
	assert.ErrorIs(t, err, xlog.ErrUnknownFormat)
}

func TestBuilder_Rotation(t *testing.T) {
	path := filepath.Join(t.TempDir(), "xaddr.log")
	logger, cleanup, err := xlog.New().SetRotation(path, xlog.Rotation{MaxSizeMB: 1}).Build()
	require.NoError(t, err)

	logger.Info(context.Background(), "to file", slog.String("k", "v"))
	require.NoError(t, cleanup())
	require.NoError(t, cleanup())

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.True(t, strings.Contains(string(data), "to file"))
}

func TestDiscard(t *testing.T) {
	l := xlog.Discard()
	l.Error(context.Background(), "nothing")
	assert.False(t, l.Enabled(context.Background(), xlog.LevelError))
	assert.NotNil(t, l.With(xlog.Count(1)))
}

func TestErr_Nil(t *testing.T) {
	assert.True(t, xlog.Err(nil).Equal(slog.Attr{}))
}
