package slogx_test

import (
	"bytes"
	"context"
	"log/slog"
	"testing"

	"github.com/aussiebroadwan/wowapi/pkg/slogx"
	"github.com/stretchr/testify/require"
)

func TestWithContextRoundTrip(t *testing.T) {
	var buf bytes.Buffer
	logger := slog.New(slog.NewTextHandler(&buf, nil))

	ctx := slogx.WithContext(context.Background(), logger)
	slogx.FromContext(ctx).Info("hello")

	require.Contains(t, buf.String(), "hello")
}

func TestFromContextFallsBackToDefault(t *testing.T) {
	require.Equal(t, slog.Default(), slogx.FromContext(context.Background()))
}

func TestWithRequestID(t *testing.T) {
	var buf bytes.Buffer
	logger := slog.New(slog.NewTextHandler(&buf, nil))

	ctx := slogx.WithContext(context.Background(), logger)
	ctx = slogx.WithRequestID(ctx, "01HQ7T3Z1MZ0JQ3M6MZQ1FQ3ZV")
	slogx.FromContext(ctx).Info("tagged")

	require.Contains(t, buf.String(), "req_id=01HQ7T3Z1MZ0JQ3M6MZQ1FQ3ZV")
}
