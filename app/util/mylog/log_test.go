package mylog

import (
	"context"
	"log/slog"
	"testing"
	"time"

	"github.com/stretchr/testify/require"
)

func TestRouteToTelegram(t *testing.T) {
	ctx := context.Background()

	info := slog.NewRecord(time.Now(), slog.LevelInfo, "served", 0)
	require.False(t, routeToTelegram(ctx, info))

	tagged := slog.NewRecord(time.Now(), slog.LevelInfo, "served", 0)
	tagged.AddAttrs(slog.Bool("telegram", true))
	require.True(t, routeToTelegram(ctx, tagged))

	failed := slog.NewRecord(time.Now(), slog.LevelError, "failed", 0)
	require.True(t, routeToTelegram(ctx, failed))
}

func TestParseLevel(t *testing.T) {
	require.Equal(t, slog.LevelDebug, ParseLevel("debug"))
	require.Equal(t, slog.LevelInfo, ParseLevel("info"))
	require.Equal(t, slog.LevelWarn, ParseLevel("warn"))
	require.Equal(t, slog.LevelError, ParseLevel("error"))
	require.Equal(t, slog.LevelInfo, ParseLevel(""))
}
