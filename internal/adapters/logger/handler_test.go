package logger_test

import (
	"bytes"
	"log/slog"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/zancas/containment/internal/adapters/logger"
)

func newTestHandler(t *testing.T) (*logger.PrettyHandler, *bytes.Buffer) {
	t.Helper()
	t.Setenv("NO_COLOR", "1")

	buf := &bytes.Buffer{}
	return logger.NewPrettyHandler(buf, &slog.HandlerOptions{Level: slog.LevelInfo}), buf
}

func TestPrettyHandler_Levels(t *testing.T) {
	tests := []struct {
		name  string
		level slog.Level
		want  string
	}{
		{name: "info", level: slog.LevelInfo, want: "built\n"},
		{name: "warn", level: slog.LevelWarn, want: "! built\n"},
		{name: "error", level: slog.LevelError, want: "✗ built\n"},
		{name: "debug filtered", level: slog.LevelDebug, want: ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			h, buf := newTestHandler(t)
			slog.New(h).Log(t.Context(), tt.level, "built")
			assert.Equal(t, tt.want, buf.String())
		})
	}
}

func TestPrettyHandler_Attrs(t *testing.T) {
	h, buf := newTestHandler(t)

	lg := slog.New(h).With("tag", "containment/acme").WithGroup("scope")
	lg.Info("paved", "name", "profile")

	assert.Equal(t, "paved scope.tag=containment/acme scope.name=profile\n", buf.String())
}

func TestPrettyHandler_NilWriter(t *testing.T) {
	assert.NotPanics(t, func() {
		h := logger.NewPrettyHandler(nil, nil)
		assert.True(t, h.Enabled(t.Context(), slog.LevelInfo))
		assert.False(t, h.Enabled(t.Context(), slog.LevelDebug))
	})
}

func TestPrettyHandler_ScopePrefix(t *testing.T) {
	tests := []struct {
		name string
		log  func(lg *slog.Logger)
		want string
	}{
		{
			name: "record attr",
			log:  func(lg *slog.Logger) { lg.Warn("no packager", logger.ScopeKey, "profile", "image", "alpine:3.20") },
			want: "! [profile] no packager image=alpine:3.20\n",
		},
		{
			name: "handler attr",
			log:  func(lg *slog.Logger) { lg.With(logger.ScopeKey, "project").Info("paved") },
			want: "[project] paved\n",
		},
		{
			name: "grouped key stays an attr",
			log:  func(lg *slog.Logger) { lg.WithGroup("layer").Info("read", logger.ScopeKey, "community") },
			want: "read layer.scope=community\n",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			h, buf := newTestHandler(t)
			tt.log(slog.New(h))
			assert.Equal(t, tt.want, buf.String())
		})
	}
}
