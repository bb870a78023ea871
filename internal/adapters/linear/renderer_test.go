package linear_test

import (
	"bytes"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/zancas/containment/internal/adapters/linear"
)

var t0 = time.Date(2026, 3, 1, 12, 0, 0, 0, time.UTC)

func newRenderer(t *testing.T) (*linear.Renderer, *bytes.Buffer) {
	t.Helper()
	t.Setenv("NO_COLOR", "1")
	buf := &bytes.Buffer{}
	return linear.NewRenderer(buf), buf
}

func TestRenderer_Success(t *testing.T) {
	r, buf := newRenderer(t)

	r.OnPhaseStart("a1", "", "build", t0)
	r.OnPhaseComplete("a1", t0.Add(1500*time.Millisecond), nil)

	assert.Equal(t, "[build] →\n[build] ✓ 1.5s\n", buf.String())
}

func TestRenderer_Failure(t *testing.T) {
	r, buf := newRenderer(t)

	r.OnPhaseStart("a1", "root", "write_dockerfile", t0)
	r.OnPhaseComplete("a1", t0.Add(20*time.Millisecond), errors.New("boom"))

	assert.Equal(t, "[write_dockerfile] →\n[write_dockerfile] ✗ failed after 20ms\n", buf.String())
}

func TestRenderer_UnknownPhase(t *testing.T) {
	r, buf := newRenderer(t)

	r.OnPhaseComplete("missing", t0, nil)
	assert.Empty(t, buf.String())
}

func TestRenderer_Nested(t *testing.T) {
	r, buf := newRenderer(t)

	r.OnPhaseStart("outer", "", "activate", t0)
	r.OnPhaseStart("inner", "outer", "ensure_scopes", t0)
	r.OnPhaseComplete("inner", t0.Add(time.Millisecond), nil)
	r.OnPhaseComplete("outer", t0.Add(2*time.Millisecond), nil)

	assert.Equal(t,
		"[activate] →\n[ensure_scopes] →\n[ensure_scopes] ✓ 1ms\n[activate] ✓ 2ms\n",
		buf.String())
}
