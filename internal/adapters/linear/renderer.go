// Package linear prints pipeline phases as plain, chronological lines.
package linear

import (
	"fmt"
	"io"
	"os"
	"sync"
	"time"

	"github.com/muesli/termenv"
	"github.com/zancas/containment/internal/ui/output"
	"github.com/zancas/containment/internal/ui/style"
)

// Renderer implements ports.PhaseRenderer on a single writer.
type Renderer struct {
	out *termenv.Output
	w   io.Writer

	mu     sync.Mutex
	phases map[string]phase
}

type phase struct {
	name  string
	start time.Time
}

// NewRenderer creates a Renderer writing to w. A nil writer defaults to os.Stderr.
func NewRenderer(w io.Writer) *Renderer {
	if w == nil {
		w = os.Stderr
	}
	return &Renderer{
		out:    output.NewWithProfile(w, output.ColorProfileANSI),
		w:      w,
		phases: make(map[string]phase),
	}
}

// OnPhaseStart prints the phase name.
func (r *Renderer) OnPhaseStart(id, _ /* parentID */, name string, start time.Time) {
	r.mu.Lock()
	defer r.mu.Unlock()

	r.phases[id] = phase{name: name, start: start}

	prefix := r.out.String(fmt.Sprintf("[%s]", name)).Faint().String()
	_, _ = fmt.Fprintf(r.w, "%s %s\n", prefix, style.Arrow)
}

// OnPhaseComplete prints the outcome and duration of a started phase.
func (r *Renderer) OnPhaseComplete(id string, end time.Time, err error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	p, ok := r.phases[id]
	if !ok {
		return
	}
	delete(r.phases, id)

	prefix := r.out.String(fmt.Sprintf("[%s]", p.name)).Faint().String()
	duration := end.Sub(p.start).Round(time.Millisecond)

	if err != nil {
		symbol := r.out.String(style.Cross).Foreground(termenv.ANSIRed).String()
		_, _ = fmt.Fprintf(r.w, "%s %s failed after %v\n", prefix, symbol, duration)
		return
	}
	symbol := r.out.String(style.Check).Foreground(termenv.ANSIGreen).String()
	_, _ = fmt.Fprintf(r.w, "%s %s %v\n", prefix, symbol, duration)
}
