// Package spinner shows a one-line progress indicator on a terminal while a
// document is being read and analyzed.
package spinner

import (
	"context"
	"fmt"
	"io"
	"os"
	"sync"
	"time"

	"golang.org/x/term"
)

var defaultFrames = []string{"⠋", "⠙", "⠹", "⠸", "⠼", "⠴", "⠦", "⠧", "⠇", "⠏"}

// Spinner redraws "<frame> <phase> (<elapsed>)" until stopped.
// A nil *Spinner is valid and does nothing, so callers need no quiet-mode checks.
type Spinner struct {
	frames []string
	delay  time.Duration
	writer io.Writer

	mu      sync.Mutex
	phase   string
	started time.Time
	cancel  context.CancelFunc
	done    chan struct{}
}

// New creates a stopped spinner writing to w.
func New(w io.Writer) *Spinner {
	return &Spinner{
		frames: defaultFrames,
		delay:  80 * time.Millisecond,
		writer: w,
	}
}

// ForTerminal returns a spinner for w, or nil when quiet is set or w is not a
// terminal (so redirected stderr stays clean).
func ForTerminal(w io.Writer, quiet bool) *Spinner {
	if quiet || !IsTerminal(w) {
		return nil
	}
	return New(w)
}

// Start begins the animation with the given phase. The spinner stops on its
// own when ctx is done; Stop must still be called to clear the line.
func (s *Spinner) Start(ctx context.Context, phase string) {
	if s == nil {
		return
	}
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.done != nil {
		return // already running
	}

	runCtx, cancel := context.WithCancel(ctx)
	s.phase = phase
	s.started = time.Now()
	s.cancel = cancel
	s.done = make(chan struct{})

	go s.run(runCtx, s.done)
}

// Phase replaces the text shown next to the frame.
func (s *Spinner) Phase(phase string) {
	if s == nil {
		return
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	s.phase = phase
}

// running reports whether the animation is on.
func (s *Spinner) running() bool {
	if s == nil {
		return false
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.done != nil
}

// Stop ends the animation and clears the line.
func (s *Spinner) Stop() {
	if s == nil {
		return
	}
	s.mu.Lock()
	if s.done == nil {
		s.mu.Unlock()
		return // not running
	}
	cancel, done := s.cancel, s.done
	s.cancel, s.done = nil, nil
	s.mu.Unlock()

	cancel()
	<-done

	if IsTerminal(s.writer) {
		fmt.Fprint(s.writer, "\r\033[2K")
	} else {
		fmt.Fprint(s.writer, "\r")
	}
}

func (s *Spinner) run(ctx context.Context, done chan<- struct{}) {
	defer close(done)

	ticker := time.NewTicker(s.delay)
	defer ticker.Stop()

	for frame := 0; ; frame++ {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
			s.mu.Lock()
			phase, elapsed := s.phase, time.Since(s.started)
			s.mu.Unlock()

			fmt.Fprintf(s.writer, "\r%s %s (%.1fs)", s.frames[frame%len(s.frames)], phase, elapsed.Seconds())
		}
	}
}

// IsTerminal reports whether w is a terminal file.
func IsTerminal(w io.Writer) bool {
	f, ok := w.(*os.File)
	return ok && term.IsTerminal(int(f.Fd()))
}
