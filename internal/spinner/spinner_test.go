package spinner

import (
	"bytes"
	"context"
	"strings"
	"sync"
	"testing"
	"time"
)

// syncBuffer guards a bytes.Buffer shared with the spinner goroutine
type syncBuffer struct {
	mu  sync.Mutex
	buf bytes.Buffer
}

func (b *syncBuffer) Write(p []byte) (int, error) {
	b.mu.Lock()
	defer b.mu.Unlock()
	return b.buf.Write(p)
}

func (b *syncBuffer) String() string {
	b.mu.Lock()
	defer b.mu.Unlock()
	return b.buf.String()
}

func TestSpinnerStartStop(t *testing.T) {
	var buf syncBuffer
	s := New(&buf)

	if s.running() {
		t.Error("Spinner should not be active initially")
	}

	s.Start(context.Background(), "Reading input")
	if !s.running() {
		t.Error("Spinner should be active after Start()")
	}

	time.Sleep(200 * time.Millisecond)
	s.Phase("Collecting statistics")
	time.Sleep(200 * time.Millisecond)
	s.Stop()

	if s.running() {
		t.Error("Spinner should not be active after Stop()")
	}

	output := buf.String()
	for _, want := range []string{"Reading input", "Collecting statistics", "s)"} {
		if !strings.Contains(output, want) {
			t.Errorf("Expected %q in output, got %q", want, output)
		}
	}
	if !strings.HasSuffix(output, "\r") {
		t.Errorf("Stop() should return the cursor for non-terminal output, got %q", output)
	}
}

func TestSpinnerStopWithoutStart(t *testing.T) {
	var buf syncBuffer
	s := New(&buf)

	s.Stop()
	s.Stop()

	if buf.String() != "" {
		t.Errorf("Stop() on an idle spinner should write nothing, got %q", buf.String())
	}
}

func TestSpinnerDoubleStart(t *testing.T) {
	var buf syncBuffer
	s := New(&buf)

	s.Start(context.Background(), "first")
	s.Start(context.Background(), "second")
	time.Sleep(120 * time.Millisecond)
	s.Stop()

	if strings.Contains(buf.String(), "second") {
		t.Error("a second Start() should not replace the running phase")
	}
}

func TestSpinnerContextCancel(t *testing.T) {
	var buf syncBuffer
	ctx, cancel := context.WithCancel(context.Background())
	s := New(&buf)

	s.Start(ctx, "Working")
	cancel()

	done := make(chan struct{})
	go func() {
		s.Stop()
		close(done)
	}()

	select {
	case <-done:
	case <-time.After(time.Second):
		t.Fatal("Stop() did not return after the context was cancelled")
	}
}

func TestNilSpinner(t *testing.T) {
	var s *Spinner

	s.Start(context.Background(), "ignored")
	s.Phase("ignored")
	s.Stop()

	if s.running() {
		t.Error("nil spinner should never be active")
	}
}

func TestForTerminal(t *testing.T) {
	var buf bytes.Buffer
	if ForTerminal(&buf, false) != nil {
		t.Error("ForTerminal() should return nil for a non-terminal writer")
	}
	if ForTerminal(&buf, true) != nil {
		t.Error("ForTerminal() should return nil when quiet")
	}
}
