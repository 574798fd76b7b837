package cli

import (
	"context"
	"fmt"
	goio "io"
	"strings"
	"sync"
	"sync/atomic"
	"time"
)

// ringFrames walk a quarter arc around the plasmid ring.
var ringFrames = []string{"◴", "◷", "◶", "◵"}

const spinnerInterval = 100 * time.Millisecond

// spinner animates a ring on one terminal line while a pipeline stage runs.
// It stops on its own when ctx is cancelled.
type spinner struct {
	w        goio.Writer
	ctx      context.Context
	cancel   context.CancelFunc
	stopped  chan struct{}
	once     sync.Once
	byCaller atomic.Bool
	started  time.Time

	mu      sync.Mutex
	message string
	width   int // widest line written, for clearing
}

func newSpinner(ctx context.Context, w goio.Writer, message string) *spinner {
	sctx, cancel := context.WithCancel(ctx)
	return &spinner{
		w:       w,
		ctx:     sctx,
		cancel:  cancel,
		stopped: make(chan struct{}),
		message: message,
	}
}

// Start begins the animation.
func (s *spinner) Start() {
	s.started = time.Now()
	go func() {
		defer close(s.stopped)
		ticker := time.NewTicker(spinnerInterval)
		defer ticker.Stop()

		for i := 0; ; i++ {
			select {
			case <-s.ctx.Done():
				s.clear()
				return
			case <-ticker.C:
				s.draw(ringFrames[i%len(ringFrames)])
			}
		}
	}()
}

// Step replaces the message shown next to the ring.
func (s *spinner) Step(message string) {
	s.mu.Lock()
	s.message = message
	s.mu.Unlock()
}

func (s *spinner) draw(frame string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	text := s.message + " " + formatElapsed(time.Since(s.started))
	s.width = max(s.width, len(frame)+1+len(text))
	fmt.Fprintf(s.w, "\r%s %s", styleIconSpinner.Render(frame), StyleDim.Render(text))
}

func (s *spinner) clear() {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.width > 0 {
		fmt.Fprintf(s.w, "\r%s\r", strings.Repeat(" ", s.width))
	}
}

// Stop ends the animation and clears the line. Calling it again is a no-op.
func (s *spinner) Stop() {
	s.once.Do(func() {
		s.byCaller.Store(true)
		s.cancel()
		if !s.started.IsZero() {
			<-s.stopped
		}
	})
}

// Fail stops the spinner and prints message as an error.
func (s *spinner) Fail(message string) {
	s.Stop()
	printError("%s", message)
}

// Cancelled reports whether the parent context, not Stop, ended the spinner.
func (s *spinner) Cancelled() bool {
	return s.ctx.Err() != nil && !s.byCaller.Load()
}

func formatElapsed(d time.Duration) string {
	return fmt.Sprintf("%.1fs", d.Seconds())
}
