package cli

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"os"
	"os/signal"
	"sync"
	"syscall"
)

// InterruptHandler cancels long running work on SIGINT or SIGTERM and
// prints a short notice when it does.
type InterruptHandler struct {
	writer      io.Writer
	cancel      context.CancelFunc
	task        string
	hint        string
	interrupted bool
	mu          sync.Mutex
}

// NewInterruptHandler creates a handler that reports on writer that task
// was interrupted. A nil writer means stderr.
func NewInterruptHandler(writer io.Writer, task string) *InterruptHandler {
	if writer == nil {
		writer = os.Stderr
	}
	return &InterruptHandler{
		writer: writer,
		task:   task,
	}
}

// WithHint sets an extra line shown after the interrupt notice.
func (h *InterruptHandler) WithHint(hint string) *InterruptHandler {
	h.hint = hint
	return h
}

// HandleInterrupts returns a context that is canceled on interrupt. Call the
// returned func to stop listening for signals.
func (h *InterruptHandler) HandleInterrupts(ctx context.Context) (context.Context, context.CancelFunc) {
	ctx, cancel := context.WithCancel(ctx)
	h.cancel = cancel

	sigChan := make(chan os.Signal, 1)
	signal.Notify(sigChan, os.Interrupt, syscall.SIGTERM)

	go func() {
		defer signal.Stop(sigChan)
		select {
		case <-sigChan:
			h.interrupt()
		case <-ctx.Done():
		}
	}()

	return ctx, cancel
}

func (h *InterruptHandler) interrupt() {
	h.mu.Lock()
	defer h.mu.Unlock()

	if h.interrupted {
		return
	}
	h.interrupted = true

	msg := "\n\n" + FormatWarning(h.task+" interrupted!")
	if h.hint != "" {
		msg += "\n" + FormatInfo(h.hint)
	}
	if _, err := fmt.Fprintln(h.writer, msg); err != nil {
		slog.Warn("Failed to write interrupt message", "error", err)
	}

	if h.cancel != nil {
		h.cancel()
	}
}

// WasInterrupted returns true if a signal canceled the work.
func (h *InterruptHandler) WasInterrupted() bool {
	h.mu.Lock()
	defer h.mu.Unlock()
	return h.interrupted
}
