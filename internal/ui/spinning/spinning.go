// Package spinning provides a spinning symbol followed by a progress message, to use while a program
// is running long simulations.
package spinning

import (
	"context"
	"fmt"
	"io"
	"k8s.io/klog/v2"
	"os"
	"os/signal"
	"sync"
	"syscall"
	"time"
)

// Spinning display, created with New and stopped with Done.
type Spinning struct {
	wg     sync.WaitGroup
	cancel func()
	out    io.Writer
}

var (
	ThemeAscii = []rune("|/-\\")
	ThemeDots  = []rune("⠋⠙⠹⠸⠼⠴⠦⠧⠇⠏")

	// Theme defaults to ThemeAscii, but it can be set to anything else.
	Theme = ThemeAscii

	// Period between updates.
	Period = 250 * time.Millisecond
)

// SafeInterrupt will capture SigInt (Ctrl+C) and SigTerm and call the provided onInterrupt.
// If the program haven't exited after gracePeriod, it will call Reset to reset the terminal
// and exit.
func SafeInterrupt(onInterrupt func(), gracePeriod time.Duration) {
	sigChan := make(chan os.Signal, 1)
	signal.Notify(sigChan, syscall.SIGINT, syscall.SIGTERM)
	go func() {
		s := <-sigChan
		fmt.Println()
		klog.Errorf("Got interrupted (signal %q), shutting down... (%s)", s, gracePeriod)
		if onInterrupt != nil {
			go onInterrupt()
		}

		// Wait for gracePeriod before exiting.
		time.Sleep(gracePeriod)
		Reset()
		klog.Fatalf("Graceful shutting down %s period expired, exiting.", gracePeriod)
	}()
}

// Reset terminal: make cursor visible, restore default terminal colors.
func Reset() {
	fmt.Print("\033[?25h\033[39;49;0m\n") // Restore cursor and colors.
}

// New starts a spinning display that runs on a separate goroutine, writing to os.Stdout.
// The message is refreshed at every update, it may be nil.
// It stops when Spinning.Done is called, or ctx is cancelled.
func New(ctx context.Context, message func() string) *Spinning {
	return NewWithWriter(ctx, os.Stdout, message)
}

// NewWithWriter is like New, but writes to out.
func NewWithWriter(ctx context.Context, out io.Writer, message func() string) *Spinning {
	s := &Spinning{out: out}
	ctx, s.cancel = context.WithCancel(ctx)
	s.wg.Add(1)
	go func() {
		defer s.wg.Done()
		ticker := time.NewTicker(Period)
		defer ticker.Stop()
		// Hide cursor, and restore it at the end.
		_, _ = fmt.Fprint(out, "\033[?25l")
		defer func() { _, _ = fmt.Fprint(out, "\033[?25h") }()

		for idx := 0; ; idx = (idx + 1) % len(Theme) {
			msg := ""
			if message != nil {
				msg = message()
			}
			// Carriage return and clear to the end-of-line.
			_, _ = fmt.Fprintf(out, "\r%c %s\033[0K", Theme[idx], msg)
			select {
			case <-ctx.Done():
				_, _ = fmt.Fprint(out, "\r\033[0K")
				return
			case <-ticker.C:
				// continue
			}
		}
	}()
	return s
}

// Done stops the spinning and clears its line. It can be called more than once.
func (s *Spinning) Done() {
	if s.cancel != nil {
		s.cancel()
		s.cancel = nil
	}
	s.wg.Wait()
}
