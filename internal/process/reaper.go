package process

import (
	"context"
	"errors"
	"log/slog"
	"os"
	"os/signal"
	"time"

	"golang.org/x/sys/unix"
)

// ReaperConfig holds configuration for the reaper.
type ReaperConfig struct {
	// Interval is how often to sweep for exited children even when no
	// SIGCHLD arrived. Signals can coalesce, so a sweep catches stragglers.
	Interval time.Duration
	Logger   *slog.Logger
}

// Reaper waits on exited child processes so none are left as zombies.
type Reaper struct {
	interval time.Duration
	logger   *slog.Logger
}

// NewReaper creates a reaper with the given configuration.
func NewReaper(cfg ReaperConfig) *Reaper {
	interval := cfg.Interval
	if interval <= 0 {
		interval = 30 * time.Second
	}
	logger := cfg.Logger
	if logger == nil {
		logger = slog.Default()
	}
	return &Reaper{interval: interval, logger: logger}
}

// Run reaps children on every SIGCHLD. Blocks until ctx is cancelled.
func (r *Reaper) Run(ctx context.Context) {
	sigCh := make(chan os.Signal, 1)
	signal.Notify(sigCh, unix.SIGCHLD)
	defer signal.Stop(sigCh)

	ticker := time.NewTicker(r.interval)
	defer ticker.Stop()

	// Children may have exited before the handler was installed.
	r.reap()

	for {
		select {
		case <-ctx.Done():
			return
		case <-sigCh:
			r.reap()
		case <-ticker.C:
			r.reap()
		}
	}
}

func (r *Reaper) reap() {
	n, err := reapChildren()
	if err != nil {
		r.logger.Warn("failed to reap children", "error", err)
	}
	if n > 0 {
		r.logger.Debug("reaped children", "count", n)
	}
}

// reapChildren collects every exited child without blocking and returns how
// many it collected.
func reapChildren() (int, error) {
	reaped := 0
	for {
		var status unix.WaitStatus
		pid, err := unix.Wait4(-1, &status, unix.WNOHANG, nil)
		switch {
		case errors.Is(err, unix.EINTR):
			continue
		case errors.Is(err, unix.ECHILD):
			return reaped, nil
		case err != nil:
			return reaped, err
		case pid <= 0:
			return reaped, nil
		}
		reaped++
	}
}
