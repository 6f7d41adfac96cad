// Package process starts helper programs detached from the window manager
// and reaps them when they exit.
package process

import (
	"errors"
	"fmt"
	"log/slog"
	"os/exec"
	"strings"
	"syscall"
)

// ErrEmptyCommand is returned when there is nothing to run.
var ErrEmptyCommand = errors.New("empty command")

// Spawner launches programs in their own session so they survive the window
// manager and never receive its terminal signals.
type Spawner struct {
	logger *slog.Logger
}

// NewSpawner creates a spawner that logs through logger.
func NewSpawner(logger *slog.Logger) *Spawner {
	if logger == nil {
		logger = slog.Default()
	}
	return &Spawner{logger: logger}
}

// Spawn starts command, which is a program name optionally followed by
// whitespace-separated arguments, looked up in PATH. It does not wait.
func (s *Spawner) Spawn(command string) error {
	argv := strings.Fields(command)
	if len(argv) == 0 {
		return ErrEmptyCommand
	}

	cmd := exec.Command(argv[0], argv[1:]...)
	cmd.SysProcAttr = &syscall.SysProcAttr{Setsid: true}
	if err := cmd.Start(); err != nil {
		return fmt.Errorf("failed to start %q: %w", argv[0], err)
	}

	pid := cmd.Process.Pid
	// The reaper collects the exit status.
	if err := cmd.Process.Release(); err != nil {
		s.logger.Debug("failed to release process", "pid", pid, "error", err)
	}
	s.logger.Debug("spawned process", "command", argv[0], "pid", pid)
	return nil
}
