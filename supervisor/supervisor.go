// Package supervisor starts, stops and restarts a single background server
// process tracked through a PID file.
package supervisor

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"os/exec"
	"syscall"
	"time"

	"github.com/gofrs/flock"
	"github.com/rs/zerolog"
)

const (
	DefaultPollInterval = time.Second
	DefaultMaxPolls     = 10
)

var (
	ErrAlreadyRunning  = errors.New("server is already running; shut it down first")
	ErrStartInProgress = errors.New("another start or restart is in progress")
	ErrNoCommand       = errors.New("no server command configured")
)

type Config struct {
	// PIDFile records the PID of the running server.
	PIDFile string
	// LogFile receives the detached server's stdout and stderr.
	LogFile string
	// Command is the server argv.
	Command []string
	Dir     string
	Env     []string

	// PollInterval and MaxPolls bound how long Shutdown waits after SIGTERM
	// before sending SIGKILL.
	PollInterval time.Duration
	MaxPolls     int

	Logger zerolog.Logger
}

type Supervisor struct {
	cfg Config
	log zerolog.Logger
}

// ShutdownResult describes how a shutdown ended.
type ShutdownResult struct {
	PID            int  `json:"pid"`
	Forced         bool `json:"forced"`
	AlreadyStopped bool `json:"alreadyStopped"`
}

// Status is the PID file's view of the server.
type Status struct {
	PIDFile string `json:"pidFile"`
	PID     int    `json:"pid,omitempty"`
	Running bool   `json:"running"`
}

func New(cfg Config) *Supervisor {
	if cfg.PollInterval <= 0 {
		cfg.PollInterval = DefaultPollInterval
	}
	if cfg.MaxPolls <= 0 {
		cfg.MaxPolls = DefaultMaxPolls
	}
	return &Supervisor{
		cfg: cfg,
		log: cfg.Logger.With().Str("component", "supervisor").Logger(),
	}
}

// Start spawns the server detached from the launcher, records its PID and
// returns without waiting for it. A live PID file aborts the start; a stale
// or corrupted one is removed first.
func (s *Supervisor) Start(ctx context.Context) (int, error) {
	if err := ctx.Err(); err != nil {
		return 0, err
	}
	if len(s.cfg.Command) == 0 {
		return 0, ErrNoCommand
	}

	lock, err := s.lock()
	if err != nil {
		return 0, err
	}
	defer lock.Unlock()

	if err := s.clearStalePIDFile(); err != nil {
		return 0, err
	}

	logFile, err := os.OpenFile(s.cfg.LogFile, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o644)
	if err != nil {
		return 0, fmt.Errorf("open log file: %w", err)
	}
	defer logFile.Close()

	cmd := exec.Command(s.cfg.Command[0], s.cfg.Command[1:]...)
	cmd.Dir = s.cfg.Dir
	cmd.Env = s.cfg.Env
	cmd.Stdout = logFile
	cmd.Stderr = logFile
	cmd.SysProcAttr = detached()

	if err := cmd.Start(); err != nil {
		return 0, fmt.Errorf("spawn server: %w", err)
	}
	pid := cmd.Process.Pid

	if err := WritePIDFile(s.cfg.PIDFile, pid); err != nil {
		_ = cmd.Process.Kill()
		_ = cmd.Wait()
		return 0, err
	}

	// Reap the child should this process outlive it.
	go func() { _ = cmd.Wait() }()

	s.log.Info().Int("pid", pid).Str("log_file", s.cfg.LogFile).Msg("server started")
	return pid, nil
}

// Shutdown sends SIGTERM to the recorded PID and polls once per interval for
// it to exit. A process still alive after the last poll gets SIGKILL. The PID
// file is removed once the shutdown completes; a missing or unusable PID
// file aborts before anything is signalled. If ctx ends while polling,
// Shutdown returns ctx.Err() and leaves the PID file, since the process may
// still be running.
func (s *Supervisor) Shutdown(ctx context.Context) (ShutdownResult, error) {
	pid, err := ReadPIDFile(s.cfg.PIDFile)
	if err != nil {
		return ShutdownResult{}, err
	}
	result := ShutdownResult{PID: pid}

	if err := signal(pid, syscall.SIGTERM); err != nil {
		if !isGone(err) {
			return result, fmt.Errorf("send SIGTERM to %d: %w", pid, err)
		}
		s.log.Info().Int("pid", pid).Msg("server was not running")
		result.AlreadyStopped = true
		return result, s.removePIDFile()
	}
	s.log.Info().Int("pid", pid).Msg("sent SIGTERM, waiting for server to exit")

	exited, err := s.waitForExit(ctx, pid)
	if err != nil {
		return result, err
	}

	if !exited {
		result.Forced = true
		s.log.Warn().Int("pid", pid).Int("attempts", s.cfg.MaxPolls).Msg("server still alive, sending SIGKILL")
		if err := signal(pid, syscall.SIGKILL); err != nil && !isGone(err) {
			s.log.Error().Err(err).Int("pid", pid).Msg("forced kill failed")
		}
	} else {
		s.log.Info().Int("pid", pid).Msg("server stopped")
	}

	return result, s.removePIDFile()
}

// Restart stops a server recorded in the PID file, then runs a new one
// attached to the caller's terminal until it exits or ctx is cancelled.
// Cancellation is forwarded as SIGTERM, with SIGKILL after the shutdown
// grace period. The PID file tracks the new process while it runs.
func (s *Supervisor) Restart(ctx context.Context, stdout, stderr io.Writer) error {
	if len(s.cfg.Command) == 0 {
		return ErrNoCommand
	}

	lock, err := s.lock()
	if err != nil {
		return err
	}
	unlocked := false
	unlock := func() {
		if !unlocked {
			_ = lock.Unlock()
			unlocked = true
		}
	}
	defer unlock()

	switch _, err := s.Shutdown(ctx); {
	case err == nil, errors.Is(err, ErrNoPIDFile):
	case errors.Is(err, ErrInvalidPIDFile):
		s.log.Warn().Msg("removing corrupted PID file")
		if err := s.removePIDFile(); err != nil {
			return err
		}
	default:
		return fmt.Errorf("stop running server: %w", err)
	}

	cmd := exec.CommandContext(ctx, s.cfg.Command[0], s.cfg.Command[1:]...)
	cmd.Dir = s.cfg.Dir
	cmd.Env = s.cfg.Env
	cmd.Stdin = os.Stdin
	cmd.Stdout = stdout
	cmd.Stderr = stderr
	cmd.Cancel = func() error {
		return cmd.Process.Signal(syscall.SIGTERM)
	}
	cmd.WaitDelay = s.cfg.PollInterval * time.Duration(s.cfg.MaxPolls)

	if err := cmd.Start(); err != nil {
		return fmt.Errorf("spawn server: %w", err)
	}
	pid := cmd.Process.Pid

	if err := WritePIDFile(s.cfg.PIDFile, pid); err != nil {
		_ = cmd.Process.Kill()
		_ = cmd.Wait()
		return err
	}
	defer s.releasePIDFile(pid)
	unlock()

	s.log.Info().Int("pid", pid).Msg("server restarted in foreground")

	err = cmd.Wait()
	if ctx.Err() != nil {
		s.log.Info().Int("pid", pid).Msg("server stopped")
		return nil
	}
	if err != nil {
		return fmt.Errorf("server exited: %w", err)
	}
	return nil
}

// Status reports the PID file's content and whether that process is alive.
func (s *Supervisor) Status() (Status, error) {
	status := Status{PIDFile: s.cfg.PIDFile}
	pid, err := ReadPIDFile(s.cfg.PIDFile)
	if errors.Is(err, ErrNoPIDFile) {
		return status, nil
	}
	if err != nil {
		return status, err
	}
	status.PID = pid
	status.Running = IsAlive(pid)
	return status, nil
}

func (s *Supervisor) lock() (*flock.Flock, error) {
	lock := flock.New(s.cfg.PIDFile + ".lock")
	locked, err := lock.TryLock()
	if err != nil {
		return nil, fmt.Errorf("lock %s: %w", lock.Path(), err)
	}
	if !locked {
		return nil, ErrStartInProgress
	}
	return lock, nil
}

func (s *Supervisor) clearStalePIDFile() error {
	pid, err := ReadPIDFile(s.cfg.PIDFile)
	switch {
	case errors.Is(err, ErrNoPIDFile):
		return nil
	case errors.Is(err, ErrInvalidPIDFile):
		s.log.Warn().Err(err).Msg("removing corrupted PID file")
		return s.removePIDFile()
	case err != nil:
		return err
	}

	if IsAlive(pid) {
		return fmt.Errorf("%w (pid %d)", ErrAlreadyRunning, pid)
	}
	s.log.Warn().Int("pid", pid).Msg("removing stale PID file")
	return s.removePIDFile()
}

func (s *Supervisor) waitForExit(ctx context.Context, pid int) (bool, error) {
	ticker := time.NewTicker(s.cfg.PollInterval)
	defer ticker.Stop()

	for attempt := 1; attempt <= s.cfg.MaxPolls; attempt++ {
		select {
		case <-ctx.Done():
			return false, ctx.Err()
		case <-ticker.C:
		}
		if !IsAlive(pid) {
			return true, nil
		}
		s.log.Debug().Int("pid", pid).Int("attempt", attempt).Msg("server still running")
	}
	return false, nil
}

// releasePIDFile removes the PID file only while it still names pid.
func (s *Supervisor) releasePIDFile(pid int) {
	recorded, err := ReadPIDFile(s.cfg.PIDFile)
	if err != nil || recorded != pid {
		return
	}
	if err := s.removePIDFile(); err != nil {
		s.log.Error().Err(err).Msg("unable to remove PID file")
	}
}

func (s *Supervisor) removePIDFile() error {
	return RemovePIDFile(s.cfg.PIDFile)
}
