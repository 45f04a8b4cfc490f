package commands

import (
	"context"
	"errors"
	"fmt"
	"os"
	"time"

	"github.com/Kariqs/klenhub-api/supervisor"
	"github.com/rs/zerolog/log"
	"github.com/spf13/cobra"
)

var (
	startCmd = &cobra.Command{
		Use:   "start",
		Short: "Start the server in the background",
		Long: `Start the server as a detached background process.

Output goes to LOG_FILE and the process id is written to PID_FILE. Refuses to
start while the recorded process is still alive; a stale PID file is removed.`,
		RunE: func(cmd *cobra.Command, args []string) error {
			sv, err := newSupervisor()
			if err != nil {
				return err
			}
			pid, err := sv.Start(cmd.Context())
			if errors.Is(err, supervisor.ErrAlreadyRunning) {
				return fmt.Errorf("%w; run `klenhub shutdown` first", err)
			}
			if err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "Server started with PID %d (logs: %s)\n", pid, cfg.LogFile)
			return nil
		},
	}

	shutdownCmd = &cobra.Command{
		Use:   "shutdown",
		Short: "Stop the background server",
		Long: `Stop the server recorded in PID_FILE.

Sends SIGTERM, then checks once per second for up to ten seconds before
sending SIGKILL. The PID file is removed afterwards.`,
		RunE: func(cmd *cobra.Command, args []string) error {
			sv, err := newSupervisor()
			if err != nil {
				return err
			}
			result, err := sv.Shutdown(cmd.Context())
			if err != nil {
				return err
			}
			switch {
			case result.AlreadyStopped:
				fmt.Fprintf(cmd.OutOrStdout(), "Server (PID %d) was not running; PID file removed\n", result.PID)
			case result.Forced:
				fmt.Fprintf(cmd.OutOrStdout(), "Server (PID %d) did not stop in time and was killed\n", result.PID)
			default:
				fmt.Fprintf(cmd.OutOrStdout(), "Server (PID %d) stopped\n", result.PID)
			}
			return nil
		},
	}

	restartCmd = &cobra.Command{
		Use:   "restart",
		Short: "Stop the background server and run it in the foreground",
		RunE: func(cmd *cobra.Command, args []string) error {
			sv, err := newSupervisor()
			if err != nil {
				return err
			}
			ctx, stop := notifyContext(cmd.Context())
			defer stop()
			return sv.Restart(ctx, cmd.OutOrStdout(), cmd.ErrOrStderr())
		},
	}

	statusCmd = &cobra.Command{
		Use:   "status",
		Short: "Show whether the background server is running",
		RunE: func(cmd *cobra.Command, args []string) error {
			sv, err := newSupervisor()
			if err != nil {
				return err
			}
			status, err := sv.Status()
			if err != nil {
				return err
			}

			out := cmd.OutOrStdout()
			switch {
			case status.PID == 0:
				fmt.Fprintln(out, "Server is not running (no PID file)")
				return nil
			case !status.Running:
				fmt.Fprintf(out, "Server is not running (stale PID file for %d)\n", status.PID)
				return nil
			}

			fmt.Fprintf(out, "Server is running with PID %d\n", status.PID)
			ctx, cancel := context.WithTimeout(cmd.Context(), 5*time.Second)
			defer cancel()
			health, err := supervisor.ProbeHealth(ctx, fmt.Sprintf("http://127.0.0.1:%s/health", cfg.Port), 3*time.Second)
			if err != nil {
				log.Warn().Err(err).Msg("server is running but not healthy")
				fmt.Fprintln(out, "Health: unavailable")
				return nil
			}
			fmt.Fprintf(out, "Health: %s\n", health)
			return nil
		},
	}
)

func init() {
	rootCmd.AddCommand(startCmd, shutdownCmd, restartCmd, statusCmd)
}

func newSupervisor() (*supervisor.Supervisor, error) {
	exe, err := os.Executable()
	if err != nil {
		return nil, fmt.Errorf("resolve executable: %w", err)
	}
	return supervisor.New(supervisor.Config{
		PIDFile: cfg.PIDFile,
		LogFile: cfg.LogFile,
		Command: []string{exe, "serve"},
		Env:     os.Environ(),
		Logger:  log.Logger,
	}), nil
}
