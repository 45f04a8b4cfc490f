package commands

import (
	"os"

	"github.com/Kariqs/klenhub-api/initializers"
	"github.com/rs/zerolog/log"
	"github.com/spf13/cobra"
)

var cfg *initializers.Config

var rootCmd = &cobra.Command{
	Use:   "klenhub",
	Short: "Klenhub storefront backend",
	Long: `Klenhub storefront backend.

Runs the HTTP API, manages the background server process through a PID file,
and applies database migrations and demo seed data.`,
	SilenceUsage:  true,
	SilenceErrors: true,
	PersistentPreRun: func(cmd *cobra.Command, args []string) {
		cfg = initializers.LoadEnv()
		initializers.InitLogger(cfg)
	},
}

// Execute runs the root command and exits non-zero on failure.
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		log.Error().Err(err).Str("command", commandName()).Msg("command failed")
		os.Exit(1)
	}
}

func commandName() string {
	cmd, _, err := rootCmd.Find(os.Args[1:])
	if err != nil || cmd == nil {
		return rootCmd.Name()
	}
	return cmd.CommandPath()
}

func connectDB() error {
	return initializers.ConnectToDB(cfg)
}
