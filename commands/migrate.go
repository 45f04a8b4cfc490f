package commands

import (
	"fmt"
	"text/tabwriter"

	"github.com/Kariqs/klenhub-api/initializers"
	"github.com/Kariqs/klenhub-api/migrations"
	"github.com/spf13/cobra"
)

var (
	migrateTo    string
	migrateSteps int
	migrateAll   bool
)

var migrateCmd = &cobra.Command{
	Use:   "migrate",
	Short: "Run database migrations",
	Long: `Run database migrations.

Subcommands:
  up      - Apply pending migrations
  down    - Roll back applied migrations
  status  - Show migration status`,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		rootCmd.PersistentPreRun(cmd, args)
		return connectDB()
	},
}

var migrateUpCmd = &cobra.Command{
	Use:   "up",
	Short: "Apply pending migrations",
	Long: `Apply pending migrations.

Examples:
  klenhub migrate up                                      # Apply everything pending
  klenhub migrate up --to 20240305102500_create_product_images`,
	RunE: func(cmd *cobra.Command, args []string) error {
		if migrateTo != "" {
			return migrations.UpTo(initializers.DB, migrateTo)
		}
		return migrations.Up(initializers.DB)
	},
}

var migrateDownCmd = &cobra.Command{
	Use:   "down",
	Short: "Roll back migrations",
	Long: `Roll back applied migrations, newest first.

Examples:
  klenhub migrate down            # Roll back the last migration
  klenhub migrate down --steps 3  # Roll back the last three
  klenhub migrate down --all      # Roll back everything`,
	RunE: func(cmd *cobra.Command, args []string) error {
		var (
			reverted int
			err      error
		)
		if migrateAll {
			reverted, err = migrations.DownAll(initializers.DB)
		} else {
			reverted, err = migrations.Down(initializers.DB, migrateSteps)
		}
		if err != nil {
			return err
		}
		fmt.Fprintf(cmd.OutOrStdout(), "Rolled back %d migration(s)\n", reverted)
		return nil
	},
}

var migrateStatusCmd = &cobra.Command{
	Use:   "status",
	Short: "Show migration status",
	RunE: func(cmd *cobra.Command, args []string) error {
		records, err := migrations.Status(initializers.DB)
		if err != nil {
			return err
		}

		w := tabwriter.NewWriter(cmd.OutOrStdout(), 0, 0, 2, ' ', 0)
		fmt.Fprintln(w, "MIGRATION\tSTATUS")
		for _, r := range records {
			state := "pending"
			if r.Applied {
				state = "applied"
			}
			fmt.Fprintf(w, "%s\t%s\n", r.ID, state)
		}
		return w.Flush()
	},
}

func init() {
	rootCmd.AddCommand(migrateCmd)
	migrateCmd.AddCommand(migrateUpCmd, migrateDownCmd, migrateStatusCmd)

	migrateUpCmd.Flags().StringVar(&migrateTo, "to", "", "Apply migrations up to and including this ID")
	migrateDownCmd.Flags().IntVar(&migrateSteps, "steps", 1, "Number of migrations to roll back")
	migrateDownCmd.Flags().BoolVar(&migrateAll, "all", false, "Roll back every applied migration")
}
