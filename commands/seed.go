package commands

import (
	"fmt"

	"github.com/Kariqs/klenhub-api/initializers"
	"github.com/Kariqs/klenhub-api/seeders"
	"github.com/spf13/cobra"
)

var seedCmd = &cobra.Command{
	Use:   "seed",
	Short: "Insert or remove demo data",
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		rootCmd.PersistentPreRun(cmd, args)
		return connectDB()
	},
}

var seedUpCmd = &cobra.Command{
	Use:   "up",
	Short: "Insert demo products, sizes and images",
	RunE: func(cmd *cobra.Command, args []string) error {
		if err := seeders.Up(initializers.DB); err != nil {
			return err
		}
		fmt.Fprintln(cmd.OutOrStdout(), "Demo data inserted")
		return nil
	},
}

var seedDownCmd = &cobra.Command{
	Use:   "down",
	Short: "Remove all products, sizes and images",
	RunE: func(cmd *cobra.Command, args []string) error {
		if err := seeders.Down(initializers.DB); err != nil {
			return err
		}
		fmt.Fprintln(cmd.OutOrStdout(), "Demo data removed")
		return nil
	},
}

func init() {
	rootCmd.AddCommand(seedCmd)
	seedCmd.AddCommand(seedUpCmd, seedDownCmd)
}
