package commands

import (
	"fmt"
	"time"

	"github.com/Kariqs/klenhub-api/utils"
	"github.com/spf13/cobra"
)

var (
	tokenEmail string
	tokenRole  string
	tokenTTL   time.Duration
)

var tokenCmd = &cobra.Command{
	Use:   "token",
	Short: "Mint a signed access token for the admin pages",
	RunE: func(cmd *cobra.Command, args []string) error {
		token, err := utils.GenerateToken(cfg.JWTSecret, tokenEmail, tokenRole, tokenTTL)
		if err != nil {
			return err
		}
		fmt.Fprintln(cmd.OutOrStdout(), token)
		return nil
	},
}

func init() {
	rootCmd.AddCommand(tokenCmd)
	tokenCmd.Flags().StringVar(&tokenEmail, "email", "", "Email claim of the token")
	tokenCmd.Flags().StringVar(&tokenRole, "role", utils.RoleAdmin, "Role claim of the token")
	tokenCmd.Flags().DurationVar(&tokenTTL, "ttl", 24*time.Hour, "Token lifetime")
	_ = tokenCmd.MarkFlagRequired("email")
}
