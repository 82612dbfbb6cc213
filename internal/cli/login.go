package cli

import (
	"fmt"

	"github.com/spf13/cobra"
)

func newLoginCmd() *cobra.Command {
	var accessToken string

	cmd := &cobra.Command{
		Use:   "login",
		Short: "Resolve a Google access token into a player profile",
		RunE: func(cmd *cobra.Command, args []string) error {
			token := accessToken
			if token == "" {
				token = cfg.AccessToken
			}
			if token == "" {
				return fmt.Errorf("--access-token is required (or set WORTLE_TOKEN)")
			}

			req := map[string]string{"access_token": token}
			var result AuthResult

			if err := client.Post("/api/v1/auth/google", req, &result); err != nil {
				return err
			}

			// Save the token for subsequent commands
			if err := cfg.SaveToken(token); err != nil {
				return fmt.Errorf("failed to save token: %w", err)
			}

			out := NewOutput(cfg.Output)
			out.Print(result)
			return nil
		},
	}

	cmd.Flags().StringVar(&accessToken, "access-token", "", "Google access token")

	return cmd
}
