package app

import (
	"bufio"
	"fmt"
	"os"
	"strings"

	"github.com/shelfsync/shelfsync/internal/config"
	"github.com/spf13/cobra"
	"golang.org/x/term"
)

func newLoginCmd() *cobra.Command {
	var email string

	cmd := &cobra.Command{
		Use:   "login",
		Short: "Sign in and store session tokens",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			if !cfg.Ready() {
				return fmt.Errorf("backend not configured — set api.base_url, identity.issuer "+
					"and identity.client_id (see %s)", "shelfsync help")
			}

			if email == "" {
				fmt.Print("Email: ")
				line, err := bufio.NewReader(os.Stdin).ReadString('\n')
				if err != nil {
					return fmt.Errorf("reading email: %w", err)
				}
				email = strings.TrimSpace(line)
			}
			if email == "" {
				return fmt.Errorf("email is required")
			}

			fmt.Print("Password: ")
			password, err := term.ReadPassword(int(os.Stdin.Fd()))
			fmt.Println()
			if err != nil {
				return fmt.Errorf("reading password: %w", err)
			}

			if err := sess.SignIn(email, string(password)); err != nil {
				return fmt.Errorf("signing in: %w", err)
			}

			// First successful sign-in materializes the config file so the
			// resolved settings survive env-var-only setups.
			if _, err := os.Stat(config.DefaultPath()); os.IsNotExist(err) {
				if err := config.Save(cfg); err != nil {
					warn("could not write config file: %v", err)
				}
			}

			ok("signed in as %s", email)
			return nil
		},
	}

	cmd.Flags().StringVar(&email, "email", "", "Account email (prompted when omitted)")
	return cmd
}
