package app

import (
	"fmt"

	"github.com/spf13/cobra"
)

func newWhoamiCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "whoami",
		Short: "Show the signed-in account and backend",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			email := sess.Email()
			if email == "" {
				fmt.Println("not signed in")
				return nil
			}
			fmt.Println(email)
			fmt.Println("backend:", cfg.API.BaseURL)
			fmt.Println("state:", stateFile.Path())
			return nil
		},
	}
}
