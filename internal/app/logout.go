package app

import "github.com/spf13/cobra"

func newLogoutCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "logout",
		Short: "Sign out and discard session tokens",
		Args:  cobra.NoArgs,
		Run: func(cmd *cobra.Command, args []string) {
			sess.SignOut()
			ok("signed out")
		},
	}
}
