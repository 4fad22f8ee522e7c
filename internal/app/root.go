package app

import (
	"fmt"
	"os"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/fatih/color"
	"github.com/shelfsync/shelfsync/internal/api"
	"github.com/shelfsync/shelfsync/internal/collection"
	"github.com/shelfsync/shelfsync/internal/config"
	"github.com/shelfsync/shelfsync/internal/session"
	"github.com/shelfsync/shelfsync/internal/state"
	"github.com/shelfsync/shelfsync/internal/transition"
	"github.com/shelfsync/shelfsync/internal/tui"
	"github.com/shelfsync/shelfsync/internal/util"
	"github.com/spf13/cobra"
)

var (
	cfg       *config.Config
	stateFile *state.File
	sess      *session.Manager
	ctrl      *transition.Controller

	flagNoColor       bool
	flagNoInteractive bool
)

var rootCmd = &cobra.Command{
	Use:   "shelfsync",
	Short: "Browse and manage your reading shelves",
	Long: `shelfsync is a client for a personal reading collection: three shelves
(Want to Read, Currently Reading, Read) backed by a remote books API.

Run 'shelfsync' with no arguments to launch the interactive browser.`,
	SilenceUsage:  true,
	SilenceErrors: true,
	RunE: func(cmd *cobra.Command, args []string) error {
		if tui.ShouldUseTUI(cmd) {
			browser := tui.NewBrowser(ctrl, stateFile, cfg.Defaults.PlaceholderCover, sess.Email())
			_, err := tea.NewProgram(browser, tea.WithAltScreen()).Run()
			return err
		}
		return cmd.Help()
	},
}

// Execute is the entry point called from main.
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, color.RedString("error:"), err)
		os.Exit(1)
	}
}

func init() {
	rootCmd.PersistentFlags().BoolVar(&flagNoColor, "no-color", false, "Disable colored output")
	rootCmd.PersistentFlags().BoolVar(&flagNoInteractive, "no-interactive", false, "Disable interactive TUI mode")

	rootCmd.PersistentPreRunE = func(cmd *cobra.Command, args []string) error {
		util.InitColor(flagNoColor)

		var err error
		cfg, err = config.Load()
		if err != nil {
			return fmt.Errorf("loading config: %w", err)
		}

		stateFile = state.NewFile(cfg.Defaults.StatePath)
		provider := session.NewIdentityClient(cfg.Identity.Issuer, cfg.Identity.ClientID)
		sess = session.New(stateFile, provider)

		client := api.New(cfg.API.BaseURL, sess.AuthHeaders)
		ctrl = transition.New(client, collection.NewStore())

		if !requiresAuth(cmd) {
			return nil
		}

		if !cfg.Ready() {
			return fmt.Errorf("backend not configured — set api.base_url, identity.issuer "+
				"and identity.client_id in %s (or SHELFSYNC_* env vars)", config.DefaultPath())
		}
		if !sess.Authenticated() {
			return session.ErrNotAuthenticated
		}
		return nil
	}

	// Register sub-commands.
	rootCmd.AddCommand(
		newLoginCmd(),
		newLogoutCmd(),
		newWhoamiCmd(),
		newListCmd(),
		newSearchCmd(),
		newAddCmd(),
		newMoveCmd(),
		newEditCmd(),
		newDeleteCmd(),
		newVersionCmd(),
		newCompletionCmd(),
	)
}

// requiresAuth reports whether the command talks to the books API and
// therefore needs a live session before it runs.
func requiresAuth(cmd *cobra.Command) bool {
	switch cmd.Name() {
	case "login", "logout", "whoami", "version", "completion", "help",
		cobra.ShellCompRequestCmd, cobra.ShellCompNoDescRequestCmd:
		return false
	}
	// Bare "shelfsync" only needs auth when it will launch the browser.
	if cmd == cmd.Root() {
		return tui.ShouldUseTUI(cmd)
	}
	return true
}
