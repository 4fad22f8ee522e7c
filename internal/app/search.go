package app

import (
	"fmt"
	"strings"

	"github.com/fatih/color"
	"github.com/spf13/cobra"
)

func newSearchCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "search <query>",
		Short: "Search the book catalog",
		Long: `Search the external book catalog by title or author.

Results already in your collection are marked with the shelf they sit on.`,
		Args: cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			// The collection must be loaded so results can be marked
			// against it.
			if err := loadCollection(); err != nil {
				return err
			}

			query := strings.Join(args, " ")
			results, err := ctrl.Search(query)
			if err != nil {
				return fmt.Errorf("searching catalog: %w", err)
			}

			if len(results) == 0 {
				fmt.Println("no results")
				return nil
			}

			for _, r := range results {
				line := fmt.Sprintf("  %-14s %s", r.ID, r.Title)
				line += color.New(color.Faint).Sprintf("  by %s", r.Author)
				if r.ExistingShelf != "" {
					line += "  " + color.GreenString("✓ on %s", r.ExistingShelf.Display())
				}
				fmt.Println(line)
			}
			fmt.Println()
			fmt.Println(color.New(color.Faint).Sprint("add one with: shelfsync add <title> --author <author>"))
			return nil
		},
	}
}
