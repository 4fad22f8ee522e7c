package app

import (
	"fmt"

	"github.com/fatih/color"
	"github.com/shelfsync/shelfsync/internal/collection"
	"github.com/spf13/cobra"
)

func newListCmd() *cobra.Command {
	var (
		shelfArg string
		sortArg  string
		desc     bool
	)

	cmd := &cobra.Command{
		Use:   "list",
		Short: "List the collection, shelf by shelf",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := loadCollection(); err != nil {
				return err
			}

			st, err := stateFile.Load()
			if err != nil {
				return err
			}

			shelves := collection.Statuses()
			if shelfArg != "" {
				status, err := statusFromArg(shelfArg)
				if err != nil {
					return err
				}
				shelves = []collection.Status{status}
			}

			dir := collection.Ascending
			if desc {
				dir = collection.Descending
			}

			for _, status := range shelves {
				key := collection.ParseSortKey(st.SortKeyFor(string(status)))
				if cmd.Flags().Changed("sort") {
					key = collection.ParseSortKey(sortArg)
				}

				books := ctrl.Store().Shelf(status)
				collection.SortBooks(books, key, dir)

				header("%s (%d)", status.Display(), len(books))
				for _, b := range books {
					printBookLine(b)
				}
				fmt.Println()
			}
			return nil
		},
	}

	cmd.Flags().StringVar(&shelfArg, "shelf", "", "Only one shelf (want, reading, read)")
	cmd.Flags().StringVar(&sortArg, "sort", "", "Sort key: title, author, series, rating")
	cmd.Flags().BoolVar(&desc, "desc", false, "Sort descending")
	return cmd
}

func printBookLine(b collection.Book) {
	line := fmt.Sprintf("  %-10s %s", b.ID, b.Title)
	if b.IsAudiobook() {
		line += " 🎧"
	}
	line += color.New(color.Faint).Sprintf("  by %s", b.Author)
	if s := b.SeriesLabel(); s != "" {
		line += "  " + color.CyanString(s)
	}
	if r := b.RatingLabel(); r != "" {
		line += "  " + r
	}
	fmt.Println(line)
}
