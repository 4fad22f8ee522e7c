package app

import (
	"errors"
	"fmt"
	"strings"

	"github.com/shelfsync/shelfsync/internal/api"
	"github.com/shelfsync/shelfsync/internal/transition"
	"github.com/spf13/cobra"
)

func newAddCmd() *cobra.Command {
	var (
		author    string
		thumbnail string
	)

	cmd := &cobra.Command{
		Use:   "add <title>",
		Short: "Add a book to the Want to Read shelf",
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if author == "" {
				return fmt.Errorf("--author is required")
			}

			// Load first so an exact duplicate is caught before the write.
			if err := loadCollection(); err != nil {
				return err
			}

			cand := api.Candidate{
				Title:     strings.Join(args, " "),
				Author:    author,
				Thumbnail: thumbnail,
			}

			book, err := ctrl.AddCandidate(cand)
			if err != nil {
				var shelved *transition.AlreadyShelvedError
				if errors.As(err, &shelved) {
					warn("%q is already on %s", cand.Title, shelved.Shelf.Display())
					return nil
				}
				return fmt.Errorf("adding book: %w", err)
			}

			ok("added %q to %s (id %s)", book.Title, book.Status.Display(), book.ID)
			return nil
		},
	}

	cmd.Flags().StringVar(&author, "author", "", "Book author (required)")
	cmd.Flags().StringVar(&thumbnail, "thumbnail", "", "Cover image URL")
	return cmd
}
