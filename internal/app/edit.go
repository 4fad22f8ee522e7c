package app

import (
	"errors"
	"fmt"

	"github.com/shelfsync/shelfsync/internal/api"
	"github.com/shelfsync/shelfsync/internal/collection"
	"github.com/shelfsync/shelfsync/internal/transition"
	"github.com/spf13/cobra"
)

func newEditCmd() *cobra.Command {
	var (
		series      string
		seriesIndex int
		rating      int
		review      string
		comments    string
		bookType    string
	)

	cmd := &cobra.Command{
		Use:   "edit <id>",
		Short: "Edit a book's details",
		Long: `Edit a book's detail fields. Only the flags you pass are sent to the
server; everything else is left untouched.`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := loadCollection(); err != nil {
				return err
			}

			id := args[0]
			if _, found := ctrl.Store().Get(id); !found {
				return fmt.Errorf("unknown book %q", id)
			}

			// Empty text values are rejected rather than sent as clears;
			// the server only touches fields that arrive non-empty.
			var patch api.BookPatch
			if cmd.Flags().Changed("series") {
				if series == "" {
					return fmt.Errorf("series cannot be empty")
				}
				patch.Series = &series
			}
			if cmd.Flags().Changed("series-index") {
				if seriesIndex < 0 {
					return fmt.Errorf("series index must not be negative")
				}
				patch.SeriesIndex = &seriesIndex
			}
			if cmd.Flags().Changed("rating") {
				if rating < 1 || rating > 10 {
					return fmt.Errorf("rating must be between 1 and 10")
				}
				patch.Rating = &rating
			}
			if cmd.Flags().Changed("review") {
				if review == "" {
					return fmt.Errorf("review cannot be empty")
				}
				patch.Review = &review
			}
			if cmd.Flags().Changed("comments") {
				if comments == "" {
					return fmt.Errorf("comments cannot be empty")
				}
				patch.Comments = &comments
			}
			if cmd.Flags().Changed("type") {
				if bookType != collection.TypeBook && bookType != collection.TypeAudiobook {
					return fmt.Errorf("type must be %q or %q", collection.TypeBook, collection.TypeAudiobook)
				}
				patch.Type = &bookType
			}

			book, err := ctrl.SaveDetails(id, patch)
			if err != nil {
				if errors.Is(err, transition.ErrNoChanges) {
					fmt.Println("nothing to change")
					return nil
				}
				return fmt.Errorf("saving details: %w", err)
			}

			ok("saved %q", book.Title)
			return nil
		},
	}

	cmd.Flags().StringVar(&series, "series", "", "Series name")
	cmd.Flags().IntVar(&seriesIndex, "series-index", 0, "Number within the series")
	cmd.Flags().IntVar(&rating, "rating", 0, "Rating from 1 to 10")
	cmd.Flags().StringVar(&review, "review", "", "Short review")
	cmd.Flags().StringVar(&comments, "comments", "", "Private notes")
	cmd.Flags().StringVar(&bookType, "type", "", "book or audiobook")
	return cmd
}
