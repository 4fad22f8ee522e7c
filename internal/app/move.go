package app

import (
	"fmt"

	"github.com/spf13/cobra"
)

func newMoveCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "move <id> <shelf>",
		Short: "Move a book to another shelf",
		Long: `Move a book to another shelf: want, reading or read.

The move is applied locally first and then persisted. If the server
rejects the write, the whole collection is re-fetched so local state
matches the server again.`,
		Args: cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			to, err := statusFromArg(args[1])
			if err != nil {
				return err
			}

			if err := loadCollection(); err != nil {
				return err
			}

			id := args[0]
			book, found := ctrl.Store().Get(id)
			if !found {
				return fmt.Errorf("unknown book %q", id)
			}
			if book.Status == to {
				fmt.Printf("%q is already on %s\n", book.Title, to.Display())
				return nil
			}

			res := ctrl.Move(id, to)
			if res.Err != nil {
				if res.Reloaded {
					warn("move failed; collection re-synced from server")
				}
				return res.Err
			}

			ok("moved %q to %s", res.Book.Title, res.Book.Status.Display())
			return nil
		},
	}
}
