package app

import (
	"bufio"
	"fmt"
	"os"
	"strings"

	"github.com/spf13/cobra"
)

func newDeleteCmd() *cobra.Command {
	var yes bool

	cmd := &cobra.Command{
		Use:   "delete <id>",
		Short: "Delete a book from the collection",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := loadCollection(); err != nil {
				return err
			}

			id := args[0]
			book, found := ctrl.Store().Get(id)
			if !found {
				return fmt.Errorf("unknown book %q", id)
			}

			if !yes {
				fmt.Printf("Delete %q by %s? (y/N): ", book.Title, book.Author)
				line, _ := bufio.NewReader(os.Stdin).ReadString('\n')
				answer := strings.ToLower(strings.TrimSpace(line))
				if answer != "y" && answer != "yes" {
					fmt.Println("aborted")
					return nil
				}
			}

			if err := ctrl.Delete(id); err != nil {
				return fmt.Errorf("deleting book: %w", err)
			}

			ok("deleted %q", book.Title)
			return nil
		},
	}

	cmd.Flags().BoolVar(&yes, "yes", false, "Skip the confirmation prompt")
	return cmd
}
