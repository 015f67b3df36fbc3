package cmd

import (
	"context"

	"github.com/spf13/cobra"

	"housing-cli/browse"
)

func roomsCmd() *cobra.Command {
	var page int

	cmd := &cobra.Command{
		Use:   "rooms",
		Short: "Browse the room catalog",
		Long:  "Browse rooms page by page. Logged-in tenants get their personalized set, with the full catalog as fallback when it is empty.",
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := context.Background()
			browser := browse.NewBrowser(client, logger, sessionUser(), pageSize())
			if err := browser.Activate(ctx); err != nil {
				return err
			}
			browser.GoTo(page)

			if outputJSON {
				return writeJSON(browser.Visible())
			}
			printRoomList(browser.Visible(), browser.Window())
			return nil
		},
	}

	cmd.Flags().IntVar(&page, "page", 1, "Page to show")
	return cmd
}
