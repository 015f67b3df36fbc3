package cmd

import (
	"fmt"
	"os"
	"text/tabwriter"

	"github.com/spf13/cobra"

	"housing-cli/storage"
)

func visitsCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "visits",
		Short: "Show the room visits recorded for you",
		Long:  "Show the locally logged detail-page visits, i.e. what has been fed to the recommender from this machine.",
		RunE: func(cmd *cobra.Command, args []string) error {
			user, err := requireSessionUser()
			if err != nil {
				return err
			}

			store, err := storage.OpenBookingStore()
			if err != nil {
				return err
			}
			defer store.Close()

			visits, err := store.ListVisits(user.ID)
			if err != nil {
				return err
			}
			if outputJSON {
				return writeJSON(visits)
			}
			if len(visits) == 0 {
				fmt.Println("No visits recorded.")
				return nil
			}

			writer := tabwriter.NewWriter(os.Stdout, 0, 4, 2, ' ', 0)
			fmt.Fprintln(writer, "ROOM\tVISITED AT")
			for _, visit := range visits {
				fmt.Fprintf(writer, "%d\t%s\n", visit.RoomID, visit.VisitedAt)
			}
			writer.Flush()
			return nil
		},
	}

	return cmd
}
