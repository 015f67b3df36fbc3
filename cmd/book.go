package cmd

import (
	"context"
	"fmt"
	"strconv"

	"github.com/spf13/cobra"

	"housing-cli/browse"
	"housing-cli/storage"
)

func bookCmd() *cobra.Command {
	var checkIn string
	var checkOut string

	cmd := &cobra.Command{
		Use:   "book <room-id>",
		Short: "Book a room",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			roomID, err := strconv.Atoi(args[0])
			if err != nil {
				return fmt.Errorf("invalid room id %q", args[0])
			}
			inDate, err := parseDateInput(checkIn)
			if err != nil {
				return err
			}
			outDate, err := parseDateInput(checkOut)
			if err != nil {
				return err
			}

			user, err := requireSessionUser()
			if err != nil {
				return err
			}

			store, err := storage.OpenBookingStore()
			if err != nil {
				return err
			}
			defer store.Close()

			ctx := context.Background()
			manager := browse.NewBookingManager(client, store, logger, user)
			booking, err := manager.Create(ctx, roomID, inDate, outDate)
			if err != nil {
				return err
			}

			if outputJSON {
				return writeJSON(booking)
			}
			fmt.Printf("Booked room #%d from %s to %s (booking #%d).\n",
				booking.RoomID, booking.InDate, booking.OutDate, booking.ID)
			return nil
		},
	}

	cmd.Flags().StringVar(&checkIn, "in", "", "Check-in date (YYYY-MM-DD)")
	cmd.Flags().StringVar(&checkOut, "out", "", "Check-out date (YYYY-MM-DD)")
	_ = cmd.MarkFlagRequired("in")
	_ = cmd.MarkFlagRequired("out")
	return cmd
}
