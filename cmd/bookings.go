package cmd

import (
	"context"
	"fmt"
	"os"
	"strconv"
	"text/tabwriter"

	"github.com/spf13/cobra"

	"housing-cli/api"
	"housing-cli/browse"
	"housing-cli/storage"
)

func bookingsCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "bookings",
		Short: "Manage your bookings",
	}

	cmd.AddCommand(bookingsListCmd())
	cmd.AddCommand(bookingsCancelCmd())
	cmd.AddCommand(bookingsRoomCmd())
	return cmd
}

func bookingsListCmd() *cobra.Command {
	var cached bool

	cmd := &cobra.Command{
		Use:   "list",
		Short: "List your bookings",
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

			var bookings []api.Booking
			if cached {
				bookings, err = store.ListBookings(user.ID)
				if err != nil {
					return err
				}
			} else {
				manager := browse.NewBookingManager(client, store, logger, user)
				if err := manager.Refresh(context.Background()); err != nil {
					return err
				}
				bookings = manager.Bookings()
			}

			if outputJSON {
				return writeJSON(bookings)
			}
			printBookings(bookings)
			return nil
		},
	}

	cmd.Flags().BoolVar(&cached, "cached", false, "List the local cache without contacting the server")
	return cmd
}

func bookingsCancelCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "cancel <booking-id>",
		Short: "Cancel a booking",
		Long:  "Cancel a booking. The booking leaves the local list immediately; the remote deletion follows and its failure is not reconciled.",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			bookingID, err := strconv.Atoi(args[0])
			if err != nil {
				return fmt.Errorf("invalid booking id %q", args[0])
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

			manager := browse.NewBookingManager(client, store, logger, user)
			message := manager.Cancel(context.Background(), bookingID)
			if message != "" {
				fmt.Println(message)
			} else {
				fmt.Printf("Booking #%d removed locally.\n", bookingID)
			}
			return nil
		},
	}

	return cmd
}

func bookingsRoomCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "room <room-id>",
		Short: "List bookings of one of your rooms",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			roomID, err := strconv.Atoi(args[0])
			if err != nil {
				return fmt.Errorf("invalid room id %q", args[0])
			}
			if _, err := requireSessionUser(); err != nil {
				return err
			}

			bookings, err := client.GetRoomBookings(context.Background(), roomID)
			if err != nil {
				return err
			}
			if outputJSON {
				return writeJSON(bookings)
			}
			printBookings(bookings)
			return nil
		},
	}

	return cmd
}

func printBookings(bookings []api.Booking) {
	if len(bookings) == 0 {
		fmt.Println("No bookings.")
		return
	}
	writer := tabwriter.NewWriter(os.Stdout, 0, 4, 2, ' ', 0)
	fmt.Fprintln(writer, "ID\tROOM\tCHECK-IN\tCHECK-OUT")
	for _, booking := range bookings {
		fmt.Fprintf(writer, "%d\t%d\t%s\t%s\n", booking.ID, booking.RoomID, booking.InDate, booking.OutDate)
	}
	writer.Flush()
}
