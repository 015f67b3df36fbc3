package cmd

import (
	"context"
	"fmt"
	"strconv"

	"github.com/spf13/cobra"

	"housing-cli/browse"
	"housing-cli/storage"
)

func roomCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "room <id>",
		Short: "Show a room's details",
		Long:  "Show one room's full details. For logged-in viewers the visit is recorded once and feeds future recommendations.",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			roomID, err := strconv.Atoi(args[0])
			if err != nil {
				return fmt.Errorf("invalid room id %q", args[0])
			}

			ctx := context.Background()
			room, err := client.GetRoom(ctx, roomID)
			if err != nil {
				return err
			}

			// The landlord lookup is a separate load stage; its failure
			// must not take the room details down with it.
			landlord, landlordErr := client.GetUser(ctx, room.LandlordID)
			if landlordErr != nil {
				logger.Warn("fetching landlord failed", "user", room.LandlordID, "err", landlordErr)
			}

			if user := sessionUser(); user != nil {
				recorder := browse.NewVisitRecorder(client, openVisitSink(), logger)
				recorder.Activate()
				recorder.RecordOnce(ctx, user.ID, room.ID)
				recorder.Deactivate()
			}

			if outputJSON {
				return writeJSON(room)
			}

			fmt.Printf("Room #%d — %s\n", room.ID, room.RoomType)
			fmt.Printf("  Cost per night (%d people): %.2f eur\n", room.NumOfPeople, room.Cost)
			fmt.Printf("  Additional cost per person (max %d people): %.2f eur\n", room.MaxNumOfPeople, room.AdditionalCostPerPerson)
			fmt.Printf("  Beds: %d  Bathrooms: %d  Bedrooms: %d  Area: %d m2\n",
				room.NumOfBeds, room.NumOfBathrooms, room.NumOfBedrooms, room.RoomArea)
			fmt.Printf("  Rating: %s\n", formatRating(room))
			if room.OpenStreetMapLabel != "" {
				fmt.Printf("  Location: %s (%.5f, %.5f)\n", room.OpenStreetMapLabel, room.OpenStreetMapY, room.OpenStreetMapX)
			}
			if room.Description != "" {
				fmt.Printf("  Description: %s\n", room.Description)
			}
			if room.Rules != "" {
				fmt.Printf("  Rules: %s\n", room.Rules)
			}
			if landlordErr == nil {
				fmt.Printf("  Owned by %s %s (tel. %s)\n", landlord.Name, landlord.Lastname, landlord.Telephone)
			}
			return nil
		},
	}

	return cmd
}

// openVisitSink best-effort opens the local visits log. A nil sink just
// means visits are not mirrored locally.
func openVisitSink() browse.VisitSink {
	store, err := storage.OpenBookingStore()
	if err != nil {
		return nil
	}
	return store
}
