package cmd

import (
	"context"
	"fmt"
	"strconv"

	"github.com/spf13/cobra"

	"housing-cli/browse"
)

func reviewCmd() *cobra.Command {
	var score int
	var comment string

	cmd := &cobra.Command{
		Use:   "review <room-id>",
		Short: "Submit a rating and comment for a room",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			roomID, err := strconv.Atoi(args[0])
			if err != nil {
				return fmt.Errorf("invalid room id %q", args[0])
			}

			user, err := requireSessionUser()
			if err != nil {
				return err
			}

			manager := browse.NewReviewManager(client, user)
			review, err := manager.Submit(context.Background(), roomID, score, comment)
			if err != nil {
				return err
			}

			if outputJSON {
				return writeJSON(review)
			}
			fmt.Printf("Review for room #%d submitted (%d/5).\n", roomID, score)
			return nil
		},
	}

	cmd.Flags().IntVar(&score, "score", 0, "Rating from 0 to 5")
	cmd.Flags().StringVar(&comment, "comment", "", "Feedback for the landlord")
	_ = cmd.MarkFlagRequired("score")
	return cmd
}
