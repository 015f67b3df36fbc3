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
)

func usersCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "users",
		Short: "Administer registered users",
	}

	cmd.AddCommand(usersListCmd())
	cmd.AddCommand(usersShowCmd())
	cmd.AddCommand(usersVerifyCmd())
	return cmd
}

func requireAdmin() (*api.User, error) {
	user, err := requireSessionUser()
	if err != nil {
		return nil, err
	}
	if !user.IsAdmin {
		return nil, fmt.Errorf("only administrators can manage users")
	}
	return user, nil
}

func usersListCmd() *cobra.Command {
	var page int

	cmd := &cobra.Command{
		Use:   "list",
		Short: "List registered users",
		RunE: func(cmd *cobra.Command, args []string) error {
			if _, err := requireAdmin(); err != nil {
				return err
			}

			users, err := client.GetAllUsers(context.Background())
			if err != nil {
				return err
			}

			perPage := pageSize()
			window := browse.Paginate(len(users), perPage).GoTo(page)
			lo, hi := window.Bounds(len(users), perPage)
			visible := users[lo:hi]

			if outputJSON {
				return writeJSON(visible)
			}

			fmt.Printf("Page %d of %d\n", window.Current, window.Last)
			writer := tabwriter.NewWriter(os.Stdout, 0, 4, 2, ' ', 0)
			fmt.Fprintln(writer, "ID\tUSERNAME\tNAME\tSTATUS")
			for _, user := range visible {
				fmt.Fprintf(writer, "%d\t%s\t%s %s\t%s\n",
					user.ID, user.Username, user.Name, user.Lastname, userStatus(user))
			}
			writer.Flush()
			return nil
		},
	}

	cmd.Flags().IntVar(&page, "page", 1, "Page to show")
	return cmd
}

func usersShowCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "show <username>",
		Short: "Show a user's profile",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if _, err := requireAdmin(); err != nil {
				return err
			}

			user, err := client.GetUserByUsername(context.Background(), args[0])
			if err != nil {
				return err
			}
			if outputJSON {
				return writeJSON(user)
			}

			fmt.Printf("Profile of %s\n", user.Username)
			fmt.Printf("  Name: %s %s\n", user.Name, user.Lastname)
			fmt.Printf("  Email: %s\n", user.Email)
			fmt.Printf("  Telephone: %s\n", user.Telephone)
			fmt.Printf("  User since: %s\n", user.CreatedAt)
			fmt.Printf("  Status: %s\n", userStatus(user))
			return nil
		},
	}

	return cmd
}

func usersVerifyCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "verify <user-id>",
		Short: "Toggle a landlord's verification",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			userID, err := strconv.Atoi(args[0])
			if err != nil {
				return fmt.Errorf("invalid user id %q", args[0])
			}
			if _, err := requireAdmin(); err != nil {
				return err
			}

			ctx := context.Background()
			users, err := client.GetAllUsers(ctx)
			if err != nil {
				return err
			}

			toggle := browse.VerificationToggle{Service: client}
			updated, err := toggle.Toggle(ctx, users, userID)
			if err != nil {
				return err
			}

			for _, user := range updated {
				if user.ID == userID {
					fmt.Printf("%s is now %s.\n", user.Username, userStatus(user))
					break
				}
			}
			return nil
		},
	}

	return cmd
}

func userStatus(user api.User) string {
	switch {
	case user.IsAdmin:
		return "Administrator"
	case user.IsLandlord && user.IsTenant && user.Active:
		return "Tenant & Verified Landlord"
	case user.IsLandlord && user.IsTenant:
		return "Tenant & Landlord"
	case user.IsLandlord && user.Active:
		return "Verified Landlord"
	case user.IsLandlord:
		return "Landlord"
	default:
		return "Tenant"
	}
}
