package cmd

import (
	"bufio"
	"context"
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/spf13/cobra"
	"golang.org/x/term"

	"housing-cli/storage"
)

func authCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "auth",
		Short: "Manage the local session",
	}

	cmd.AddCommand(authLoginCmd())
	cmd.AddCommand(authStatusCmd())
	cmd.AddCommand(authLogoutCmd())
	return cmd
}

func authLoginCmd() *cobra.Command {
	var username string

	cmd := &cobra.Command{
		Use:   "login",
		Short: "Login to Housing Easy",
		RunE: func(cmd *cobra.Command, args []string) error {
			if username == "" {
				fmt.Print("Username: ")
				reader := bufio.NewReader(os.Stdin)
				value, err := reader.ReadString('\n')
				if err != nil {
					return err
				}
				username = strings.TrimSpace(value)
			}
			if username == "" {
				return fmt.Errorf("username is required")
			}

			// The password only gates local session creation; the profile
			// lookup below is the backend's session contract.
			fmt.Print("Password: ")
			secret, err := term.ReadPassword(int(os.Stdin.Fd()))
			fmt.Println()
			if err != nil {
				return err
			}
			if len(strings.TrimSpace(string(secret))) == 0 {
				return fmt.Errorf("password is required")
			}

			user, err := client.GetUserByUsername(context.Background(), username)
			if err != nil {
				return err
			}

			if err := storage.SaveSession(storage.NewSession(user, time.Now())); err != nil {
				return err
			}
			fmt.Printf("Logged in as %s (%s).\n", user.Username, userStatus(user))
			return nil
		},
	}

	cmd.Flags().StringVar(&username, "username", "", "Username")
	return cmd
}

func authStatusCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "status",
		Short: "Check session status",
		RunE: func(cmd *cobra.Command, args []string) error {
			session, err := storage.LoadSession()
			if err != nil {
				return err
			}
			if session == nil {
				fmt.Println("Not logged in.")
				return nil
			}
			fmt.Printf("Logged in as %s (%s) since %s.\n",
				session.Username, userStatus(session.User), session.CreatedAt)
			return nil
		},
	}

	return cmd
}

func authLogoutCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "logout",
		Short: "Logout and clear the session",
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := storage.ClearSession(); err != nil {
				return err
			}
			fmt.Println("Logged out.")
			return nil
		},
	}

	return cmd
}
