package main

import (
	"errors"
	"fmt"

	"github.com/chitieu-app/chitieu/internal/cli"
	"github.com/chitieu-app/chitieu/internal/common"
	"github.com/spf13/cobra"
)

func loginCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "login <username>",
		Short: "Verify account credentials",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			username := args[0]

			password, err := readPassword("Password: ")
			if err != nil {
				return err
			}

			store, err := openStore(cmd)
			if err != nil {
				return err
			}

			if err := store.Authenticate(cmd.Context(), username, password); err != nil {
				if errors.Is(err, common.ErrInvalidCredentials) {
					return common.NewUserError("login failed: check your username and password", nil)
				}
				return err
			}

			fmt.Println(cli.SuccessStyle.Render(fmt.Sprintf("Welcome back, %s!", username)))
			return nil
		},
	}
}
