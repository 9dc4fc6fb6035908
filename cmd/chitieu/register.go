package main

import (
	"errors"
	"fmt"
	"os"

	"github.com/chitieu-app/chitieu/internal/cli"
	"github.com/chitieu-app/chitieu/internal/common"
	"github.com/spf13/cobra"
)

func registerCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "register <username>",
		Short: "Create a new account",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			username := args[0]

			password, err := readPassword("Password: ")
			if err != nil {
				return err
			}
			repeat, err := readPassword("Repeat password: ")
			if err != nil {
				return err
			}
			if password != repeat {
				return common.NewUserError("passwords do not match", nil)
			}

			store, err := openStore(cmd)
			if err != nil {
				return err
			}

			if err := store.CreateUser(cmd.Context(), username, password); err != nil {
				// A taken username is a warning, not a failure.
				if errors.Is(err, common.ErrDuplicateEntry) {
					fmt.Fprintln(os.Stderr, cli.WarningStyle.Render(fmt.Sprintf("Account %q already exists.", username)))
					return nil
				}
				return err
			}

			fmt.Println(cli.SuccessStyle.Render(fmt.Sprintf("Account %q created. You can log in now.", username)))
			return nil
		},
	}
}
