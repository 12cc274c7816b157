package cmd

import (
	"errors"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/allen-go/allen/allen"
	"github.com/allen-go/allen/cmd/prompt"
	"github.com/allen-go/allen/internal/config"
	"github.com/allen-go/allen/internal/loader"
)

var clearCredentials bool

var errLoginRejected = errors.New("form number or password rejected, nothing was saved")

var resetCmd = &cobra.Command{
	Use:   "reset",
	Short: "Save the form number and password used to log in",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		out := cmd.OutOrStdout()
		if clearCredentials {
			if err := config.RemoveCredentials(cfg.CredentialsFile); err != nil {
				return err
			}
			fmt.Fprintln(out, success("Removed "+cfg.CredentialsFile))
			return nil
		}

		stored, err := config.ReadCredentials(cfg.CredentialsFile)
		if err != nil {
			return err
		}
		if stored.Username != "" {
			ok, err := prompt.Confirm(fmt.Sprintf("Replace the saved login of %s", stored.Username))
			if err != nil || !ok {
				return err
			}
		}

		username, err := prompt.Username(stored.Username)
		if err != nil {
			return err
		}
		password, err := prompt.Password()
		if err != nil {
			return err
		}

		ctx := cmd.Context()
		err = loader.Run(l, "[ Logging in... ]", func() error {
			_, err := allen.New(ctx, allen.Credentials{Username: username, Password: password}, clientOptions()...)
			return err
		})
		if errors.Is(err, allen.ErrInvalidUsernamePassword) {
			return errLoginRejected
		}
		if err != nil {
			return err
		}

		if err := config.WriteCredentials(cfg.CredentialsFile, config.StoredCredentials{Username: username, Password: password}); err != nil {
			return err
		}
		fmt.Fprintln(out, success("Logged in, credentials saved to "+cfg.CredentialsFile))
		return nil
	},
}

func init() {
	resetCmd.Flags().BoolVar(&clearCredentials, "clear", false, "remove the saved credentials instead")
	rootCmd.AddCommand(resetCmd)
}
