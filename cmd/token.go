package cmd

import (
	"fmt"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/spf13/cobra"
)

var tokenCmd = &cobra.Command{
	Use:   "token",
	Short: "Log in and print the bearer token for reuse with --jwt",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		client, err := newClient(cmd.Context())
		if err != nil {
			return err
		}

		out := cmd.OutOrStdout()
		fmt.Fprintln(out, client.Token())

		exp, err := tokenExpiry(client.Token())
		switch {
		case err != nil:
			fmt.Fprintln(cmd.ErrOrStderr(), faint("expiry unknown: "+err.Error()))
		case exp.IsZero():
			fmt.Fprintln(cmd.ErrOrStderr(), faint("token does not expire"))
		case time.Until(exp) <= 0:
			fmt.Fprintln(cmd.ErrOrStderr(), alert("token expired at "+exp.Local().Format(time.RFC1123)))
		default:
			fmt.Fprintln(cmd.ErrOrStderr(), faint(fmt.Sprintf("expires at %s (%s)", exp.Local().Format(time.RFC1123), remaining(time.Until(exp)))))
		}
		return nil
	},
}

func init() {
	rootCmd.AddCommand(tokenCmd)
}

// tokenExpiry reads the exp claim without verifying the signature, the
// signing key is only known to the server. A zero time means no exp claim.
func tokenExpiry(token string) (time.Time, error) {
	claims := jwt.MapClaims{}
	if _, _, err := jwt.NewParser().ParseUnverified(token, claims); err != nil {
		return time.Time{}, err
	}
	exp, err := claims.GetExpirationTime()
	if err != nil {
		return time.Time{}, err
	}
	if exp == nil {
		return time.Time{}, nil
	}
	return exp.Time, nil
}
