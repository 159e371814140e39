package main

import (
	"bufio"
	"fmt"
	"os"
	"strings"

	"github.com/spf13/cobra"

	"productivity-assistant/pkg/gcalendar"
)

func newCalendarCmd() *cobra.Command {
	calendar := &cobra.Command{
		Use:   "calendar",
		Short: "Google Calendar helpers",
	}

	var credentialsPath, tokenPath string
	auth := &cobra.Command{
		Use:   "auth",
		Short: "Authorize calendar access once and store the OAuth token",
		Long: `Prints a consent URL; after signing in, paste the authorization code.
The token is written to --token and picked up by the server through
google_calendar.token_path.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			data, err := os.ReadFile(credentialsPath)
			if err != nil {
				return fmt.Errorf("read credentials %q: %w", credentialsPath, err)
			}
			conf, err := gcalendar.OAuthConfig(data)
			if err != nil {
				return err
			}

			out := cmd.OutOrStdout()
			fmt.Fprintln(out, "1. Ouvrez cette URL et connectez-vous :")
			fmt.Fprintln(out, gcalendar.AuthURL(conf))
			fmt.Fprint(out, "2. Collez le code d'autorisation : ")

			code, err := bufio.NewReader(cmd.InOrStdin()).ReadString('\n')
			if err != nil && strings.TrimSpace(code) == "" {
				return fmt.Errorf("read authorization code: %w", err)
			}

			tok, err := conf.Exchange(cmd.Context(), strings.TrimSpace(code))
			if err != nil {
				return fmt.Errorf("exchange authorization code: %w", err)
			}
			if err := gcalendar.SaveToken(tokenPath, tok); err != nil {
				return err
			}

			fmt.Fprintf(out, "\nToken enregistré dans %s\n", tokenPath)
			return nil
		},
	}
	auth.Flags().StringVar(&credentialsPath, "credentials", "google-credentials.json", "OAuth desktop credentials file")
	auth.Flags().StringVar(&tokenPath, "token", "token.json", "where to write the token")

	calendar.AddCommand(auth)
	return calendar
}
