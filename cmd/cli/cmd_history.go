package main

import (
	"fmt"
	"net/http"
	"strings"
	"time"

	"github.com/spf13/cobra"
)

const remoteTimeout = 10 * time.Second

func newHistoryCmd(opts *options) *cobra.Command {
	history := &cobra.Command{
		Use:   "history",
		Short: "Manage conversation history on a running server",
	}

	history.AddCommand(&cobra.Command{
		Use:   "clear",
		Short: "Forget the caller's conversation history",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			url := strings.TrimRight(opts.serverURL, "/") + "/api/v1/chatbot/history"
			req, err := http.NewRequestWithContext(cmd.Context(), http.MethodDelete, url, nil)
			if err != nil {
				return err
			}
			req.Header.Set("X-User-ID", opts.userID)

			resp, err := (&http.Client{Timeout: remoteTimeout}).Do(req)
			if err != nil {
				return fmt.Errorf("clear history: %w", err)
			}
			defer resp.Body.Close()
			if resp.StatusCode != http.StatusOK {
				return fmt.Errorf("clear history: server answered %s", resp.Status)
			}

			fmt.Fprintf(cmd.OutOrStdout(), "history cleared for %s\n", opts.userID)
			return nil
		},
	})
	return history
}
