package main

import (
	"encoding/json"
	"strings"
	"time"

	"github.com/spf13/cobra"

	"productivity-assistant/internal/chatbot/parser"
	"productivity-assistant/pkg/datemath"
)

func newParseCmd(opts *options) *cobra.Command {
	var timezone string

	cmd := &cobra.Command{
		Use:   "parse [message]",
		Short: "Show the rule-based reading of a message without executing it",
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			dates, err := datemath.NewParser(timezone)
			if err != nil {
				return err
			}

			msg := parser.New(dates).Parse(strings.Join(args, " "), dates.Today(time.Now()))

			enc := json.NewEncoder(cmd.OutOrStdout())
			enc.SetIndent("", "  ")
			return enc.Encode(msg)
		},
	}
	cmd.Flags().StringVar(&timezone, "tz", "Europe/Paris", "timezone used for relative dates")
	return cmd
}
