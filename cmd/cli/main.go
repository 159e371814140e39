package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

// options are the flags shared by every command.
type options struct {
	userID    string
	orgID     string
	dbPath    string
	noLLM     bool
	serverURL string
}

func newRootCmd() *cobra.Command {
	opts := &options{}

	root := &cobra.Command{
		Use:   "assistant",
		Short: "Productivity assistant diagnostic CLI",
		Long: `Talk to the productivity assistant from a terminal.

Examples:
  assistant parse "Rdv demain a 14h"
  assistant send --org acme "Creer une tache: preparer la demo"
  assistant history clear --server http://localhost:8080`,
		SilenceUsage: true,
	}

	root.PersistentFlags().StringVar(&opts.userID, "user", "cli", "caller user id")
	root.PersistentFlags().StringVar(&opts.orgID, "org", "", "organization id (empty for personal scope)")
	root.PersistentFlags().StringVar(&opts.dbPath, "db", "", "override storage.sqlite_path")
	root.PersistentFlags().BoolVar(&opts.noLLM, "no-llm", false, "use rule-based parsing only")
	root.PersistentFlags().StringVar(&opts.serverURL, "server", "http://localhost:8080", "API server for remote commands")

	root.AddCommand(
		newParseCmd(opts),
		newSendCmd(opts),
		newHistoryCmd(opts),
		newCalendarCmd(),
	)
	return root
}

func main() {
	if err := newRootCmd().Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
