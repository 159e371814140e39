package main

import (
	"context"
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"productivity-assistant/config"
	"productivity-assistant/internal/app"
	"productivity-assistant/internal/chatbot"
	"productivity-assistant/internal/model"
	"productivity-assistant/pkg/log"
)

func newSendCmd(opts *options) *cobra.Command {
	return &cobra.Command{
		Use:   "send [message]",
		Short: "Run a message through the full pipeline against local storage",
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()

			a, err := openApp(ctx, opts)
			if err != nil {
				return err
			}
			defer a.Close()

			sc := model.Scope{UserID: opts.userID, OrganizationID: opts.orgID}
			resp, err := a.Chatbot.ProcessMessage(ctx, sc, chatbot.ProcessMessageInput{Message: strings.Join(args, " ")})
			if err != nil {
				return err
			}

			printResponse(cmd, resp)
			return nil
		},
	}
}

func openApp(ctx context.Context, opts *options) (*app.App, error) {
	cfg, err := config.Load()
	if err != nil {
		return nil, err
	}
	if opts.dbPath != "" {
		cfg.Storage.SQLitePath = opts.dbPath
	}
	if opts.noLLM {
		cfg.Ollama.Enabled = false
	}

	logger := log.Init(log.ZapConfig{Level: "error", Mode: "production", Encoding: "console"})
	return app.New(ctx, logger, cfg)
}

func printResponse(cmd *cobra.Command, resp chatbot.Response) {
	out := cmd.OutOrStdout()
	strategy := "règles"
	if resp.UsedOllama {
		strategy = "ollama/" + resp.OllamaModel
	}
	fmt.Fprintf(out, "[%s via %s]\n", resp.Intent, strategy)

	if resp.ErrorMessage != "" {
		fmt.Fprintln(out, resp.ErrorMessage)
		return
	}
	fmt.Fprintln(out, resp.ConfirmationText)
	for _, action := range resp.QuickActions {
		fmt.Fprintln(out, "  - "+action)
	}
	if resp.CreatedResourceID != "" {
		fmt.Fprintln(out, "id: "+resp.CreatedResourceID)
	}
}
