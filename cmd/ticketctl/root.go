package main

import (
	"encoding/json"
	"fmt"
	"net/http"
	"strconv"
	"time"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/spec-kit/ticket-dashboard/internal/apiclient"
	"github.com/spec-kit/ticket-dashboard/internal/config"
	"github.com/spec-kit/ticket-dashboard/internal/observability"
)

type rootOptions struct {
	apiURL  string
	strict  bool
	timeout time.Duration
	verbose bool
}

func newRootCmd() *cobra.Command {
	opts := &rootOptions{}
	cmd := &cobra.Command{
		Use:           "ticketctl",
		Short:         "Command line access to the ticket API",
		SilenceUsage:  true,
		SilenceErrors: true,
	}
	flags := cmd.PersistentFlags()
	flags.StringVar(&opts.apiURL, "api-url", "", "ticket API base URL (defaults to TICKET_API_BASE_URL)")
	flags.BoolVar(&opts.strict, "strict", false, "check the response status of create and update calls")
	flags.DurationVar(&opts.timeout, "timeout", 30*time.Second, "per request timeout")
	flags.BoolVarP(&opts.verbose, "verbose", "v", false, "log every API call")

	cmd.AddCommand(
		newTicketsCmd(opts),
		newCommentsCmd(opts),
		newAttachmentsCmd(opts),
		newStatsCmd(opts),
		newUsersCmd(opts),
	)
	return cmd
}

func (o *rootOptions) client() (*apiclient.Client, error) {
	cfg, err := config.Load()
	if err != nil {
		return nil, err
	}
	baseURL := cfg.API.BaseURL
	if o.apiURL != "" {
		baseURL = o.apiURL
	}

	logger := zap.NewNop()
	if o.verbose {
		logger, err = observability.NewLogger(config.LoggerConfig{Level: "debug", Format: "console"}, "ticketctl")
		if err != nil {
			return nil, err
		}
	}

	opts := []apiclient.Option{
		apiclient.WithLogger(logger),
		apiclient.WithHTTPClient(&http.Client{Timeout: o.timeout}),
	}
	if o.strict || cfg.API.StrictStatus {
		opts = append(opts, apiclient.WithStrictStatus())
	}
	return apiclient.New(baseURL, opts...), nil
}

func printJSON(cmd *cobra.Command, v any) error {
	enc := json.NewEncoder(cmd.OutOrStdout())
	enc.SetIndent("", "  ")
	return enc.Encode(v)
}

func parseID(raw, what string) (int64, error) {
	id, err := strconv.ParseInt(raw, 10, 64)
	if err != nil || id <= 0 {
		return 0, fmt.Errorf("invalid %s %q", what, raw)
	}
	return id, nil
}
