package main

import (
	"encoding/json"
	"fmt"
	"io"
	"strconv"
	"time"

	"github.com/spf13/cobra"

	"postboard/internal/client"
	"postboard/internal/config"
)

type rootOptions struct {
	baseURL string
	timeout time.Duration
}

func newRootCmd() *cobra.Command {
	cfg := config.Load()
	opts := &rootOptions{}

	rootCmd := &cobra.Command{
		Use:   "postsctl",
		Short: "Inspect and edit posts on a posts API",
		Long: `postsctl calls a jsonplaceholder-style posts API directly.

Every command performs a single request and prints the decoded
response as JSON.`,
		SilenceUsage:  true,
		SilenceErrors: true,
	}

	rootCmd.PersistentFlags().StringVar(&opts.baseURL, "base-url", cfg.Upstream.BaseURL, "Base URL of the posts API (env API_BASE_URL)")
	rootCmd.PersistentFlags().DurationVar(&opts.timeout, "timeout", cfg.Upstream.Timeout(), "Per-request timeout")

	rootCmd.AddCommand(
		listCmd(opts),
		getCmd(opts),
		commentsCmd(opts),
		createCmd(opts),
		updateCmd(opts),
		deleteCmd(opts),
		versionCmd(),
	)
	return rootCmd
}

func (o *rootOptions) client() (*client.Client, error) {
	return client.New(o.baseURL, client.WithTimeout(o.timeout))
}

func parseID(arg string) (int, error) {
	id, err := strconv.Atoi(arg)
	if err != nil || id <= 0 {
		return 0, fmt.Errorf("invalid post id %q", arg)
	}
	return id, nil
}

func printJSON(w io.Writer, v any) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(v)
}
