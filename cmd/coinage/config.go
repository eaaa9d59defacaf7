// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"go.yaml.in/yaml/v3"
)

var configCmd = &cobra.Command{
	Use:   "config",
	Short: "Print the effective runtime configuration as YAML",
	Long: `Config resolves the runtime configuration from the config file,
environment, and defaults, and prints it as YAML. Credentials are read
only by the search command and never appear here.`,
	RunE: runConfig,
}

func init() {
	rootCmd.AddCommand(configCmd)
}

func runConfig(cmd *cobra.Command, args []string) error {
	cfg := baseSearchConfig()

	// Durations render as strings ("30s"), not nanosecond counts.
	view := struct {
		Timeout          string   `yaml:"timeout"`
		UserAgent        string   `yaml:"user_agent"`
		MaxResults       int      `yaml:"max_results"`
		TweetFields      []string `yaml:"tweet_fields"`
		UserAuth         bool     `yaml:"user_auth"`
		WaitOnRateLimit  bool     `yaml:"wait_on_rate_limit"`
		RateLimitRetries int      `yaml:"rate_limit_retries"`
	}{
		Timeout:          cfg.Timeout.String(),
		UserAgent:        cfg.UserAgent,
		MaxResults:       cfg.MaxResults,
		TweetFields:      cfg.TweetFields,
		UserAuth:         cfg.UserAuth,
		WaitOnRateLimit:  cfg.WaitOnRateLimit,
		RateLimitRetries: cfg.RateLimitRetries,
	}

	out, err := yaml.Marshal(view)
	if err != nil {
		return fmt.Errorf("rendering config: %w", err)
	}
	_, err = os.Stdout.Write(out)
	return err
}
