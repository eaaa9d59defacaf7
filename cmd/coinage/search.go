package main

import (
	"context"
	"fmt"
	"net/http"
	"os"
	"time"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/sociolex/coinage/internal/query"
	"github.com/sociolex/coinage/internal/report"
	"github.com/sociolex/coinage/internal/secrets"
	"github.com/sociolex/coinage/internal/twitter"
	"github.com/sociolex/coinage/pkg/types"
)

const (
	defaultTimeout   = 30 * time.Second
	defaultUserAgent = "coinage/0.1"
)

var searchCmd = &cobra.Command{
	Use:   "search",
	Short: "Search recent posts for coinages and print the report",
	Long: `Search runs the coinage query against the recent-search endpoint,
resolves each matching post's author, and prints one attestation per post:
the author handle, timestamp, text, and permalink.

All five credential variables must be set before any network call is made.`,
	RunE: runSearch,
}

func init() {
	searchCmd.Flags().Int("max-results", 0, "results per search call, 10-100 (default: API default of 10)")
	searchCmd.Flags().Duration("timeout", 0, "HTTP request timeout (default 30s)")
	searchCmd.Flags().Bool("user-auth", false, "authenticate with OAuth1 user context instead of the bearer token")
	searchCmd.Flags().Bool("wait-on-rate-limit", false, "wait out HTTP 429 responses instead of failing")

	rootCmd.AddCommand(searchCmd)
}

func runSearch(cmd *cobra.Command, args []string) error {
	creds, err := secrets.Load()
	if err != nil {
		return err
	}
	fmt.Fprintf(os.Stderr, "Loaded credentials: %v\n", secrets.Required)

	cfg := searchConfig(cmd)
	q := query.Default()
	ctx := context.Background()

	var httpClient *http.Client
	if cfg.UserAuth {
		httpClient = twitter.NewUserAuthClient(ctx, creds.ConsumerKey, creds.ConsumerSecret,
			creds.AccessToken, creds.AccessTokenSecret, cfg)
	} else {
		httpClient = twitter.NewBearerClient(ctx, creds.BearerToken, cfg)
	}
	client := twitter.NewClient(httpClient)

	fmt.Fprintf(os.Stderr, "searching %s\n", q)

	var session report.Session
	if err := session.Run(ctx, client.Tweets, client.Users, q, cfg); err != nil {
		return err
	}
	session.Render(os.Stdout)
	return nil
}

// searchConfig overlays search flags onto the resolved base configuration.
func searchConfig(cmd *cobra.Command) types.SearchConfig {
	cfg := baseSearchConfig()

	if v, _ := cmd.Flags().GetInt("max-results"); v > 0 {
		cfg.MaxResults = v
	}
	if v, _ := cmd.Flags().GetDuration("timeout"); v > 0 {
		cfg.Timeout = v
	}
	if v, _ := cmd.Flags().GetBool("user-auth"); v {
		cfg.UserAuth = true
	}
	if v, _ := cmd.Flags().GetBool("wait-on-rate-limit"); v {
		cfg.WaitOnRateLimit = true
	}

	return cfg
}

// baseSearchConfig resolves configuration from the config file and
// environment (via viper), then fills remaining defaults. Credentials
// never come from this path.
func baseSearchConfig() types.SearchConfig {
	cfg := types.SearchConfig{
		HTTPConfig: types.HTTPConfig{
			Timeout:   viper.GetDuration("timeout"),
			UserAgent: viper.GetString("user_agent"),
		},
		MaxResults:       viper.GetInt("max_results"),
		TweetFields:      viper.GetStringSlice("tweet_fields"),
		UserAuth:         viper.GetBool("user_auth"),
		WaitOnRateLimit:  viper.GetBool("wait_on_rate_limit"),
		RateLimitRetries: viper.GetInt("rate_limit_retries"),
	}

	if cfg.Timeout == 0 {
		cfg.Timeout = defaultTimeout
	}
	if cfg.UserAgent == "" {
		cfg.UserAgent = defaultUserAgent
	}
	if len(cfg.TweetFields) == 0 {
		cfg.TweetFields = twitter.DefaultTweetFields
	}

	return cfg
}
