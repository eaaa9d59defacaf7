// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package secrets loads the Twitter API credentials from the process
// environment. The expected provisioning step is a .secrets env file
// sourced into the shell before running the tool.
package secrets

import (
	"fmt"
	"strings"

	"github.com/spf13/viper"
)

// Required lists the environment variables Load reads, in the order
// they are reported when absent. All five are required even though a
// bearer-only run signs nothing with the OAuth1 tokens.
var Required = []string{
	"BEARER_TOKEN",
	"CONSUMER_SECRET",
	"CONSUMER_KEY",
	"ACCESS_TOKEN",
	"ACCESS_TOKEN_SECRET",
}

// Credentials holds the five tokens the Twitter API accepts.
type Credentials struct {
	BearerToken       string
	ConsumerKey       string
	ConsumerSecret    string
	AccessToken       string
	AccessTokenSecret string
}

// Load reads all five credentials through viper's environment binding
// and returns them unmodified. A missing or empty variable is a fatal
// configuration error; the message names every absent variable and the
// provisioning step. Load touches nothing but the environment.
func Load() (Credentials, error) {
	// Bind on a fresh viper instance: keys in a config file loaded
	// into the global one must never satisfy a credential.
	env := viper.New()
	values := make(map[string]string, len(Required))
	var missing []string
	for _, name := range Required {
		key := strings.ToLower(name)
		_ = env.BindEnv(key, name)
		v := env.GetString(key)
		if v == "" {
			missing = append(missing, name)
			continue
		}
		values[name] = v
	}
	if len(missing) > 0 {
		return Credentials{}, fmt.Errorf("missing credentials %s: have you run `source .secrets`?", strings.Join(missing, ", "))
	}

	return Credentials{
		BearerToken:       values["BEARER_TOKEN"],
		ConsumerKey:       values["CONSUMER_KEY"],
		ConsumerSecret:    values["CONSUMER_SECRET"],
		AccessToken:       values["ACCESS_TOKEN"],
		AccessTokenSecret: values["ACCESS_TOKEN_SECRET"],
	}, nil
}
