package main

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/aussiebroadwan/wowapi/pkg/slogx"
	"github.com/aussiebroadwan/wowapi/pkg/wowsdk"
)

const buildVersion = "v0.1.0"

var (
	flagRegion   string
	flagLocale   string
	flagLogLevel string
)

func newRootCmd() *cobra.Command {
	root := &cobra.Command{
		Use:           "wow",
		Short:         "Query the World of Warcraft community API",
		Long:          "wow is a thin command line front end over pkg/wowsdk,\nmainly useful for poking at the API while developing against it.",
		SilenceUsage:  true,
		SilenceErrors: false,
	}

	root.PersistentFlags().StringVar(&flagRegion, "region", "", "API region (us, eu, kr, tw)")
	root.PersistentFlags().StringVar(&flagLocale, "locale", "", "response locale, e.g. en_US")
	root.PersistentFlags().StringVar(&flagLogLevel, "log-level", "", "log level (debug, info, warn, error)")

	root.AddCommand(
		newRealmsCmd(),
		newAchievementCmd(),
		newItemCmd(),
		newCharacterCmd(),
		newGuildCmd(),
		newAuctionsCmd(),
		newLeaderboardCmd(),
	)

	return root
}

// newClient assembles a client and a logging context from config file,
// environment and flags (later wins).
func newClient(cmd *cobra.Command) (*wowsdk.Client, context.Context, error) {
	cfg, err := loadConfig()
	if err != nil {
		return nil, nil, err
	}

	if flagRegion != "" {
		cfg.Region = flagRegion
	}
	if flagLocale != "" {
		cfg.Locale = flagLocale
	}
	if flagLogLevel != "" {
		cfg.LogLevel = flagLogLevel
	}

	logger := slogx.New(slogx.Config{
		Service: "wow",
		Version: buildVersion,
		Level:   cfg.LogLevel,
		Format:  "text",
	})
	ctx := slogx.WithContext(cmd.Context(), logger)

	client, err := wowsdk.New(wowsdk.Config{
		ClientID:     cfg.ClientID,
		ClientSecret: cfg.ClientSecret,
		Region:       cfg.Region,
		Locale:       cfg.Locale,
	})
	if err != nil {
		return nil, nil, err
	}

	return client, ctx, nil
}

// printResult writes the raw JSON result indented to stdout. A nil
// result means the service answered but the entity does not exist.
func printResult(cmd *cobra.Command, raw json.RawMessage) error {
	if raw == nil {
		return fmt.Errorf("not found")
	}

	var buf bytes.Buffer
	if err := json.Indent(&buf, raw, "", "  "); err != nil {
		return err
	}
	fmt.Fprintln(cmd.OutOrStdout(), buf.String())
	return nil
}
