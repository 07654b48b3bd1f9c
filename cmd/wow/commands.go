package main

import (
	"fmt"
	"strconv"

	"github.com/spf13/cobra"
)

func newRealmsCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "realms",
		Short: "List realm status for the region",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			client, ctx, err := newClient(cmd)
			if err != nil {
				return err
			}
			raw, err := client.RealmStatus(ctx)
			if err != nil {
				return err
			}
			return printResult(cmd, raw)
		},
	}
}

func newAchievementCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "achievement <id>",
		Short: "Look up an achievement by id",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			id, err := strconv.Atoi(args[0])
			if err != nil {
				return fmt.Errorf("achievement id must be numeric: %w", err)
			}
			client, ctx, err := newClient(cmd)
			if err != nil {
				return err
			}
			raw, err := client.Achievement(ctx, id)
			if err != nil {
				return err
			}
			return printResult(cmd, raw)
		},
	}
}

func newItemCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "item <id>",
		Short: "Look up an item by id",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			id, err := strconv.Atoi(args[0])
			if err != nil {
				return fmt.Errorf("item id must be numeric: %w", err)
			}
			client, ctx, err := newClient(cmd)
			if err != nil {
				return err
			}
			raw, err := client.Item(ctx, id)
			if err != nil {
				return err
			}
			return printResult(cmd, raw)
		},
	}
}

func newCharacterCmd() *cobra.Command {
	var fields []string

	cmd := &cobra.Command{
		Use:   "character <realm> <name>",
		Short: "Look up a character profile",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			client, ctx, err := newClient(cmd)
			if err != nil {
				return err
			}
			raw, err := client.Character(ctx, args[0], args[1], fields...)
			if err != nil {
				return err
			}
			return printResult(cmd, raw)
		},
	}
	cmd.Flags().StringSliceVar(&fields, "fields", nil, "sub-resource views to include, e.g. items,mounts")

	return cmd
}

func newGuildCmd() *cobra.Command {
	var fields []string

	cmd := &cobra.Command{
		Use:   "guild <realm> <name>",
		Short: "Look up a guild profile",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			client, ctx, err := newClient(cmd)
			if err != nil {
				return err
			}
			raw, err := client.Guild(ctx, args[0], args[1], fields...)
			if err != nil {
				return err
			}
			return printResult(cmd, raw)
		},
	}
	cmd.Flags().StringSliceVar(&fields, "fields", nil, "sub-resource views to include, e.g. members,news")

	return cmd
}

func newAuctionsCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "auctions <realm>",
		Short: "Fetch the current auction dump for a realm",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			client, ctx, err := newClient(cmd)
			if err != nil {
				return err
			}
			raw, err := client.AuctionData(ctx, args[0])
			if err != nil {
				return err
			}
			return printResult(cmd, raw)
		},
	}
}

func newLeaderboardCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "leaderboard <bracket>",
		Short: "Fetch the rated pvp leaderboard (2v2, 3v3, 5v5, rbg)",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			client, ctx, err := newClient(cmd)
			if err != nil {
				return err
			}
			raw, err := client.PvPLeaderboard(ctx, args[0])
			if err != nil {
				return err
			}
			return printResult(cmd, raw)
		},
	}
}
