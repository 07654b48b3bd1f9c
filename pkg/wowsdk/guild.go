package wowsdk

import (
	"context"
	"encoding/json"
	"net/url"
)

// GuildFields lists the sub-resource views a guild profile can include.
var GuildFields = []string{
	"achievements",
	"challenge",
	"members",
	"news",
}

// Guild returns a guild profile with the requested field views included.
func (c *Client) Guild(ctx context.Context, realm, name string, fields ...string) (json.RawMessage, error) {
	if err := validateGuild(realm, name); err != nil {
		return nil, err
	}
	return c.get(ctx, guildPath(realm, name), fields)
}

// GuildAchievements returns the achievements view of a guild.
func (c *Client) GuildAchievements(ctx context.Context, realm, name string) (json.RawMessage, error) {
	return c.guildField(ctx, realm, name, "achievements")
}

// GuildChallenge returns the challenge mode view of a guild.
func (c *Client) GuildChallenge(ctx context.Context, realm, name string) (json.RawMessage, error) {
	return c.guildField(ctx, realm, name, "challenge")
}

// GuildMembers returns the member roster of a guild.
func (c *Client) GuildMembers(ctx context.Context, realm, name string) (json.RawMessage, error) {
	return c.guildField(ctx, realm, name, "members")
}

// GuildNews returns the news feed of a guild.
func (c *Client) GuildNews(ctx context.Context, realm, name string) (json.RawMessage, error) {
	return c.guildField(ctx, realm, name, "news")
}

// GuildRewards returns the catalog of guild rewards.
func (c *Client) GuildRewards(ctx context.Context) (json.RawMessage, error) {
	return c.get(ctx, "data/guild/rewards", nil)
}

// GuildPerks returns the catalog of guild perks.
func (c *Client) GuildPerks(ctx context.Context) (json.RawMessage, error) {
	return c.get(ctx, "data/guild/perks", nil)
}

// guildField fetches one named view of a guild profile and unwraps it
// from the profile body.
func (c *Client) guildField(ctx context.Context, realm, name, field string) (json.RawMessage, error) {
	if err := validateGuild(realm, name); err != nil {
		return nil, err
	}
	return c.getField(ctx, guildPath(realm, name), field)
}

func validateGuild(realm, name string) error {
	if err := requireString("realm", "realm slug", realm); err != nil {
		return err
	}
	return requireString("name", "guild name", name)
}

func guildPath(realm, name string) string {
	return "guild/" + url.PathEscape(realm) + "/" + url.PathEscape(name)
}
