package wowsdk

import (
	"context"
	"encoding/json"
	"net/url"
)

// Battlegroups returns the catalog of battlegroups for the region.
func (c *Client) Battlegroups(ctx context.Context) (json.RawMessage, error) {
	return c.get(ctx, "data/battlegroups/", nil)
}

// Races returns the catalog of playable character races.
func (c *Client) Races(ctx context.Context) (json.RawMessage, error) {
	return c.get(ctx, "data/character/races", nil)
}

// Classes returns the catalog of playable character classes.
func (c *Client) Classes(ctx context.Context) (json.RawMessage, error) {
	return c.get(ctx, "data/character/classes", nil)
}

// TalentCatalog returns talents, specs and glyphs for all classes.
func (c *Client) TalentCatalog(ctx context.Context) (json.RawMessage, error) {
	return c.get(ctx, "data/talents", nil)
}

// ChallengeRealm returns the challenge mode leaderboard for a realm.
func (c *Client) ChallengeRealm(ctx context.Context, realm string) (json.RawMessage, error) {
	if err := requireString("realm", "realm slug", realm); err != nil {
		return nil, err
	}
	return c.get(ctx, "challenge/"+url.PathEscape(realm), nil)
}

// ChallengeRegion returns the region-wide challenge mode leaderboard.
func (c *Client) ChallengeRegion(ctx context.Context) (json.RawMessage, error) {
	return c.get(ctx, "challenge/region", nil)
}
