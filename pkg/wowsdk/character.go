package wowsdk

import (
	"context"
	"encoding/json"
	"net/url"
)

// CharacterFields lists every sub-resource view a character profile can
// include. Each has a matching one-line accessor below; the table is the
// contract, the accessors are sugar.
var CharacterFields = []string{
	"achievements",
	"appearance",
	"audit",
	"feed",
	"guild",
	"hunterPets",
	"items",
	"mounts",
	"pets",
	"petSlots",
	"professions",
	"progression",
	"pvp",
	"quests",
	"reputation",
	"statistics",
	"stats",
	"talents",
	"titles",
}

// Character returns a character profile with the requested field views
// included alongside the base profile.
func (c *Client) Character(ctx context.Context, realm, name string, fields ...string) (json.RawMessage, error) {
	if err := validateCharacter(realm, name); err != nil {
		return nil, err
	}
	return c.get(ctx, characterPath(realm, name), fields)
}

// CharacterAchievements returns the achievements view of a character.
func (c *Client) CharacterAchievements(ctx context.Context, realm, name string) (json.RawMessage, error) {
	return c.characterField(ctx, realm, name, "achievements")
}

// CharacterAppearance returns the appearance view of a character.
func (c *Client) CharacterAppearance(ctx context.Context, realm, name string) (json.RawMessage, error) {
	return c.characterField(ctx, realm, name, "appearance")
}

// CharacterAudit returns the audit view of a character.
func (c *Client) CharacterAudit(ctx context.Context, realm, name string) (json.RawMessage, error) {
	return c.characterField(ctx, realm, name, "audit")
}

// CharacterFeed returns the activity feed of a character.
func (c *Client) CharacterFeed(ctx context.Context, realm, name string) (json.RawMessage, error) {
	return c.characterField(ctx, realm, name, "feed")
}

// CharacterGuild returns the guild summary of a character.
func (c *Client) CharacterGuild(ctx context.Context, realm, name string) (json.RawMessage, error) {
	return c.characterField(ctx, realm, name, "guild")
}

// CharacterHunterPets returns the hunter pets of a character.
func (c *Client) CharacterHunterPets(ctx context.Context, realm, name string) (json.RawMessage, error) {
	return c.characterField(ctx, realm, name, "hunterPets")
}

// CharacterItems returns the equipped items of a character.
func (c *Client) CharacterItems(ctx context.Context, realm, name string) (json.RawMessage, error) {
	return c.characterField(ctx, realm, name, "items")
}

// CharacterMounts returns the collected mounts of a character.
func (c *Client) CharacterMounts(ctx context.Context, realm, name string) (json.RawMessage, error) {
	return c.characterField(ctx, realm, name, "mounts")
}

// CharacterPets returns the collected battle pets of a character.
func (c *Client) CharacterPets(ctx context.Context, realm, name string) (json.RawMessage, error) {
	return c.characterField(ctx, realm, name, "pets")
}

// CharacterPetSlots returns the battle pet slots of a character.
func (c *Client) CharacterPetSlots(ctx context.Context, realm, name string) (json.RawMessage, error) {
	return c.characterField(ctx, realm, name, "petSlots")
}

// CharacterProfessions returns the professions of a character.
func (c *Client) CharacterProfessions(ctx context.Context, realm, name string) (json.RawMessage, error) {
	return c.characterField(ctx, realm, name, "professions")
}

// CharacterProgression returns the raid progression of a character.
func (c *Client) CharacterProgression(ctx context.Context, realm, name string) (json.RawMessage, error) {
	return c.characterField(ctx, realm, name, "progression")
}

// CharacterPvP returns the pvp summary of a character.
func (c *Client) CharacterPvP(ctx context.Context, realm, name string) (json.RawMessage, error) {
	return c.characterField(ctx, realm, name, "pvp")
}

// CharacterQuests returns the completed quests of a character.
func (c *Client) CharacterQuests(ctx context.Context, realm, name string) (json.RawMessage, error) {
	return c.characterField(ctx, realm, name, "quests")
}

// CharacterReputation returns the faction reputations of a character.
func (c *Client) CharacterReputation(ctx context.Context, realm, name string) (json.RawMessage, error) {
	return c.characterField(ctx, realm, name, "reputation")
}

// CharacterStatistics returns the gameplay statistics of a character.
func (c *Client) CharacterStatistics(ctx context.Context, realm, name string) (json.RawMessage, error) {
	return c.characterField(ctx, realm, name, "statistics")
}

// CharacterStats returns the attribute stats of a character.
func (c *Client) CharacterStats(ctx context.Context, realm, name string) (json.RawMessage, error) {
	return c.characterField(ctx, realm, name, "stats")
}

// CharacterTalents returns the talent builds of a character.
func (c *Client) CharacterTalents(ctx context.Context, realm, name string) (json.RawMessage, error) {
	return c.characterField(ctx, realm, name, "talents")
}

// CharacterTitles returns the earned titles of a character.
func (c *Client) CharacterTitles(ctx context.Context, realm, name string) (json.RawMessage, error) {
	return c.characterField(ctx, realm, name, "titles")
}

// characterField fetches one named view of a character profile and
// unwraps it from the profile body.
func (c *Client) characterField(ctx context.Context, realm, name, field string) (json.RawMessage, error) {
	if err := validateCharacter(realm, name); err != nil {
		return nil, err
	}
	return c.getField(ctx, characterPath(realm, name), field)
}

func validateCharacter(realm, name string) error {
	if err := requireString("realm", "realm slug", realm); err != nil {
		return err
	}
	return requireString("name", "character name", name)
}

func characterPath(realm, name string) string {
	return "character/" + url.PathEscape(realm) + "/" + url.PathEscape(name)
}
