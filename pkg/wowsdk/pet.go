package wowsdk

import (
	"context"
	"encoding/json"
	"fmt"
)

// Mounts returns the catalog of mounts.
func (c *Client) Mounts(ctx context.Context) (json.RawMessage, error) {
	return c.get(ctx, "mount/", nil)
}

// Pets returns the catalog of battle pets.
func (c *Client) Pets(ctx context.Context) (json.RawMessage, error) {
	return c.get(ctx, "pet/", nil)
}

// PetAbility returns a battle pet ability by id.
func (c *Client) PetAbility(ctx context.Context, id int) (json.RawMessage, error) {
	if err := requireID("id", id); err != nil {
		return nil, err
	}
	return c.get(ctx, fmt.Sprintf("pet/ability/%d", id), nil)
}

// PetSpecies returns a battle pet species by id.
func (c *Client) PetSpecies(ctx context.Context, id int) (json.RawMessage, error) {
	if err := requireID("id", id); err != nil {
		return nil, err
	}
	return c.get(ctx, fmt.Sprintf("pet/species/%d", id), nil)
}

// PetStats returns the computed stats for a battle pet species.
func (c *Client) PetStats(ctx context.Context, id int) (json.RawMessage, error) {
	if err := requireID("id", id); err != nil {
		return nil, err
	}
	return c.get(ctx, fmt.Sprintf("pet/stats/%d", id), nil)
}

// PetTypes returns the catalog of battle pet types.
func (c *Client) PetTypes(ctx context.Context) (json.RawMessage, error) {
	return c.get(ctx, "data/pet/types", nil)
}
