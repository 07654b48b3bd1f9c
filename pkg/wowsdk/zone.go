package wowsdk

import (
	"context"
	"encoding/json"
	"fmt"
)

// Zones returns the list of dungeon and raid zones.
func (c *Client) Zones(ctx context.Context) (json.RawMessage, error) {
	return c.get(ctx, "zone/", nil)
}

// Zone returns a single zone by id.
func (c *Client) Zone(ctx context.Context, id int) (json.RawMessage, error) {
	if err := requireID("id", id); err != nil {
		return nil, err
	}
	return c.get(ctx, fmt.Sprintf("zone/%d", id), nil)
}
