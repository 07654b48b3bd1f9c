package wowsdk

import (
	"context"
	"encoding/json"
	"fmt"
)

// Bosses returns the list of raid bosses.
func (c *Client) Bosses(ctx context.Context) (json.RawMessage, error) {
	return c.get(ctx, "boss/", nil)
}

// Boss returns a single raid boss by id.
func (c *Client) Boss(ctx context.Context, id int) (json.RawMessage, error) {
	if err := requireID("id", id); err != nil {
		return nil, err
	}
	return c.get(ctx, fmt.Sprintf("boss/%d", id), nil)
}
