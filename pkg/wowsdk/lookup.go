package wowsdk

import (
	"context"
	"encoding/json"
	"fmt"
)

// Quest returns a single quest by id.
func (c *Client) Quest(ctx context.Context, id int) (json.RawMessage, error) {
	if err := requireID("id", id); err != nil {
		return nil, err
	}
	return c.get(ctx, fmt.Sprintf("quest/%d", id), nil)
}

// Recipe returns a single profession recipe by id.
func (c *Client) Recipe(ctx context.Context, id int) (json.RawMessage, error) {
	if err := requireID("id", id); err != nil {
		return nil, err
	}
	return c.get(ctx, fmt.Sprintf("recipe/%d", id), nil)
}

// Spell returns a single spell by id.
func (c *Client) Spell(ctx context.Context, id int) (json.RawMessage, error) {
	if err := requireID("id", id); err != nil {
		return nil, err
	}
	return c.get(ctx, fmt.Sprintf("spell/%d", id), nil)
}
