package wowsdk

import (
	"context"
	"encoding/json"
	"fmt"
)

// Item returns a single item by id.
func (c *Client) Item(ctx context.Context, id int) (json.RawMessage, error) {
	if err := requireID("id", id); err != nil {
		return nil, err
	}
	return c.get(ctx, fmt.Sprintf("item/%d", id), nil)
}

// ItemSet returns an item set by id.
func (c *Client) ItemSet(ctx context.Context, id int) (json.RawMessage, error) {
	if err := requireID("id", id); err != nil {
		return nil, err
	}
	return c.get(ctx, fmt.Sprintf("item/set/%d", id), nil)
}

// ItemClasses returns the catalog of item classes.
func (c *Client) ItemClasses(ctx context.Context) (json.RawMessage, error) {
	return c.get(ctx, "data/item/classes", nil)
}
