package wowsdk

import (
	"context"
	"encoding/json"
	"fmt"
)

// Achievement returns the achievement with the given id.
func (c *Client) Achievement(ctx context.Context, id int) (json.RawMessage, error) {
	if err := requireID("id", id); err != nil {
		return nil, err
	}
	return c.get(ctx, fmt.Sprintf("achievement/%d", id), nil)
}

// AchievementCatalog returns the full catalog of character achievements,
// grouped by category.
func (c *Client) AchievementCatalog(ctx context.Context) (json.RawMessage, error) {
	return c.get(ctx, "data/character/achievements", nil)
}
