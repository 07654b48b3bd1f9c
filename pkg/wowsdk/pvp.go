package wowsdk

import (
	"context"
	"encoding/json"
	"fmt"
)

// pvpBrackets is the set of leaderboard brackets the service documents.
// The check is enforced here; the service's own behavior on unknown
// brackets is undocumented.
var pvpBrackets = map[string]bool{
	"2v2": true,
	"3v3": true,
	"5v5": true,
	"rbg": true,
}

// PvPLeaderboard returns the rated leaderboard for a bracket. Valid
// brackets are 2v2, 3v3, 5v5 and rbg.
func (c *Client) PvPLeaderboard(ctx context.Context, bracket string) (json.RawMessage, error) {
	if err := requireString("bracket", "pvp bracket", bracket); err != nil {
		return nil, err
	}
	if !pvpBrackets[bracket] {
		return nil, fmt.Errorf("wowsdk: unknown pvp bracket %q (want 2v2, 3v3, 5v5 or rbg)", bracket)
	}
	return c.get(ctx, "leaderboard/"+bracket, nil)
}
