package wowsdk

import (
	"context"
	"encoding/json"
	"fmt"
)

// RealmStatus returns the raw realms collection from the realm status
// endpoint, unwrapped from its envelope.
func (c *Client) RealmStatus(ctx context.Context) (json.RawMessage, error) {
	body, err := c.get(ctx, "realm/status", nil)
	if err != nil || body == nil {
		return nil, err
	}
	return unwrap(body, "realms")
}

// Realms returns the realm list decoded, preserving service order.
func (c *Client) Realms(ctx context.Context) ([]Realm, error) {
	raw, err := c.RealmStatus(ctx)
	if err != nil || raw == nil {
		return nil, err
	}

	var realms []Realm
	if err := json.Unmarshal(raw, &realms); err != nil {
		return nil, fmt.Errorf("wowsdk: failed to decode realms: %w", err)
	}
	return realms, nil
}

// RealmSlugs maps realm display names to their URL slugs. Go maps carry
// no order; use Realms when the service ordering matters.
func (c *Client) RealmSlugs(ctx context.Context) (map[string]string, error) {
	realms, err := c.Realms(ctx)
	if err != nil || realms == nil {
		return nil, err
	}

	slugs := make(map[string]string, len(realms))
	for _, r := range realms {
		slugs[r.Name] = r.Slug
	}
	return slugs, nil
}
