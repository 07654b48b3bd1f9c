package wowsdk

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
)

// auctionInfo is the metadata envelope returned by the auction data
// endpoint.
type auctionInfo struct {
	Files []AuctionFile `json:"files"`
}

// AuctionData returns the current auction dump for a realm.
//
// This is a two-step fetch: the authenticated metadata request yields a
// signed, short-lived file URL, which is then fetched without
// credentials. The result is the unwrapped auctions collection. An
// absent metadata response short-circuits without the second fetch.
func (c *Client) AuctionData(ctx context.Context, realm string) (json.RawMessage, error) {
	if err := requireString("realm", "realm slug", realm); err != nil {
		return nil, err
	}

	body, err := c.get(ctx, "auction/data/"+url.PathEscape(realm), nil)
	if err != nil || body == nil {
		return nil, err
	}

	var info auctionInfo
	if err := json.Unmarshal(body, &info); err != nil {
		return nil, fmt.Errorf("wowsdk: failed to decode auction metadata: %w", err)
	}
	if len(info.Files) == 0 || info.Files[0].URL == "" {
		return nil, nil
	}

	return c.fetchAuctionFile(ctx, info.Files[0].URL)
}

// fetchAuctionFile performs the unauthenticated second step against the
// signed dump URL.
func (c *Client) fetchAuctionFile(ctx context.Context, fileURL string) (json.RawMessage, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, fileURL, nil)
	if err != nil {
		return nil, fmt.Errorf("wowsdk: failed to create auction file request: %w", err)
	}
	req.Header.Set("Accept", "application/json")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("wowsdk: failed to fetch auction file: %w", err)
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("wowsdk: failed to read auction file: %w", err)
	}
	if resp.StatusCode != http.StatusOK {
		return nil, &StatusError{StatusCode: resp.StatusCode, Body: string(body)}
	}

	return unwrap(body, "auctions")
}
