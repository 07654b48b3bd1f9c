package wowsdk

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/aussiebroadwan/wowapi/pkg/slogx"
)

// credential is one issued access token. Replaced wholesale on refresh,
// never mutated in place.
type credential struct {
	accessToken string
	expiresIn   time.Duration
	obtainedAt  time.Time
}

// valid reports whether the token is still usable at instant now. The
// comparison is non-absolute on a monotonic clock; a token is spent the
// moment elapsed time reaches its declared lifetime.
func (cr *credential) valid(now time.Time) bool {
	return cr != nil && now.Sub(cr.obtainedAt) < cr.expiresIn
}

// token returns a valid access token, performing the client_credentials
// grant when no token has been obtained yet or the cached one expired.
// The refresh is guarded by a double-checked lock so racing callers
// perform at most one grant.
func (c *Client) token(ctx context.Context) (string, error) {
	c.mu.RLock()
	if c.creds.valid(c.now()) {
		token := c.creds.accessToken
		c.mu.RUnlock()
		return token, nil
	}
	c.mu.RUnlock()

	c.mu.Lock()
	defer c.mu.Unlock()

	// Another caller may have refreshed while we waited for the lock
	if c.creds.valid(c.now()) {
		return c.creds.accessToken, nil
	}

	creds, err := c.requestToken(ctx)
	if err != nil {
		return "", err
	}
	c.creds = creds

	slogx.FromContext(ctx).Debug("wowsdk token grant",
		"region", c.region,
		"expires_in", creds.expiresIn,
	)

	return creds.accessToken, nil
}

// requestToken performs the OAuth2 client_credentials grant against the
// region's token endpoint. The application id and secret travel as HTTP
// Basic credentials. Failures propagate; no retry is attempted.
func (c *Client) requestToken(ctx context.Context) (*credential, error) {
	data := url.Values{
		"grant_type": {"client_credentials"},
	}

	req, err := http.NewRequestWithContext(
		ctx,
		http.MethodPost,
		c.tokenURL,
		strings.NewReader(data.Encode()),
	)
	if err != nil {
		return nil, fmt.Errorf("wowsdk: failed to create token request: %w", err)
	}
	req.SetBasicAuth(c.clientID, c.clientSecret)
	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("wowsdk: failed to send token request: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		body, _ := io.ReadAll(resp.Body)
		return nil, &StatusError{StatusCode: resp.StatusCode, Body: string(body)}
	}

	var tokenResp tokenResponse
	if err := json.NewDecoder(resp.Body).Decode(&tokenResp); err != nil {
		return nil, fmt.Errorf("wowsdk: failed to decode token response: %w", err)
	}
	if tokenResp.AccessToken == "" {
		return nil, fmt.Errorf("wowsdk: token response missing access_token")
	}

	return &credential{
		accessToken: tokenResp.AccessToken,
		expiresIn:   time.Duration(tokenResp.ExpiresIn) * time.Second,
		obtainedAt:  c.now(),
	}, nil
}
