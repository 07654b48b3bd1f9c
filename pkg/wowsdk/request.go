package wowsdk

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"strings"

	"github.com/google/go-querystring/query"
	"github.com/oklog/ulid/v2"

	"github.com/aussiebroadwan/wowapi/pkg/slogx"
)

// apiQuery is the query string shared by every resource request. The
// legacy service authenticates via the access_token parameter rather
// than an Authorization header.
type apiQuery struct {
	Fields      string `url:"fields,omitempty"`
	Locale      string `url:"locale"`
	AccessToken string `url:"access_token"`
}

// get performs one authenticated read against the resource API.
//
// A valid token is obtained first (refreshing if needed), then the final
// URL is built from the relative path, the optional comma-joined field
// selectors, the locale and the token. The decoded body is returned as
// opaque JSON.
//
// A body carrying the service's error shape (a truthy "status" field)
// yields (nil, nil): the entity is absent at the domain level. Transport
// failures, unexpected statuses and malformed bodies return an error and
// must never be conflated with absence.
func (c *Client) get(ctx context.Context, path string, fields []string) (json.RawMessage, error) {
	token, err := c.token(ctx)
	if err != nil {
		return nil, err
	}

	q, err := query.Values(apiQuery{
		Fields:      strings.Join(fields, ","),
		Locale:      c.locale,
		AccessToken: token,
	})
	if err != nil {
		return nil, fmt.Errorf("wowsdk: failed to encode query: %w", err)
	}

	reqID := ulid.Make().String()
	ctx = slogx.WithRequestID(ctx, reqID)
	logger := slogx.FromContext(ctx)

	// Commas are legal sub-delimiters in a query, keep the field list
	// readable on the wire instead of %2C-escaped.
	rawQuery := strings.ReplaceAll(q.Encode(), "%2C", ",")

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.apiBase+path+"?"+rawQuery, nil)
	if err != nil {
		return nil, fmt.Errorf("wowsdk: failed to create request: %w", err)
	}
	req.Header.Set("Accept", "application/json")
	req.Header.Set("X-Request-ID", reqID)

	logger.Debug("wowsdk request", "path", path, "fields", fields)

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("wowsdk: failed to send request: %w", err)
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("wowsdk: failed to read response body: %w", err)
	}

	return c.decodeResource(logger, resp.StatusCode, path, body)
}

// decodeResource normalizes a resource response body. The service
// reports domain-level errors inside the body, sometimes alongside a
// non-200 status, so the body shape is checked before the status code.
func (c *Client) decodeResource(logger *slog.Logger, statusCode int, path string, body []byte) (json.RawMessage, error) {
	var probe struct {
		Status json.RawMessage `json:"status"`
		Reason string          `json:"reason"`
	}
	if err := json.Unmarshal(body, &probe); err == nil && truthy(probe.Status) {
		logger.Debug("wowsdk resource absent", "path", path, "reason", probe.Reason)
		return nil, nil
	}

	if statusCode != http.StatusOK {
		return nil, &StatusError{StatusCode: statusCode, Body: string(body)}
	}
	if !json.Valid(body) {
		return nil, fmt.Errorf("wowsdk: response for %s is not valid JSON", path)
	}

	return json.RawMessage(body), nil
}

// getField fetches an entity with a single field selector and unwraps
// the named sub-resource from the profile body. A profile without the
// key reads as absent.
func (c *Client) getField(ctx context.Context, path, field string) (json.RawMessage, error) {
	body, err := c.get(ctx, path, []string{field})
	if err != nil || body == nil {
		return nil, err
	}
	return unwrap(body, field)
}

// unwrap extracts one top-level key from a JSON object body.
func unwrap(body json.RawMessage, key string) (json.RawMessage, error) {
	var m map[string]json.RawMessage
	if err := json.Unmarshal(body, &m); err != nil {
		return nil, fmt.Errorf("wowsdk: failed to decode %s response: %w", key, err)
	}
	return m[key], nil
}

// truthy reports whether a raw JSON value would read as an error
// indicator: anything but absent, null, false, 0 or "".
func truthy(raw json.RawMessage) bool {
	switch s := strings.TrimSpace(string(raw)); s {
	case "", "null", "false", "0", `""`:
		return false
	default:
		return true
	}
}
