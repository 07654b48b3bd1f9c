/*
Package wowsdk provides a client for the World of Warcraft community API.

# Overview

The package wraps the community web service behind a single Client. The
Client owns one OAuth2 client-credentials token, refreshed lazily when it
expires, and every resource accessor is a thin wrapper over one shared
request routine. Responses are passed through as opaque JSON; the service
owns the schemas, not this library.

Create a Client with your application credentials:

	client, err := wowsdk.New(wowsdk.Config{
	    ClientID:     os.Getenv("WOW_CLIENT_ID"),
	    ClientSecret: os.Getenv("WOW_CLIENT_SECRET"),
	    Region:       "eu",
	    Locale:       "en_GB",
	})

Then call accessors with a context:

	item, err := client.Item(ctx, 19019)

	profile, err := client.Character(ctx, "proudmoore", "Thrall", "items", "mounts")

# Results

Every accessor returns (json.RawMessage, error). A nil result with a nil
error means the service answered but the entity does not exist (the body
carried its error/status shape). Callers must treat that differently from
a non-nil error, which reports a transport failure, a bad response, or a
local validation failure:

	raw, err := client.Achievement(ctx, 2144)
	if err != nil {
	    // network down, unexpected status, malformed body, bad argument
	}
	if raw == nil {
	    // no such achievement
	}

# Token Lifecycle

Accessors never need an explicit login. The first request performs the
client_credentials grant against the region's OAuth endpoint and caches
the token for its declared lifetime; later requests reuse it until it
expires. Refresh is guarded by a mutex with a double-check, so concurrent
callers trigger at most one grant.

# Sub-Resource Views

Character and guild profiles expose named views selected with the fields
query parameter. The generic Character and Guild accessors take any field
list and return the whole profile; the per-view accessors
(CharacterItems, GuildMembers, ...) request a single field and unwrap it
from the profile body.

# Logging

The SDK logs token grants and outgoing requests at debug level through
the logger found in the call context (see pkg/slogx). Each request
carries a ULID request id, sent as X-Request-ID and attached to log
records as req_id.
*/
package wowsdk
