package wowsdk

import (
	"fmt"
	"strings"
)

// MissingParamError reports a required accessor argument that was absent
// or empty. It is returned synchronously, before any network activity.
type MissingParamError struct {
	// Param is the parameter name, e.g. "realm".
	Param string

	// Kind describes what was expected, e.g. "realm slug".
	Kind string
}

// Error implements the error interface.
func (e *MissingParamError) Error() string {
	return fmt.Sprintf("wowsdk: missing required parameter %s (%s)", e.Param, e.Kind)
}

// StatusError reports an unexpected HTTP status from the remote service,
// one whose body did not carry the service's domain error shape. It is a
// transport-level failure, distinct from an absent resource.
type StatusError struct {
	StatusCode int
	Body       string
}

// Error implements the error interface.
func (e *StatusError) Error() string {
	return fmt.Sprintf("wowsdk: unexpected status %d: %s", e.StatusCode, e.Body)
}

// requireString validates a required string argument before any request
// is issued.
func requireString(param, kind, value string) error {
	if strings.TrimSpace(value) == "" {
		return &MissingParamError{Param: param, Kind: kind}
	}
	return nil
}

// requireID validates a required positive numeric identifier.
func requireID(param string, id int) error {
	if id <= 0 {
		return &MissingParamError{Param: param, Kind: "numeric id"}
	}
	return nil
}
