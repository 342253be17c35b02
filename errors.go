package woocommerce

import (
	"encoding/json"
	"errors"
	"fmt"
)

// ErrMissingID is returned by update and delete operations when the entity
// has no identifier set. The request is never sent.
var ErrMissingID = errors.New("woocommerce: entity has no id")

// ErrNoAuthenticatedUser is returned by operations that need the current
// user id when the user store holds none.
var ErrNoAuthenticatedUser = errors.New("woocommerce: no authenticated user")

// APIError is a non-2xx response from the store, surfaced verbatim. Code
// and Message are filled from the standard WooCommerce error body when it
// parses; Body always carries the raw payload.
type APIError struct {
	StatusCode int
	Code       string
	Message    string
	Body       []byte
}

func newAPIError(status int, body []byte) *APIError {
	e := &APIError{StatusCode: status, Body: body}
	var wire struct {
		Code    string `json:"code"`
		Message string `json:"message"`
	}
	if err := json.Unmarshal(body, &wire); err == nil {
		e.Code = wire.Code
		e.Message = wire.Message
	}
	return e
}

func (e *APIError) Error() string {
	if e.Message != "" {
		return fmt.Sprintf("woocommerce: http %d: %s (%s)", e.StatusCode, e.Message, e.Code)
	}
	return fmt.Sprintf("woocommerce: http %d", e.StatusCode)
}

// DecodeError signals a response body whose shape contradicts the expected
// structure. Missing optional fields never produce it.
type DecodeError struct {
	Path string
	Err  error
}

func (e *DecodeError) Error() string {
	return fmt.Sprintf("woocommerce: decode %s: %v", e.Path, e.Err)
}

func (e *DecodeError) Unwrap() error { return e.Err }
