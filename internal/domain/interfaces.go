package domain

import (
	"context"
	"net/http"
	"net/url"
)

// InvokeOptions carries per-call extras for an API invocation. The zero value
// is a plain call with no query, no body, and no header overrides.
type InvokeOptions struct {
	// Query is appended to the request URL.
	Query url.Values
	// Body, when non-nil, is JSON-encoded into the request body.
	Body any
	// Headers overrides same-named default headers case-insensitively.
	Headers map[string]string
}

// Invoker issues authenticated calls against the remote API. Invoke parses
// the response envelope; Do returns the raw transport response for callers
// that need cookies or status lines.
type Invoker interface {
	Invoke(ctx context.Context, method, path string, opts InvokeOptions) (*Envelope, error)
	Do(ctx context.Context, method, path string, opts InvokeOptions) (*http.Response, error)
}

// CredentialStore persists one credential record at rest.
type CredentialStore interface {
	Save(passphrase string, creds Credentials) error
	Load(passphrase string) (Credentials, bool, error)
	Clear() error
}
