// Package auth provides authentication support for catalog HTTP requests.
package auth

import "net/http"

// Authenticator defines the interface for applying authentication to HTTP requests.
type Authenticator interface {
	Apply(req *http.Request) error
	Type() Type
}

// Type represents the type of authentication.
type Type string

// Authentication types.
const (
	// BearerAuthType represents Bearer token authentication.
	BearerAuthType Type = "bearer"
	// HeaderAuthType represents custom header-based authentication.
	HeaderAuthType Type = "header"
)

// BearerAuth represents Bearer token authentication, the scheme used by the
// catalog API.
type BearerAuth struct {
	Token string
}

// Apply adds a Bearer token to the Authorization header of the HTTP request.
func (b BearerAuth) Apply(req *http.Request) error {
	req.Header.Set("Authorization", "Bearer "+b.Token)
	return nil
}

// Type returns the authentication type (BearerAuthType).
func (b BearerAuth) Type() Type { return BearerAuthType }

// HeaderAuth represents authentication via custom HTTP headers, for catalog
// deployments that sit behind API gateways with key headers.
type HeaderAuth struct {
	Headers map[string]string
}

// Apply adds custom headers to the HTTP request.
func (h HeaderAuth) Apply(req *http.Request) error {
	for k, v := range h.Headers {
		req.Header.Set(k, v)
	}
	return nil
}

// Type returns the authentication type (HeaderAuthType).
func (h HeaderAuth) Type() Type { return HeaderAuthType }
