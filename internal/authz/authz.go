// Package authz provides authorization utilities.
package authz

import (
	"encoding/base64"
	"encoding/json"
	"errors"
	"strings"

	"github.com/aws/aws-lambda-go/events"
)

// ErrUnauthorized is returned when a request carries no verified identity.
var ErrUnauthorized = errors.New("unauthorized")

const devBypassHeader = "x-user-email"

// --- small utils ---

// headerLookup returns the value of a header key from a map.
func headerLookup(h map[string]string, key string) string {
	if len(h) == 0 {
		return ""
	}
	lk := strings.ToLower(key)
	for k, v := range h {
		if strings.ToLower(k) == lk {
			return v
		}
	}
	return ""
}

// emailFromAuthHeader extracts the "email" claim from a bearer JWT payload.
// The token is decoded, not verified; the gateway authorizer is the verifier.
func emailFromAuthHeader(headers map[string]string) string {
	auth := headerLookup(headers, "Authorization")
	if auth == "" {
		return ""
	}
	if strings.HasPrefix(strings.ToLower(auth), "bearer ") {
		auth = strings.TrimSpace(auth[len("bearer "):])
	}
	parts := strings.Split(auth, ".")
	if len(parts) != 3 {
		return ""
	}
	payload, err := base64.RawURLEncoding.DecodeString(parts[1])
	if err != nil {
		return ""
	}
	var m map[string]any
	if json.Unmarshal(payload, &m) != nil {
		return ""
	}
	if s, ok := m["email"].(string); ok {
		return s
	}
	return ""
}

// Email extracts the verified email claim from an HTTP API (v2) request.
func Email(req events.APIGatewayV2HTTPRequest, devBypass bool) (string, error) {
	// 0) Dev bypass header
	if devBypass {
		if email := strings.TrimSpace(headerLookup(req.Headers, devBypassHeader)); email != "" {
			return email, nil
		}
	}

	// 1) JWT authorizer claims
	if req.RequestContext.Authorizer != nil && req.RequestContext.Authorizer.JWT != nil {
		if email := req.RequestContext.Authorizer.JWT.Claims["email"]; email != "" {
			return email, nil
		}
	}

	// 2) Fallback: parse JWT from Authorization header (unverified)
	if email := emailFromAuthHeader(req.Headers); email != "" {
		return email, nil
	}

	return "", ErrUnauthorized
}
