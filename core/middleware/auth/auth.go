package auth

import (
	"context"
	"strings"

	"go.uber.org/zap"
)

// HeaderName is the request header carrying the API key.
const HeaderName = "x-api-key"

const (
	PrincipalAuthorized   = "authorized-user"
	PrincipalUnauthorized = "unauthorized"

	EffectAllow = "Allow"
	EffectDeny  = "Deny"
)

// KeyProvider returns the expected API key. secrets.Cache implements it.
type KeyProvider interface {
	Get(ctx context.Context) (string, bool)
}

// Decision is the outcome of an authorization check.
type Decision struct {
	PrincipalID string `json:"principalId"`
	Effect      string `json:"effect"`
	Resource    string `json:"resource"`
}

// Allowed reports whether the decision grants access.
func (d Decision) Allowed() bool {
	return d.Effect == EffectAllow
}

// HeaderValue looks up a header by name, ignoring case.
func HeaderValue(headers map[string][]string, name string) (string, bool) {
	for k, values := range headers {
		if strings.EqualFold(k, name) && len(values) > 0 {
			return values[0], true
		}
	}
	return "", false
}

// Check reports whether the presented key matches the expected one.
// ok is false when the expected key could not be obtained.
func Check(presented, expected string, ok bool) bool {
	if !ok || presented == "" || expected == "" {
		return false
	}
	return presented == expected
}

// Authorizer compares presented API keys against the configured secret.
type Authorizer struct {
	keys   KeyProvider
	logger *zap.Logger
}

// NewAuthorizer creates an Authorizer.
func NewAuthorizer(keys KeyProvider, logger *zap.Logger) *Authorizer {
	return &Authorizer{keys: keys, logger: logger}
}

// Authorize decides whether presented grants access to resource.
func (a *Authorizer) Authorize(ctx context.Context, presented, resource string) Decision {
	if presented == "" {
		a.logger.Debug("No API key provided", zap.String("resource", resource))
		return deny(resource)
	}

	expected, ok := a.keys.Get(ctx)
	if !ok {
		a.logger.Warn("Unable to retrieve API key, denying request", zap.String("resource", resource))
		return deny(resource)
	}
	if !Check(presented, expected, ok) {
		a.logger.Info("Invalid API key", zap.String("resource", resource))
		return deny(resource)
	}

	return Decision{PrincipalID: PrincipalAuthorized, Effect: EffectAllow, Resource: resource}
}

func deny(resource string) Decision {
	return Decision{PrincipalID: PrincipalUnauthorized, Effect: EffectDeny, Resource: resource}
}
