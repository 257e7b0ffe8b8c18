package domain

import "time"

// UpstreamSession holds the cached vendor-side credentials. A single instance
// is owned by the upstream client and replaced wholesale on re-authentication.
// RefreshToken is stored but never exchanged; renewal is always a full login.
type UpstreamSession struct {
	AccessToken  string
	RefreshToken string
	ExpiresAt    time.Time
}

// Present reports whether an access token is held at all. This is the only
// check the lazy re-authentication policy performs.
func (s UpstreamSession) Present() bool {
	return s.AccessToken != ""
}

// Expired reports whether the stamped expiry has elapsed. Surfaced through
// readiness reporting; the request path deliberately does not consult it.
func (s UpstreamSession) Expired() bool {
	return !s.ExpiresAt.IsZero() && time.Now().After(s.ExpiresAt)
}
