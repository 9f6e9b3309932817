package session

import "github.com/golang-jwt/jwt/v5"

// claimedEmail extracts a display identity from the token's payload without
// verifying signature or expiry. The token is opaque as far as authorization
// goes; this only feeds the "logged in as" label. Preference order: the
// subject claim, then an email claim. Returns ok=false on any decode problem
// so the caller can fall back to the login email.
func claimedEmail(token string) (string, bool) {
	parsed, _, err := jwt.NewParser().ParseUnverified(token, jwt.MapClaims{})
	if err != nil {
		return "", false
	}

	claims, ok := parsed.Claims.(jwt.MapClaims)
	if !ok {
		return "", false
	}

	if sub, err := claims.GetSubject(); err == nil && sub != "" {
		return sub, true
	}
	if email, ok := claims["email"].(string); ok && email != "" {
		return email, true
	}
	return "", false
}
