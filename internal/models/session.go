package models

// Identity describes who a session belongs to. It is derived from the access
// token's claims (or the login email as a fallback) and is display-only; the
// service never trusts it.
type Identity struct {
	Email string `json:"email"`
}

// Session pairs the bearer token with its derived identity. Token and
// Identity are set together or not at all; a session holding one without the
// other never exists.
type Session struct {
	Token    string
	Identity Identity
}

// Active reports whether the session carries a credential.
func (s Session) Active() bool {
	return s.Token != ""
}
