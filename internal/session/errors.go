package session

// AuthenticationError reports a login rejected by the service. Message is the
// service-provided detail (or a generic fallback) and is safe to show inline
// on the login form.
type AuthenticationError struct {
	Message string
}

func (e *AuthenticationError) Error() string {
	return e.Message
}
