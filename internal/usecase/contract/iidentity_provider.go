package usecasecontract

// IIdentityProvider supplies the current user's identity and bearer
// credential. Login and credential persistence are external concerns; the
// core only reads from this interface.
type IIdentityProvider interface {
	// AccessToken returns the bearer credential for authenticated calls.
	AccessToken() (string, error)
	// UserID returns the current user's id, or "" when unknown.
	UserID() string
}

// ICSRFTokenSource supplies the anti-forgery token echoed on every mutating
// call. The usual implementation reads it from the session's CSRF cookie.
type ICSRFTokenSource interface {
	Token() (string, error)
}
