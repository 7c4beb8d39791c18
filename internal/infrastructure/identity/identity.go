package identity

import (
	"errors"

	"github.com/golang-jwt/jwt/v5"

	usecasecontract "github.com/abelgk/crately/internal/usecase/contract"
)

// TokenProvider serves a bearer credential handed to it at construction, the
// usual case for a session whose login happened elsewhere. The user id is
// read from the token's subject claim without verifying the signature;
// verification is the authority's job, the client only needs the identity for
// display.
type TokenProvider struct {
	token  string
	userID string
}

// check if TokenProvider implements IIdentityProvider
var _ usecasecontract.IIdentityProvider = (*TokenProvider)(nil)

// NewTokenProvider creates a provider around a raw bearer token.
func NewTokenProvider(token string) *TokenProvider {
	return &TokenProvider{
		token:  token,
		userID: subjectOf(token),
	}
}

// AccessToken returns the bearer credential for authenticated calls.
func (p *TokenProvider) AccessToken() (string, error) {
	if p.token == "" {
		return "", errors.New("no access token configured")
	}
	return p.token, nil
}

// UserID returns the current user's id, or "" when the token carries none.
func (p *TokenProvider) UserID() string {
	return p.userID
}

func subjectOf(token string) string {
	if token == "" {
		return ""
	}
	parsed, _, err := jwt.NewParser().ParseUnverified(token, jwt.MapClaims{})
	if err != nil {
		return ""
	}
	sub, err := parsed.Claims.GetSubject()
	if err != nil {
		return ""
	}
	return sub
}
