package csrf

import (
	"fmt"
	"net/http"
	"net/url"

	usecasecontract "github.com/abelgk/crately/internal/usecase/contract"
)

// CookieSource reads the anti-forgery token from a named cookie in an HTTP
// cookie jar, typically the jar of the same client that talks to the
// authority. The authority sets the cookie on the first response; mutating
// requests must echo its value in a header or be rejected.
type CookieSource struct {
	jar        http.CookieJar
	authority  *url.URL
	cookieName string
}

// check if CookieSource implements ICSRFTokenSource
var _ usecasecontract.ICSRFTokenSource = (*CookieSource)(nil)

// NewCookieSource creates a source reading cookieName from the jar's cookies
// for the authority URL.
func NewCookieSource(jar http.CookieJar, authority *url.URL, cookieName string) *CookieSource {
	return &CookieSource{
		jar:        jar,
		authority:  authority,
		cookieName: cookieName,
	}
}

// Token returns the current anti-forgery token, or an error when the cookie
// has not been issued yet.
func (s *CookieSource) Token() (string, error) {
	if s.jar == nil {
		return "", fmt.Errorf("no cookie jar configured")
	}
	for _, c := range s.jar.Cookies(s.authority) {
		if c.Name == s.cookieName && c.Value != "" {
			return c.Value, nil
		}
	}
	return "", fmt.Errorf("anti-forgery cookie %q not present", s.cookieName)
}
