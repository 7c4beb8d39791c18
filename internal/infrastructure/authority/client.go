package authority

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/cookiejar"
	"net/url"
	"strconv"

	"github.com/abelgk/crately/internal/domain/contract"
	"github.com/abelgk/crately/internal/domain/entity"
	usecasecontract "github.com/abelgk/crately/internal/usecase/contract"
)

// Client is the HTTP implementation of the remote authority contract. Every
// request carries the bearer credential from the identity provider and
// Accept: application/json; mutating requests additionally echo the
// anti-forgery token in the X-CSRF-Token header.
type Client struct {
	baseURL  *url.URL
	http     *http.Client
	identity usecasecontract.IIdentityProvider
	csrf     usecasecontract.ICSRFTokenSource
	logger   usecasecontract.IAppLogger
}

// check if Client implements IAlbumAuthority
var _ contract.IAlbumAuthority = (*Client)(nil)

// NewClient creates an authority client. If httpClient is nil a default
// client with a cookie jar is used, so Set-Cookie responses (including the
// CSRF cookie) are retained across calls.
func NewClient(baseURL string, httpClient *http.Client, identity usecasecontract.IIdentityProvider, csrf usecasecontract.ICSRFTokenSource, logger usecasecontract.IAppLogger) (*Client, error) {
	u, err := url.Parse(baseURL)
	if err != nil {
		return nil, fmt.Errorf("failed to parse authority base URL: %w", err)
	}
	if httpClient == nil {
		jar, jarErr := cookiejar.New(nil)
		if jarErr != nil {
			return nil, fmt.Errorf("failed to create cookie jar: %w", jarErr)
		}
		httpClient = &http.Client{Jar: jar}
	}
	return &Client{
		baseURL:  u,
		http:     httpClient,
		identity: identity,
		csrf:     csrf,
		logger:   logger,
	}, nil
}

// HTTPClient returns the underlying HTTP client, whose cookie jar holds the
// session cookies.
func (c *Client) HTTPClient() *http.Client {
	return c.http
}

// BaseURL returns the authority base URL.
func (c *Client) BaseURL() *url.URL {
	return c.baseURL
}

// ListAlbums fetches one page of albums matching the search text.
func (c *Client) ListAlbums(ctx context.Context, page int, search string) (*entity.Page, error) {
	u := c.endpoint("/api/v1/albums")
	q := u.Query()
	q.Set("page", strconv.Itoa(page))
	if search != "" {
		q.Set("search", search)
	}
	u.RawQuery = q.Encode()

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, u.String(), nil)
	if err != nil {
		return nil, fmt.Errorf("failed to build list request: %w", err)
	}
	if err := c.authorize(req); err != nil {
		return nil, err
	}

	resp, err := c.http.Do(req)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", entity.ErrTransport, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, c.statusError(resp.StatusCode)
	}

	var result entity.Page
	if err := json.NewDecoder(resp.Body).Decode(&result); err != nil {
		return nil, fmt.Errorf("%w: malformed list response: %v", entity.ErrTransport, err)
	}
	return &result, nil
}

// CastVote records the current user's vote and returns the authoritative full
// vote set for the album.
func (c *Client) CastVote(ctx context.Context, albumID string, value entity.VoteValue) ([]entity.Vote, error) {
	body, err := json.Marshal(map[string]entity.VoteValue{"value": value})
	if err != nil {
		return nil, fmt.Errorf("failed to encode vote request: %w", err)
	}

	u := c.endpoint("/api/v1/albums/" + url.PathEscape(albumID) + "/votes")
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, u.String(), bytes.NewReader(body))
	if err != nil {
		return nil, fmt.Errorf("failed to build vote request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")
	if err := c.authorize(req); err != nil {
		return nil, err
	}
	if err := c.antiForge(req); err != nil {
		return nil, err
	}

	resp, err := c.http.Do(req)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", entity.ErrTransport, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK && resp.StatusCode != http.StatusCreated {
		return nil, c.statusError(resp.StatusCode)
	}

	var result struct {
		Votes []entity.Vote `json:"votes"`
	}
	if err := json.NewDecoder(resp.Body).Decode(&result); err != nil {
		return nil, fmt.Errorf("%w: malformed vote response: %v", entity.ErrTransport, err)
	}
	return result.Votes, nil
}

// DeleteAlbum removes the album on the authority side.
func (c *Client) DeleteAlbum(ctx context.Context, albumID string) error {
	u := c.endpoint("/api/v1/albums/" + url.PathEscape(albumID))
	req, err := http.NewRequestWithContext(ctx, http.MethodDelete, u.String(), nil)
	if err != nil {
		return fmt.Errorf("failed to build delete request: %w", err)
	}
	if err := c.authorize(req); err != nil {
		return err
	}
	if err := c.antiForge(req); err != nil {
		return err
	}

	resp, err := c.http.Do(req)
	if err != nil {
		return fmt.Errorf("%w: %v", entity.ErrTransport, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK && resp.StatusCode != http.StatusNoContent {
		return c.statusError(resp.StatusCode)
	}
	return nil
}

func (c *Client) endpoint(path string) *url.URL {
	u := *c.baseURL
	u.Path = path
	return &u
}

func (c *Client) authorize(req *http.Request) error {
	token, err := c.identity.AccessToken()
	if err != nil {
		return fmt.Errorf("%w: %v", entity.ErrUnauthorized, err)
	}
	req.Header.Set("Authorization", "Bearer "+token)
	req.Header.Set("Accept", "application/json")
	return nil
}

func (c *Client) antiForge(req *http.Request) error {
	token, err := c.csrf.Token()
	if err != nil {
		return fmt.Errorf("failed to read anti-forgery token: %w", err)
	}
	req.Header.Set("X-CSRF-Token", token)
	return nil
}

func (c *Client) statusError(code int) error {
	switch code {
	case http.StatusUnauthorized:
		return fmt.Errorf("%w: authority rejected credential", entity.ErrUnauthorized)
	case http.StatusForbidden:
		return fmt.Errorf("%w: caller lacks privilege", entity.ErrForbidden)
	case http.StatusNotFound:
		return fmt.Errorf("%w: album no longer exists", entity.ErrNotFound)
	case http.StatusBadRequest, http.StatusUnprocessableEntity:
		return fmt.Errorf("%w: authority rejected request", entity.ErrValidation)
	default:
		return fmt.Errorf("%w: authority returned status %d", entity.ErrTransport, code)
	}
}
