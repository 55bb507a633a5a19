// Package reddit is the external collaborator boundary: it verifies Reddit
// account credentials and fetches a user's saved items through the OAuth2
// password grant available to script apps. Every item comes back explicitly
// tagged as a post or a comment.
package reddit

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/edgcastillo/saveddit/internal/common"
	"golang.org/x/oauth2"
)

const (
	defaultTokenURL = "https://www.reddit.com/api/v1/access_token"
	defaultAPIBase  = "https://oauth.reddit.com"

	pageLimit = 100
)

// Kind tags a saved item variant.
type Kind string

const (
	KindPost    Kind = "post"
	KindComment Kind = "comment"
)

// Item is one saved thing as the collaborator reports it. TitleOrBody holds
// the submission title for posts and the comment body for comments.
type Item struct {
	Kind        Kind
	TitleOrBody string
	Permalink   string
	Subreddit   string
}

// Verifier checks that a Reddit username/password pair is valid.
type Verifier interface {
	Verify(ctx context.Context, username, password string) error
}

// SavedFetcher returns the user's saved items in Reddit's listing order.
type SavedFetcher interface {
	Saved(ctx context.Context, username, password string) ([]Item, error)
}

// Client implements Verifier and SavedFetcher against the live Reddit API.
type Client struct {
	clientID     string
	clientSecret string
	userAgent    string
	httpClient   *http.Client

	tokenURL string
	apiBase  string
}

// NewClient builds a Client for the given script-app credentials. timeout
// bounds every single HTTP call to Reddit.
func NewClient(clientID, clientSecret, userAgent string, timeout time.Duration) *Client {
	return &Client{
		clientID:     clientID,
		clientSecret: clientSecret,
		userAgent:    userAgent,
		httpClient:   &http.Client{Timeout: timeout},
		tokenURL:     defaultTokenURL,
		apiBase:      defaultAPIBase,
	}
}

// Verify performs a password-grant token exchange and discards the token.
// A rejected grant means the credentials are wrong; anything else is an
// external-service failure.
func (c *Client) Verify(ctx context.Context, username, password string) error {
	_, err := c.token(ctx, username, password)
	return err
}

// Saved fetches every page of the user's saved listing, preserving Reddit's
// order across pages.
func (c *Client) Saved(ctx context.Context, username, password string) ([]Item, error) {
	tok, err := c.token(ctx, username, password)
	if err != nil {
		return nil, err
	}

	items := make([]Item, 0, pageLimit)
	after := ""

	for {
		page, next, err := c.savedPage(ctx, tok, username, after)
		if err != nil {
			return nil, err
		}
		items = append(items, page...)
		if next == "" || len(page) == 0 {
			return items, nil
		}
		after = next
	}
}

func (c *Client) token(ctx context.Context, username, password string) (*oauth2.Token, error) {
	conf := &oauth2.Config{
		ClientID:     c.clientID,
		ClientSecret: c.clientSecret,
		Endpoint: oauth2.Endpoint{
			TokenURL:  c.tokenURL,
			AuthStyle: oauth2.AuthStyleInHeader,
		},
	}

	ctx = context.WithValue(ctx, oauth2.HTTPClient, c.httpClient)

	tok, err := conf.PasswordCredentialsToken(ctx, username, password)
	if err != nil {
		return nil, classifyTokenError(err)
	}
	return tok, nil
}

// classifyTokenError maps token-exchange failures onto the error taxonomy.
// Reddit reports a bad username/password as an invalid_grant; everything
// else (timeouts, 5xx, unreachable host) is an external-service failure.
func classifyTokenError(err error) error {
	var rerr *oauth2.RetrieveError
	if errors.As(err, &rerr) {
		if rerr.ErrorCode == "invalid_grant" ||
			rerr.Response.StatusCode == http.StatusUnauthorized ||
			rerr.Response.StatusCode == http.StatusForbidden {
			return common.ErrInvalidRedditCredentials
		}
		return common.ErrExternalService
	}
	// Reddit sometimes answers 200 with {"error": "invalid_grant"} and no
	// token, which oauth2 reports as a missing access token.
	if strings.Contains(err.Error(), "invalid_grant") {
		return common.ErrInvalidRedditCredentials
	}
	return common.ErrExternalService
}

// listing mirrors the slice of Reddit's listing JSON we consume. Children
// arrive tagged t1 (comment) or t3 (link).
type listing struct {
	Data struct {
		After    string `json:"after"`
		Children []struct {
			Kind string `json:"kind"`
			Data struct {
				Title     string `json:"title"`
				Body      string `json:"body"`
				Permalink string `json:"permalink"`
				Subreddit string `json:"subreddit"`
			} `json:"data"`
		} `json:"children"`
	} `json:"data"`
}

func (c *Client) savedPage(ctx context.Context, tok *oauth2.Token, username, after string) ([]Item, string, error) {
	endpoint := fmt.Sprintf("%s/user/%s/saved?limit=%d&raw_json=1", c.apiBase, url.PathEscape(username), pageLimit)
	if after != "" {
		endpoint += "&after=" + url.QueryEscape(after)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, endpoint, nil)
	if err != nil {
		return nil, "", common.ErrExternalService
	}
	req.Header.Set("Authorization", "Bearer "+tok.AccessToken)
	req.Header.Set("User-Agent", c.userAgent)

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, "", common.ErrExternalService
	}
	defer func() {
		_, _ = io.Copy(io.Discard, resp.Body)
		_ = resp.Body.Close()
	}()

	switch {
	case resp.StatusCode == http.StatusUnauthorized || resp.StatusCode == http.StatusForbidden:
		return nil, "", common.ErrInvalidRedditCredentials
	case resp.StatusCode != http.StatusOK:
		return nil, "", common.ErrExternalService
	}

	var l listing
	if err := json.NewDecoder(resp.Body).Decode(&l); err != nil {
		return nil, "", common.ErrExternalService
	}

	items := make([]Item, 0, len(l.Data.Children))
	for _, child := range l.Data.Children {
		item := Item{
			Permalink: child.Data.Permalink,
			Subreddit: child.Data.Subreddit,
		}
		if child.Kind == "t1" {
			item.Kind = KindComment
			item.TitleOrBody = child.Data.Body
		} else {
			item.Kind = KindPost
			item.TitleOrBody = child.Data.Title
		}
		items = append(items, item)
	}

	return items, l.Data.After, nil
}
