package api

import (
	"context"
	"net/http"
	"net/url"
	"strconv"
	"strings"
	"time"

	"sfutils/internal/domain"
)

// badgeTimeLayout is ISO-8601 at second precision, as the badge endpoint
// expects its date parameters.
const badgeTimeLayout = "2006-01-02T15:04:05"

// Client wraps an Invoker with one method per remote operation.
type Client struct {
	session domain.Invoker
}

// New returns a gateway issuing calls through session.
func New(session domain.Invoker) *Client {
	return &Client{session: session}
}

// Users fetches several users at once.
func (c *Client) Users(ctx context.Context, uids []int, expand []string) (*domain.Envelope, error) {
	q := url.Values{}
	q.Set("uids", joinInts(uids))
	q.Set("expand", strings.Join(expand, ","))
	return c.session.Invoke(ctx, http.MethodGet, "users", domain.InvokeOptions{Query: q})
}

// UserInfo fetches one user by id.
func (c *Client) UserInfo(ctx context.Context, uid int, expand []string) (*domain.Envelope, error) {
	q := url.Values{}
	q.Set("expand", strings.Join(expand, ","))
	return c.session.Invoke(ctx, http.MethodGet, "users/"+strconv.Itoa(uid), domain.InvokeOptions{Query: q})
}

// SignInfo fetches the current user's sign-in record.
func (c *Client) SignInfo(ctx context.Context) (*domain.Envelope, error) {
	return c.session.Invoke(ctx, http.MethodGet, "user/signInfo", domain.InvokeOptions{})
}

// Chapter fetches one chapter. Content comes back only when "content" is in
// expand; autoOrder mirrors the app's auto-purchase switch.
func (c *Client) Chapter(ctx context.Context, chapterID int, expand []string, autoOrder bool) (*domain.Envelope, error) {
	q := url.Values{}
	q.Set("expand", strings.Join(expand, ","))
	q.Set("autoOrder", strconv.FormatBool(autoOrder))
	return c.session.Invoke(ctx, http.MethodGet, "Chaps/"+strconv.Itoa(chapterID), domain.InvokeOptions{Query: q})
}

// Novel fetches a novel's info record.
func (c *Client) Novel(ctx context.Context, novelID int, expand []string) (*domain.Envelope, error) {
	q := url.Values{}
	q.Set("expand", strings.Join(expand, ","))
	return c.session.Invoke(ctx, http.MethodGet, "novels/"+strconv.Itoa(novelID), domain.InvokeOptions{Query: q})
}

// NovelDirs fetches a novel's full volume/chapter directory.
func (c *Client) NovelDirs(ctx context.Context, novelID int, expand []string) (*domain.Envelope, error) {
	q := url.Values{}
	q.Set("expand", strings.Join(expand, ","))
	return c.session.Invoke(ctx, http.MethodGet, "novels/"+strconv.Itoa(novelID)+"/dirs", domain.InvokeOptions{Query: q})
}

// Me fetches the current user's profile. Requires auth.
func (c *Client) Me(ctx context.Context, expand []string) (*domain.Envelope, error) {
	q := url.Values{}
	q.Set("expand", strings.Join(expand, ","))
	return c.session.Invoke(ctx, http.MethodGet, "user", domain.InvokeOptions{Query: q})
}

// AndroidCfg fetches the android client configuration blob.
func (c *Client) AndroidCfg(ctx context.Context) (*domain.Envelope, error) {
	return c.session.Invoke(ctx, http.MethodGet, "androidcfg", domain.InvokeOptions{})
}

// AuthorNovels lists an author's novels.
func (c *Client) AuthorNovels(ctx context.Context, authorID int) (*domain.Envelope, error) {
	return c.session.Invoke(ctx, http.MethodGet, "authors/"+strconv.Itoa(authorID)+"/novels", domain.InvokeOptions{})
}

// AuthorInfo fetches an author record.
func (c *Client) AuthorInfo(ctx context.Context, authorID int, expand []string) (*domain.Envelope, error) {
	q := url.Values{}
	q.Set("authorId", strconv.Itoa(authorID))
	q.Set("expand", strings.Join(expand, ","))
	return c.session.Invoke(ctx, http.MethodGet, "authors", domain.InvokeOptions{Query: q})
}

// BadgeQuery carries the badge endpoint's parameters.
type BadgeQuery struct {
	VIPDateTime      time.Time
	BadgeAddDateTime time.Time
	Channel          string
	// UserIdentifer is spelled the way the remote expects it.
	UserIdentifer string
}

// Badge fetches the user badge state.
func (c *Client) Badge(ctx context.Context, b BadgeQuery) (*domain.Envelope, error) {
	q := url.Values{}
	q.Set("vipDateTime", b.VIPDateTime.Format(badgeTimeLayout))
	q.Set("badgeAddDateTime", b.BadgeAddDateTime.Format(badgeTimeLayout))
	q.Set("channel", b.Channel)
	q.Set("userIdentifer", b.UserIdentifer)
	return c.session.Invoke(ctx, http.MethodGet, "user/badge", domain.InvokeOptions{Query: q})
}

// LoginExchange posts account credentials to the sessions endpoint and
// returns the raw response; the fresh cookies ride on its Set-Cookie headers.
// Most callers want Session.Login instead.
func (c *Client) LoginExchange(ctx context.Context, username, password string) (*http.Response, error) {
	return c.session.Do(ctx, http.MethodPost, "sessions", domain.InvokeOptions{
		Body: map[string]string{
			"username": username,
			"password": password,
		},
	})
}

func joinInts(ids []int) string {
	parts := make([]string, len(ids))
	for i, id := range ids {
		parts[i] = strconv.Itoa(id)
	}
	return strings.Join(parts, ",")
}
