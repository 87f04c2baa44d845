package session

import (
	"context"
	"encoding/json"
	"io"
	"net/http"
	"net/url"

	"sfutils/internal/domain"
)

const meKey = "me"

// LoginOptions carries the optional inputs of a login attempt.
type LoginOptions struct {
	// Account and Password, when both set, are exchanged against the
	// sessions endpoint for fresh cookies.
	Account  string
	Password string
	// Token and Session are adopted directly when the session still has no
	// credentials after the exchange step.
	Token   string
	Session string
	// Force logs out first when already logged in. Without it, a login while
	// logged in is a network-free no-op.
	Force bool
}

// Login drives the LoggedOut -> LoggedIn transition.
//
// Already logged in without Force: no-op, no network. With Force: logout
// first. Then, in order: an account/password exchange (transport 200 adopts
// the returned cookies, overwriting whatever was set), adoption of explicit
// token/session values if credentials are still empty, and finally identity
// verification against the profile endpoint. A successful envelope flips the
// logon flag; a failed one leaves the session logged out silently. Only
// transport failures return an error.
func (s *Session) Login(ctx context.Context, opts LoginOptions) error {
	if s.logon {
		if !opts.Force {
			return nil
		}
		s.Logout()
	}

	if opts.Account != "" && opts.Password != "" {
		resp, err := s.Do(ctx, http.MethodPost, "sessions", domain.InvokeOptions{
			Body: map[string]string{
				"username": opts.Account,
				"password": opts.Password,
			},
		})
		if err != nil {
			return err
		}
		io.Copy(io.Discard, resp.Body)
		resp.Body.Close()
		if resp.StatusCode == http.StatusOK {
			for _, c := range resp.Cookies() {
				switch c.Name {
				case ".SFCommunity":
					s.token = c.Value
				case "session_APP":
					s.session = c.Value
				}
			}
		}
	}

	if s.token == "" || s.session == "" {
		if opts.Token != "" {
			s.token = opts.Token
		}
		if opts.Session != "" {
			s.session = opts.Session
		}
	}

	env, err := s.fetchProfile(ctx)
	if err != nil {
		return err
	}
	if env.OK() {
		s.logon = true
	}
	return nil
}

// Logout clears the logon flag. Credentials are retained.
func (s *Session) Logout() {
	s.logon = false
}

// Me returns the current user's profile, cached under the session TTL.
//
// On a stale or missing entry the profile endpoint is called. A failed
// envelope never overwrites good data: the previous cached value is re-stored
// verbatim and returned, which also means a first-ever failure caches the
// absent state. ok is false while no profile has ever been fetched
// successfully.
func (s *Session) Me(ctx context.Context) (*domain.UserProfile, bool, error) {
	var prev *domain.UserProfile
	fresh, _, err := s.cache.Load(meKey, s.ttl, &prev)
	if err != nil {
		return nil, false, err
	}
	if fresh {
		return prev, prev != nil, nil
	}

	env, err := s.fetchProfile(ctx)
	if err != nil {
		return nil, false, err
	}
	value := prev
	if env.OK() {
		var profile domain.UserProfile
		if err := json.Unmarshal(env.Data, &profile); err != nil {
			return nil, false, err
		}
		value = &profile
	}
	if err := s.cache.Store(meKey, value); err != nil {
		return nil, false, err
	}
	return value, value != nil, nil
}

func (s *Session) fetchProfile(ctx context.Context) (*domain.Envelope, error) {
	return s.Invoke(ctx, http.MethodGet, "user", domain.InvokeOptions{
		Query: url.Values{"expand": {""}},
	})
}
