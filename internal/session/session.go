package session

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"

	"github.com/google/uuid"

	"sfutils/internal/cache"
	"sfutils/internal/domain"
	"sfutils/internal/sign"
)

// DefaultBaseURL is the remote API root.
const DefaultBaseURL = "https://api.sfacg.com"

// DefaultChannel is the app login channel reported in the User-Agent.
const DefaultChannel = "HomePage"

var (
	// ErrInvalidDeviceToken is returned by New when the configured device
	// token is not a UUID. This is the one unrecoverable configuration error.
	ErrInvalidDeviceToken = errors.New("device token is not a valid UUID")
	// ErrUnsupportedVersion is returned by New when no appkey is known for
	// the configured app version.
	ErrUnsupportedVersion = errors.New("unsupported app version")
)

// Config carries construction options for a Session. The zero value is
// usable: a random device token, the default app version and channel, the
// real API base, and no credentials.
type Config struct {
	// Token is the .SFCommunity cookie value. Empty until login.
	Token string
	// Session is the session_APP cookie value. Empty until login.
	Session string
	// DeviceToken identifies the client installation. Must be a UUID;
	// generated randomly when empty. Stored lowercased.
	DeviceToken string
	// AppVersion selects the appkey used for signing. Defaults to the first
	// supported version.
	AppVersion string
	// Channel is the app login channel. Defaults to DefaultChannel.
	Channel string
	// BaseURL overrides the API root, for tests.
	BaseURL string
	// HTTP is the transport. Defaults to http.DefaultClient.
	HTTP *http.Client
	// Keys, when non-nil, switches signing to pre-provisioned pool keys;
	// one is drawn per request.
	Keys *sign.Pool
	// CacheTTL bounds the freshness of the cached profile. Defaults to
	// cache.DefaultTTL.
	CacheTTL time.Duration
}

// Session is the credential state for one client identity. It is created
// once and lives for the client's duration; entity wrappers share it without
// owning it. Not safe for concurrent use.
type Session struct {
	token       string
	session     string
	deviceToken string
	appVersion  string
	appKey      string
	channel     string
	base        string
	http        *http.Client
	keys        *sign.Pool
	logon       bool
	cache       *cache.Cache
	ttl         time.Duration
}

// New validates cfg and returns a Session in the logged-out state.
func New(cfg Config) (*Session, error) {
	device := cfg.DeviceToken
	if device == "" {
		device = uuid.NewString()
	}
	if _, err := uuid.Parse(device); err != nil {
		return nil, fmt.Errorf("%w: %q", ErrInvalidDeviceToken, cfg.DeviceToken)
	}
	version := cfg.AppVersion
	if version == "" {
		version = sign.DefaultVersion()
	}
	appKey, ok := sign.AppKey(version)
	if !ok {
		return nil, fmt.Errorf("%w: %q", ErrUnsupportedVersion, version)
	}
	channel := cfg.Channel
	if channel == "" {
		channel = DefaultChannel
	}
	base := cfg.BaseURL
	if base == "" {
		base = DefaultBaseURL
	}
	client := cfg.HTTP
	if client == nil {
		client = http.DefaultClient
	}
	ttl := cfg.CacheTTL
	if ttl <= 0 {
		ttl = cache.DefaultTTL
	}
	return &Session{
		token:       cfg.Token,
		session:     cfg.Session,
		deviceToken: strings.ToLower(device),
		appVersion:  version,
		appKey:      appKey,
		channel:     channel,
		base:        strings.TrimRight(base, "/"),
		http:        client,
		keys:        cfg.Keys,
		cache:       cache.New(),
		ttl:         ttl,
	}, nil
}

// DeviceToken returns the lowercase device identity.
func (s *Session) DeviceToken() string { return s.deviceToken }

// AppVersion returns the app version the session signs as.
func (s *Session) AppVersion() string { return s.appVersion }

// Channel returns the app login channel.
func (s *Session) Channel() string { return s.channel }

// LoggedIn reports whether a login verification previously succeeded with the
// current credentials. It is never re-checked automatically and can go stale.
func (s *Session) LoggedIn() bool { return s.logon }

// Credentials returns the session's persistable credential record.
func (s *Session) Credentials() domain.Credentials {
	return domain.Credentials{
		Token:       s.token,
		Session:     s.session,
		DeviceToken: s.deviceToken,
		AppVersion:  s.appVersion,
		Channel:     s.channel,
	}
}

// SetCredentials replaces both tokens. The logon flag is untouched; callers
// wanting verification go through Login.
func (s *Session) SetCredentials(token, session string) {
	s.token = token
	s.session = session
}

// UserAgent returns the boluobao/{appversion}/{channel}/{devicetoken} value
// for the session's own device token.
func (s *Session) UserAgent() string {
	return s.userAgent(s.deviceToken)
}

func (s *Session) userAgent(device string) string {
	return "boluobao/" + s.appVersion + "/" + s.channel + "/" + device
}

// Headers assembles the authenticated header set. When a key pool is
// configured, one key is drawn for this request and supplies both the
// signature and the User-Agent device token, keeping the pairing the remote
// verifies internally consistent; otherwise the signature is computed fresh
// from the session's own device token. Entries in extra override same-named
// defaults case-insensitively, replacing the canonical key in place.
func (s *Session) Headers(extra map[string]string) http.Header {
	device := s.deviceToken
	var security string
	if s.keys != nil && s.keys.Len() > 0 {
		key := s.keys.Pick()
		device = strings.ToLower(key.DeviceToken)
		security = key.Encode()
	} else {
		security = sign.Security(s.deviceToken, s.appKey)
	}
	h := http.Header{}
	h.Set("Accept-Charset", "UTF-8")
	h.Set("Authorization", sign.Authorization)
	h.Set("Accept", "application/vnd.sfacg.api+json;version=1")
	h.Set("User-Agent", s.userAgent(device))
	h.Set("SFSecurity", security)
	for name, value := range extra {
		h.Set(name, value)
	}
	return h
}

// Cookies returns the two credential cookies.
func (s *Session) Cookies() []*http.Cookie {
	return []*http.Cookie{
		{Name: ".SFCommunity", Value: s.token},
		{Name: "session_APP", Value: s.session},
	}
}

// Do performs an authenticated call against {base}/{path} and returns the raw
// transport response. The caller owns the body.
func (s *Session) Do(ctx context.Context, method, path string, opts domain.InvokeOptions) (*http.Response, error) {
	u := s.base + "/" + strings.TrimPrefix(path, "/")
	if len(opts.Query) > 0 {
		u += "?" + opts.Query.Encode()
	}
	var body io.Reader
	if opts.Body != nil {
		raw, err := json.Marshal(opts.Body)
		if err != nil {
			return nil, err
		}
		body = bytes.NewReader(raw)
	}
	req, err := http.NewRequestWithContext(ctx, method, u, body)
	if err != nil {
		return nil, err
	}
	req.Header = s.Headers(opts.Headers)
	if opts.Body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	for _, c := range s.Cookies() {
		req.AddCookie(c)
	}
	return s.http.Do(req)
}

// Invoke performs an authenticated call and parses the JSON envelope. The
// envelope is returned for any decodable response; business failure lives in
// its status block, not in the error.
func (s *Session) Invoke(ctx context.Context, method, path string, opts domain.InvokeOptions) (*domain.Envelope, error) {
	resp, err := s.Do(ctx, method, path, opts)
	if err != nil {
		return nil, err
	}
	defer resp.Body.Close()
	var env domain.Envelope
	if err := json.NewDecoder(resp.Body).Decode(&env); err != nil {
		return nil, fmt.Errorf("decode %s %s: %w", method, path, err)
	}
	return &env, nil
}

// Compile-time assertion that Session implements domain.Invoker.
var _ domain.Invoker = (*Session)(nil)
