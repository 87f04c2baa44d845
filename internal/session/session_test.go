package session

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/google/uuid"

	"sfutils/internal/sign"
)

func newSession(t *testing.T, cfg Config) *Session {
	t.Helper()
	s, err := New(cfg)
	if err != nil {
		t.Fatalf("New: %v", err)
	}
	return s
}

func writeEnvelope(w http.ResponseWriter, httpCode int, data string) {
	w.Header().Set("Content-Type", "application/json")
	fmt.Fprintf(w, `{"status":{"httpCode":%d},"data":%s}`, httpCode, data)
}

func TestNewDefaults(t *testing.T) {
	s := newSession(t, Config{})
	if _, err := uuid.Parse(s.DeviceToken()); err != nil {
		t.Errorf("generated device token %q is not a UUID: %v", s.DeviceToken(), err)
	}
	if s.DeviceToken() != strings.ToLower(s.DeviceToken()) {
		t.Errorf("device token %q is not lowercase", s.DeviceToken())
	}
	if s.AppVersion() != sign.DefaultVersion() {
		t.Errorf("app version = %q, want %q", s.AppVersion(), sign.DefaultVersion())
	}
	if s.Channel() != DefaultChannel {
		t.Errorf("channel = %q, want %q", s.Channel(), DefaultChannel)
	}
	if s.LoggedIn() {
		t.Error("fresh session is logged in")
	}
}

func TestNewRejectsBadDeviceToken(t *testing.T) {
	if _, err := New(Config{DeviceToken: "not-a-uuid"}); !errors.Is(err, ErrInvalidDeviceToken) {
		t.Fatalf("err = %v, want ErrInvalidDeviceToken", err)
	}
}

func TestNewRejectsUnknownVersion(t *testing.T) {
	if _, err := New(Config{AppVersion: "0.0.1(android;1)"}); !errors.Is(err, ErrUnsupportedVersion) {
		t.Fatalf("err = %v, want ErrUnsupportedVersion", err)
	}
}

func TestHeaders(t *testing.T) {
	s := newSession(t, Config{DeviceToken: "AABBCCDD-EEFF-0011-2233-445566778899"})
	h := s.Headers(nil)

	if got := h.Get("Authorization"); got != sign.Authorization {
		t.Errorf("Authorization = %q", got)
	}
	if got := h.Get("Accept"); got != "application/vnd.sfacg.api+json;version=1" {
		t.Errorf("Accept = %q", got)
	}
	wantUA := "boluobao/" + s.AppVersion() + "/HomePage/aabbccdd-eeff-0011-2233-445566778899"
	if got := h.Get("User-Agent"); got != wantUA {
		t.Errorf("User-Agent = %q, want %q", got, wantUA)
	}
	security := h.Get("SFSecurity")
	if !strings.HasPrefix(security, "nonce=") || !strings.Contains(security, "&sign=") {
		t.Errorf("SFSecurity = %q", security)
	}
	if !strings.Contains(security, "devicetoken=AABBCCDD-EEFF-0011-2233-445566778899") {
		t.Errorf("SFSecurity device token not uppercased: %q", security)
	}
}

func TestHeadersExtraOverridesInPlace(t *testing.T) {
	s := newSession(t, Config{})
	h := s.Headers(map[string]string{"user-agent": "custom/1.0"})
	values := h.Values("User-Agent")
	if len(values) != 1 || values[0] != "custom/1.0" {
		t.Fatalf("User-Agent values = %v, want exactly [custom/1.0]", values)
	}
}

func TestHeadersWithPool(t *testing.T) {
	key := sign.Key{
		Nonce:       "11111111-1111-1111-1111-111111111111",
		Timestamp:   "1700000000000",
		DeviceToken: "AABBCCDD-EEFF-0011-2233-445566778899",
		Sign:        "40ED735F71F4B0FD1702623A9A3490A4",
	}
	s := newSession(t, Config{Keys: sign.NewPool([]sign.Key{key})})
	h := s.Headers(nil)

	if got := h.Get("SFSecurity"); got != key.Encode() {
		t.Errorf("SFSecurity = %q, want the pool key verbatim", got)
	}
	// The User-Agent follows the picked key so the pairing stays consistent.
	if got := h.Get("User-Agent"); !strings.HasSuffix(got, "/aabbccdd-eeff-0011-2233-445566778899") {
		t.Errorf("User-Agent = %q, want the pool key's device token lowercased", got)
	}
}

func TestCookies(t *testing.T) {
	s := newSession(t, Config{Token: "tok", Session: "ses"})
	cookies := s.Cookies()
	if len(cookies) != 2 {
		t.Fatalf("got %d cookies", len(cookies))
	}
	if cookies[0].Name != ".SFCommunity" || cookies[0].Value != "tok" {
		t.Errorf("cookie 0 = %v", cookies[0])
	}
	if cookies[1].Name != "session_APP" || cookies[1].Value != "ses" {
		t.Errorf("cookie 1 = %v", cookies[1])
	}
}

func TestLoginWithTokenPair(t *testing.T) {
	calls := 0
	var gotCookie string
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		calls++
		gotCookie = r.Header.Get("Cookie")
		if r.URL.Path != "/user" {
			t.Errorf("path = %q, want /user", r.URL.Path)
		}
		writeEnvelope(w, 200, `{"accountId":42,"nickName":"reader"}`)
	}))
	defer srv.Close()

	s := newSession(t, Config{BaseURL: srv.URL})
	err := s.Login(context.Background(), LoginOptions{Token: "tok", Session: "ses"})
	if err != nil {
		t.Fatalf("Login: %v", err)
	}
	if !s.LoggedIn() {
		t.Fatal("session not logged in after successful verification")
	}
	if calls != 1 {
		t.Fatalf("verification made %d calls, want 1", calls)
	}
	if !strings.Contains(gotCookie, ".SFCommunity=tok") || !strings.Contains(gotCookie, "session_APP=ses") {
		t.Errorf("verification request cookies = %q", gotCookie)
	}

	// Logging in again without Force is a network-free no-op.
	if err := s.Login(context.Background(), LoginOptions{}); err != nil {
		t.Fatalf("second Login: %v", err)
	}
	if calls != 1 {
		t.Fatalf("idempotent login made extra calls: %d total", calls)
	}
}

func TestLoginVerificationFailureIsSilent(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		writeEnvelope(w, 401, `null`)
	}))
	defer srv.Close()

	s := newSession(t, Config{BaseURL: srv.URL})
	if err := s.Login(context.Background(), LoginOptions{Token: "bad", Session: "bad"}); err != nil {
		t.Fatalf("Login returned an error for an auth failure: %v", err)
	}
	if s.LoggedIn() {
		t.Fatal("session logged in despite failed verification")
	}
}

func TestLoginAccountPasswordAdoptsCookies(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		switch r.URL.Path {
		case "/sessions":
			if r.Method != http.MethodPost {
				t.Errorf("sessions method = %s", r.Method)
			}
			http.SetCookie(w, &http.Cookie{Name: ".SFCommunity", Value: "fresh-tok"})
			http.SetCookie(w, &http.Cookie{Name: "session_APP", Value: "fresh-ses"})
			writeEnvelope(w, 200, `null`)
		case "/user":
			writeEnvelope(w, 200, `{"accountId":1}`)
		default:
			t.Errorf("unexpected path %q", r.URL.Path)
		}
	}))
	defer srv.Close()

	s := newSession(t, Config{BaseURL: srv.URL, Token: "old", Session: "old"})
	if err := s.Login(context.Background(), LoginOptions{Account: "user", Password: "pass"}); err != nil {
		t.Fatalf("Login: %v", err)
	}
	creds := s.Credentials()
	if creds.Token != "fresh-tok" || creds.Session != "fresh-ses" {
		t.Fatalf("credentials = %+v, want the exchanged cookies (old ones overwritten)", creds)
	}
	if !s.LoggedIn() {
		t.Fatal("not logged in after exchange + verification")
	}
}

func TestLoginForceLogsOutFirst(t *testing.T) {
	calls := 0
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		calls++
		writeEnvelope(w, 200, `{"accountId":1}`)
	}))
	defer srv.Close()

	s := newSession(t, Config{BaseURL: srv.URL})
	if err := s.Login(context.Background(), LoginOptions{Token: "t", Session: "s"}); err != nil {
		t.Fatal(err)
	}
	if err := s.Login(context.Background(), LoginOptions{Force: true}); err != nil {
		t.Fatal(err)
	}
	if calls != 2 {
		t.Fatalf("forced login made %d total calls, want 2", calls)
	}
	if !s.LoggedIn() {
		t.Fatal("not logged in after forced re-login")
	}
}
