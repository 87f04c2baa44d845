package app_test

import (
	"os"
	"path/filepath"
	"testing"

	"sfutils/internal/app"
)

func TestNewWireDefaults(t *testing.T) {
	w, err := app.NewWire(app.Config{Home: t.TempDir()})
	if err != nil {
		t.Fatalf("NewWire: %v", err)
	}
	if w.Session == nil || w.API == nil || w.Credentials == nil {
		t.Fatalf("wire incomplete: %+v", w)
	}
	if w.Session.LoggedIn() {
		t.Error("fresh wire is logged in")
	}
}

func TestNewWireBadKeyPool(t *testing.T) {
	_, err := app.NewWire(app.Config{Home: t.TempDir(), KeyPool: "/does/not/exist.yaml"})
	if err == nil {
		t.Fatal("NewWire accepted a missing key pool file")
	}
}

func TestNewWireWithKeyPool(t *testing.T) {
	dir := t.TempDir()
	pool := filepath.Join(dir, "keys.yaml")
	data := `- nonce: "11111111-1111-1111-1111-111111111111"
  timestamp: "1700000000000"
  devicetoken: "AABBCCDD-EEFF-0011-2233-445566778899"
  sign: "40ED735F71F4B0FD1702623A9A3490A4"
`
	if err := os.WriteFile(pool, []byte(data), 0o600); err != nil {
		t.Fatal(err)
	}

	w, err := app.NewWire(app.Config{Home: dir, KeyPool: pool})
	if err != nil {
		t.Fatalf("NewWire: %v", err)
	}
	h := w.Session.Headers(nil)
	if got := h.Get("SFSecurity"); got == "" {
		t.Fatal("no SFSecurity header with pool configured")
	}
}
