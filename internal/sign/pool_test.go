package sign_test

import (
	"errors"
	"os"
	"path/filepath"
	"testing"

	"sfutils/internal/sign"
)

func TestKeyEncodeOrder(t *testing.T) {
	key := sign.Key{
		Nonce:       "N",
		Timestamp:   "123",
		DeviceToken: "DEV",
		Sign:        "SIG",
	}
	if got, want := key.Encode(), "nonce=N&timestamp=123&devicetoken=DEV&sign=SIG"; got != want {
		t.Fatalf("Encode = %q, want %q", got, want)
	}
}

func TestPoolPickMembership(t *testing.T) {
	keys := []sign.Key{
		{DeviceToken: "A"},
		{DeviceToken: "B"},
		{DeviceToken: "C"},
	}
	pool := sign.NewPool(keys)
	seen := map[string]bool{}
	for range 200 {
		k := pool.Pick()
		switch k.DeviceToken {
		case "A", "B", "C":
			seen[k.DeviceToken] = true
		default:
			t.Fatalf("Pick returned a key not in the pool: %+v", k)
		}
	}
	// 200 uniform draws over three keys miss one with negligible probability.
	if len(seen) != 3 {
		t.Errorf("Pick never returned some keys: saw %v", seen)
	}
}

func TestLoadPool(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "keys.yaml")
	data := `- nonce: "11111111-1111-1111-1111-111111111111"
  timestamp: "1700000000000"
  devicetoken: "AABBCCDD-EEFF-0011-2233-445566778899"
  sign: "40ED735F71F4B0FD1702623A9A3490A4"
`
	if err := os.WriteFile(path, []byte(data), 0o600); err != nil {
		t.Fatal(err)
	}

	pool, err := sign.LoadPool(path)
	if err != nil {
		t.Fatalf("LoadPool: %v", err)
	}
	if pool.Len() != 1 {
		t.Fatalf("Len = %d, want 1", pool.Len())
	}
	key := pool.Pick()
	if key.DeviceToken != "AABBCCDD-EEFF-0011-2233-445566778899" {
		t.Errorf("devicetoken = %q", key.DeviceToken)
	}
	if key.Timestamp != "1700000000000" {
		t.Errorf("timestamp = %q", key.Timestamp)
	}
}

func TestLoadPoolEmpty(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "keys.yaml")
	if err := os.WriteFile(path, []byte("[]\n"), 0o600); err != nil {
		t.Fatal(err)
	}
	if _, err := sign.LoadPool(path); !errors.Is(err, sign.ErrEmptyPool) {
		t.Fatalf("LoadPool on empty file: err = %v, want ErrEmptyPool", err)
	}
}
