package store_test

import (
	"testing"

	"sfutils/internal/domain"
	"sfutils/internal/store"
)

func TestCredentialRoundTrip(t *testing.T) {
	s := store.NewCredentialStore(t.TempDir())
	creds := domain.Credentials{
		Token:       "tok",
		Session:     "ses",
		DeviceToken: "aabbccdd-eeff-0011-2233-445566778899",
		AppVersion:  "4.8.42(android;25)",
		Channel:     "HomePage",
	}
	if err := s.Save("passphrase", creds); err != nil {
		t.Fatalf("Save: %v", err)
	}

	got, ok, err := s.Load("passphrase")
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if !ok {
		t.Fatal("record missing after Save")
	}
	if got != creds {
		t.Fatalf("Load = %+v, want %+v", got, creds)
	}
}

func TestLoadMissingRecord(t *testing.T) {
	s := store.NewCredentialStore(t.TempDir())
	_, ok, err := s.Load("passphrase")
	if err != nil {
		t.Fatal(err)
	}
	if ok {
		t.Fatal("Load reported a record in an empty dir")
	}
}

func TestLoadWrongPassphrase(t *testing.T) {
	s := store.NewCredentialStore(t.TempDir())
	if err := s.Save("right", domain.Credentials{Token: "t"}); err != nil {
		t.Fatal(err)
	}
	if _, _, err := s.Load("wrong"); err == nil {
		t.Fatal("Load with wrong passphrase succeeded")
	}
}

func TestClear(t *testing.T) {
	s := store.NewCredentialStore(t.TempDir())
	if err := s.Clear(); err != nil {
		t.Fatalf("Clear with no record: %v", err)
	}
	if err := s.Save("p", domain.Credentials{Token: "t"}); err != nil {
		t.Fatal(err)
	}
	if err := s.Clear(); err != nil {
		t.Fatalf("Clear: %v", err)
	}
	if _, ok, _ := s.Load("p"); ok {
		t.Fatal("record survived Clear")
	}
}
