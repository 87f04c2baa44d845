package store

import (
	"encoding/json"
	"errors"
	"os"
	"path/filepath"
	"sync"

	"sfutils/internal/crypto"
	"sfutils/internal/domain"
)

const credentialsFile = "credentials.enc"

// CredentialStore keeps one sealed credential record under its directory.
type CredentialStore struct {
	dir string
	mu  sync.Mutex
}

// NewCredentialStore returns a store rooted at dir.
func NewCredentialStore(dir string) *CredentialStore {
	return &CredentialStore{dir: dir}
}

// Save seals creds with passphrase and writes them, replacing any prior record.
func (s *CredentialStore) Save(passphrase string, creds domain.Credentials) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	raw, err := json.Marshal(creds)
	if err != nil {
		return err
	}
	box, err := crypto.Seal(passphrase, raw)
	if err != nil {
		return err
	}
	return writeJSON(filepath.Join(s.dir, credentialsFile), box, 0o600)
}

// Load opens the stored record. ok is false when no record exists.
func (s *CredentialStore) Load(passphrase string) (domain.Credentials, bool, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	raw, err := os.ReadFile(filepath.Join(s.dir, credentialsFile))
	if errors.Is(err, os.ErrNotExist) {
		return domain.Credentials{}, false, nil
	}
	if err != nil {
		return domain.Credentials{}, false, err
	}
	var box crypto.Box
	if err := json.Unmarshal(raw, &box); err != nil {
		return domain.Credentials{}, false, err
	}
	plain, err := crypto.Open(passphrase, box)
	if err != nil {
		return domain.Credentials{}, false, err
	}
	var creds domain.Credentials
	if err := json.Unmarshal(plain, &creds); err != nil {
		return domain.Credentials{}, false, err
	}
	return creds, true, nil
}

// Clear removes the stored record. Missing is not an error.
func (s *CredentialStore) Clear() error {
	s.mu.Lock()
	defer s.mu.Unlock()

	err := os.Remove(filepath.Join(s.dir, credentialsFile))
	if errors.Is(err, os.ErrNotExist) {
		return nil
	}
	return err
}

// writeJSON writes v as indented JSON via a temp file then rename.
func writeJSON(path string, v any, mode os.FileMode) error {
	b, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		return err
	}
	tmp := path + ".tmp"
	if err := os.WriteFile(tmp, b, mode); err != nil {
		return err
	}
	return os.Rename(tmp, path)
}

// Compile-time assertion that CredentialStore implements domain.CredentialStore.
var _ domain.CredentialStore = (*CredentialStore)(nil)
