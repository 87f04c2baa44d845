package crypto

import (
	"crypto/rand"

	"golang.org/x/crypto/argon2"
	"golang.org/x/crypto/chacha20poly1305"
)

const (
	keyBytes  = 32
	saltBytes = 16
)

// Box is a sealed secret: the KDF salt, the AEAD nonce, and the ciphertext.
// It serializes cleanly to JSON for file storage.
type Box struct {
	Salt       []byte `json:"salt"`
	Nonce      []byte `json:"nonce"`
	Ciphertext []byte `json:"ciphertext"`
}

func deriveKey(passphrase string, salt []byte) []byte {
	return argon2.IDKey([]byte(passphrase), salt, 1, 1<<16, 4, keyBytes)
}

// Zero overwrites b.
func Zero(b []byte) {
	for i := range b {
		b[i] = 0
	}
}

// Seal encrypts plaintext under a key derived from passphrase and a fresh
// random salt.
func Seal(passphrase string, plaintext []byte) (Box, error) {
	salt := make([]byte, saltBytes)
	if _, err := rand.Read(salt); err != nil {
		return Box{}, err
	}
	key := deriveKey(passphrase, salt)
	defer Zero(key)

	aead, err := chacha20poly1305.New(key)
	if err != nil {
		return Box{}, err
	}
	nonce := make([]byte, chacha20poly1305.NonceSize)
	if _, err := rand.Read(nonce); err != nil {
		return Box{}, err
	}
	return Box{
		Salt:       salt,
		Nonce:      nonce,
		Ciphertext: aead.Seal(nil, nonce, plaintext, nil),
	}, nil
}

// Open decrypts a sealed box. A wrong passphrase fails authentication and
// returns an error.
func Open(passphrase string, box Box) ([]byte, error) {
	key := deriveKey(passphrase, box.Salt)
	defer Zero(key)

	aead, err := chacha20poly1305.New(key)
	if err != nil {
		return nil, err
	}
	return aead.Open(nil, box.Nonce, box.Ciphertext, nil)
}
