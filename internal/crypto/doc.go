// Package crypto seals secrets at rest with a passphrase-derived key:
// argon2id for key derivation, ChaCha20-Poly1305 for the AEAD. The derived
// key is wiped after use.
package crypto
