// Package crypto wraps the library primitives used to seal identity
// secrets under a passphrase.
//
// Sealing uses AES-256-GCM with:
//   - 32-byte key derived from the passphrase via PBKDF2-HMAC-SHA256
//   - 12-byte random nonce prepended to every sealed blob
//
// Memory safety:
//   - Use ClearBytes() to zero passphrases and keys after use
package crypto
