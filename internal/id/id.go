// Package id stores a signing identity whose private seed is sealed under
// a passphrase. Signing itself happens elsewhere; this package only locks
// and unlocks the key material.
package id

import (
	"crypto/ed25519"
	"encoding/base64"
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/tommilligan/crev/internal/crypto"
	"github.com/tommilligan/crev/internal/fsutil"
	"gopkg.in/yaml.v3"
)

const currentVersion = 1

var (
	ErrWrongPassphrase = errors.New("wrong passphrase")
	ErrUnsupported     = errors.New("unsupported identity file version")
)

var b64 = base64.RawURLEncoding

// LockedID is the on-disk form of an identity
type LockedID struct {
	Version    int    `yaml:"version"`
	ID         string `yaml:"id"`
	URL        string `yaml:"url,omitempty"`
	Salt       string `yaml:"salt"`
	Iterations int    `yaml:"iterations"`
	SealedSeed string `yaml:"sealed-seed"`
}

// Generate creates a new identity sealed under passphrase
func Generate(url string, passphrase []byte) (*LockedID, error) {
	kdf, err := crypto.NewKDF()
	if err != nil {
		return nil, err
	}
	return generate(url, passphrase, kdf)
}

func generate(url string, passphrase []byte, kdf *crypto.KDF) (*LockedID, error) {
	seed, err := crypto.GenerateRandom(ed25519.SeedSize)
	if err != nil {
		return nil, err
	}
	defer crypto.ClearBytes(seed)

	key := kdf.DeriveKey(passphrase)
	defer crypto.ClearBytes(key)

	sealed, err := crypto.Seal(key, seed)
	if err != nil {
		return nil, fmt.Errorf("failed to seal identity: %w", err)
	}

	pub := ed25519.NewKeyFromSeed(seed).Public().(ed25519.PublicKey)
	return &LockedID{
		Version:    currentVersion,
		ID:         b64.EncodeToString(pub),
		URL:        url,
		Salt:       b64.EncodeToString(kdf.Salt),
		Iterations: kdf.Iterations,
		SealedSeed: b64.EncodeToString(sealed),
	}, nil
}

// Unlock returns the private key, or ErrWrongPassphrase
func (l *LockedID) Unlock(passphrase []byte) (ed25519.PrivateKey, error) {
	if l.Version != currentVersion {
		return nil, fmt.Errorf("%w: %d", ErrUnsupported, l.Version)
	}

	salt, err := b64.DecodeString(l.Salt)
	if err != nil {
		return nil, fmt.Errorf("invalid salt: %w", err)
	}
	sealed, err := b64.DecodeString(l.SealedSeed)
	if err != nil {
		return nil, fmt.Errorf("invalid sealed seed: %w", err)
	}

	kdf := &crypto.KDF{Salt: salt, Iterations: l.Iterations}
	key := kdf.DeriveKey(passphrase)
	defer crypto.ClearBytes(key)

	seed, err := crypto.Open(key, sealed)
	if err != nil {
		if errors.Is(err, crypto.ErrAuthFailed) {
			return nil, ErrWrongPassphrase
		}
		return nil, err
	}
	defer crypto.ClearBytes(seed)

	if len(seed) != ed25519.SeedSize {
		return nil, fmt.Errorf("invalid seed length %d", len(seed))
	}

	priv := ed25519.NewKeyFromSeed(seed)
	if b64.EncodeToString(priv.Public().(ed25519.PublicKey)) != l.ID {
		return nil, fmt.Errorf("identity %s does not match its sealed key", l.ID)
	}
	return priv, nil
}

// Save writes the identity to path atomically
func (l *LockedID) Save(path string) error {
	return fsutil.WriteWith(path, func(w io.Writer) error {
		enc := yaml.NewEncoder(w)
		enc.SetIndent(2)
		if err := enc.Encode(l); err != nil {
			return err
		}
		return enc.Close()
	})
}

// Load reads an identity written by Save
func Load(path string) (*LockedID, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read identity: %w", err)
	}

	var l LockedID
	if err := yaml.Unmarshal(data, &l); err != nil {
		return nil, fmt.Errorf("failed to parse identity %s: %w", path, err)
	}
	if l.ID == "" || l.SealedSeed == "" {
		return nil, fmt.Errorf("identity %s is incomplete", path)
	}
	return &l, nil
}
