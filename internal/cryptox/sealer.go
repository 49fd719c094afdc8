// Package cryptox seals small secrets at rest with AES-GCM.
package cryptox

import (
	"crypto/aes"
	"crypto/cipher"
	"crypto/sha256"
	"errors"
	"io"

	"github.com/dmitrijs2005/registerface/internal/common"
	"golang.org/x/crypto/hkdf"
)

// KeySize is the AES-256 key length derived from the server secret.
const KeySize = 32

var (
	ErrEmptySecret    = errors.New("empty secret")
	ErrSealedTooShort = errors.New("sealed data too short")
)

// faceDataInfo is the HKDF context string; changing it invalidates every stored descriptor.
var faceDataInfo = []byte("registerface/face-data/v1")

// DeriveKey expands secret into a KeySize key bound to info.
func DeriveKey(secret, info []byte) ([]byte, error) {
	if len(secret) == 0 {
		return nil, ErrEmptySecret
	}
	key := make([]byte, KeySize)
	if _, err := io.ReadFull(hkdf.New(sha256.New, secret, nil, info), key); err != nil {
		return nil, err
	}
	return key, nil
}

// Sealer encrypts and authenticates face descriptors before they reach the database.
//
// The sealed form is nonce || ciphertext, so a row carries everything Open needs
// besides the key.
type Sealer struct {
	aead cipher.AEAD
}

// NewSealer derives the face-data key from secret and prepares an AES-GCM instance.
func NewSealer(secret []byte) (*Sealer, error) {
	key, err := DeriveKey(secret, faceDataInfo)
	if err != nil {
		return nil, err
	}
	defer common.WipeByteArray(key)

	block, err := aes.NewCipher(key)
	if err != nil {
		return nil, err
	}
	aead, err := cipher.NewGCM(block)
	if err != nil {
		return nil, err
	}
	return &Sealer{aead: aead}, nil
}

// Seal encrypts plaintext under a fresh random nonce.
func (s *Sealer) Seal(plaintext []byte) ([]byte, error) {
	nonce := common.GenerateRandByteArray(s.aead.NonceSize())

	out := make([]byte, 0, len(nonce)+len(plaintext)+s.aead.Overhead())
	out = append(out, nonce...)
	return s.aead.Seal(out, nonce, plaintext, nil), nil
}

// Open reverses Seal. Tampered or foreign data yields an error.
func (s *Sealer) Open(sealed []byte) ([]byte, error) {
	ns := s.aead.NonceSize()
	if len(sealed) < ns+s.aead.Overhead() {
		return nil, ErrSealedTooShort
	}
	nonce, ciphertext := sealed[:ns], sealed[ns:]
	return s.aead.Open(nil, nonce, ciphertext, nil)
}

// SealString is Seal for string payloads.
func (s *Sealer) SealString(v string) ([]byte, error) {
	return s.Seal([]byte(v))
}

// OpenString is Open returning a string.
func (s *Sealer) OpenString(sealed []byte) (string, error) {
	b, err := s.Open(sealed)
	if err != nil {
		return "", err
	}
	return string(b), nil
}
