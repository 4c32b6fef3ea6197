// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package crypto

import (
	"crypto/aes"
	"crypto/cipher"
	"crypto/rand"
	"encoding/base64"
	"errors"
	"fmt"
	"io"
	"strings"

	"golang.org/x/crypto/argon2"
)

// sealedPrefix marks values produced by [argonSealer.Seal]. The version lets
// the blob layout change without breaking old rows.
const sealedPrefix = "sealed:v1:"

const saltSize = 16

var (
	// ErrStoreKeyRequired is returned when a sealed value is read without a
	// store key configured.
	ErrStoreKeyRequired = errors.New("stored value is sealed but no store key is configured")
	// ErrUnsealFailed means the key is wrong or the value is corrupted.
	ErrUnsealFailed = errors.New("unable to unseal stored value")
)

// argonSealer derives a fresh AES-256 key per value with Argon2id from the
// store key and a random salt. blob = salt ‖ nonce ‖ ciphertext.
type argonSealer struct {
	storeKey []byte

	// Argon2id tuning parameters.
	argonTime    uint32
	argonMemory  uint32
	argonThreads uint8
	argonKeyLen  uint32
}

// NewSealer returns a [Sealer] keyed by storeKey. An empty storeKey yields a
// pass-through sealer that stores values as-is.
//
// Argon2id parameters follow the OWASP (2024) recommendation:
//   - time cost:   1 iteration
//   - memory cost: 64 MiB
//   - parallelism: 4 threads
//   - key length:  32 bytes (256 bits)
func NewSealer(storeKey string) Sealer {
	if storeKey == "" {
		return plainSealer{}
	}
	return newArgonSealer(storeKey, 1, 64*1024, 4)
}

func newArgonSealer(storeKey string, time, memory uint32, threads uint8) *argonSealer {
	return &argonSealer{
		storeKey:     []byte(storeKey),
		argonTime:    time,
		argonMemory:  memory,
		argonThreads: threads,
		argonKeyLen:  32,
	}
}

func (s *argonSealer) deriveKey(salt []byte) []byte {
	return argon2.IDKey(s.storeKey, salt, s.argonTime, s.argonMemory, s.argonThreads, s.argonKeyLen)
}

func (s *argonSealer) gcm(salt []byte) (cipher.AEAD, error) {
	block, err := aes.NewCipher(s.deriveKey(salt))
	if err != nil {
		return nil, fmt.Errorf("create cipher: %w", err)
	}
	gcm, err := cipher.NewGCM(block)
	if err != nil {
		return nil, fmt.Errorf("create gcm: %w", err)
	}
	return gcm, nil
}

// Seal implements [Sealer].
func (s *argonSealer) Seal(plaintext string) (string, error) {
	salt := make([]byte, saltSize)
	if _, err := io.ReadFull(rand.Reader, salt); err != nil {
		return "", fmt.Errorf("generate salt: %w", err)
	}

	gcm, err := s.gcm(salt)
	if err != nil {
		return "", err
	}

	nonce := make([]byte, gcm.NonceSize())
	if _, err := io.ReadFull(rand.Reader, nonce); err != nil {
		return "", fmt.Errorf("generate nonce: %w", err)
	}

	blob := make([]byte, 0, saltSize+len(nonce)+len(plaintext)+gcm.Overhead())
	blob = append(blob, salt...)
	blob = append(blob, nonce...)
	blob = gcm.Seal(blob, nonce, []byte(plaintext), nil)

	return sealedPrefix + base64.StdEncoding.EncodeToString(blob), nil
}

// Open implements [Sealer].
func (s *argonSealer) Open(stored string) (string, error) {
	encoded, ok := strings.CutPrefix(stored, sealedPrefix)
	if !ok {
		return stored, nil
	}

	blob, err := base64.StdEncoding.DecodeString(encoded)
	if err != nil {
		return "", fmt.Errorf("%w: decode base64: %w", ErrUnsealFailed, err)
	}
	if len(blob) < saltSize {
		return "", fmt.Errorf("%w: blob too short", ErrUnsealFailed)
	}

	salt, rest := blob[:saltSize], blob[saltSize:]
	gcm, err := s.gcm(salt)
	if err != nil {
		return "", err
	}
	if len(rest) < gcm.NonceSize() {
		return "", fmt.Errorf("%w: blob too short", ErrUnsealFailed)
	}

	nonce, ciphertext := rest[:gcm.NonceSize()], rest[gcm.NonceSize():]
	plaintext, err := gcm.Open(nil, nonce, ciphertext, nil)
	if err != nil {
		return "", fmt.Errorf("%w: %w", ErrUnsealFailed, err)
	}

	return string(plaintext), nil
}

// plainSealer stores values unchanged.
type plainSealer struct{}

func (plainSealer) Seal(plaintext string) (string, error) {
	return plaintext, nil
}

func (plainSealer) Open(stored string) (string, error) {
	if strings.HasPrefix(stored, sealedPrefix) {
		return "", ErrStoreKeyRequired
	}
	return stored, nil
}
