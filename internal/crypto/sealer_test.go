// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package crypto

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// cheap Argon2 parameters keep the tests fast.
func newTestSealer(key string) *argonSealer {
	return newArgonSealer(key, 1, 8*1024, 1)
}

func TestNewSealer_EmptyKeyIsPlain(t *testing.T) {
	s := NewSealer("")
	_, ok := s.(plainSealer)
	assert.True(t, ok)

	sealed, err := s.Seal("s1")
	require.NoError(t, err)
	assert.Equal(t, "s1", sealed)
}

func TestNewSealer_KeyIsArgon(t *testing.T) {
	s, ok := NewSealer("k").(*argonSealer)
	require.True(t, ok)
	assert.Equal(t, uint32(64*1024), s.argonMemory)
	assert.Equal(t, uint32(32), s.argonKeyLen)
}

func TestArgonSealer_SealOpen(t *testing.T) {
	s := newTestSealer("store-key")

	sealed, err := s.Seal("my secret")
	require.NoError(t, err)
	assert.True(t, strings.HasPrefix(sealed, sealedPrefix))
	assert.NotContains(t, sealed, "my secret")

	opened, err := s.Open(sealed)
	require.NoError(t, err)
	assert.Equal(t, "my secret", opened)
}

func TestArgonSealer_SaltIsPerValue(t *testing.T) {
	s := newTestSealer("store-key")

	a, err := s.Seal("same")
	require.NoError(t, err)
	b, err := s.Seal("same")
	require.NoError(t, err)

	assert.NotEqual(t, a, b)
}

func TestArgonSealer_EmptyPlaintext(t *testing.T) {
	s := newTestSealer("store-key")

	sealed, err := s.Seal("")
	require.NoError(t, err)

	opened, err := s.Open(sealed)
	require.NoError(t, err)
	assert.Empty(t, opened)
}

func TestArgonSealer_WrongKey(t *testing.T) {
	sealed, err := newTestSealer("right").Seal("secret")
	require.NoError(t, err)

	_, err = newTestSealer("wrong").Open(sealed)
	assert.ErrorIs(t, err, ErrUnsealFailed)
}

func TestArgonSealer_OpenPassesThroughLegacyPlaintext(t *testing.T) {
	opened, err := newTestSealer("k").Open("stored-before-sealing")
	require.NoError(t, err)
	assert.Equal(t, "stored-before-sealing", opened)
}

func TestArgonSealer_OpenCorrupted(t *testing.T) {
	s := newTestSealer("k")

	tests := []struct {
		name   string
		stored string
	}{
		{name: "bad base64", stored: sealedPrefix + "!!!"},
		{name: "shorter than salt", stored: sealedPrefix + "AAAA"},
		{name: "no nonce", stored: sealedPrefix + "AAAAAAAAAAAAAAAAAAAAAA=="},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := s.Open(tt.stored)
			assert.ErrorIs(t, err, ErrUnsealFailed)
		})
	}
}

func TestPlainSealer_RejectsSealedValue(t *testing.T) {
	sealed, err := newTestSealer("k").Seal("secret")
	require.NoError(t, err)

	_, err = plainSealer{}.Open(sealed)
	assert.ErrorIs(t, err, ErrStoreKeyRequired)
}
