// Copyright (C) 2025 AEON Project
//
// This file is part of a2g-go.
//
// a2g-go is free software: you can redistribute it and/or modify
// it under the terms of the GNU Lesser General Public License as published by
// the Free Software Foundation, either version 3 of the License, or
// (at your option) any later version.
//
// a2g-go is distributed in the hope that it will be useful,
// but WITHOUT ANY WARRANTY; without even the implied warranty of
// MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE.  See the
// GNU Lesser General Public License for more details.
//
// You should have received a copy of the GNU Lesser General Public License
// along with a2g-go.  If not, see <https://www.gnu.org/licenses/>.

package signer

import (
	"crypto/hmac"
	"crypto/sha256"
	"encoding/hex"
	"regexp"
	"strconv"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/aeon-protocol/a2g-go/pkg/keys"
)

// testKey is a fixed 256-bit key for deterministic assertions.
const testKey = "000102030405060708090a0b0c0d0e0f101112131415161718191a1b1c1d1e1f"

var hexHashPattern = regexp.MustCompile(`^[0-9a-f]{64}$`)

func fixedSigner(nowMillis int64, nonce string) *DefaultSigner {
	s := NewDefaultSigner()
	s.now = func() time.Time { return time.UnixMilli(nowMillis) }
	s.newNonce = func() string { return nonce }
	return s
}

func TestDefaultSigner_Sign_Deterministic(t *testing.T) {
	s := NewDefaultSigner()
	opts := &SignOptions{Timestamp: "1700000000000", Nonce: "fixed-nonce"}
	message := map[string]any{"tool": "search", "args": map[string]any{"q": "x"}}

	first, err := s.Sign(testKey, message, opts)
	require.NoError(t, err)
	second, err := s.Sign(testKey, message, opts)
	require.NoError(t, err)

	assert.Equal(t, first.Hash, second.Hash)
	assert.Equal(t, "1700000000000", first.Timestamp)
	assert.Equal(t, "fixed-nonce", first.Nonce)
}

func TestDefaultSigner_Sign_PayloadFormat(t *testing.T) {
	// Recompute the MAC by hand over "<ts>:<nonce>:<canonical-msg>"
	// to pin the payload layout
	s := NewDefaultSigner()
	sig, err := s.Sign(testKey, "hello", &SignOptions{Timestamp: "1700000000000", Nonce: "n-1"})
	require.NoError(t, err)

	rawKey, err := hex.DecodeString(testKey)
	require.NoError(t, err)

	mac := hmac.New(sha256.New, rawKey)
	mac.Write([]byte("1700000000000:n-1:hello"))
	assert.Equal(t, hex.EncodeToString(mac.Sum(nil)), sig.Hash)
}

func TestDefaultSigner_Sign_Defaults(t *testing.T) {
	s := fixedSigner(1700000000123, "generated-nonce")

	sig, err := s.Sign(testKey, "message", nil)
	require.NoError(t, err)

	assert.Equal(t, "1700000000123", sig.Timestamp)
	assert.Equal(t, "generated-nonce", sig.Nonce)
	assert.Regexp(t, hexHashPattern, sig.Hash)
}

func TestDefaultSigner_Sign_GeneratedNonceUnique(t *testing.T) {
	s := NewDefaultSigner()
	first, err := s.Sign(testKey, "message", nil)
	require.NoError(t, err)
	second, err := s.Sign(testKey, "message", nil)
	require.NoError(t, err)
	assert.NotEqual(t, first.Nonce, second.Nonce)
}

func TestDefaultSigner_Sign_OrderIndependence(t *testing.T) {
	s := NewDefaultSigner()
	opts := &SignOptions{Timestamp: "1700000000000", Nonce: "n"}

	first := map[string]any{}
	first["b"] = 2
	first["a"] = 1
	second := map[string]any{}
	second["a"] = 1
	second["b"] = 2

	sigA, err := s.Sign(testKey, first, opts)
	require.NoError(t, err)
	sigB, err := s.Sign(testKey, second, opts)
	require.NoError(t, err)
	assert.Equal(t, sigA.Hash, sigB.Hash)
}

func TestDefaultSigner_Sign_KeyIsolation(t *testing.T) {
	s := NewDefaultSigner()
	opts := &SignOptions{Timestamp: "1700000000000", Nonce: "n"}

	otherKey, err := keys.Generate()
	require.NoError(t, err)

	sigA, err := s.Sign(testKey, "message", opts)
	require.NoError(t, err)
	sigB, err := s.Sign(otherKey, "message", opts)
	require.NoError(t, err)
	assert.NotEqual(t, sigA.Hash, sigB.Hash)
}

func TestDefaultSigner_Sign_InvalidKeyEncoding(t *testing.T) {
	s := NewDefaultSigner()
	_, err := s.Sign("not-hex-at-all", "message", nil)
	require.Error(t, err)
	assert.ErrorIs(t, err, keys.ErrInvalidEncoding)
}

func TestDefaultSigner_Sign_WrongKeyLength(t *testing.T) {
	s := NewDefaultSigner()
	// valid hex, but 16 bytes instead of 32
	_, err := s.Sign("00112233445566778899aabbccddeeff", "message", nil)
	require.Error(t, err)
	assert.ErrorIs(t, err, ErrInvalidKey)
}

func TestDefaultSigner_Sign_UnserializableMessage(t *testing.T) {
	s := NewDefaultSigner()
	_, err := s.Sign(testKey, make(chan int), nil)
	assert.Error(t, err)
}

func TestDefaultSigner_Hash_Deterministic(t *testing.T) {
	s := NewDefaultSigner()
	message := map[string]any{"tool": "search"}

	first, err := s.Hash(testKey, message)
	require.NoError(t, err)
	second, err := s.Hash(testKey, message)
	require.NoError(t, err)

	assert.Equal(t, first, second)
	assert.Regexp(t, hexHashPattern, first)
}

func TestDefaultSigner_Hash_DiffersFromSign(t *testing.T) {
	// Hash covers the message alone; Sign prefixes timestamp and nonce
	s := NewDefaultSigner()

	h, err := s.Hash(testKey, "message")
	require.NoError(t, err)
	sig, err := s.Sign(testKey, "message", &SignOptions{Timestamp: "1", Nonce: "n"})
	require.NoError(t, err)
	assert.NotEqual(t, h, sig.Hash)
}

func TestSign_PackageConvenience(t *testing.T) {
	sig, err := Sign(testKey, "message")
	require.NoError(t, err)

	_, err = strconv.ParseInt(sig.Timestamp, 10, 64)
	assert.NoError(t, err, "default timestamp must be decimal millis")
	assert.NotEmpty(t, sig.Nonce)
	assert.Regexp(t, hexHashPattern, sig.Hash)
}
