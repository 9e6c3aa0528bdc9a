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

package verifier

import (
	"strconv"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/aeon-protocol/a2g-go/pkg/keys"
	"github.com/aeon-protocol/a2g-go/pkg/signer"
)

const testKey = "000102030405060708090a0b0c0d0e0f101112131415161718191a1b1c1d1e1f"

// fixedVerifier returns a verifier whose clock is pinned to nowMillis.
func fixedVerifier(nowMillis int64) *DefaultVerifier {
	v := NewDefaultVerifier()
	v.now = func() time.Time { return time.UnixMilli(nowMillis) }
	return v
}

func mustSign(t *testing.T, key string, message any) *signer.Signature {
	t.Helper()
	sig, err := signer.Sign(key, message)
	require.NoError(t, err)
	return sig
}

func TestVerify_RoundTrip(t *testing.T) {
	message := map[string]any{"tool": "search", "args": map[string]any{"q": "x"}}
	sig := mustSign(t, testKey, message)

	assert.True(t, Verify(testKey, sig, message, 5*time.Second))
}

func TestVerify_RoundTrip_StringMessage(t *testing.T) {
	sig := mustSign(t, testKey, "did:aeon:my-agent")
	assert.True(t, Verify(testKey, sig, "did:aeon:my-agent", 5*time.Second))
}

func TestVerify_TamperedMessage(t *testing.T) {
	message := map[string]any{"tool": "search", "args": map[string]any{"q": "x"}}
	sig := mustSign(t, testKey, message)

	tampered := map[string]any{"tool": "search", "args": map[string]any{"q": "y"}}
	assert.False(t, Verify(testKey, sig, tampered, 5*time.Second))
}

func TestVerify_TamperedSignatureFields(t *testing.T) {
	message := map[string]any{"tool": "search"}

	tests := []struct {
		name   string
		mutate func(*signer.Signature)
	}{
		{"hash bit flip", func(s *signer.Signature) {
			b := []byte(s.Hash)
			if b[0] == 'a' {
				b[0] = 'b'
			} else {
				b[0] = 'a'
			}
			s.Hash = string(b)
		}},
		{"nonce change", func(s *signer.Signature) { s.Nonce += "x" }},
		{"timestamp change", func(s *signer.Signature) {
			ts, _ := strconv.ParseInt(s.Timestamp, 10, 64)
			s.Timestamp = strconv.FormatInt(ts-1, 10)
		}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			sig := mustSign(t, testKey, message)
			tt.mutate(sig)
			assert.False(t, Verify(testKey, sig, message, 5*time.Second))
		})
	}
}

func TestVerify_WrongKey(t *testing.T) {
	otherKey, err := keys.Generate()
	require.NoError(t, err)

	sig := mustSign(t, testKey, "message")
	assert.False(t, Verify(otherKey, sig, "message", 5*time.Second))
}

func TestVerify_ExpiryBoundary(t *testing.T) {
	const signedAt = int64(1700000000000)
	const maxAge = 5000 * time.Millisecond

	s := signer.NewDefaultSigner()
	sig, err := s.Sign(testKey, "message", &signer.SignOptions{
		Timestamp: strconv.FormatInt(signedAt, 10),
		Nonce:     "boundary-nonce",
	})
	require.NoError(t, err)

	// aged exactly maxAge: still valid (inclusive boundary)
	v := fixedVerifier(signedAt + 5000)
	assert.True(t, v.Verify(testKey, sig, "message", maxAge))

	// one millisecond past the window: rejected
	v = fixedVerifier(signedAt + 5001)
	assert.False(t, v.Verify(testKey, sig, "message", maxAge))
}

func TestVerify_FutureTimestamp(t *testing.T) {
	const now = int64(1700000000000)
	const maxAge = 5000 * time.Millisecond

	s := signer.NewDefaultSigner()

	// The window is symmetric: a future timestamp within tolerance
	// verifies, one beyond it does not.
	within, err := s.Sign(testKey, "message", &signer.SignOptions{
		Timestamp: strconv.FormatInt(now+5000, 10),
		Nonce:     "n",
	})
	require.NoError(t, err)
	beyond, err := s.Sign(testKey, "message", &signer.SignOptions{
		Timestamp: strconv.FormatInt(now+5001, 10),
		Nonce:     "n",
	})
	require.NoError(t, err)

	v := fixedVerifier(now)
	assert.True(t, v.Verify(testKey, within, "message", maxAge))
	assert.False(t, v.Verify(testKey, beyond, "message", maxAge))
}

func TestVerify_ZeroMaxAge(t *testing.T) {
	const now = int64(1700000000000)

	s := signer.NewDefaultSigner()
	sig, err := s.Sign(testKey, "message", &signer.SignOptions{
		Timestamp: strconv.FormatInt(now, 10),
		Nonce:     "n",
	})
	require.NoError(t, err)

	// maxAge 0 admits only a timestamp equal to now
	v := fixedVerifier(now)
	assert.True(t, v.Verify(testKey, sig, "message", 0))

	v = fixedVerifier(now + 1)
	assert.False(t, v.Verify(testKey, sig, "message", 0))
}

func TestVerify_MalformedInput(t *testing.T) {
	valid := mustSign(t, testKey, "message")

	tests := []struct {
		name string
		sig  *signer.Signature
	}{
		{"nil signature", nil},
		{"non-numeric timestamp", &signer.Signature{Timestamp: "not-a-number", Nonce: valid.Nonce, Hash: valid.Hash}},
		{"empty timestamp", &signer.Signature{Timestamp: "", Nonce: valid.Nonce, Hash: valid.Hash}},
		{"non-hex hash", &signer.Signature{Timestamp: valid.Timestamp, Nonce: valid.Nonce, Hash: "zz" + valid.Hash[2:]}},
		{"empty hash", &signer.Signature{Timestamp: valid.Timestamp, Nonce: valid.Nonce, Hash: ""}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			// must return false, never panic or error
			assert.False(t, Verify(testKey, tt.sig, "message", 5*time.Second))
		})
	}
}

func TestVerify_BadKeyReturnsFalse(t *testing.T) {
	sig := mustSign(t, testKey, "message")

	assert.False(t, Verify("not-hex", sig, "message", 5*time.Second))
	assert.False(t, Verify("00112233445566778899aabbccddeeff", sig, "message", 5*time.Second))
}

func TestVerify_Idempotent(t *testing.T) {
	// verification holds no state; repeating it gives the same answer
	sig := mustSign(t, testKey, "message")
	for i := 0; i < 3; i++ {
		assert.True(t, Verify(testKey, sig, "message", 5*time.Second))
	}
}

func TestVerify_EndToEndScenario(t *testing.T) {
	key, err := keys.Generate()
	require.NoError(t, err)

	msg := map[string]any{"tool": "search", "args": map[string]any{"q": "x"}}
	sig := mustSign(t, key, msg)
	assert.True(t, Verify(key, sig, msg, 5000*time.Millisecond))

	modified := map[string]any{"tool": "search", "args": map[string]any{"q": "y"}}
	assert.False(t, Verify(key, sig, modified, 5000*time.Millisecond))
}
