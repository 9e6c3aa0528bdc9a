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
	"crypto/hmac"
	"encoding/hex"
	"strconv"
	"time"

	"github.com/aeon-protocol/a2g-go/pkg/signer"
)

// DefaultVerifier implements MessageVerifier by deterministically
// re-deriving the expected MAC for the presented (timestamp, nonce,
// message) triple and comparing in constant time.
//
// A DefaultVerifier holds no mutable state and is safe for concurrent
// use from multiple goroutines.
type DefaultVerifier struct {
	signer *signer.DefaultSigner
	now    func() time.Time
}

// NewDefaultVerifier creates a DefaultVerifier using the system clock.
func NewDefaultVerifier() *DefaultVerifier {
	return &DefaultVerifier{
		signer: signer.NewDefaultSigner(),
		now:    time.Now,
	}
}

// Verify checks sig against message. Each gate below must pass; any
// failure, including malformed input, returns false so the caller
// cannot be used as an oracle for which check failed.
//
//  1. The timestamp must parse as a decimal integer.
//  2. |now - signedAt| must not exceed maxAge. The window is
//     symmetric: it rejects both stale replays and future timestamps
//     beyond clock-skew tolerance. A signature aged exactly maxAge
//     still verifies.
//  3. The expected MAC is recomputed with the presented timestamp and
//     nonce rather than trusting the presented hash.
//  4. Both hashes must decode from hex.
//  5. The decoded MACs must match under a constant-time comparison.
func (v *DefaultVerifier) Verify(signingKey string, sig *signer.Signature, message any, maxAge time.Duration) bool {
	if sig == nil {
		return false
	}

	signedAt, err := strconv.ParseInt(sig.Timestamp, 10, 64)
	if err != nil {
		return false
	}

	age := v.now().UnixMilli() - signedAt
	if age < 0 {
		age = -age
	}
	if age > maxAge.Milliseconds() {
		return false
	}

	expected, err := v.signer.Sign(signingKey, message, &signer.SignOptions{
		Timestamp: sig.Timestamp,
		Nonce:     sig.Nonce,
	})
	if err != nil {
		return false
	}

	presentedMAC, err := hex.DecodeString(sig.Hash)
	if err != nil {
		return false
	}
	expectedMAC, err := hex.DecodeString(expected.Hash)
	if err != nil {
		return false
	}

	return hmac.Equal(presentedMAC, expectedMAC)
}

// Verify checks sig with the package default verifier. See
// (*DefaultVerifier).Verify.
func Verify(signingKey string, sig *signer.Signature, message any, maxAge time.Duration) bool {
	return NewDefaultVerifier().Verify(signingKey, sig, message, maxAge)
}
