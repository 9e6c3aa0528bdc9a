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
	"errors"
	"fmt"
	"strconv"
	"time"

	"github.com/google/uuid"

	"github.com/aeon-protocol/a2g-go/pkg/canonical"
	"github.com/aeon-protocol/a2g-go/pkg/keys"
)

// ErrInvalidKey is returned when decoded key material is not the
// 256-bit length the MAC requires.
var ErrInvalidKey = errors.New("invalid signing key: must be 32 bytes")

// DefaultSigner implements MessageSigner with HMAC-SHA256 over the
// payload "<timestamp>:<nonce>:<canonical-message>".
//
// A DefaultSigner holds no mutable state and is safe for concurrent
// use from multiple goroutines.
type DefaultSigner struct {
	now      func() time.Time
	newNonce func() string
}

// NewDefaultSigner creates a DefaultSigner using the system clock and
// UUIDv4 nonces.
func NewDefaultSigner() *DefaultSigner {
	return &DefaultSigner{
		now:      time.Now,
		newNonce: uuid.NewString,
	}
}

// Sign computes the HMAC-SHA256 signature of message.
//
// Given explicit Timestamp and Nonce options, Sign is a pure function
// of (key, message, timestamp, nonce); the verifier relies on this to
// recompute the expected MAC.
func (s *DefaultSigner) Sign(signingKey string, message any, opts *SignOptions) (*Signature, error) {
	key, err := decodeKey(signingKey)
	if err != nil {
		return nil, err
	}

	if opts == nil {
		opts = &SignOptions{}
	}

	timestamp := opts.Timestamp
	if timestamp == "" {
		timestamp = strconv.FormatInt(s.now().UnixMilli(), 10)
	}

	nonce := opts.Nonce
	if nonce == "" {
		nonce = s.newNonce()
	}

	messageBytes, err := canonical.Encode(message)
	if err != nil {
		return nil, fmt.Errorf("failed to canonicalize message: %w", err)
	}

	mac := hmac.New(sha256.New, key)
	mac.Write([]byte(timestamp))
	mac.Write([]byte(":"))
	mac.Write([]byte(nonce))
	mac.Write([]byte(":"))
	mac.Write(messageBytes)

	return &Signature{
		Timestamp: timestamp,
		Nonce:     nonce,
		Hash:      hex.EncodeToString(mac.Sum(nil)),
	}, nil
}

// Hash computes a deterministic HMAC-SHA256 of the canonical message
// alone, with no timestamp or nonce in the payload.
func (s *DefaultSigner) Hash(signingKey string, message any) (string, error) {
	key, err := decodeKey(signingKey)
	if err != nil {
		return "", err
	}

	messageBytes, err := canonical.Encode(message)
	if err != nil {
		return "", fmt.Errorf("failed to canonicalize message: %w", err)
	}

	mac := hmac.New(sha256.New, key)
	mac.Write(messageBytes)
	return hex.EncodeToString(mac.Sum(nil)), nil
}

// decodeKey turns the hex-encoded signing key into raw MAC key bytes,
// enforcing the 256-bit key length.
func decodeKey(signingKey string) ([]byte, error) {
	key, err := keys.Decode(signingKey)
	if err != nil {
		return nil, err
	}
	if len(key) != keys.KeySize {
		return nil, fmt.Errorf("%w: got %d", ErrInvalidKey, len(key))
	}
	return key, nil
}

// Sign signs message with the package default signer. See
// (*DefaultSigner).Sign.
func Sign(signingKey string, message any) (*Signature, error) {
	return NewDefaultSigner().Sign(signingKey, message, nil)
}
