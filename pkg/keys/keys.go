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

// Package keys handles the symmetric key material backing AEON agent
// identities: generation of 256-bit signing secrets and their hex
// wire encoding.
//
// Keys are secrets. They are never included in verification results
// and must never be logged; the only textual form that leaves this
// package is the 64-character lowercase hex encoding stored in an
// identity document.
package keys

import (
	"crypto/rand"
	"encoding/hex"
	"errors"
	"fmt"
)

// KeySize is the size in bytes of an agent signing key.
const KeySize = 32

// EncodedKeySize is the length of a hex-encoded signing key.
const EncodedKeySize = KeySize * 2

// ErrInvalidEncoding is returned when key material (or any hex field
// derived from it) is not valid hexadecimal.
var ErrInvalidEncoding = errors.New("invalid hex encoding")

// Generate produces a new random 256-bit signing key, hex-encoded to
// a 64-character lowercase string.
func Generate() (string, error) {
	key := make([]byte, KeySize)
	if _, err := rand.Read(key); err != nil {
		return "", fmt.Errorf("failed to generate signing key: %w", err)
	}
	return hex.EncodeToString(key), nil
}

// Decode decodes a hex-encoded key into its raw bytes.
// It returns ErrInvalidEncoding if the string is not valid hex.
// Decode does not enforce KeySize; length checks belong to the
// consumer (the signer rejects non-256-bit keys).
func Decode(encoded string) ([]byte, error) {
	raw, err := hex.DecodeString(encoded)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrInvalidEncoding, err)
	}
	return raw, nil
}
