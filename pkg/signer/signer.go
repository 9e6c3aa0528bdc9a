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

// Signature authenticates one protocol message. It is a value: created
// fresh per signing operation, transmitted alongside the message it
// covers, and discarded after verification.
type Signature struct {
	// Timestamp is the signing time in milliseconds since epoch,
	// as a decimal string.
	Timestamp string `json:"timestamp"`

	// Nonce is an opaque string unique to this signing operation
	// (UUIDv4 by convention; verification does not enforce a format).
	Nonce string `json:"nonce"`

	// Hash is the hex-encoded HMAC-SHA256 of the signed payload.
	Hash string `json:"hash"`
}

// MessageSigner signs protocol messages with an agent's symmetric
// signing key.
type MessageSigner interface {
	// Sign computes a Signature over message using the hex-encoded
	// signing key. When opts leaves Timestamp or Nonce empty, the
	// current time and a fresh nonce are used.
	Sign(signingKey string, message any, opts *SignOptions) (*Signature, error)

	// Hash computes a deterministic keyed hash of message alone, with
	// no timestamp or nonce. Useful when the same input must always
	// map to the same digest.
	Hash(signingKey string, message any) (string, error)
}

// SignOptions contains optional inputs for signing.
type SignOptions struct {
	// Timestamp overrides the signing time (decimal milliseconds since
	// epoch). Verification re-signs with the presented timestamp, so a
	// fixed timestamp makes Sign fully deterministic.
	Timestamp string

	// Nonce overrides the generated nonce.
	Nonce string
}
