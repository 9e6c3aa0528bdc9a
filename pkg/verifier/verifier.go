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
	"time"

	"github.com/aeon-protocol/a2g-go/pkg/signer"
)

// MessageVerifier authenticates protocol messages signed with an
// agent's symmetric signing key.
type MessageVerifier interface {
	// Verify reports whether sig authenticates message under the
	// given hex-encoded signing key and is no older (or further in
	// the future) than maxAge.
	//
	// Verify is total: malformed attacker-controlled input of any
	// kind yields false, never an error or panic.
	Verify(signingKey string, sig *signer.Signature, message any, maxAge time.Duration) bool
}
