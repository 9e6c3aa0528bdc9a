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

	"github.com/patrickmn/go-cache"

	"github.com/aeon-protocol/a2g-go/pkg/did"
)

// ReplayGuard tracks consumed (agent DID, nonce) pairs inside a
// sliding time window so a captured signature cannot be presented
// twice while still fresh.
//
// The signature verifier itself is stateless; callers that need
// at-most-once semantics check the guard before verifying:
//
//	if !guard.Remember(agentDID, sig.Nonce) {
//	    // replay, reject
//	}
//	ok := v.Verify(key, sig, message, maxAge)
//
// The window should be at least the verifier's maxAge: once a nonce
// has aged out of the guard, the timestamp gate has already expired
// the signature.
type ReplayGuard struct {
	seen *cache.Cache
}

// NewReplayGuard creates a guard that remembers nonces for the given
// window. Expired entries are swept in the background.
func NewReplayGuard(window time.Duration) *ReplayGuard {
	return &ReplayGuard{
		seen: cache.New(window, 2*window),
	}
}

// Remember records the nonce as consumed by the agent. It returns
// false if the pair was already seen inside the window, meaning the
// message is a replay and must be rejected.
func (g *ReplayGuard) Remember(agentDID did.AgentDID, nonce string) bool {
	// nonce strings are opaque; the NUL separator keeps distinct
	// (did, nonce) pairs from colliding
	key := string(agentDID) + "\x00" + nonce
	return g.seen.Add(key, struct{}{}, cache.DefaultExpiration) == nil
}
