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

package server

import (
	"context"
	"fmt"
	"sync"

	"github.com/aeon-protocol/a2g-go/pkg/did"
)

// KeyResolver resolves the signing key for an agent DID. How keys are
// stored (config file, database, secret manager) is the deployment's
// business; the middleware only needs this lookup.
type KeyResolver interface {
	// ResolveSigningKey returns the hex-encoded signing key for the
	// agent, or an error when the agent is unknown.
	ResolveSigningKey(ctx context.Context, agentDID did.AgentDID) (string, error)
}

// StaticKeyResolver is an in-memory KeyResolver backed by a map. It is
// safe for concurrent use.
type StaticKeyResolver struct {
	mu   sync.RWMutex
	keys map[did.AgentDID]string
}

// NewStaticKeyResolver creates an empty resolver.
func NewStaticKeyResolver() *StaticKeyResolver {
	return &StaticKeyResolver{keys: make(map[did.AgentDID]string)}
}

// AddKey registers (or replaces) the signing key for an agent.
func (r *StaticKeyResolver) AddKey(agentDID did.AgentDID, signingKey string) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.keys[agentDID] = signingKey
}

// ResolveSigningKey implements KeyResolver.
func (r *StaticKeyResolver) ResolveSigningKey(_ context.Context, agentDID did.AgentDID) (string, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	key, ok := r.keys[agentDID]
	if !ok {
		return "", fmt.Errorf("unknown agent: %s", agentDID)
	}
	return key, nil
}
