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

// Package server provides HTTP middleware for authenticating inbound
// A2G envelopes by their AEON identity signature.
//
// # Usage
//
//	resolver := server.NewStaticKeyResolver()
//	resolver.AddKey(doc.DID, doc.SigningKey)
//
//	mw := server.NewA2GAuthMiddleware(resolver)
//	http.Handle("/a2g", mw.Wrap(governanceHandler))
//
// Inside a wrapped handler, the verified sender identity is available
// from the request context:
//
//	agentDID, ok := server.GetAgentDIDFromContext(r.Context())
//
// The middleware rejects envelopes whose signature is missing,
// expired, replayed (same nonce inside the validity window), or
// cryptographically invalid. Key lookup goes through the KeyResolver
// port so deployments can back it with whatever store holds their
// agent registrations.
package server
