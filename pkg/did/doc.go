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

// Package did issues and models AEON decentralized identifiers for
// autonomous agents.
//
// An AEON DID has the form:
//
//	did:aeon:<name>
//
// where <name> is a caller-chosen label of lowercase letters, digits
// and hyphens. Issuance binds the DID to a 256-bit symmetric signing
// key and optional metadata in an identity Document:
//
//	doc, err := did.Create("my-agent", nil)
//	if err != nil {
//	    log.Fatal(err)
//	}
//	fmt.Println(doc.DID) // did:aeon:my-agent
//
// Callers that already hold key material or want to attach metadata
// pass CreateOptions:
//
//	doc, err := did.Create("my-agent", &did.CreateOptions{
//	    SigningKey: existingKey,
//	    Metadata:   map[string]any{"team": "search"},
//	})
//
// There is no registry lookup: uniqueness of a DID across a deployment
// is the caller's responsibility. A document's signing key is never
// mutated after issuance; key rotation means issuing a new document.
//
// Documents can be persisted to disk with (*Document).Save and read
// back with LoadDocument. The file contains the signing key and is
// written with owner-only permissions.
package did
