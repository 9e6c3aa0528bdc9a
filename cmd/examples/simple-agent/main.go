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

package main

import (
	"encoding/json"
	"fmt"
	"log"
	"path/filepath"
	"time"

	"github.com/aeon-protocol/a2g-go/pkg/did"
	"github.com/aeon-protocol/a2g-go/pkg/signer"
	"github.com/aeon-protocol/a2g-go/pkg/verifier"
)

// This example demonstrates issuing an agent identity, signing a
// message with it and verifying the signature.
func main() {
	fmt.Printf("=== Simple Agent Identity Example ===\n\n")

	// Step 1: Issue a DID with a fresh signing key
	fmt.Println("Step 1: Issuing agent identity...")
	doc, err := did.Create("simple-agent", &did.CreateOptions{
		Metadata: map[string]any{"version": "1.0.0", "type": "assistant"},
	})
	if err != nil {
		log.Fatalf("Failed to create identity: %v", err)
	}
	fmt.Printf("  DID:  %s\n", doc.DID)
	fmt.Printf("  Key:  %d hex characters (kept secret)\n\n", len(doc.SigningKey))

	// Step 2: Persist the identity document
	fmt.Println("Step 2: Saving identity document...")
	path := filepath.Join(".", "identity.json")
	if err := doc.Save(path); err != nil {
		log.Fatalf("Failed to save identity: %v", err)
	}
	fmt.Printf("  Saved to %s\n\n", path)

	// Step 3: Sign a structured message
	fmt.Println("Step 3: Signing a message...")
	message := map[string]any{
		"tool": "search",
		"args": map[string]any{"q": "golang hmac"},
	}
	sig, err := signer.Sign(doc.SigningKey, message)
	if err != nil {
		log.Fatalf("Failed to sign message: %v", err)
	}
	sigJSON, _ := json.MarshalIndent(sig, "  ", "  ")
	fmt.Printf("  Signature:\n  %s\n\n", sigJSON)

	// Step 4: Verify the signature
	fmt.Println("Step 4: Verifying the signature...")
	if verifier.Verify(doc.SigningKey, sig, message, 5*time.Minute) {
		fmt.Println("  ✓ Signature verified")
	} else {
		fmt.Println("  ✗ Signature rejected")
	}
	fmt.Println()

	// Step 5: Tamper with the message and verify again
	fmt.Println("Step 5: Verifying a tampered message...")
	tampered := map[string]any{
		"tool": "search",
		"args": map[string]any{"q": "golang hmac bypass"},
	}
	if verifier.Verify(doc.SigningKey, sig, tampered, 5*time.Minute) {
		fmt.Println("  ✗ Tampered message verified (this must never happen)")
	} else {
		fmt.Println("  ✓ Tampered message rejected")
	}

	fmt.Println("\n=== Example completed successfully! ===")
	fmt.Println("\nNext steps:")
	fmt.Println("  1. See agent-governance example for the full signed intent flow")
	fmt.Println("  2. Load the saved identity with did.LoadDocument")
}
