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
	"context"
	"encoding/json"
	"fmt"
	"log"
	"net/http"
	"net/http/httptest"

	"github.com/aeon-protocol/a2g-go/pkg/client"
	"github.com/aeon-protocol/a2g-go/pkg/did"
	"github.com/aeon-protocol/a2g-go/pkg/protocol"
	"github.com/aeon-protocol/a2g-go/pkg/server"
)

// This example runs a miniature governance endpoint in-process and
// drives the full signed flow against it: register, submit a signed
// intent, receive a verdict and report the outcome.
func main() {
	fmt.Printf("=== Agent / Governance Round Trip Example ===\n\n")

	// Step 1: Issue the agent identity
	fmt.Println("Step 1: Issuing agent identity...")
	doc, err := did.Create("demo-agent", nil)
	if err != nil {
		log.Fatalf("Failed to create identity: %v", err)
	}
	fmt.Printf("  DID: %s\n\n", doc.DID)

	// Step 2: Start a governance endpoint that authenticates envelopes
	fmt.Println("Step 2: Starting governance endpoint...")
	resolver := server.NewStaticKeyResolver()
	resolver.AddKey(doc.DID, doc.SigningKey)
	middleware := server.NewA2GAuthMiddleware(resolver)
	// register and report envelopes carry no identity signature in
	// this deployment, only intents do
	middleware.SetOptional(true)

	srv := httptest.NewServer(middleware.Wrap(http.HandlerFunc(handleEnvelope)))
	defer srv.Close()
	fmt.Printf("  Listening on %s\n\n", srv.URL)

	c := client.NewA2GClient(doc, srv.URL, nil)
	ctx := context.Background()

	// Step 3: Register the agent
	fmt.Println("Step 3: Registering agent...")
	err = c.Register(ctx, []string{"search"}, &protocol.AgentMetadata{
		Name: "demo-agent", Version: "1.0.0", Runtime: "go",
	})
	if err != nil {
		log.Fatalf("Registration failed: %v", err)
	}
	fmt.Printf("  ✓ Registered\n\n")

	// Step 4: Submit a signed intent
	fmt.Println("Step 4: Submitting signed intent...")
	verdict, err := c.SubmitIntent(ctx, "search", map[string]any{"q": "golang"})
	if err != nil {
		log.Fatalf("Intent rejected: %v", err)
	}
	fmt.Printf("  Verdict: %s (risk %s)\n\n", verdict.Verdict, verdict.RiskAssessment.Level)

	// Step 5: Report the execution outcome
	fmt.Println("Step 5: Reporting execution outcome...")
	report := protocol.NewSuccessReport(doc.DID, verdict.IntentID, map[string]any{"hits": 3}, 42)
	if err := c.Report(ctx, report); err != nil {
		log.Fatalf("Report rejected: %v", err)
	}
	fmt.Println("  ✓ Report accepted")

	fmt.Println("\n=== Example completed successfully! ===")
}

// handleEnvelope is a toy governance handler. The auth middleware has
// already verified the sender's identity by the time it runs.
func handleEnvelope(w http.ResponseWriter, r *http.Request) {
	agentDID, _ := server.GetAgentDIDFromContext(r.Context())

	var envelope struct {
		Method string `json:"method"`
		Params struct {
			IntentID string `json:"intent_id"`
		} `json:"params"`
		ID string `json:"id"`
	}
	if err := json.NewDecoder(r.Body).Decode(&envelope); err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}

	fmt.Printf("  [governance] %s from %s\n", envelope.Method, agentDID)

	resp := protocol.VerdictResponse{
		JSONRPC: protocol.JSONRPCVersion,
		Result: &protocol.VerdictResult{
			Verdict:  protocol.VerdictApproved,
			IntentID: envelope.Params.IntentID,
			RiskAssessment: protocol.RiskAssessment{
				Score:   0.1,
				Level:   protocol.RiskLevelFromScore(0.1),
				Threats: []string{},
			},
		},
		ID: envelope.ID,
	}
	json.NewEncoder(w).Encode(resp)
}
