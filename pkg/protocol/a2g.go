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

package protocol

import (
	"github.com/google/uuid"

	"github.com/aeon-protocol/a2g-go/pkg/did"
	"github.com/aeon-protocol/a2g-go/pkg/signer"
)

// JSONRPCVersion is the JSON-RPC version carried by every envelope.
const JSONRPCVersion = "2.0"

// A2G method names (agent → governance).
const (
	MethodIntent   = "a2g/intent"
	MethodReport   = "a2g/report"
	MethodRegister = "a2g/register"
)

// Intent asks the governing authority for permission to perform an
// action before the agent executes it.
type Intent struct {
	JSONRPC string       `json:"jsonrpc"`
	Method  string       `json:"method"` // MethodIntent
	Params  IntentParams `json:"params"`
	ID      string       `json:"id"`
}

// IntentParams describes the action the agent wants to perform.
type IntentParams struct {
	// AgentDID identifies the requesting agent.
	AgentDID did.AgentDID `json:"agent_did"`

	// IntentID uniquely identifies this intent; verdicts and reports
	// reference it.
	IntentID string `json:"intent_id"`

	// Tool is the name of the capability the agent wants to invoke.
	Tool string `json:"tool"`

	// Arguments are the tool arguments, passed through as-is.
	Arguments any `json:"arguments"`

	// Context carries optional situational fields, including the
	// identity signature.
	Context *IntentContext `json:"context,omitempty"`
}

// IntentContext carries optional context for an intent.
type IntentContext struct {
	// SessionID groups intents belonging to one session.
	SessionID string `json:"session_id,omitempty"`

	// ParentIntent references the intent this one was spawned from.
	ParentIntent string `json:"parent_intent,omitempty"`

	// Reasoning is the agent's free-form explanation for the action.
	Reasoning string `json:"reasoning,omitempty"`

	// Signature authenticates the sender's identity. Governance
	// verifies it over the agent's DID string.
	Signature *signer.Signature `json:"signature,omitempty"`
}

// NewIntent creates an intent envelope with fresh intent and request
// IDs.
func NewIntent(agentDID did.AgentDID, tool string, arguments any) *Intent {
	return &Intent{
		JSONRPC: JSONRPCVersion,
		Method:  MethodIntent,
		Params: IntentParams{
			AgentDID:  agentDID,
			IntentID:  uuid.NewString(),
			Tool:      tool,
			Arguments: arguments,
		},
		ID: uuid.NewString(),
	}
}

// WithReasoning attaches the agent's reasoning to the intent context
// and returns the intent for chaining.
func (i *Intent) WithReasoning(reasoning string) *Intent {
	if i.Params.Context == nil {
		i.Params.Context = &IntentContext{}
	}
	i.Params.Context.Reasoning = reasoning
	return i
}

// WithSignature attaches an identity signature to the intent context
// and returns the intent for chaining.
func (i *Intent) WithSignature(sig *signer.Signature) *Intent {
	if i.Params.Context == nil {
		i.Params.Context = &IntentContext{}
	}
	i.Params.Context.Signature = sig
	return i
}

// ExecutionStatus is the outcome of an executed intent.
type ExecutionStatus string

const (
	StatusSuccess ExecutionStatus = "SUCCESS"
	StatusFailure ExecutionStatus = "FAILURE"
	StatusTimeout ExecutionStatus = "TIMEOUT"
	StatusAborted ExecutionStatus = "ABORTED"
)

// Report informs governance of the outcome of an approved intent.
type Report struct {
	JSONRPC string       `json:"jsonrpc"`
	Method  string       `json:"method"` // MethodReport
	Params  ReportParams `json:"params"`
	ID      string       `json:"id"`
}

// ReportParams describes how execution of an intent went.
type ReportParams struct {
	AgentDID did.AgentDID    `json:"agent_did"`
	IntentID string          `json:"intent_id"`
	Status   ExecutionStatus `json:"status"`

	// Result is the tool output on success.
	Result any `json:"result,omitempty"`

	// Metrics are optional execution measurements.
	Metrics *ExecutionMetrics `json:"metrics,omitempty"`

	// Error describes what went wrong on failure.
	Error string `json:"error,omitempty"`
}

// ExecutionMetrics are resource measurements for one execution.
type ExecutionMetrics struct {
	DurationMillis uint64  `json:"duration_ms"`
	MemoryUsedMB   uint32  `json:"memory_used_mb,omitempty"`
	CPUPercent     float32 `json:"cpu_percent,omitempty"`
}

// NewSuccessReport creates a report for a successfully executed
// intent.
func NewSuccessReport(agentDID did.AgentDID, intentID string, result any, durationMillis uint64) *Report {
	return &Report{
		JSONRPC: JSONRPCVersion,
		Method:  MethodReport,
		Params: ReportParams{
			AgentDID: agentDID,
			IntentID: intentID,
			Status:   StatusSuccess,
			Result:   result,
			Metrics:  &ExecutionMetrics{DurationMillis: durationMillis},
		},
		ID: uuid.NewString(),
	}
}

// NewFailureReport creates a report for a failed intent execution.
func NewFailureReport(agentDID did.AgentDID, intentID string, execErr string) *Report {
	return &Report{
		JSONRPC: JSONRPCVersion,
		Method:  MethodReport,
		Params: ReportParams{
			AgentDID: agentDID,
			IntentID: intentID,
			Status:   StatusFailure,
			Error:    execErr,
		},
		ID: uuid.NewString(),
	}
}

// Register announces an agent to governance on startup.
type Register struct {
	JSONRPC string         `json:"jsonrpc"`
	Method  string         `json:"method"` // MethodRegister
	Params  RegisterParams `json:"params"`
	ID      string         `json:"id"`
}

// RegisterParams identifies the registering agent and what it wants
// to be allowed to do.
type RegisterParams struct {
	AgentDID did.AgentDID `json:"agent_did"`

	// PublicKey is the agent's published key reference. For symmetric
	// AEON deployments this is a key identifier, never the secret
	// itself.
	PublicKey string `json:"public_key"`

	CapabilitiesRequested []string `json:"capabilities_requested"`

	Metadata *AgentMetadata `json:"metadata,omitempty"`
}

// AgentMetadata describes the registering agent.
type AgentMetadata struct {
	Name    string `json:"name"`
	Version string `json:"version"`
	Runtime string `json:"runtime,omitempty"`
}

// NewRegister creates a registration envelope.
func NewRegister(agentDID did.AgentDID, publicKey string, capabilities []string) *Register {
	return &Register{
		JSONRPC: JSONRPCVersion,
		Method:  MethodRegister,
		Params: RegisterParams{
			AgentDID:              agentDID,
			PublicKey:             publicKey,
			CapabilitiesRequested: capabilities,
		},
		ID: uuid.NewString(),
	}
}
