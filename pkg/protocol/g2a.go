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
	"time"

	"github.com/aeon-protocol/a2g-go/pkg/did"
)

// G2A method names (governance → agent).
const (
	MethodPolicy = "g2a/policy"
)

// Verdict is governance's decision on an intent.
type Verdict string

const (
	VerdictApproved    Verdict = "APPROVED"
	VerdictDenied      Verdict = "DENIED"
	VerdictEscalate    Verdict = "ESCALATE"
	VerdictConditional Verdict = "CONDITIONAL"
)

// VerdictResponse is the JSON-RPC response to an intent. Exactly one
// of Result or Error is set.
type VerdictResponse struct {
	JSONRPC string         `json:"jsonrpc"`
	Result  *VerdictResult `json:"result,omitempty"`
	Error   *VerdictError  `json:"error,omitempty"`
	ID      string         `json:"id"`
}

// VerdictResult carries an approval, denial or escalation for one
// intent.
type VerdictResult struct {
	Verdict  Verdict `json:"verdict"`
	IntentID string  `json:"intent_id"`

	// RiskAssessment explains how governance scored the intent.
	RiskAssessment RiskAssessment `json:"risk_assessment"`

	// CapabilityManifest bounds execution resources for approved
	// intents.
	CapabilityManifest *CapabilityManifest `json:"capability_manifest,omitempty"`

	// Conditions must be honored when the verdict is CONDITIONAL.
	Conditions []string `json:"conditions,omitempty"`

	// ExpiresAt is when the approval lapses.
	ExpiresAt *time.Time `json:"expires_at,omitempty"`
}

// VerdictError is the JSON-RPC error object for rejected envelopes.
type VerdictError struct {
	Code    int    `json:"code"`
	Message string `json:"message"`
	Data    any    `json:"data,omitempty"`
}

// RiskLevel buckets a risk score.
type RiskLevel string

const (
	RiskCritical RiskLevel = "CRITICAL"
	RiskHigh     RiskLevel = "HIGH"
	RiskMedium   RiskLevel = "MEDIUM"
	RiskLow      RiskLevel = "LOW"
)

// RiskLevelFromScore buckets a score in [0, 1] into a RiskLevel.
func RiskLevelFromScore(score float64) RiskLevel {
	switch {
	case score >= 0.9:
		return RiskCritical
	case score >= 0.7:
		return RiskHigh
	case score >= 0.4:
		return RiskMedium
	default:
		return RiskLow
	}
}

// RiskAssessment is governance's risk evaluation of an intent.
type RiskAssessment struct {
	Score          float64   `json:"score"`
	Level          RiskLevel `json:"level"`
	ModelScore     float64   `json:"model_score,omitempty"`
	HeuristicScore float64   `json:"heuristic_score,omitempty"`
	Threats        []string  `json:"threats"`
}

// CapabilityManifest bounds what an approved execution may consume.
type CapabilityManifest struct {
	MaxMemoryMB     uint32   `json:"max_memory_mb,omitempty"`
	MaxCPUPercent   uint32   `json:"max_cpu_percent,omitempty"`
	TimeoutSeconds  uint32   `json:"timeout_seconds,omitempty"`
	NetworkAllowed  bool     `json:"network_allowed,omitempty"`
	FilesystemScope []string `json:"filesystem_scope,omitempty"`
}

// Policy pushes the agent's current capability set from governance.
type Policy struct {
	JSONRPC string       `json:"jsonrpc"`
	Method  string       `json:"method"` // MethodPolicy
	Params  PolicyParams `json:"params"`
	ID      string       `json:"id,omitempty"`
}

// PolicyParams describes the capabilities granted to one agent.
type PolicyParams struct {
	AgentDID     did.AgentDID       `json:"agent_did"`
	Version      string             `json:"version"`
	Capabilities PolicyCapabilities `json:"capabilities"`

	// ConstitutionHash pins the governing ruleset this policy was
	// derived from.
	ConstitutionHash string `json:"constitution_hash,omitempty"`
}

// PolicyCapabilities groups the per-domain capability grants.
type PolicyCapabilities struct {
	Tools     map[string]ToolPolicy `json:"tools,omitempty"`
	Network   *NetworkPolicy        `json:"network,omitempty"`
	Resources *ResourceLimits       `json:"resources,omitempty"`
}

// ToolPolicy states whether a tool may be used and under what
// constraints.
type ToolPolicy struct {
	Allowed     bool `json:"allowed"`
	Constraints any  `json:"constraints,omitempty"`
}

// NetworkPolicy bounds the agent's network reach.
type NetworkPolicy struct {
	AllowedDomains       []string `json:"allowed_domains"`
	BlockedDomains       []string `json:"blocked_domains"`
	MaxRequestsPerMinute uint32   `json:"max_requests_per_minute,omitempty"`
}

// ResourceLimits bounds the agent's resource consumption.
type ResourceLimits struct {
	MaxMemoryMB   uint32 `json:"max_memory_mb,omitempty"`
	MaxCPUPercent uint32 `json:"max_cpu_percent,omitempty"`
	MaxDiskMB     uint32 `json:"max_disk_mb,omitempty"`
}
