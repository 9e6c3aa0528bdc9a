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

// Package config loads agent-side configuration for A2G deployments.
// The signing core itself takes no configuration; this is glue for
// processes embedding the SDK.
package config

import (
	"errors"
	"fmt"
	"os"
	"time"

	"gopkg.in/yaml.v3"
)

// Default configuration values.
const (
	DefaultMaxSignatureAge = 5 * time.Minute
	DefaultReplayWindow    = 5 * time.Minute
)

// AgentConfig configures a process that signs and submits A2G
// envelopes.
type AgentConfig struct {
	// IdentityFile is the path to the agent's identity document
	// (see did.LoadDocument).
	IdentityFile string `yaml:"identity_file"`

	// GovernanceEndpoint is the governance JSON-RPC URL.
	GovernanceEndpoint string `yaml:"governance_endpoint"`

	// SignatureMaxAgeMillis bounds how old (or future-dated) a
	// signature may be and still verify. Zero means the default.
	SignatureMaxAgeMillis int64 `yaml:"signature_max_age_ms"`

	// ReplayWindowMillis is how long consumed nonces are remembered.
	// Zero means the default.
	ReplayWindowMillis int64 `yaml:"replay_window_ms"`
}

// Load reads an AgentConfig from a YAML file, applies defaults and
// validates it.
func Load(path string) (*AgentConfig, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read config: %w", err)
	}

	var cfg AgentConfig
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return nil, fmt.Errorf("failed to parse config: %w", err)
	}

	cfg.applyDefaults()
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return &cfg, nil
}

func (c *AgentConfig) applyDefaults() {
	if c.SignatureMaxAgeMillis == 0 {
		c.SignatureMaxAgeMillis = DefaultMaxSignatureAge.Milliseconds()
	}
	if c.ReplayWindowMillis == 0 {
		c.ReplayWindowMillis = DefaultReplayWindow.Milliseconds()
	}
}

// Validate checks that the configuration is usable.
func (c *AgentConfig) Validate() error {
	if c.IdentityFile == "" {
		return errors.New("identity_file must be set")
	}
	if c.GovernanceEndpoint == "" {
		return errors.New("governance_endpoint must be set")
	}
	if c.SignatureMaxAgeMillis < 0 {
		return errors.New("signature_max_age_ms must not be negative")
	}
	if c.ReplayWindowMillis < 0 {
		return errors.New("replay_window_ms must not be negative")
	}
	return nil
}

// MaxSignatureAge returns the signature window as a time.Duration.
func (c *AgentConfig) MaxSignatureAge() time.Duration {
	return time.Duration(c.SignatureMaxAgeMillis) * time.Millisecond
}

// ReplayWindow returns the replay window as a time.Duration.
func (c *AgentConfig) ReplayWindow() time.Duration {
	return time.Duration(c.ReplayWindowMillis) * time.Millisecond
}
