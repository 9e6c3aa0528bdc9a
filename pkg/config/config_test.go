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

package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeConfig(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "agent.yaml")
	require.NoError(t, os.WriteFile(path, []byte(content), 0o600))
	return path
}

func TestLoad(t *testing.T) {
	path := writeConfig(t, `
identity_file: /var/lib/agent/identity.json
governance_endpoint: https://governance.example.com/a2g
signature_max_age_ms: 30000
replay_window_ms: 60000
`)

	cfg, err := Load(path)
	require.NoError(t, err)

	assert.Equal(t, "/var/lib/agent/identity.json", cfg.IdentityFile)
	assert.Equal(t, "https://governance.example.com/a2g", cfg.GovernanceEndpoint)
	assert.Equal(t, 30*time.Second, cfg.MaxSignatureAge())
	assert.Equal(t, time.Minute, cfg.ReplayWindow())
}

func TestLoad_Defaults(t *testing.T) {
	path := writeConfig(t, `
identity_file: identity.json
governance_endpoint: http://localhost:8080/a2g
`)

	cfg, err := Load(path)
	require.NoError(t, err)

	assert.Equal(t, DefaultMaxSignatureAge, cfg.MaxSignatureAge())
	assert.Equal(t, DefaultReplayWindow, cfg.ReplayWindow())
}

func TestLoad_Invalid(t *testing.T) {
	tests := []struct {
		name    string
		content string
	}{
		{"missing identity_file", "governance_endpoint: http://localhost:8080/a2g\n"},
		{"missing endpoint", "identity_file: identity.json\n"},
		{"negative max age", "identity_file: a\ngovernance_endpoint: b\nsignature_max_age_ms: -1\n"},
		{"negative replay window", "identity_file: a\ngovernance_endpoint: b\nreplay_window_ms: -1\n"},
		{"not yaml", "{identity_file: [unterminated\n"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := Load(writeConfig(t, tt.content))
			assert.Error(t, err)
		})
	}
}

func TestLoad_MissingFile(t *testing.T) {
	_, err := Load(filepath.Join(t.TempDir(), "nope.yaml"))
	assert.Error(t, err)
}
