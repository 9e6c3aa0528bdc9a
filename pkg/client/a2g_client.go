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

package client

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"

	"github.com/aeon-protocol/a2g-go/pkg/did"
	"github.com/aeon-protocol/a2g-go/pkg/protocol"
	"github.com/aeon-protocol/a2g-go/pkg/signer"
)

// A2GClient talks JSON-RPC 2.0 to a governance endpoint and signs
// every envelope with the agent's identity.
type A2GClient struct {
	document   *did.Document
	endpoint   string
	signer     signer.MessageSigner
	httpClient *http.Client
}

// NewA2GClient creates a client for the given identity document and
// governance endpoint. If httpClient is nil, http.DefaultClient is
// used.
func NewA2GClient(document *did.Document, endpoint string, httpClient *http.Client) *A2GClient {
	if httpClient == nil {
		httpClient = http.DefaultClient
	}

	return &A2GClient{
		document:   document,
		endpoint:   endpoint,
		signer:     signer.NewDefaultSigner(),
		httpClient: httpClient,
	}
}

// AgentDID returns the DID this client signs as.
func (c *A2GClient) AgentDID() did.AgentDID {
	return c.document.DID
}

// Register announces the agent to governance, requesting the given
// capabilities. The registration carries a key fingerprint (the keyed
// hash of the agent's DID), which commits to the signing key without
// revealing it.
func (c *A2GClient) Register(ctx context.Context, capabilities []string, metadata *protocol.AgentMetadata) error {
	fingerprint, err := c.signer.Hash(c.document.SigningKey, c.document.DID.String())
	if err != nil {
		return fmt.Errorf("failed to fingerprint signing key: %w", err)
	}

	reg := protocol.NewRegister(c.document.DID, fingerprint, capabilities)
	reg.Params.Metadata = metadata

	resp, err := c.post(ctx, reg)
	if err != nil {
		return err
	}
	_, err = decodeVerdict(resp)
	return err
}

// SubmitIntent asks governance for permission to invoke tool with the
// given arguments, signing the intent with the agent's identity.
// It returns the verdict, or an error when governance rejects the
// envelope outright.
func (c *A2GClient) SubmitIntent(ctx context.Context, tool string, arguments any) (*protocol.VerdictResult, error) {
	intent := protocol.NewIntent(c.document.DID, tool, arguments)
	return c.SendIntent(ctx, intent)
}

// SendIntent signs and submits a caller-built intent, for callers that
// need to set context fields such as session or reasoning first.
func (c *A2GClient) SendIntent(ctx context.Context, intent *protocol.Intent) (*protocol.VerdictResult, error) {
	sig, err := c.signIdentity()
	if err != nil {
		return nil, err
	}
	intent.WithSignature(sig)

	resp, err := c.post(ctx, intent)
	if err != nil {
		return nil, err
	}
	return decodeVerdict(resp)
}

// Report sends an execution outcome for a previously approved intent.
func (c *A2GClient) Report(ctx context.Context, report *protocol.Report) error {
	resp, err := c.post(ctx, report)
	if err != nil {
		return err
	}
	_, err = decodeVerdict(resp)
	return err
}

// signIdentity signs the agent's DID string. Governance recomputes the
// same identity payload when authenticating the envelope.
func (c *A2GClient) signIdentity() (*signer.Signature, error) {
	sig, err := c.signer.Sign(c.document.SigningKey, c.document.DID.String(), nil)
	if err != nil {
		return nil, fmt.Errorf("failed to sign identity: %w", err)
	}
	return sig, nil
}

// post sends one JSON-RPC envelope to the governance endpoint.
func (c *A2GClient) post(ctx context.Context, envelope any) (*http.Response, error) {
	if err := ctx.Err(); err != nil {
		return nil, fmt.Errorf("context error: %w", err)
	}

	body, err := json.Marshal(envelope)
	if err != nil {
		return nil, fmt.Errorf("failed to encode envelope: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.endpoint, bytes.NewReader(body))
	if err != nil {
		return nil, fmt.Errorf("failed to create request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("HTTP request failed: %w", err)
	}
	return resp, nil
}

// decodeVerdict reads a JSON-RPC response body and surfaces its error
// object, if any, as a Go error.
func decodeVerdict(resp *http.Response) (*protocol.VerdictResult, error) {
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("failed to read response: %w", err)
	}

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("governance returned HTTP %d: %s", resp.StatusCode, bytes.TrimSpace(body))
	}

	var verdict protocol.VerdictResponse
	if err := json.Unmarshal(body, &verdict); err != nil {
		return nil, fmt.Errorf("failed to decode verdict: %w", err)
	}

	if verdict.Error != nil {
		return nil, fmt.Errorf("governance rejected request: %d %s", verdict.Error.Code, verdict.Error.Message)
	}
	return verdict.Result, nil
}
