package did

import (
	"encoding/json"
	"fmt"
	"os"
	"time"

	"github.com/aeon-protocol/a2g-go/pkg/keys"
)

// Document is an AEON identity document binding a DID to its signing
// key and metadata. The JSON field names match the wire format emitted
// by the other AEON SDKs.
type Document struct {
	// DID is the agent's identifier, "did:aeon:<name>". Immutable
	// once issued.
	DID AgentDID `json:"did"`

	// Name is the agent name the DID was issued for. Validated at
	// creation, never revalidated afterwards.
	Name string `json:"name"`

	// SigningKey is the agent's 256-bit symmetric secret, hex-encoded.
	// It is exclusively owned by this document and must never appear
	// in logs or verification traffic.
	SigningKey string `json:"signing_key"`

	// CreatedAt records when the document was issued (UTC).
	// Informational only; signing logic never reads it.
	CreatedAt time.Time `json:"created_at"`

	// Metadata carries optional caller-supplied fields, passed through
	// unexamined.
	Metadata map[string]any `json:"metadata,omitempty"`
}

// CreateOptions contains optional inputs for Create.
type CreateOptions struct {
	// SigningKey is an existing hex-encoded 256-bit key to bind to the
	// document. If empty, a fresh key is generated.
	SigningKey string

	// Metadata is attached to the document verbatim.
	Metadata map[string]any
}

// Create issues a new identity document for the given agent name.
//
// The name must match ^[a-z0-9-]+$; otherwise Create fails with
// ErrInvalidName. If opts is nil or carries no signing key, a new
// 256-bit key is generated.
func Create(name string, opts *CreateOptions) (*Document, error) {
	if err := ValidateName(name); err != nil {
		return nil, err
	}

	if opts == nil {
		opts = &CreateOptions{}
	}

	signingKey := opts.SigningKey
	if signingKey == "" {
		generated, err := keys.Generate()
		if err != nil {
			return nil, err
		}
		signingKey = generated
	}

	return &Document{
		DID:        AgentDID(Prefix + name),
		Name:       name,
		SigningKey: signingKey,
		CreatedAt:  time.Now().UTC(),
		Metadata:   opts.Metadata,
	}, nil
}

// Save writes the document to path as JSON with owner-only
// permissions; the file contains the signing key.
func (d *Document) Save(path string) error {
	data, err := json.MarshalIndent(d, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to encode identity document: %w", err)
	}
	if err := os.WriteFile(path, data, 0o600); err != nil {
		return fmt.Errorf("failed to write identity document: %w", err)
	}
	return nil
}

// LoadDocument reads an identity document previously written with Save.
func LoadDocument(path string) (*Document, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read identity document: %w", err)
	}
	var doc Document
	if err := json.Unmarshal(data, &doc); err != nil {
		return nil, fmt.Errorf("failed to decode identity document: %w", err)
	}
	return &doc, nil
}
