package server

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"time"

	"github.com/aeon-protocol/a2g-go/pkg/did"
	"github.com/aeon-protocol/a2g-go/pkg/signer"
	"github.com/aeon-protocol/a2g-go/pkg/verifier"
)

type contextKey string

const agentDIDKey contextKey = "agent_did"

// DefaultMaxSignatureAge is the signature validity window used when
// none is configured. Matches the other AEON SDKs.
const DefaultMaxSignatureAge = 5 * time.Minute

// ErrorHandler handles verification errors
type ErrorHandler func(w http.ResponseWriter, r *http.Request, err error)

// A2GAuthMiddleware provides HTTP middleware for DID signature
// verification on inbound A2G envelopes.
type A2GAuthMiddleware struct {
	resolver     KeyResolver
	verifier     verifier.MessageVerifier
	replay       *verifier.ReplayGuard
	maxAge       time.Duration
	errorHandler ErrorHandler
	optional     bool
	logger       *slog.Logger
}

// NewA2GAuthMiddleware creates middleware that resolves signing keys
// through resolver, rejects signatures older than
// DefaultMaxSignatureAge, and rejects replayed nonces inside that
// window.
func NewA2GAuthMiddleware(resolver KeyResolver) *A2GAuthMiddleware {
	return &A2GAuthMiddleware{
		resolver:     resolver,
		verifier:     verifier.NewDefaultVerifier(),
		replay:       verifier.NewReplayGuard(DefaultMaxSignatureAge),
		maxAge:       DefaultMaxSignatureAge,
		errorHandler: defaultErrorHandler,
		optional:     false,
		logger:       slog.Default(),
	}
}

// SetMaxSignatureAge sets the validity window and resizes the replay
// guard to match.
func (m *A2GAuthMiddleware) SetMaxSignatureAge(maxAge time.Duration) {
	m.maxAge = maxAge
	m.replay = verifier.NewReplayGuard(maxAge)
}

// SetErrorHandler sets a custom error handler
func (m *A2GAuthMiddleware) SetErrorHandler(handler ErrorHandler) {
	m.errorHandler = handler
}

// SetOptional sets whether signature verification is optional.
// If true, envelopes without signatures are allowed to pass through.
func (m *A2GAuthMiddleware) SetOptional(optional bool) {
	m.optional = optional
}

// SetLogger sets the logger used for rejected requests.
func (m *A2GAuthMiddleware) SetLogger(logger *slog.Logger) {
	m.logger = logger
}

// signedEnvelope is the part of an A2G envelope the middleware reads:
// the sender DID and the identity signature in the intent context.
type signedEnvelope struct {
	Method string `json:"method"`
	Params struct {
		AgentDID string `json:"agent_did"`
		Context  *struct {
			Signature *signer.Signature `json:"signature"`
		} `json:"context"`
	} `json:"params"`
}

// Wrap wraps an HTTP handler with A2G identity authentication.
//
// The middleware buffers the request body, extracts the sender DID and
// signature from the envelope, resolves the agent's signing key,
// rejects replayed nonces, and verifies the signature over the DID
// string. On success the verified DID is placed in the request context
// and the body is restored for the next handler.
func (m *A2GAuthMiddleware) Wrap(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		// Skip verification for OPTIONS requests (CORS preflight)
		if r.Method == http.MethodOptions {
			next.ServeHTTP(w, r)
			return
		}

		// Read body to preserve it for the handler
		var bodyBytes []byte
		if r.Body != nil {
			bodyBytes, _ = io.ReadAll(r.Body)
			r.Body.Close()
		}
		r.Body = io.NopCloser(bytes.NewBuffer(bodyBytes))

		var envelope signedEnvelope
		if err := json.Unmarshal(bodyBytes, &envelope); err != nil {
			m.reject(w, r, fmt.Errorf("malformed envelope: %w", err))
			return
		}

		if envelope.Params.Context == nil || envelope.Params.Context.Signature == nil {
			if m.optional {
				// Allow request to proceed without DID in context
				next.ServeHTTP(w, r)
				return
			}
			m.reject(w, r, fmt.Errorf("missing identity signature"))
			return
		}
		sig := envelope.Params.Context.Signature

		agentDID, err := did.Parse(envelope.Params.AgentDID)
		if err != nil {
			m.reject(w, r, fmt.Errorf("invalid agent DID: %w", err))
			return
		}

		ctx := r.Context()
		signingKey, err := m.resolver.ResolveSigningKey(ctx, agentDID)
		if err != nil {
			m.reject(w, r, fmt.Errorf("failed to resolve signing key: %w", err))
			return
		}

		// Replay check comes first so a replayed envelope is burned
		// even when its signature would no longer verify.
		if !m.replay.Remember(agentDID, sig.Nonce) {
			m.reject(w, r, fmt.Errorf("replayed nonce"))
			return
		}

		if !m.verifier.Verify(signingKey, sig, agentDID.String(), m.maxAge) {
			m.reject(w, r, fmt.Errorf("signature verification failed"))
			return
		}

		// Add verified DID to context
		ctx = context.WithValue(ctx, agentDIDKey, agentDID)
		next.ServeHTTP(w, r.WithContext(ctx))
	})
}

func (m *A2GAuthMiddleware) reject(w http.ResponseWriter, r *http.Request, err error) {
	if m.logger != nil {
		m.logger.Warn("rejected A2G request",
			"remote", r.RemoteAddr,
			"reason", err.Error(),
		)
	}
	m.errorHandler(w, r, err)
}

// GetAgentDIDFromContext extracts the verified agent DID from the
// request context.
func GetAgentDIDFromContext(ctx context.Context) (did.AgentDID, bool) {
	agentDID, ok := ctx.Value(agentDIDKey).(did.AgentDID)
	return agentDID, ok
}

// defaultErrorHandler is the default error handler
func defaultErrorHandler(w http.ResponseWriter, _ *http.Request, err error) {
	http.Error(w, fmt.Sprintf("Unauthorized: %s", err.Error()), http.StatusUnauthorized)
}
