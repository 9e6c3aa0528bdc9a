// Package signer provides message signing for A2G (Agent-to-Governance)
// communication.
//
// This package implements HMAC-SHA256 signing with AEON DIDs for
// authenticating protocol messages exchanged between an agent and its
// governing authority.
//
// # Signing Messages
//
// Use a MessageSigner to sign outgoing messages with your agent's
// signing key:
//
//	s := signer.NewDefaultSigner()
//	sig, err := s.Sign(doc.SigningKey, message, nil)
//	if err != nil {
//	    log.Fatal(err)
//	}
//
// The resulting Signature carries the timestamp, nonce and MAC that
// the governance side needs to authenticate the message.
//
// # Payload Format
//
// The MAC input is never transmitted; both sides recompute it as:
//
//	<timestamp-ms>:<nonce>:<canonical-message-bytes>
//
// where the canonical message bytes come from the canonical package,
// so structurally equal messages always produce identical MAC input
// regardless of how they were constructed.
//
// # Deterministic Signing
//
// Supplying explicit options pins the timestamp and nonce:
//
//	sig, err := s.Sign(key, message, &signer.SignOptions{
//	    Timestamp: "1700000000000",
//	    Nonce:     "fixed-nonce",
//	})
//
// With both set, Sign is a pure function of its inputs. Verification
// exploits this by re-signing with the presented timestamp and nonce
// instead of trusting the presented hash.
//
// # Keys
//
// Signing keys are 256-bit symmetric secrets, hex-encoded (see the
// keys package). Sign fails with keys.ErrInvalidEncoding when the key
// is not valid hex and with ErrInvalidKey when the decoded key is not
// 32 bytes. Keys are secrets: never log them and never send them in
// verification traffic.
//
// # Security Considerations
//
//   - An attacker without the key cannot forge or extend a valid hash
//     for a chosen payload.
//   - The timestamp bounds a signature's validity window; pair it with
//     the verifier's maxAge check.
//   - Nonces make otherwise-identical messages produce distinct
//     signatures and enable replay rejection upstream.
package signer
