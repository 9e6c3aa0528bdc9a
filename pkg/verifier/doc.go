// Package verifier provides DID-based message verification for A2G
// communication.
//
// This package authenticates messages signed by the signer package:
// the verifier re-derives the expected HMAC-SHA256 for the presented
// (timestamp, nonce, message) triple and compares it against the
// presented MAC in constant time, inside a bounded validity window.
//
// # Verifying Messages
//
//	v := verifier.NewDefaultVerifier()
//	ok := v.Verify(signingKey, sig, message, 5*time.Minute)
//	if !ok {
//	    // not authenticated: tampered, expired, or malformed
//	}
//
// Verify returns a bare boolean by design. Bad timestamps, expired
// windows, malformed hex and MAC mismatches all look identical to the
// caller, so a forger learns nothing about which gate rejected the
// attempt.
//
// # Validity Window
//
// The maxAge parameter bounds |now - signedAt| symmetrically. It is a
// data validity window, not a scheduling timeout: signatures older
// than maxAge are treated as stale replays, and timestamps further in
// the future than maxAge are treated as forged or hopelessly skewed.
// A signature aged exactly maxAge still verifies.
//
// # Replay Protection
//
// The window alone does not make delivery exactly-once: a captured,
// still-fresh (timestamp, nonce, hash) triple verifies again until the
// window expires. Callers that need at-most-once semantics put a
// ReplayGuard in front of Verify; see the ReplayGuard documentation.
// Verification itself stays pure and stateless, so concurrent calls
// are independent and order-insensitive.
package verifier
