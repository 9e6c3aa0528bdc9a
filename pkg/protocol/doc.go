// Package protocol provides the A2G protocol message catalog.
//
// A2G (Agent-to-Governance) is a JSON-RPC 2.0 message exchange between
// an autonomous agent and its governing authority. The agent sends
// intents before acting, reports after acting, and registers on
// startup; governance answers with verdicts and pushes policies.
//
// # Message Flow
//
//	agent                       governance
//	  | -- a2g/register ------------> |
//	  | -- a2g/intent --------------> |
//	  | <------------- verdict ------ |
//	  | -- a2g/report --------------> |
//	  | <---------- g2a/policy ------ |
//
// # Identity
//
// Every agent-originated envelope names the sender by AEON DID. An
// intent's context carries an optional signer.Signature computed over
// the DID string, which the governance side verifies before trusting
// the envelope; see the client and server packages for both halves of
// that exchange.
//
// These types are plain data containers: they impose no requirements
// on the signing primitive beyond embedding its Signature value, and
// their JSON field names are wire-compatible with the other AEON SDKs.
package protocol
