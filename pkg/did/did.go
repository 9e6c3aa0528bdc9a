package did

import (
	"errors"
	"fmt"
	"regexp"
	"strings"
)

// Method is the DID method name for AEON identifiers.
const Method = "aeon"

// Prefix is the leading portion of every AEON DID string.
const Prefix = "did:" + Method + ":"

// ErrInvalidName is returned when a DID name is empty or contains
// characters outside lowercase letters, digits and hyphens.
var ErrInvalidName = errors.New("invalid DID name: use lowercase letters, numbers, and hyphens")

var namePattern = regexp.MustCompile(`^[a-z0-9-]+$`)

// AgentDID is an AEON decentralized identifier string,
// e.g. "did:aeon:my-agent".
type AgentDID string

// String returns the DID as a plain string.
func (d AgentDID) String() string {
	return string(d)
}

// Name returns the agent name portion of the DID, or "" if the DID is
// not a well-formed AEON identifier.
func (d AgentDID) Name() string {
	name, ok := strings.CutPrefix(string(d), Prefix)
	if !ok {
		return ""
	}
	return name
}

// Valid reports whether the DID is a well-formed AEON identifier.
func (d AgentDID) Valid() bool {
	return namePattern.MatchString(d.Name())
}

// ValidateName checks a candidate agent name against the AEON naming
// rule. It returns ErrInvalidName for empty or non-conforming names.
func ValidateName(name string) error {
	if !namePattern.MatchString(name) {
		return fmt.Errorf("%w: %q", ErrInvalidName, name)
	}
	return nil
}

// Parse validates s as an AEON DID and returns it typed.
func Parse(s string) (AgentDID, error) {
	d := AgentDID(s)
	if !d.Valid() {
		return "", fmt.Errorf("not an AEON DID: %q", s)
	}
	return d, nil
}
