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

// Package a2g provides version information for a2g-go.
package a2g

const (
	// Version is the current version of a2g-go
	Version = "1.0.0-dev"

	// A2GProtocolVersion is the A2G Protocol specification version this library supports
	A2GProtocolVersion = "1.0"

	// DIDMethod is the DID method used for agent identities
	DIDMethod = "aeon"
)

// VersionInfo contains detailed version information
type VersionInfo struct {
	A2GGoVersion       string
	A2GProtocolVersion string
	DIDMethod          string
}

// GetVersionInfo returns detailed version information
func GetVersionInfo() VersionInfo {
	return VersionInfo{
		A2GGoVersion:       Version,
		A2GProtocolVersion: A2GProtocolVersion,
		DIDMethod:          DIDMethod,
	}
}
