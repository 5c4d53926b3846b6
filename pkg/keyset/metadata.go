// Copyright (c) 2025 Jeremy Hahn
// Copyright (c) 2025 Automate The Things, LLC
//
// This file is part of go-keychain.
//
// go-keychain is dual-licensed:
//
// 1. GNU Affero General Public License v3.0 (AGPL-3.0)
//    See LICENSE file or visit https://www.gnu.org/licenses/agpl-3.0.html
//
// 2. Commercial License
//    Contact licensing@automatethethings.com for commercial licensing options.

// Package keyset implements the versioned key collection described in
// §4.4: an ordered mapping from version number to key, plus metadata
// (name, purpose, key type, version records, primary-version pointer),
// read from a Reader and mutated through generation, promotion,
// revocation, and destruction.
package keyset

import (
	"github.com/automatethethings/go-keyset/pkg/types"
)

// VersionRecord describes one version's lifecycle state, matching the
// on-disk shape in §6.
type VersionRecord struct {
	VersionNumber int                 `json:"versionNumber"`
	Status        types.VersionStatus `json:"status"`
	Exportable    bool                `json:"exportable"`
}

// Metadata is the keyset's `meta` file, per §6. Salt is a SPEC_FULL
// addition: it is present and base64w-encoded only when Encrypted is
// true, and is the PBKDF2 salt used to derive the at-rest wrapping key
// (§11 of SPEC_FULL.md).
type Metadata struct {
	Name      string           `json:"name"`
	Purpose   types.KeyPurpose `json:"purpose"`
	Type      types.AlgID      `json:"type"`
	Encrypted bool             `json:"encrypted"`
	Salt      string           `json:"salt,omitempty"`
	Versions  []VersionRecord  `json:"versions"`
}
