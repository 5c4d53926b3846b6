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

// Package interop implements the conformance harness named in §2
// component 8 and detailed in §6: five named operations (sign, attached,
// unversioned, encrypt, signedSession), each exposing Generate and Test
// so that an output produced by one implementation against a shared
// on-disk keyset can be checked by another. It exists to exercise, and
// therefore pin down, the envelope and encoding contracts the rest of
// this module implements.
package interop

// DefaultMessage is the fixed plaintext/signed-over payload the harness
// uses unless a params override supplies one, matching the Keyczar
// reference interop suite's convention of a single canonical test
// string shared by every language port.
const DefaultMessage = "This is some test data"

// Operation is the contract every named interop operation implements
// (§6): Generate produces an output from a keyset addressed by
// algorithm name; Test checks a previously generated output against the
// same (or a companion) keyset.
type Operation interface {
	Generate(algorithm string, params Params) ([]byte, error)
	Test(output []byte, algorithm string, genParams, testParams Params) (bool, error)
}
