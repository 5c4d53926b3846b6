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

package types

// Password is an interface for accessing a credential used to protect an
// encrypted keyset (§6 meta "encrypted": bool).
type Password interface {
	// Bytes returns the password as a byte slice.
	Bytes() []byte

	// String returns the password as a string.
	String() (string, error)

	// Clear zeros out the password from memory.
	Clear()
}
