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

package key

import (
	"crypto/sha1"
	"encoding/binary"
)

// hashComponents computes the 4-byte key hash: SHA-1 over a
// length-prefixed concatenation of the given components, truncated to
// the leading 4 bytes. Each component is written as a big-endian uint32
// length followed by its bytes, matching the reference implementation's
// canonical key-hash serialization so hashes interoperate across ports.
func hashComponents(components ...[]byte) [4]byte {
	h := sha1.New()
	var lenBuf [4]byte
	for _, c := range components {
		binary.BigEndian.PutUint32(lenBuf[:], uint32(len(c)))
		h.Write(lenBuf[:])
		h.Write(c)
	}
	sum := h.Sum(nil)
	var out [4]byte
	copy(out[:], sum[:4])
	return out
}
