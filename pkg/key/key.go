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

// Package key implements the polymorphic key entity: a tagged variant
// over the six canonical shapes named in the key-material data model
// (HMAC, AES, RSA public/private, DSA public/private), each carrying its
// algorithm, bit size, raw material, and a derived 4-byte key hash used
// as the envelope tag.
package key

import (
	"github.com/automatethethings/go-keyset/pkg/types"
)

// Capability is a bitset of the operations a key variant supports.
type Capability uint8

const (
	CapSign Capability = 1 << iota
	CapVerify
	CapEncrypt
	CapDecrypt
)

// Has reports whether c includes all bits set in want.
func (c Capability) Has(want Capability) bool { return c&want == want }

// Key is the common contract implemented by all six variants. Instances
// are immutable after construction and carry no behavior beyond exposing
// their own material; the primitive provider performs the actual
// cryptographic work.
type Key interface {
	// Algorithm returns the key's algorithm identifier.
	Algorithm() types.AlgID

	// Size returns the key's bit size.
	Size() int

	// Hash returns the 4-byte key hash used in envelope headers. Two keys
	// constructed from the same generation (a private key and its public
	// half) return identical hashes.
	Hash() [4]byte

	// Capabilities returns the operations this variant supports.
	Capabilities() Capability

	// Zeroize overwrites any secret material this key holds. It is safe
	// to call more than once.
	Zeroize()
}

// Signer is implemented by variants capable of producing signatures.
type Signer interface {
	Key
	Sign(digest []byte) ([]byte, error)
}

// Verifier is implemented by variants capable of checking signatures.
type Verifier interface {
	Key
	Verify(digest, sig []byte) (bool, error)
}

// Encrypter is implemented by variants capable of encrypting.
type Encrypter interface {
	Key
	Encrypt(plaintext []byte) ([]byte, error)
}

// Decrypter is implemented by variants capable of decrypting.
type Decrypter interface {
	Key
	Decrypt(ciphertext []byte) ([]byte, error)
}

// Macer is implemented by symmetric keys capable of both tagging and
// verifying a MAC (HMAC keys, and the HMAC key embedded in an AES key).
type Macer interface {
	Key
	Digest(data []byte) ([]byte, error)
	VerifyMAC(data, mac []byte) (bool, error)
}

// Cipherer is implemented by the AES variant, which both encrypts and
// decrypts under the same shared key.
type Cipherer interface {
	Key
	Encrypt(iv, plaintext []byte) ([]byte, error)
	Decrypt(iv, ciphertext []byte) ([]byte, error)
	IVSize() int
}
