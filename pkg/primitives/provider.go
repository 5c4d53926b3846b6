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

// Package primitives supplies the concrete cryptographic operations the
// rest of the toolkit is built on: keyed digests, a symmetric block
// cipher, and the two asymmetric signature/encryption primitives the
// key-variant data model names (RSA and DSA). It is the "external
// collaborator" the keyset and façade layers call through, never the
// other way around.
package primitives

import (
	"crypto/rand"
	"io"
)

// Rand is the process-wide cryptographically secure random source. It is
// injectable at construction time only, so tests can substitute a
// deterministic reader; nothing downstream may reseed it.
var Rand io.Reader = rand.Reader

// MAC computes and verifies keyed digests.
type MAC interface {
	// Digest computes the MAC of data under key.
	Digest(key, data []byte) ([]byte, error)
	// Verify reports whether mac is the correct digest of data under key,
	// in constant time.
	Verify(key, data, mac []byte) (bool, error)
}

// BlockCipher performs symmetric encryption in CBC mode with PKCS#7
// padding.
type BlockCipher interface {
	Encrypt(key, iv, plaintext []byte) ([]byte, error)
	Decrypt(key, iv, ciphertext []byte) ([]byte, error)
	BlockSize() int
	IVSize() int
}

// RSA exposes RSA PKCS#1 v1.5 sign/verify and RSA-OAEP encrypt/decrypt
// over raw big-endian parameter bytes, so this package never depends on
// pkg/key's JSON shapes.
type RSA interface {
	Sign(priv RSAPrivateParams, digest []byte, hashBits int) ([]byte, error)
	Verify(pub RSAPublicParams, digest, sig []byte, hashBits int) (bool, error)
	Encrypt(pub RSAPublicParams, plaintext []byte) ([]byte, error)
	Decrypt(priv RSAPrivateParams, ciphertext []byte) ([]byte, error)
	GenerateKey(bits int) (RSAPrivateParams, error)
}

// DSA exposes DSA sign/verify over raw big-endian parameter bytes.
type DSA interface {
	Sign(priv DSAPrivateParams, digest []byte) (r, s []byte, err error)
	Verify(pub DSAPublicParams, digest, r, s []byte) (bool, error)
	GenerateKey(bits int) (DSAPrivateParams, error)
}

// RSAPublicParams is the big-endian-integer representation of an RSA
// public key, matching §4.3's "modulus"/"publicExponent" fields.
type RSAPublicParams struct {
	Modulus        []byte
	PublicExponent []byte
}

// RSAPrivateParams is the big-endian-integer representation of an RSA
// private key, matching §4.3's CRT fields.
type RSAPrivateParams struct {
	Public          RSAPublicParams
	PrivateExponent []byte
	PrimeP          []byte
	PrimeQ          []byte
	PrimeExponentP  []byte
	PrimeExponentQ  []byte
	CRTCoefficient  []byte
}

// DSAPublicParams is the big-endian-integer representation of a DSA
// public key. Size is the algorithm's declared key size in bits
// (1024/2048/3072), used to derive the nominal |q| byte length instead
// of trusting Q's stored byte length, which big.Int.Bytes() strips of
// leading zeros.
type DSAPublicParams struct {
	P, Q, G, Y []byte
	Size       int
}

// DSAPrivateParams is the big-endian-integer representation of a DSA
// private key.
type DSAPrivateParams struct {
	Public DSAPublicParams
	X      []byte
}

// Provider bundles the primitive operations the rest of the toolkit needs.
// MAC is deliberately not part of this interface: its hash variant is
// chosen per-key (by the key's declared bit size), so callers construct
// one directly via NewHMAC instead of through a provider method.
type Provider interface {
	Cipher() BlockCipher
	RSA() RSA
	DSA() DSA
}
