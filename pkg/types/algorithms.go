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

// Package types contains the shared value types used across the keyset
// toolkit: algorithm identifiers, key purposes, version status, and the
// sentinel errors every other package wraps.
package types

import "fmt"

// AlgID identifies a key algorithm by its short Keyczar-style name.
// Each identifier maps to an allowed set of bit sizes and a default size.
type AlgID string

const (
	AlgHMACSHA1   AlgID = "HMAC_SHA1"
	AlgAES        AlgID = "AES"
	AlgRSAPriv    AlgID = "RSA_PRIV"
	AlgRSAPub     AlgID = "RSA_PUB"
	AlgDSAPriv    AlgID = "DSA_PRIV"
	AlgDSAPub     AlgID = "DSA_PUB"
)

// sizeTable declares the allowed bit sizes and default size for each
// algorithm identifier.
var sizeTable = map[AlgID]struct {
	allowed []int
	def     int
}{
	AlgHMACSHA1: {allowed: []int{160, 224, 256, 384, 512}, def: 256},
	AlgAES:      {allowed: []int{128, 192, 256}, def: 128},
	AlgRSAPriv:  {allowed: []int{2048, 3072, 4096}, def: 2048},
	AlgRSAPub:   {allowed: []int{2048, 3072, 4096}, def: 2048},
	AlgDSAPriv:  {allowed: []int{1024, 2048, 3072}, def: 1024},
	AlgDSAPub:   {allowed: []int{1024, 2048, 3072}, def: 1024},
}

// String returns the algorithm's wire name.
func (a AlgID) String() string { return string(a) }

// DefaultSize returns the default key size in bits for this algorithm.
func (a AlgID) DefaultSize() int {
	return sizeTable[a].def
}

// IsValidSize reports whether size is one of the algorithm's allowed
// bit sizes.
func (a AlgID) IsValidSize(size int) bool {
	for _, s := range sizeTable[a].allowed {
		if s == size {
			return true
		}
	}
	return false
}

// IsKnown reports whether a is a recognized algorithm identifier.
func (a AlgID) IsKnown() bool {
	_, ok := sizeTable[a]
	return ok
}

// KeyPurpose describes what a keyset's keys may be used for.
type KeyPurpose string

const (
	PurposeUndefined         KeyPurpose = "UNDEF"
	PurposeSignAndVerify     KeyPurpose = "SIGN_AND_VERIFY"
	PurposeVerify            KeyPurpose = "VERIFY"
	PurposeDecryptAndEncrypt KeyPurpose = "DECRYPT_AND_ENCRYPT"
	PurposeEncrypt           KeyPurpose = "ENCRYPT"
)

// String returns the purpose's wire name.
func (p KeyPurpose) String() string { return string(p) }

// CanSign reports whether keys of this purpose may produce signatures.
func (p KeyPurpose) CanSign() bool { return p == PurposeSignAndVerify }

// CanVerify reports whether keys of this purpose may verify signatures.
func (p KeyPurpose) CanVerify() bool { return p == PurposeSignAndVerify || p == PurposeVerify }

// CanEncrypt reports whether keys of this purpose may encrypt.
func (p KeyPurpose) CanEncrypt() bool {
	return p == PurposeEncrypt || p == PurposeDecryptAndEncrypt
}

// CanDecrypt reports whether keys of this purpose may decrypt.
func (p KeyPurpose) CanDecrypt() bool { return p == PurposeDecryptAndEncrypt }

// ParseKeyPurpose parses the on-disk purpose string.
func ParseKeyPurpose(s string) (KeyPurpose, error) {
	switch KeyPurpose(s) {
	case PurposeUndefined, PurposeSignAndVerify, PurposeVerify, PurposeDecryptAndEncrypt, PurposeEncrypt:
		return KeyPurpose(s), nil
	default:
		return PurposeUndefined, fmt.Errorf("%w: unknown purpose %q", ErrUnsupportedAlgorithm, s)
	}
}

// VersionStatus is the lifecycle state of one version within a keyset.
type VersionStatus string

const (
	StatusPrimary  VersionStatus = "PRIMARY"
	StatusActive   VersionStatus = "ACTIVE"
	StatusInactive VersionStatus = "INACTIVE"
)

// String returns the status's wire name.
func (s VersionStatus) String() string { return string(s) }

// ParseVersionStatus parses the on-disk status string.
func ParseVersionStatus(s string) (VersionStatus, error) {
	switch VersionStatus(s) {
	case StatusPrimary, StatusActive, StatusInactive:
		return VersionStatus(s), nil
	default:
		return "", fmt.Errorf("%w: unknown version status %q", ErrInvalidKeyset, s)
	}
}
