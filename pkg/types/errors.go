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

import "errors"

// The error kinds below are the closed set from the design's failure
// taxonomy. Every package wraps one of these with fmt.Errorf("%w: ...")
// so errors.Is keeps working across package boundaries.
var (
	// ErrInvalidKeyset indicates malformed metadata, a missing referenced
	// version, or a purpose/type mismatch.
	ErrInvalidKeyset = errors.New("types: invalid keyset")

	// ErrInvalidKey indicates a size mismatch, malformed variant JSON, or
	// an unsupported size.
	ErrInvalidKey = errors.New("types: invalid key")

	// ErrUnknownKey indicates a header key-hash not present in the keyset.
	ErrUnknownKey = errors.New("types: unknown key")

	// ErrFormatError indicates a malformed envelope: short header, bad
	// base64w, bad version byte, or a truncated body.
	ErrFormatError = errors.New("types: format error")

	// ErrIntegrityFailure indicates an HMAC tag mismatch, a failed
	// signature verification, or an invalid session-material signature.
	ErrIntegrityFailure = errors.New("types: integrity failure")

	// ErrUnsupportedAlgorithm indicates a compression, encoding, or
	// algorithm value out of range.
	ErrUnsupportedAlgorithm = errors.New("types: unsupported algorithm")

	// ErrPurposeMismatch indicates a façade constructed over a keyset
	// with an incompatible purpose.
	ErrPurposeMismatch = errors.New("types: purpose mismatch")

	// ErrDecryptionFailed is the façade-facing error for any decrypt-path
	// failure. IntegrityFailure and UnknownKey collapse to this single
	// value at the boundary so callers cannot distinguish "wrong key" from
	// "tampered ciphertext" by error value alone.
	ErrDecryptionFailed = errors.New("types: decryption failed")

	// ErrVerificationFailed is the façade-facing error for any verify-path
	// failure, for the same reason as ErrDecryptionFailed.
	ErrVerificationFailed = errors.New("types: verification failed")
)
