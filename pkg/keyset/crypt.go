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

package keyset

import (
	"crypto/aes"
	"crypto/cipher"
	"crypto/sha256"
	"fmt"

	"golang.org/x/crypto/pbkdf2"

	"github.com/automatethethings/go-keyset/pkg/primitives"
	"github.com/automatethethings/go-keyset/pkg/types"
)

const (
	saltSize        = 32
	pbkdf2Rounds    = 600_000
	wrappingKeySize = 32
)

// deriveWrappingKey derives the AES-256 key used to seal an encrypted
// keyset's version blobs at rest, following the reference PBKDF2 scheme
// for password-protected keysets (SPEC_FULL.md §11).
func deriveWrappingKey(password types.Password, salt []byte) ([]byte, error) {
	if password == nil {
		return nil, fmt.Errorf("%w: password is required for an encrypted keyset", types.ErrInvalidKeyset)
	}
	return pbkdf2.Key(password.Bytes(), salt, pbkdf2Rounds, wrappingKeySize, sha256.New), nil
}

// newSalt generates a fresh random salt for a new encrypted keyset.
func newSalt() ([]byte, error) {
	salt := make([]byte, saltSize)
	if _, err := primitives.Rand.Read(salt); err != nil {
		return nil, err
	}
	return salt, nil
}

// wrapBytes seals plaintext under key with AES-256-GCM, prefixing the
// nonce to the ciphertext.
func wrapBytes(key, plaintext []byte) ([]byte, error) {
	block, err := aes.NewCipher(key)
	if err != nil {
		return nil, err
	}
	gcm, err := cipher.NewGCM(block)
	if err != nil {
		return nil, err
	}
	nonce := make([]byte, gcm.NonceSize())
	if _, err := primitives.Rand.Read(nonce); err != nil {
		return nil, err
	}
	return gcm.Seal(nonce, nonce, plaintext, nil), nil
}

// unwrapBytes opens ciphertext produced by wrapBytes.
func unwrapBytes(key, ciphertext []byte) ([]byte, error) {
	block, err := aes.NewCipher(key)
	if err != nil {
		return nil, err
	}
	gcm, err := cipher.NewGCM(block)
	if err != nil {
		return nil, err
	}
	if len(ciphertext) < gcm.NonceSize() {
		return nil, fmt.Errorf("%w: encrypted key blob is too short", types.ErrFormatError)
	}
	nonce, ct := ciphertext[:gcm.NonceSize()], ciphertext[gcm.NonceSize():]
	plaintext, err := gcm.Open(nil, nonce, ct, nil)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", types.ErrIntegrityFailure, err)
	}
	return plaintext, nil
}
