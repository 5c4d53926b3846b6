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

package keyczar

import (
	"fmt"

	"github.com/automatethethings/go-keyset/pkg/key"
	"github.com/automatethethings/go-keyset/pkg/keyset"
	"github.com/automatethethings/go-keyset/pkg/types"
)

// Crypter is the decrypt-and-encrypt façade: it can both produce and
// consume envelope-framed ciphertext. Its purpose must be
// decrypt-and-encrypt (§4.6).
type Crypter struct {
	Encrypter
}

// NewCrypter wraps ks as a Crypter.
func NewCrypter(ks *keyset.Keyset) (*Crypter, error) {
	b, err := newBase(ks, types.PurposeDecryptAndEncrypt)
	if err != nil {
		return nil, err
	}
	return &Crypter{Encrypter: Encrypter{base: b}}, nil
}

// Decrypt runs the §4.6 Crypter pipeline: decode, extract the header,
// look up the key by hash, verify and decrypt the body, decompress.
func (c *Crypter) Decrypt(input []byte) ([]byte, error) {
	raw, err := decodeInput(input, c.encoding)
	if err != nil {
		return nil, err
	}

	hash, body, err := parseHeader(raw)
	if err != nil {
		return nil, err
	}

	candidates := c.ks.KeysForHash(hash)
	if len(candidates) == 0 {
		c.log.Debugf("decrypt: unknown key hash %x", hash)
		return nil, types.ErrDecryptionFailed
	}

	var compressed []byte
	var lastErr error
	for _, k := range candidates {
		compressed, lastErr = decryptBody(k, raw[:HeaderSize], body)
		if lastErr == nil {
			break
		}
	}
	if lastErr != nil {
		c.log.Debugf("decrypt: %v", lastErr)
		return nil, types.ErrDecryptionFailed
	}

	plaintext, err := decompressBody(compressed, c.compression)
	if err != nil {
		return nil, err
	}
	return plaintext, nil
}

// decryptBody is the inverse of encryptBody: for AES it verifies the
// HMAC tag over header‖iv‖ciphertext before attempting decryption; for
// RSA private keys it decrypts the OAEP body directly.
func decryptBody(k key.Key, header, body []byte) ([]byte, error) {
	switch aesKey := k.(type) {
	case *key.AESKey:
		ivSize := aesKey.IVSize()
		tagSize := aesKey.HMACKey().Size() / 8
		if len(body) < ivSize+tagSize {
			return nil, fmt.Errorf("%w: truncated AES envelope", types.ErrFormatError)
		}
		iv := body[:ivSize]
		ct := body[ivSize : len(body)-tagSize]
		tag := body[len(body)-tagSize:]

		tagged := append(append([]byte{}, header...), iv...)
		tagged = append(tagged, ct...)
		ok, err := aesKey.HMACKey().VerifyMAC(tagged, tag)
		if err != nil {
			return nil, err
		}
		if !ok {
			return nil, fmt.Errorf("%w: HMAC tag mismatch", types.ErrIntegrityFailure)
		}
		return aesKey.Decrypt(iv, ct)
	}

	if dec, ok := k.(key.Decrypter); ok {
		return dec.Decrypt(body)
	}
	return nil, fmt.Errorf("%w: key of type %s cannot decrypt", types.ErrInvalidKey, k.Algorithm())
}
