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
	"github.com/automatethethings/go-keyset/pkg/primitives"
	"github.com/automatethethings/go-keyset/pkg/types"
)

// Encrypter is the encrypt-only façade: a keyset whose purpose is
// encrypt or decrypt-and-encrypt, producing envelope-framed ciphertext
// under the primary key (§4.6).
type Encrypter struct {
	base
}

// NewEncrypter wraps ks as an Encrypter, failing if its purpose cannot
// produce ciphertext.
func NewEncrypter(ks *keyset.Keyset) (*Encrypter, error) {
	b, err := newBase(ks, types.PurposeEncrypt, types.PurposeDecryptAndEncrypt)
	if err != nil {
		return nil, err
	}
	return &Encrypter{base: b}, nil
}

// WithEncoding sets the output text framing and returns the receiver.
func (e *Encrypter) WithEncoding(enc Encoding) *Encrypter {
	e.encoding = enc
	return e
}

// WithCompression sets the pre-encryption compression pass and returns
// the receiver.
func (e *Encrypter) WithCompression(c Compression) *Encrypter {
	e.compression = c
	return e
}

// Encrypt runs the §4.6 Encrypter pipeline: compress, encrypt under the
// primary key, prefix the envelope header, encode.
func (e *Encrypter) Encrypt(plaintext []byte) ([]byte, error) {
	primary, ok := e.ks.PrimaryKey()
	if !ok {
		return nil, fmt.Errorf("%w: keyset %q has no primary key", types.ErrInvalidKeyset, e.ks.Name())
	}

	compressed, err := compressBody(plaintext, e.compression)
	if err != nil {
		return nil, err
	}

	header := buildHeader(primary.Hash())

	body, err := encryptBody(primary, header, compressed)
	if err != nil {
		return nil, err
	}

	envelope := append(header, body...)
	return encodeOutput(envelope, e.encoding), nil
}

// encryptBody dispatches to the variant-specific body construction named
// in §4.6: AES keys produce iv‖ciphertext‖hmac_tag over header‖iv‖ct;
// RSA public keys produce an OAEP ciphertext directly.
func encryptBody(k key.Key, header, compressed []byte) ([]byte, error) {
	switch aesKey := k.(type) {
	case *key.AESKey:
		iv := make([]byte, aesKey.IVSize())
		if _, err := primitives.Rand.Read(iv); err != nil {
			return nil, err
		}
		ct, err := aesKey.Encrypt(iv, compressed)
		if err != nil {
			return nil, err
		}
		tagged := append(append([]byte{}, header...), iv...)
		tagged = append(tagged, ct...)
		tag, err := aesKey.HMACKey().Digest(tagged)
		if err != nil {
			return nil, err
		}
		body := append(append([]byte{}, iv...), ct...)
		return append(body, tag...), nil
	}

	if enc, ok := k.(key.Encrypter); ok {
		return enc.Encrypt(compressed)
	}
	return nil, fmt.Errorf("%w: key of type %s cannot encrypt", types.ErrInvalidKey, k.Algorithm())
}
