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
	"encoding/json"
	"fmt"

	"github.com/automatethethings/go-keyset/pkg/encoding"
	"github.com/automatethethings/go-keyset/pkg/primitives"
	"github.com/automatethethings/go-keyset/pkg/types"
)

// AESKey is a symmetric cipher key with an embedded HMAC key used to tag
// its ciphertexts. Its canonical JSON shape is {"aesKeyString": base64w,
// "size", "hmacKey": <HMAC key object>, "mode": "CBC"}.
type AESKey struct {
	raw    []byte
	size   int
	hmac   *HMACKey
	cipher primitives.BlockCipher
}

type aesJSON struct {
	AESKeyString string   `json:"aesKeyString"`
	Size         int      `json:"size"`
	HMACKey      hmacJSON `json:"hmacKey"`
	Mode         string   `json:"mode"`
}

// NewAESKey constructs an AES key from raw material and its embedded
// HMAC key, validating size.
func NewAESKey(raw []byte, size int, hmac *HMACKey) (*AESKey, error) {
	if !types.AlgAES.IsValidSize(size) {
		return nil, fmt.Errorf("%w: unsupported AES size %d bits", types.ErrInvalidKey, size)
	}
	if len(raw)*8 != size {
		return nil, fmt.Errorf("%w: AES key material is %d bits, declared size is %d", types.ErrInvalidKey, len(raw)*8, size)
	}
	if hmac == nil {
		return nil, fmt.Errorf("%w: AES key requires an embedded HMAC key", types.ErrInvalidKey)
	}
	cp := make([]byte, len(raw))
	copy(cp, raw)
	return &AESKey{raw: cp, size: size, hmac: hmac, cipher: primitives.NewAESCBC()}, nil
}

// GenerateAESKey generates fresh AES key material plus a matching
// HMAC-SHA1 tagging key, the pairing used throughout §4.6's Encrypter
// pipeline.
func GenerateAESKey(size int) (*AESKey, error) {
	if !types.AlgAES.IsValidSize(size) {
		return nil, fmt.Errorf("%w: unsupported AES size %d bits", types.ErrInvalidKey, size)
	}
	raw := make([]byte, size/8)
	if _, err := primitives.Rand.Read(raw); err != nil {
		return nil, err
	}
	hmacKey, err := GenerateHMACKey(160) // 160 bits selects SHA-1
	if err != nil {
		return nil, err
	}
	return NewAESKey(raw, size, hmacKey)
}

func (k *AESKey) Algorithm() types.AlgID  { return types.AlgAES }
func (k *AESKey) Size() int               { return k.size }
func (k *AESKey) Capabilities() Capability { return CapEncrypt | CapDecrypt }
func (k *AESKey) Hash() [4]byte           { return hashComponents(k.raw) }

func (k *AESKey) Zeroize() {
	for i := range k.raw {
		k.raw[i] = 0
	}
	k.hmac.Zeroize()
}

func (k *AESKey) IVSize() int { return k.cipher.IVSize() }

func (k *AESKey) Encrypt(iv, plaintext []byte) ([]byte, error) {
	return k.cipher.Encrypt(k.raw, iv, plaintext)
}

func (k *AESKey) Decrypt(iv, ciphertext []byte) ([]byte, error) {
	return k.cipher.Decrypt(k.raw, iv, ciphertext)
}

// HMACKey returns the embedded tagging key.
func (k *AESKey) HMACKey() *HMACKey { return k.hmac }

// MarshalJSON implements the §4.3 canonical shape.
func (k *AESKey) MarshalJSON() ([]byte, error) {
	return json.Marshal(aesJSON{
		AESKeyString: encoding.EncodeWeb(k.raw),
		Size:         k.size,
		HMACKey: hmacJSON{
			HMACKeyString: encoding.EncodeWeb(k.hmac.raw),
			Size:          k.hmac.size,
		},
		Mode: "CBC",
	})
}

// UnmarshalAESKey parses the §4.3 canonical shape and validates size.
func UnmarshalAESKey(data []byte) (*AESKey, error) {
	var wire aesJSON
	if err := json.Unmarshal(data, &wire); err != nil {
		return nil, fmt.Errorf("%w: %v", types.ErrInvalidKey, err)
	}
	if wire.Mode != "CBC" {
		return nil, fmt.Errorf("%w: unsupported AES mode %q", types.ErrUnsupportedAlgorithm, wire.Mode)
	}
	raw, err := encoding.DecodeWeb(wire.AESKeyString)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", types.ErrInvalidKey, err)
	}
	hmacRaw, err := encoding.DecodeWeb(wire.HMACKey.HMACKeyString)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", types.ErrInvalidKey, err)
	}
	hmacKey, err := NewHMACKey(hmacRaw, wire.HMACKey.Size)
	if err != nil {
		return nil, err
	}
	return NewAESKey(raw, wire.Size, hmacKey)
}
