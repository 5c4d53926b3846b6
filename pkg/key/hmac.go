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

// HMACKey is a symmetric MAC key. Its canonical JSON shape is
// {"hmacKeyString": base64w, "size": bits}.
type HMACKey struct {
	raw  []byte
	size int
	mac  primitives.MAC
}

// hmacJSON is the wire shape from §4.3.
type hmacJSON struct {
	HMACKeyString string `json:"hmacKeyString"`
	Size          int    `json:"size"`
}

// NewHMACKey constructs an HMAC key from raw material, validating size.
func NewHMACKey(raw []byte, size int) (*HMACKey, error) {
	if !types.AlgHMACSHA1.IsValidSize(size) {
		return nil, fmt.Errorf("%w: unsupported HMAC size %d bits", types.ErrInvalidKey, size)
	}
	if len(raw)*8 != size {
		return nil, fmt.Errorf("%w: HMAC key material is %d bits, declared size is %d", types.ErrInvalidKey, len(raw)*8, size)
	}
	mac, err := primitives.NewHMAC(size)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", types.ErrInvalidKey, err)
	}
	cp := make([]byte, len(raw))
	copy(cp, raw)
	return &HMACKey{raw: cp, size: size, mac: mac}, nil
}

// GenerateHMACKey generates fresh HMAC key material of the given size.
func GenerateHMACKey(size int) (*HMACKey, error) {
	if !types.AlgHMACSHA1.IsValidSize(size) {
		return nil, fmt.Errorf("%w: unsupported HMAC size %d bits", types.ErrInvalidKey, size)
	}
	raw := make([]byte, size/8)
	if _, err := primitives.Rand.Read(raw); err != nil {
		return nil, err
	}
	return NewHMACKey(raw, size)
}

func (k *HMACKey) Algorithm() types.AlgID      { return types.AlgHMACSHA1 }
func (k *HMACKey) Size() int                   { return k.size }
func (k *HMACKey) Capabilities() Capability     { return CapSign | CapVerify }
func (k *HMACKey) Hash() [4]byte                { return hashComponents(k.raw) }
func (k *HMACKey) Zeroize() {
	for i := range k.raw {
		k.raw[i] = 0
	}
}

func (k *HMACKey) Digest(data []byte) ([]byte, error) { return k.mac.Digest(k.raw, data) }
func (k *HMACKey) VerifyMAC(data, mac []byte) (bool, error) {
	return k.mac.Verify(k.raw, data, mac)
}

// MarshalJSON implements the §4.3 canonical shape.
func (k *HMACKey) MarshalJSON() ([]byte, error) {
	return json.Marshal(hmacJSON{
		HMACKeyString: encoding.EncodeWeb(k.raw),
		Size:          k.size,
	})
}

// UnmarshalHMACKey parses the §4.3 canonical shape and validates size.
func UnmarshalHMACKey(data []byte) (*HMACKey, error) {
	var wire hmacJSON
	if err := json.Unmarshal(data, &wire); err != nil {
		return nil, fmt.Errorf("%w: %v", types.ErrInvalidKey, err)
	}
	raw, err := encoding.DecodeWeb(wire.HMACKeyString)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", types.ErrInvalidKey, err)
	}
	return NewHMACKey(raw, wire.Size)
}
