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

package primitives

import (
	"crypto/hmac"
	"crypto/sha1"
	"crypto/sha256"
	"crypto/sha512"
	"fmt"
	"hash"

	"github.com/automatethethings/go-keyset/pkg/encoding"
)

// hmacMAC implements MAC using crypto/hmac. The hash constructor is fixed
// at construction time by the key's declared size (§4.2: the SHA variant
// is chosen by |q| for DSA, by declared hash for HMAC keys).
type hmacMAC struct {
	newHash func() hash.Hash
}

// NewHMAC returns a MAC backed by HMAC over the SHA variant matching
// bitSize (160→SHA-1, 224/256/384/512→matching SHA-2).
func NewHMAC(bitSize int) (MAC, error) {
	h, err := hashForBits(bitSize)
	if err != nil {
		return nil, err
	}
	return &hmacMAC{newHash: h}, nil
}

func hashForBits(bitSize int) (func() hash.Hash, error) {
	switch bitSize {
	case 160:
		return sha1.New, nil
	case 224:
		return sha256.New224, nil
	case 256:
		return sha256.New, nil
	case 384:
		return sha512.New384, nil
	case 512:
		return sha512.New, nil
	default:
		return nil, fmt.Errorf("primitives: unsupported HMAC size %d bits", bitSize)
	}
}

func (m *hmacMAC) Digest(key, data []byte) ([]byte, error) {
	mac := hmac.New(m.newHash, key)
	if _, err := mac.Write(data); err != nil {
		return nil, err
	}
	return mac.Sum(nil), nil
}

func (m *hmacMAC) Verify(key, data, mac []byte) (bool, error) {
	expected, err := m.Digest(key, data)
	if err != nil {
		return false, err
	}
	return encoding.SafeEquals(expected, mac), nil
}
