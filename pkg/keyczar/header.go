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

	"github.com/automatethethings/go-keyset/pkg/encoding"
	"github.com/automatethethings/go-keyset/pkg/types"
)

const (
	// HeaderSize is the 5-byte envelope header: version byte + key hash.
	HeaderSize = 5
	// VersionByte is the only header version this implementation accepts.
	VersionByte = 0x00
)

// buildHeader constructs the 5-byte header for a key hash.
func buildHeader(hash [4]byte) []byte {
	h := make([]byte, HeaderSize)
	h[0] = VersionByte
	copy(h[1:], hash[:])
	return h
}

// parseHeader splits an envelope into its key hash and body, rejecting a
// short header or an unrecognized version byte.
func parseHeader(envelope []byte) (hash [4]byte, body []byte, err error) {
	if len(envelope) < HeaderSize {
		return hash, nil, fmt.Errorf("%w: envelope shorter than the 5-byte header", types.ErrFormatError)
	}
	if envelope[0] != VersionByte {
		return hash, nil, fmt.Errorf("%w: unrecognized version byte 0x%02x", types.ErrFormatError, envelope[0])
	}
	copy(hash[:], envelope[1:HeaderSize])
	return hash, envelope[HeaderSize:], nil
}

// GetHash extracts and base64w-encodes the key-hash portion (bytes 1..5)
// of an envelope, per §4.5.
func GetHash(envelope []byte) (string, error) {
	if len(envelope) < HeaderSize {
		return "", fmt.Errorf("%w: envelope shorter than the 5-byte header", types.ErrFormatError)
	}
	return encoding.EncodeWeb(envelope[1:HeaderSize]), nil
}
