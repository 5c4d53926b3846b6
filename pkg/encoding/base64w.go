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

// Package encoding provides the wire-level encoding primitives shared by
// every pipeline in the keyset toolkit: unpadded URL-safe base64 ("base64w")
// and a constant-time byte comparison.
package encoding

import "encoding/base64"

// base64wEncoding is RFC 4648 URL-safe base64 with padding stripped on
// output and tolerated on input.
var base64wEncoding = base64.RawURLEncoding

// EncodeWeb encodes data as unpadded URL-safe base64.
func EncodeWeb(data []byte) string {
	return base64wEncoding.EncodeToString(data)
}

// DecodeWeb decodes unpadded URL-safe base64, also tolerating a padded
// input since some producers emit '=' regardless.
func DecodeWeb(s string) ([]byte, error) {
	for len(s) > 0 && s[len(s)-1] == '=' {
		s = s[:len(s)-1]
	}
	return base64wEncoding.DecodeString(s)
}
