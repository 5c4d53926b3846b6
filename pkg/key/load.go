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
	"fmt"

	"github.com/automatethethings/go-keyset/pkg/types"
)

// Load parses a version's canonical JSON into the Key variant named by
// typ, validating size along the way. It is the variant loader §4.4's
// read operation calls for each version in a keyset.
func Load(typ types.AlgID, data []byte) (Key, error) {
	switch typ {
	case types.AlgHMACSHA1:
		return UnmarshalHMACKey(data)
	case types.AlgAES:
		return UnmarshalAESKey(data)
	case types.AlgRSAPub:
		return UnmarshalRSAPublicKey(data)
	case types.AlgRSAPriv:
		return UnmarshalRSAPrivateKey(data)
	case types.AlgDSAPub:
		return UnmarshalDSAPublicKey(data)
	case types.AlgDSAPriv:
		return UnmarshalDSAPrivateKey(data)
	default:
		return nil, fmt.Errorf("%w: unknown key type %q", types.ErrUnsupportedAlgorithm, typ)
	}
}
