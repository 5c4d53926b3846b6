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
	"crypto"
	"fmt"

	"github.com/automatethethings/go-keyset/pkg/key"
	"github.com/automatethethings/go-keyset/pkg/types"
)

// digestFor hashes data with the SHA variant §4.2 selects for the given
// key's algorithm and declared bit size, producing the fixed-length
// digest the primitive provider's Sign/Verify expects.
func digestFor(k key.Key, data []byte) ([]byte, error) {
	h, err := hashFor(k)
	if err != nil {
		return nil, err
	}
	hasher := h.New()
	hasher.Write(data)
	return hasher.Sum(nil), nil
}

func hashFor(k key.Key) (crypto.Hash, error) {
	switch k.Algorithm() {
	case types.AlgRSAPriv, types.AlgRSAPub:
		switch {
		case k.Size() <= 2048:
			return crypto.SHA256, nil
		case k.Size() <= 3072:
			return crypto.SHA384, nil
		default:
			return crypto.SHA512, nil
		}
	case types.AlgDSAPriv, types.AlgDSAPub:
		switch {
		case k.Size() <= 1024:
			return crypto.SHA1, nil
		case k.Size() <= 2048:
			return crypto.SHA224, nil
		default:
			return crypto.SHA256, nil
		}
	default:
		return 0, fmt.Errorf("%w: %s has no signing digest", types.ErrUnsupportedAlgorithm, k.Algorithm())
	}
}
