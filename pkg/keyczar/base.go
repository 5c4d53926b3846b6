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

	"github.com/automatethethings/go-keyset/pkg/keyset"
	"github.com/automatethethings/go-keyset/pkg/logging"
	"github.com/automatethethings/go-keyset/pkg/types"
)

// base holds the state shared by every façade: the wrapped keyset and
// the encoding/compression toggles from §4.5. Compression defaults to
// none explicitly everywhere, per §9's note on the reference's
// inconsistent defaulting.
type base struct {
	ks          *keyset.Keyset
	encoding    Encoding
	compression Compression
	log         *logging.Logger
}

func newBase(ks *keyset.Keyset, allowed ...types.KeyPurpose) (base, error) {
	purpose := ks.Purpose()
	for _, p := range allowed {
		if p == purpose {
			log := logging.DefaultLogger().WithCorrelationID(logging.NewCorrelationID())
			log.Debugf("facade constructed for keyset %q (purpose %s)", ks.Name(), purpose)
			return base{
				ks:          ks,
				encoding:    Base64WEncoding,
				compression: NoCompression,
				log:         log,
			}, nil
		}
	}
	return base{}, fmt.Errorf("%w: keyset %q has purpose %s", types.ErrPurposeMismatch, ks.Name(), purpose)
}
