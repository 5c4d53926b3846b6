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

package keyset

import (
	"fmt"

	"github.com/automatethethings/go-keyset/pkg/types"
)

// Save persists the keyset's current metadata and version material
// through writer. If the keyset is encrypted, each version's key JSON is
// sealed under the wrapping key derived from password and the keyset's
// stored salt before being written.
func (ks *Keyset) Save(writer Writer, password types.Password) error {
	ks.mu.RLock()
	defer ks.mu.RUnlock()

	var wrappingKey []byte
	if ks.encrypted {
		var err error
		wrappingKey, err = deriveWrappingKey(password, ks.salt)
		if err != nil {
			return err
		}
	}

	for _, v := range ks.versions {
		raw, err := keyJSONFor(ks.keys[v.VersionNumber])
		if err != nil {
			return fmt.Errorf("%w: version %d: %v", types.ErrInvalidKeyset, v.VersionNumber, err)
		}
		if ks.encrypted {
			raw, err = wrapBytes(wrappingKey, raw)
			if err != nil {
				return err
			}
		}
		if err := writer.PutKeyJSON(v.VersionNumber, raw); err != nil {
			return err
		}
	}

	return writer.PutMetadata(ks.metadataFor())
}

// Encrypt turns on at-rest encryption for the keyset, generating a fresh
// salt. Subsequent calls to Save wrap each version's key JSON with a
// PBKDF2-derived key (§11 of SPEC_FULL.md). It is a no-op if the keyset
// is already encrypted.
func (ks *Keyset) Encrypt() error {
	ks.mu.Lock()
	defer ks.mu.Unlock()
	if ks.encrypted {
		return nil
	}
	salt, err := newSalt()
	if err != nil {
		return err
	}
	ks.encrypted = true
	ks.salt = salt
	return nil
}
