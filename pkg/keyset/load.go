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

	"github.com/automatethethings/go-keyset/pkg/encoding"
	"github.com/automatethethings/go-keyset/pkg/key"
	"github.com/automatethethings/go-keyset/pkg/types"
)

// Read loads a keyset's metadata and every referenced version's key
// material through reader, constructing concrete Key values via the
// variant loaders in pkg/key (§4.4).
//
// If checkPurpose is true, Read fails when the metadata's declared
// purpose cannot produce the capabilities the caller expects; callers
// that only want to inspect a keyset (e.g. an admin tool) pass false.
//
// password is required when the metadata declares the keyset
// encrypted, and ignored otherwise.
func Read(reader Reader, checkPurpose bool, purpose types.KeyPurpose, password types.Password) (*Keyset, error) {
	meta, err := reader.Metadata()
	if err != nil {
		return nil, err
	}
	if meta.Name == "" {
		return nil, fmt.Errorf("%w: metadata is missing a name", types.ErrInvalidKeyset)
	}
	if len(meta.Versions) == 0 {
		return nil, fmt.Errorf("%w: metadata declares no versions", types.ErrInvalidKeyset)
	}
	if checkPurpose && meta.Purpose != purpose {
		return nil, fmt.Errorf("%w: keyset %q has purpose %s, want %s",
			types.ErrPurposeMismatch, meta.Name, meta.Purpose, purpose)
	}

	var wrappingKey []byte
	if meta.Encrypted {
		salt, err := encoding.DecodeWeb(meta.Salt)
		if err != nil {
			return nil, fmt.Errorf("%w: malformed salt: %v", types.ErrInvalidKeyset, err)
		}
		wrappingKey, err = deriveWrappingKey(password, salt)
		if err != nil {
			return nil, err
		}
	}

	ks := &Keyset{
		name:      meta.Name,
		purpose:   meta.Purpose,
		algorithm: meta.Type,
		encrypted: meta.Encrypted,
		keys:      make(map[int]key.Key, len(meta.Versions)),
	}
	if meta.Encrypted {
		salt, _ := encoding.DecodeWeb(meta.Salt)
		ks.salt = salt
	}

	seenPrimary := false
	for _, v := range meta.Versions {
		raw, err := reader.KeyJSON(v.VersionNumber)
		if err != nil {
			return nil, fmt.Errorf("%w: version %d: %v", types.ErrInvalidKeyset, v.VersionNumber, err)
		}
		if meta.Encrypted {
			raw, err = unwrapBytes(wrappingKey, raw)
			if err != nil {
				return nil, err
			}
		}
		k, err := key.Load(meta.Type, raw)
		if err != nil {
			return nil, fmt.Errorf("%w: version %d: %v", types.ErrInvalidKeyset, v.VersionNumber, err)
		}
		ks.versions = append(ks.versions, v)
		ks.keys[v.VersionNumber] = k
		if v.Status == types.StatusPrimary {
			seenPrimary = true
		}
	}
	if !seenPrimary {
		return nil, fmt.Errorf("%w: metadata declares no primary version", types.ErrInvalidKeyset)
	}

	return ks, nil
}
