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
	"encoding/json"
	"fmt"
	"strconv"

	"github.com/automatethethings/go-keyset/pkg/storage"
)

// Reader yields a keyset's metadata and per-version key material as
// parsed JSON values, decoupling Read (§4.4) from any particular
// storage mechanism.
type Reader interface {
	// Metadata returns the keyset's `meta` object.
	Metadata() (*Metadata, error)

	// KeyJSON returns the canonical JSON for the given version.
	KeyJSON(version int) ([]byte, error)
}

// Writer is the mutation-side counterpart of Reader, used by Save.
type Writer interface {
	PutMetadata(*Metadata) error
	PutKeyJSON(version int, data []byte) error
}

// StorageReader adapts a storage.Backend (file-based or in-memory) into
// a Reader/Writer pair, following the on-disk layout in §6: a `meta` key
// plus one key per version number.
type StorageReader struct {
	backend storage.Backend
}

// NewStorageReader wraps backend as a keyset Reader/Writer.
func NewStorageReader(backend storage.Backend) *StorageReader {
	return &StorageReader{backend: backend}
}

func (r *StorageReader) Metadata() (*Metadata, error) {
	raw, err := r.backend.Get("meta")
	if err != nil {
		return nil, fmt.Errorf("keyset: failed to read metadata: %w", err)
	}
	var meta Metadata
	if err := json.Unmarshal(raw, &meta); err != nil {
		return nil, fmt.Errorf("keyset: malformed metadata: %w", err)
	}
	return &meta, nil
}

func (r *StorageReader) KeyJSON(version int) ([]byte, error) {
	raw, err := r.backend.Get(strconv.Itoa(version))
	if err != nil {
		return nil, fmt.Errorf("keyset: failed to read version %d: %w", version, err)
	}
	return raw, nil
}

func (r *StorageReader) PutMetadata(meta *Metadata) error {
	raw, err := json.Marshal(meta)
	if err != nil {
		return err
	}
	return r.backend.Put("meta", raw, storage.DefaultOptions())
}

func (r *StorageReader) PutKeyJSON(version int, data []byte) error {
	return r.backend.Put(strconv.Itoa(version), data, storage.DefaultOptions())
}
