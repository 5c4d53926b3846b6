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

package interop

import (
	"path/filepath"

	"github.com/automatethethings/go-keyset/pkg/keyset"
	"github.com/automatethethings/go-keyset/pkg/storage/file"
	"github.com/automatethethings/go-keyset/pkg/types"
)

// Store resolves an operation's algorithm name (e.g. "dsa", "rsa-crypt",
// "hmac") to the keyset directory under a base path (§6's on-disk
// layout), following the Keyczar interop test suite's convention of one
// subdirectory per exercised keyset.
type Store struct {
	baseDir string
}

// NewStore roots keyset lookups at baseDir.
func NewStore(baseDir string) *Store {
	return &Store{baseDir: baseDir}
}

// Load reads the keyset at <baseDir>/<algorithm>, enforcing purpose if
// checkPurpose is set.
func (s *Store) Load(algorithm string, checkPurpose bool, purpose types.KeyPurpose, password types.Password) (*keyset.Keyset, error) {
	backend, err := file.New(filepath.Join(s.baseDir, algorithm))
	if err != nil {
		return nil, err
	}
	defer backend.Close()
	reader := keyset.NewStorageReader(backend)
	return keyset.Read(reader, checkPurpose, purpose, password)
}
