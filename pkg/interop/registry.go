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
	"fmt"

	"github.com/automatethethings/go-keyset/pkg/types"
)

// Registry resolves one of the five recognized operation names (§6) to
// its Operation implementation, all sharing one keyset Store.
type Registry struct {
	operations map[string]Operation
}

// NewRegistry builds the full set of named operations rooted at
// baseDir.
func NewRegistry(baseDir string) *Registry {
	store := NewStore(baseDir)
	return &Registry{
		operations: map[string]Operation{
			"sign":          NewSignOperation(store),
			"attached":      NewAttachedOperation(store),
			"unversioned":   NewUnversionedOperation(store),
			"encrypt":       NewEncryptOperation(store),
			"signedSession": NewSignedSessionOperation(store),
		},
	}
}

// Get resolves name to its Operation.
func (r *Registry) Get(name string) (Operation, error) {
	op, ok := r.operations[name]
	if !ok {
		return nil, fmt.Errorf("%w: unrecognized operation %q", types.ErrUnsupportedAlgorithm, name)
	}
	return op, nil
}

// Names returns the recognized operation names.
func (r *Registry) Names() []string {
	names := make([]string, 0, len(r.operations))
	for name := range r.operations {
		names = append(names, name)
	}
	return names
}
