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
	"sort"
	"sync"

	"github.com/automatethethings/go-keyset/pkg/encoding"
	"github.com/automatethethings/go-keyset/pkg/key"
	"github.com/automatethethings/go-keyset/pkg/types"
)

// Keyset is an ordered, versioned collection of keys sharing one
// purpose. Mutation (adding/revoking versions, changing the primary)
// takes the write lock; lookups take the read lock, so façades may read
// concurrently provided the keyset is not being mutated (§5).
type Keyset struct {
	mu sync.RWMutex

	name      string
	purpose   types.KeyPurpose
	algorithm types.AlgID
	encrypted bool
	salt      []byte

	versions []VersionRecord
	keys     map[int]key.Key
}

// New creates an empty keyset of the given name, purpose, and algorithm.
func New(name string, purpose types.KeyPurpose, algorithm types.AlgID) *Keyset {
	return &Keyset{
		name:      name,
		purpose:   purpose,
		algorithm: algorithm,
		keys:      make(map[int]key.Key),
	}
}

// Name returns the keyset's name.
func (ks *Keyset) Name() string { return ks.name }

// Purpose returns the keyset's declared purpose.
func (ks *Keyset) Purpose() types.KeyPurpose { return ks.purpose }

// Algorithm returns the keyset's declared key type.
func (ks *Keyset) Algorithm() types.AlgID { return ks.algorithm }

// PrimaryKey returns the key for the primary version, or false if the
// keyset has no primary (including when it is empty).
func (ks *Keyset) PrimaryKey() (key.Key, bool) {
	ks.mu.RLock()
	defer ks.mu.RUnlock()
	for _, v := range ks.versions {
		if v.Status == types.StatusPrimary {
			return ks.keys[v.VersionNumber], true
		}
	}
	return nil, false
}

// GetKeyFromHash returns a key whose hash equals the 4-byte argument, or
// false if none match. Per §4.4, collisions within a keyset are
// permitted; this implementation iterates version order and returns the
// first match, without branching on which candidate succeeded in a way
// that would leak timing to a caller comparing multiple keysets.
func (ks *Keyset) GetKeyFromHash(hash [4]byte) (key.Key, bool) {
	ks.mu.RLock()
	defer ks.mu.RUnlock()
	for _, v := range ks.versions {
		k := ks.keys[v.VersionNumber]
		if k.Hash() == hash {
			return k, true
		}
	}
	return nil, false
}

// KeysForHash returns every key in version order whose hash equals the
// given 4-byte argument, for callers that must try each candidate on a
// verify/decrypt failure (§4.4).
func (ks *Keyset) KeysForHash(hash [4]byte) []key.Key {
	ks.mu.RLock()
	defer ks.mu.RUnlock()
	var matches []key.Key
	for _, v := range ks.versions {
		k := ks.keys[v.VersionNumber]
		if k.Hash() == hash {
			matches = append(matches, k)
		}
	}
	return matches
}

// Iter returns the keyset's keys in version-ordered iteration.
func (ks *Keyset) Iter() []key.Key {
	ks.mu.RLock()
	defer ks.mu.RUnlock()
	out := make([]key.Key, 0, len(ks.versions))
	for _, v := range ks.versions {
		out = append(out, ks.keys[v.VersionNumber])
	}
	return out
}

// Versions returns a copy of the keyset's version records.
func (ks *Keyset) Versions() []VersionRecord {
	ks.mu.RLock()
	defer ks.mu.RUnlock()
	out := make([]VersionRecord, len(ks.versions))
	copy(out, ks.versions)
	return out
}

func (ks *Keyset) nextVersionNumber() int {
	max := 0
	for _, v := range ks.versions {
		if v.VersionNumber > max {
			max = v.VersionNumber
		}
	}
	return max + 1
}

// AddVersion generates fresh key material via the keyset's declared
// algorithm and default size, appending a new version record. The first
// version added to an empty keyset becomes PRIMARY; subsequent versions
// are added as ACTIVE.
func (ks *Keyset) AddVersion() (int, error) {
	ks.mu.Lock()
	defer ks.mu.Unlock()

	k, err := generate(ks.algorithm)
	if err != nil {
		return 0, err
	}

	version := ks.nextVersionNumber()
	status := types.StatusActive
	if len(ks.versions) == 0 {
		status = types.StatusPrimary
	}

	ks.versions = append(ks.versions, VersionRecord{
		VersionNumber: version,
		Status:        status,
		Exportable:    false,
	})
	ks.keys[version] = k
	return version, nil
}

func generate(algorithm types.AlgID) (key.Key, error) {
	switch algorithm {
	case types.AlgHMACSHA1:
		return key.GenerateHMACKey(algorithm.DefaultSize())
	case types.AlgAES:
		return key.GenerateAESKey(algorithm.DefaultSize())
	case types.AlgRSAPriv:
		return key.GenerateRSAPrivateKey(algorithm.DefaultSize())
	case types.AlgDSAPriv:
		return key.GenerateDSAPrivateKey(algorithm.DefaultSize())
	default:
		return nil, fmt.Errorf("%w: cannot generate a %q key directly (import the public half instead)",
			types.ErrUnsupportedAlgorithm, algorithm)
	}
}

// Import adds a version by parsing canonicalJSON as the keyset's
// declared algorithm, the counterpart to AddVersion's generation path
// for key types that only ever arrive by import (an RSA/DSA public key
// exported from its matching private keyset, or material generated
// out-of-band). The new version is ACTIVE unless the keyset is empty, in
// which case it becomes PRIMARY, mirroring AddVersion's rule.
func (ks *Keyset) Import(canonicalJSON []byte) (int, error) {
	ks.mu.Lock()
	defer ks.mu.Unlock()

	k, err := key.Load(ks.algorithm, canonicalJSON)
	if err != nil {
		return 0, err
	}

	version := ks.nextVersionNumber()
	status := types.StatusActive
	if len(ks.versions) == 0 {
		status = types.StatusPrimary
	}

	ks.versions = append(ks.versions, VersionRecord{
		VersionNumber: version,
		Status:        status,
		Exportable:    false,
	})
	ks.keys[version] = k
	return version, nil
}

// ExportPublic returns the canonical JSON of version's public half, for
// populating a companion verify/encrypt keyset from a sign/decrypt
// keyset. It fails for key types with no public half.
func (ks *Keyset) ExportPublic(version int) ([]byte, error) {
	ks.mu.RLock()
	defer ks.mu.RUnlock()

	k, ok := ks.keys[version]
	if !ok {
		return nil, fmt.Errorf("%w: no such version %d", types.ErrInvalidKeyset, version)
	}
	switch priv := k.(type) {
	case *key.RSAPrivateKey:
		return keyJSONFor(priv.PublicKey())
	case *key.DSAPrivateKey:
		return keyJSONFor(priv.PublicKey())
	default:
		return nil, fmt.Errorf("%w: key type %s has no separate public half", types.ErrUnsupportedAlgorithm, k.Algorithm())
	}
}

// Promote makes version the new primary, atomically moving the previous
// primary (if any) to ACTIVE.
func (ks *Keyset) Promote(version int) error {
	ks.mu.Lock()
	defer ks.mu.Unlock()

	idx := ks.indexOf(version)
	if idx < 0 {
		return fmt.Errorf("%w: no such version %d", types.ErrInvalidKeyset, version)
	}

	for i := range ks.versions {
		if ks.versions[i].Status == types.StatusPrimary {
			ks.versions[i].Status = types.StatusActive
		}
	}
	ks.versions[idx].Status = types.StatusPrimary
	return nil
}

// Revoke marks version INACTIVE. The key remains resolvable by hash for
// verify/decrypt, but is excluded from any primary-only operation and
// from verify-all iteration where the caller filters by status.
func (ks *Keyset) Revoke(version int) error {
	ks.mu.Lock()
	defer ks.mu.Unlock()

	idx := ks.indexOf(version)
	if idx < 0 {
		return fmt.Errorf("%w: no such version %d", types.ErrInvalidKeyset, version)
	}
	if ks.versions[idx].Status == types.StatusPrimary {
		return fmt.Errorf("%w: cannot revoke the primary version; promote another version first", types.ErrInvalidKeyset)
	}
	ks.versions[idx].Status = types.StatusInactive
	return nil
}

// Destroy zeros a version's key material and removes it from the
// keyset entirely. The primary version cannot be destroyed directly.
func (ks *Keyset) Destroy(version int) error {
	ks.mu.Lock()
	defer ks.mu.Unlock()

	idx := ks.indexOf(version)
	if idx < 0 {
		return fmt.Errorf("%w: no such version %d", types.ErrInvalidKeyset, version)
	}
	if ks.versions[idx].Status == types.StatusPrimary {
		return fmt.Errorf("%w: cannot destroy the primary version; promote another version first", types.ErrInvalidKeyset)
	}

	ks.keys[version].Zeroize()
	delete(ks.keys, version)
	ks.versions = append(ks.versions[:idx], ks.versions[idx+1:]...)
	return nil
}

func (ks *Keyset) indexOf(version int) int {
	for i, v := range ks.versions {
		if v.VersionNumber == version {
			return i
		}
	}
	return -1
}

// Close zeros every key's material. No secret bytes should outlive
// their owning keyset (§3 Lifecycle).
func (ks *Keyset) Close() {
	ks.mu.Lock()
	defer ks.mu.Unlock()
	for _, k := range ks.keys {
		k.Zeroize()
	}
}

// sortedVersionNumbers returns the keyset's version numbers in ascending
// order, used by Save and the metadata round-trip.
func sortedVersionNumbers(versions []VersionRecord) []int {
	nums := make([]int, len(versions))
	for i, v := range versions {
		nums[i] = v.VersionNumber
	}
	sort.Ints(nums)
	return nums
}

// metadataFor builds the on-disk Metadata for the keyset's current state.
func (ks *Keyset) metadataFor() *Metadata {
	meta := &Metadata{
		Name:      ks.name,
		Purpose:   ks.purpose,
		Type:      ks.algorithm,
		Encrypted: ks.encrypted,
		Versions:  append([]VersionRecord(nil), ks.versions...),
	}
	if ks.encrypted {
		meta.Salt = encoding.EncodeWeb(ks.salt)
	}
	return meta
}

// keyJSONFor marshals a single version's canonical key JSON.
func keyJSONFor(k key.Key) ([]byte, error) {
	switch v := k.(type) {
	case json.Marshaler:
		return v.MarshalJSON()
	default:
		return nil, fmt.Errorf("%w: key variant does not support serialization", types.ErrInvalidKey)
	}
}
