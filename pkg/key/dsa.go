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
	"encoding/json"
	"fmt"

	"github.com/automatethethings/go-keyset/pkg/encoding"
	"github.com/automatethethings/go-keyset/pkg/primitives"
	"github.com/automatethethings/go-keyset/pkg/types"
)

// DSAPublicKey wraps the public half of a DSA key pair; it verifies
// signatures only (DSA has no encryption capability).
type DSAPublicKey struct {
	params primitives.DSAPublicParams
	size   int
	dsa    primitives.DSA
}

type dsaPublicJSON struct {
	P    string `json:"p"`
	Q    string `json:"q"`
	G    string `json:"g"`
	Y    string `json:"y"`
	Size int    `json:"size"`
}

// NewDSAPublicKey constructs a DSA public key, validating size.
func NewDSAPublicKey(params primitives.DSAPublicParams, size int) (*DSAPublicKey, error) {
	if !types.AlgDSAPub.IsValidSize(size) {
		return nil, fmt.Errorf("%w: unsupported DSA size %d bits", types.ErrInvalidKey, size)
	}
	if computed := len(params.P) * 8; !withinRoundedBits(computed, size) {
		return nil, fmt.Errorf("%w: DSA modulus p is %d bits, declared size is %d", types.ErrInvalidKey, computed, size)
	}
	params.Size = size
	return &DSAPublicKey{params: params, size: size, dsa: primitives.NewDSA()}, nil
}

func (k *DSAPublicKey) Algorithm() types.AlgID   { return types.AlgDSAPub }
func (k *DSAPublicKey) Size() int                { return k.size }
func (k *DSAPublicKey) Capabilities() Capability { return CapVerify }
func (k *DSAPublicKey) Hash() [4]byte {
	return hashComponents(k.params.P, k.params.Q, k.params.G, k.params.Y)
}
func (k *DSAPublicKey) Zeroize() {} // no secret material

// Verify checks a DSA signature encoded as concatenated r‖s, each
// half as long as q's stored big-endian encoding.
func (k *DSAPublicKey) Verify(digest, sig []byte) (bool, error) {
	half := len(k.params.Q)
	if len(sig) < half {
		return false, fmt.Errorf("%w: truncated DSA signature", types.ErrFormatError)
	}
	r, s := splitDSASignature(sig, half)
	return k.dsa.Verify(k.params, digest, r, s)
}

func (k *DSAPublicKey) MarshalJSON() ([]byte, error) {
	return json.Marshal(dsaPublicJSON{
		P:    encoding.EncodeWeb(k.params.P),
		Q:    encoding.EncodeWeb(k.params.Q),
		G:    encoding.EncodeWeb(k.params.G),
		Y:    encoding.EncodeWeb(k.params.Y),
		Size: k.size,
	})
}

// UnmarshalDSAPublicKey parses the §4.3 canonical shape and validates size.
func UnmarshalDSAPublicKey(data []byte) (*DSAPublicKey, error) {
	var wire dsaPublicJSON
	if err := json.Unmarshal(data, &wire); err != nil {
		return nil, fmt.Errorf("%w: %v", types.ErrInvalidKey, err)
	}
	p, err := encoding.DecodeWeb(wire.P)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", types.ErrInvalidKey, err)
	}
	q, err := encoding.DecodeWeb(wire.Q)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", types.ErrInvalidKey, err)
	}
	g, err := encoding.DecodeWeb(wire.G)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", types.ErrInvalidKey, err)
	}
	y, err := encoding.DecodeWeb(wire.Y)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", types.ErrInvalidKey, err)
	}
	return NewDSAPublicKey(primitives.DSAPublicParams{P: p, Q: q, G: g, Y: y}, wire.Size)
}

// DSAPrivateKey wraps a full DSA key pair; it signs only, and carries
// its matching public key per §4.3.
type DSAPrivateKey struct {
	params primitives.DSAPrivateParams
	size   int
	pub    *DSAPublicKey
	dsa    primitives.DSA
}

type dsaPrivateJSON struct {
	X         string        `json:"x"`
	Size      int           `json:"size"`
	PublicKey dsaPublicJSON `json:"publicKey"`
}

// NewDSAPrivateKey constructs a DSA private key, validating that its
// size matches the embedded public key's size.
func NewDSAPrivateKey(params primitives.DSAPrivateParams, size int) (*DSAPrivateKey, error) {
	pub, err := NewDSAPublicKey(params.Public, size)
	if err != nil {
		return nil, err
	}
	params.Public.Size = size
	return &DSAPrivateKey{params: params, size: size, pub: pub, dsa: primitives.NewDSA()}, nil
}

// GenerateDSAPrivateKey generates a fresh DSA key pair of the given size.
func GenerateDSAPrivateKey(size int) (*DSAPrivateKey, error) {
	if !types.AlgDSAPriv.IsValidSize(size) {
		return nil, fmt.Errorf("%w: unsupported DSA size %d bits", types.ErrInvalidKey, size)
	}
	params, err := primitives.NewDSA().GenerateKey(size)
	if err != nil {
		return nil, err
	}
	return NewDSAPrivateKey(params, size)
}

func (k *DSAPrivateKey) Algorithm() types.AlgID   { return types.AlgDSAPriv }
func (k *DSAPrivateKey) Size() int                { return k.size }
func (k *DSAPrivateKey) Capabilities() Capability { return CapSign }
func (k *DSAPrivateKey) Hash() [4]byte            { return k.pub.Hash() }
func (k *DSAPrivateKey) Zeroize()                 { zero(k.params.X) }

// Sign produces a DSA signature as r‖s, each left-padded to the length
// of q's stored big-endian encoding so the fixed-width encoding
// round-trips unambiguously.
func (k *DSAPrivateKey) Sign(digest []byte) ([]byte, error) {
	r, s, err := k.dsa.Sign(k.params, digest)
	if err != nil {
		return nil, err
	}
	half := len(k.params.Public.Q)
	return joinDSASignature(r, s, half), nil
}

// PublicKey returns the matching public key.
func (k *DSAPrivateKey) PublicKey() *DSAPublicKey { return k.pub }

func (k *DSAPrivateKey) MarshalJSON() ([]byte, error) {
	pubJSON := dsaPublicJSON{
		P:    encoding.EncodeWeb(k.params.Public.P),
		Q:    encoding.EncodeWeb(k.params.Public.Q),
		G:    encoding.EncodeWeb(k.params.Public.G),
		Y:    encoding.EncodeWeb(k.params.Public.Y),
		Size: k.size,
	}
	return json.Marshal(dsaPrivateJSON{
		X:         encoding.EncodeWeb(k.params.X),
		Size:      k.size,
		PublicKey: pubJSON,
	})
}

// UnmarshalDSAPrivateKey parses the §4.3 canonical shape, validating
// that the private key's declared size matches the embedded public key.
func UnmarshalDSAPrivateKey(data []byte) (*DSAPrivateKey, error) {
	var wire dsaPrivateJSON
	if err := json.Unmarshal(data, &wire); err != nil {
		return nil, fmt.Errorf("%w: %v", types.ErrInvalidKey, err)
	}
	if wire.Size != wire.PublicKey.Size {
		return nil, fmt.Errorf("%w: private key size %d does not match embedded public key size %d",
			types.ErrInvalidKeyset, wire.Size, wire.PublicKey.Size)
	}
	p, err := encoding.DecodeWeb(wire.PublicKey.P)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", types.ErrInvalidKey, err)
	}
	q, err := encoding.DecodeWeb(wire.PublicKey.Q)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", types.ErrInvalidKey, err)
	}
	g, err := encoding.DecodeWeb(wire.PublicKey.G)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", types.ErrInvalidKey, err)
	}
	y, err := encoding.DecodeWeb(wire.PublicKey.Y)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", types.ErrInvalidKey, err)
	}
	x, err := encoding.DecodeWeb(wire.X)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", types.ErrInvalidKey, err)
	}
	params := primitives.DSAPrivateParams{
		Public: primitives.DSAPublicParams{P: p, Q: q, G: g, Y: y},
		X:      x,
	}
	return NewDSAPrivateKey(params, wire.Size)
}

func splitDSASignature(sig []byte, half int) (r, s []byte) {
	if len(sig) == 2*half {
		return sig[:half], sig[half:]
	}
	// Tolerate a shorter/longer encoding by splitting evenly.
	mid := len(sig) / 2
	return sig[:mid], sig[mid:]
}

func joinDSASignature(r, s []byte, half int) []byte {
	out := make([]byte, 2*half)
	copy(out[half-len(r):half], r)
	copy(out[2*half-len(s):], s)
	return out
}
