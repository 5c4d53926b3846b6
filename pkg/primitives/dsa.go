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

package primitives

import (
	"crypto/dsa"
	"fmt"
	"math/big"
)

// dsaProvider implements DSA sign/verify and key generation using
// crypto/dsa. Per §4.2 and §9's design note, the digest is truncated to
// the algorithm's nominal |q| byte length, not to the generated private
// value's byte length (which may have leading zeros).
type dsaProvider struct{}

// NewDSA returns a DSA primitive provider.
func NewDSA() DSA { return dsaProvider{} }

// qSizeForBits returns the nominal byte length of q for a declared DSA
// key size, per §9: 160→SHA-1 sized q, 224→SHA-224, 256→SHA-256.
func qSizeForBits(bits int) int {
	switch {
	case bits <= 1024:
		return 20 // 160 bits
	case bits <= 2048:
		return 28 // 224 bits
	default:
		return 32 // 256 bits
	}
}

func truncateDigest(digest []byte, qBytes int) []byte {
	if len(digest) <= qBytes {
		return digest
	}
	return digest[:qBytes]
}

func toDSAPublicKey(p DSAPublicParams) *dsa.PublicKey {
	return &dsa.PublicKey{
		Parameters: dsa.Parameters{
			P: new(big.Int).SetBytes(p.P),
			Q: new(big.Int).SetBytes(p.Q),
			G: new(big.Int).SetBytes(p.G),
		},
		Y: new(big.Int).SetBytes(p.Y),
	}
}

func toDSAPrivateKey(p DSAPrivateParams) *dsa.PrivateKey {
	return &dsa.PrivateKey{
		PublicKey: *toDSAPublicKey(p.Public),
		X:         new(big.Int).SetBytes(p.X),
	}
}

func (dsaProvider) Sign(priv DSAPrivateParams, digest []byte) (r, s []byte, err error) {
	qBytes := qSizeForBits(priv.Public.Size)
	digest = truncateDigest(digest, qBytes)
	sr, ss, err := dsa.Sign(Rand, toDSAPrivateKey(priv), digest)
	if err != nil {
		return nil, nil, err
	}
	return sr.Bytes(), ss.Bytes(), nil
}

func (dsaProvider) Verify(pub DSAPublicParams, digest, r, s []byte) (bool, error) {
	qBytes := qSizeForBits(pub.Size)
	digest = truncateDigest(digest, qBytes)
	sr := new(big.Int).SetBytes(r)
	ss := new(big.Int).SetBytes(s)
	return dsa.Verify(toDSAPublicKey(pub), digest, sr, ss), nil
}

func (dsaProvider) GenerateKey(bits int) (DSAPrivateParams, error) {
	var sizes dsa.ParameterSizes
	switch bits {
	case 1024:
		sizes = dsa.L1024N160
	case 2048:
		sizes = dsa.L2048N224
	case 3072:
		sizes = dsa.L3072N256
	default:
		return DSAPrivateParams{}, fmt.Errorf("primitives: unsupported DSA size %d bits", bits)
	}

	var params dsa.Parameters
	if err := dsa.GenerateParameters(&params, Rand, sizes); err != nil {
		return DSAPrivateParams{}, err
	}

	priv := &dsa.PrivateKey{PublicKey: dsa.PublicKey{Parameters: params}}
	if err := dsa.GenerateKey(priv, Rand); err != nil {
		return DSAPrivateParams{}, err
	}

	return DSAPrivateParams{
		Public: DSAPublicParams{
			P: priv.P.Bytes(),
			Q: priv.Q.Bytes(),
			G: priv.G.Bytes(),
			Y: priv.Y.Bytes(),
		},
		X: priv.X.Bytes(),
	}, nil
}
