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
	"crypto"
	"crypto/rsa"
	"fmt"
	"math/big"
)

// rsaProvider implements RSA using crypto/rsa: PKCS#1 v1.5 sign/verify
// and OAEP encrypt/decrypt. Sign and Verify pick the hash from the
// digest's length (20, 28, 32, 48 or 64 bytes for SHA-1, SHA-224,
// SHA-256, SHA-384 or SHA-512); their hashBits argument is not used.
type rsaProvider struct{}

// NewRSA returns an RSA primitive provider.
func NewRSA() RSA { return rsaProvider{} }

func hashForDigestLen(n int) (crypto.Hash, error) {
	switch n {
	case 20:
		return crypto.SHA1, nil
	case 28:
		return crypto.SHA224, nil
	case 32:
		return crypto.SHA256, nil
	case 48:
		return crypto.SHA384, nil
	case 64:
		return crypto.SHA512, nil
	default:
		return 0, fmt.Errorf("primitives: unsupported digest length %d", n)
	}
}

// ToRSAPrivateKey converts the big-endian parameter representation into
// a standard *rsa.PrivateKey, for callers (such as pkg/signing's
// crypto.Signer adapter) that need to present the key through a
// standard-library crypto interface rather than this package's Sign.
func ToRSAPrivateKey(p RSAPrivateParams) *rsa.PrivateKey {
	return toPrivateKey(p)
}

func toPrivateKey(p RSAPrivateParams) *rsa.PrivateKey {
	key := &rsa.PrivateKey{
		PublicKey: rsa.PublicKey{
			N: new(big.Int).SetBytes(p.Public.Modulus),
			E: int(new(big.Int).SetBytes(p.Public.PublicExponent).Int64()),
		},
		D: new(big.Int).SetBytes(p.PrivateExponent),
		Primes: []*big.Int{
			new(big.Int).SetBytes(p.PrimeP),
			new(big.Int).SetBytes(p.PrimeQ),
		},
	}
	key.Precompute()
	return key
}

func toPublicKey(p RSAPublicParams) *rsa.PublicKey {
	return &rsa.PublicKey{
		N: new(big.Int).SetBytes(p.Modulus),
		E: int(new(big.Int).SetBytes(p.PublicExponent).Int64()),
	}
}

func (rsaProvider) Sign(priv RSAPrivateParams, digest []byte, hashBits int) ([]byte, error) {
	h, err := hashForDigestLen(len(digest))
	if err != nil {
		return nil, err
	}
	return rsa.SignPKCS1v15(Rand, toPrivateKey(priv), h, digest)
}

func (rsaProvider) Verify(pub RSAPublicParams, digest, sig []byte, hashBits int) (bool, error) {
	h, err := hashForDigestLen(len(digest))
	if err != nil {
		return false, err
	}
	err = rsa.VerifyPKCS1v15(toPublicKey(pub), h, digest, sig)
	return err == nil, nil
}

func (rsaProvider) Encrypt(pub RSAPublicParams, plaintext []byte) ([]byte, error) {
	h, err := hashForModulus(len(pub.Modulus) * 8)
	if err != nil {
		return nil, err
	}
	return rsa.EncryptOAEP(h.New(), Rand, toPublicKey(pub), plaintext, nil)
}

func (rsaProvider) Decrypt(priv RSAPrivateParams, ciphertext []byte) ([]byte, error) {
	h, err := hashForModulus(len(priv.Public.Modulus) * 8)
	if err != nil {
		return nil, err
	}
	return rsa.DecryptOAEP(h.New(), Rand, toPrivateKey(priv), ciphertext, nil)
}

// hashForModulus picks the SHA digest used for RSA-OAEP by modulus size,
// per §4.2 (2048 bits ↔ SHA-256, etc.).
func hashForModulus(bits int) (crypto.Hash, error) {
	switch {
	case bits <= 2048:
		return crypto.SHA256, nil
	case bits <= 3072:
		return crypto.SHA384, nil
	default:
		return crypto.SHA512, nil
	}
}

func (rsaProvider) GenerateKey(bits int) (RSAPrivateParams, error) {
	key, err := rsa.GenerateKey(Rand, bits)
	if err != nil {
		return RSAPrivateParams{}, err
	}
	if len(key.Primes) != 2 {
		return RSAPrivateParams{}, fmt.Errorf("primitives: expected 2 RSA primes, got %d", len(key.Primes))
	}
	key.Precompute()
	return RSAPrivateParams{
		Public: RSAPublicParams{
			Modulus:        key.PublicKey.N.Bytes(),
			PublicExponent: big.NewInt(int64(key.PublicKey.E)).Bytes(),
		},
		PrivateExponent: key.D.Bytes(),
		PrimeP:          key.Primes[0].Bytes(),
		PrimeQ:          key.Primes[1].Bytes(),
		PrimeExponentP:  key.Precomputed.Dp.Bytes(),
		PrimeExponentQ:  key.Precomputed.Dq.Bytes(),
		CRTCoefficient:  key.Precomputed.Qinv.Bytes(),
	}, nil
}
