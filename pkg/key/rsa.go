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
	"github.com/automatethethings/go-keyset/pkg/signing"
	"github.com/automatethethings/go-keyset/pkg/types"
)

// RSAPublicKey wraps the public half of an RSA key pair; it verifies
// signatures and encrypts via RSA-OAEP.
type RSAPublicKey struct {
	params primitives.RSAPublicParams
	size   int
	rsa    primitives.RSA
}

type rsaPublicJSON struct {
	Modulus        string `json:"modulus"`
	PublicExponent string `json:"publicExponent"`
	Size           int    `json:"size"`
}

// NewRSAPublicKey constructs an RSA public key, validating size.
func NewRSAPublicKey(params primitives.RSAPublicParams, size int) (*RSAPublicKey, error) {
	if !types.AlgRSAPub.IsValidSize(size) {
		return nil, fmt.Errorf("%w: unsupported RSA size %d bits", types.ErrInvalidKey, size)
	}
	if computed := len(params.Modulus) * 8; !withinRoundedBits(computed, size) {
		return nil, fmt.Errorf("%w: RSA modulus is %d bits, declared size is %d", types.ErrInvalidKey, computed, size)
	}
	return &RSAPublicKey{params: params, size: size, rsa: primitives.NewRSA()}, nil
}

// withinRoundedBits accepts a computed bit count in (declared-8,
// declared]. The computed count is the modulus's byte length times 8, so
// for a declared size that is a multiple of 8 (2048, 3072, 4096) only an
// exact match passes.
func withinRoundedBits(computed, declared int) bool {
	return computed > declared-8 && computed <= declared
}

func (k *RSAPublicKey) Algorithm() types.AlgID  { return types.AlgRSAPub }
func (k *RSAPublicKey) Size() int               { return k.size }
func (k *RSAPublicKey) Capabilities() Capability { return CapVerify | CapEncrypt }
func (k *RSAPublicKey) Hash() [4]byte {
	return hashComponents(k.params.Modulus, k.params.PublicExponent)
}
func (k *RSAPublicKey) Zeroize() {} // no secret material

func (k *RSAPublicKey) Verify(digest, sig []byte) (bool, error) {
	return k.rsa.Verify(k.params, digest, sig, k.size)
}

func (k *RSAPublicKey) Encrypt(plaintext []byte) ([]byte, error) {
	return k.rsa.Encrypt(k.params, plaintext)
}

func (k *RSAPublicKey) MarshalJSON() ([]byte, error) {
	return json.Marshal(rsaPublicJSON{
		Modulus:        encoding.EncodeWeb(k.params.Modulus),
		PublicExponent: encoding.EncodeWeb(k.params.PublicExponent),
		Size:           k.size,
	})
}

// UnmarshalRSAPublicKey parses the §4.3 canonical shape and validates size.
func UnmarshalRSAPublicKey(data []byte) (*RSAPublicKey, error) {
	var wire rsaPublicJSON
	if err := json.Unmarshal(data, &wire); err != nil {
		return nil, fmt.Errorf("%w: %v", types.ErrInvalidKey, err)
	}
	modulus, err := encoding.DecodeWeb(wire.Modulus)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", types.ErrInvalidKey, err)
	}
	exponent, err := encoding.DecodeWeb(wire.PublicExponent)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", types.ErrInvalidKey, err)
	}
	return NewRSAPublicKey(primitives.RSAPublicParams{Modulus: modulus, PublicExponent: exponent}, wire.Size)
}

// RSAPrivateKey wraps a full RSA key pair; it signs and decrypts, and
// carries its matching public key per §4.3.
type RSAPrivateKey struct {
	params primitives.RSAPrivateParams
	size   int
	pub    *RSAPublicKey
	rsa    primitives.RSA
}

type rsaPrivateJSON struct {
	PrivateExponent string        `json:"privateExponent"`
	PrimeP          string        `json:"primeP"`
	PrimeQ          string        `json:"primeQ"`
	PrimeExponentP  string        `json:"primeExponentP"`
	PrimeExponentQ  string        `json:"primeExponentQ"`
	CRTCoefficient  string        `json:"crtCoefficient"`
	Size            int           `json:"size"`
	PublicKey       rsaPublicJSON `json:"publicKey"`
}

// NewRSAPrivateKey constructs an RSA private key, validating that its
// size matches the embedded public key's size.
func NewRSAPrivateKey(params primitives.RSAPrivateParams, size int) (*RSAPrivateKey, error) {
	pub, err := NewRSAPublicKey(params.Public, size)
	if err != nil {
		return nil, err
	}
	return &RSAPrivateKey{params: params, size: size, pub: pub, rsa: primitives.NewRSA()}, nil
}

// GenerateRSAPrivateKey generates a fresh RSA key pair of the given size.
func GenerateRSAPrivateKey(size int) (*RSAPrivateKey, error) {
	if !types.AlgRSAPriv.IsValidSize(size) {
		return nil, fmt.Errorf("%w: unsupported RSA size %d bits", types.ErrInvalidKey, size)
	}
	params, err := primitives.NewRSA().GenerateKey(size)
	if err != nil {
		return nil, err
	}
	return NewRSAPrivateKey(params, size)
}

func (k *RSAPrivateKey) Algorithm() types.AlgID   { return types.AlgRSAPriv }
func (k *RSAPrivateKey) Size() int                { return k.size }
func (k *RSAPrivateKey) Capabilities() Capability { return CapSign | CapDecrypt }

// Hash returns the same hash as the matching public key, so a private
// key and its public half resolve to the same envelope tag.
func (k *RSAPrivateKey) Hash() [4]byte { return k.pub.Hash() }

func (k *RSAPrivateKey) Zeroize() {
	zero(k.params.PrivateExponent)
	zero(k.params.PrimeP)
	zero(k.params.PrimeQ)
	zero(k.params.PrimeExponentP)
	zero(k.params.PrimeExponentQ)
	zero(k.params.CRTCoefficient)
}

func zero(b []byte) {
	for i := range b {
		b[i] = 0
	}
}

func (k *RSAPrivateKey) Sign(digest []byte) ([]byte, error) {
	return k.rsa.Sign(k.params, digest, k.size)
}

func (k *RSAPrivateKey) Decrypt(ciphertext []byte) ([]byte, error) {
	return k.rsa.Decrypt(k.params, ciphertext)
}

// PublicKey returns the matching public key.
func (k *RSAPrivateKey) PublicKey() *RSAPublicKey { return k.pub }

// CryptoSigner presents this key as a standard crypto.Signer, for
// callers that need to hand the key to a standard-library or
// third-party API (e.g. crypto/tls, crypto/x509) instead of going
// through Sign's raw-digest contract. PKCS#1 v1.5 padding matches this
// key's native signature scheme.
func (k *RSAPrivateKey) CryptoSigner() (*signing.Signer, error) {
	return signing.NewSigner(primitives.ToRSAPrivateKey(k.params))
}

func (k *RSAPrivateKey) MarshalJSON() ([]byte, error) {
	pubJSON := rsaPublicJSON{
		Modulus:        encoding.EncodeWeb(k.params.Public.Modulus),
		PublicExponent: encoding.EncodeWeb(k.params.Public.PublicExponent),
		Size:           k.size,
	}
	return json.Marshal(rsaPrivateJSON{
		PrivateExponent: encoding.EncodeWeb(k.params.PrivateExponent),
		PrimeP:          encoding.EncodeWeb(k.params.PrimeP),
		PrimeQ:          encoding.EncodeWeb(k.params.PrimeQ),
		PrimeExponentP:  encoding.EncodeWeb(k.params.PrimeExponentP),
		PrimeExponentQ:  encoding.EncodeWeb(k.params.PrimeExponentQ),
		CRTCoefficient:  encoding.EncodeWeb(k.params.CRTCoefficient),
		Size:            k.size,
		PublicKey:       pubJSON,
	})
}

// UnmarshalRSAPrivateKey parses the §4.3 canonical shape, validating
// that the private key's declared size matches the embedded public key.
func UnmarshalRSAPrivateKey(data []byte) (*RSAPrivateKey, error) {
	var wire rsaPrivateJSON
	if err := json.Unmarshal(data, &wire); err != nil {
		return nil, fmt.Errorf("%w: %v", types.ErrInvalidKey, err)
	}
	if wire.Size != wire.PublicKey.Size {
		return nil, fmt.Errorf("%w: private key size %d does not match embedded public key size %d",
			types.ErrInvalidKeyset, wire.Size, wire.PublicKey.Size)
	}

	modulus, err := encoding.DecodeWeb(wire.PublicKey.Modulus)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", types.ErrInvalidKey, err)
	}
	exponent, err := encoding.DecodeWeb(wire.PublicKey.PublicExponent)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", types.ErrInvalidKey, err)
	}
	privExp, err := encoding.DecodeWeb(wire.PrivateExponent)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", types.ErrInvalidKey, err)
	}
	primeP, err := encoding.DecodeWeb(wire.PrimeP)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", types.ErrInvalidKey, err)
	}
	primeQ, err := encoding.DecodeWeb(wire.PrimeQ)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", types.ErrInvalidKey, err)
	}
	dp, err := encoding.DecodeWeb(wire.PrimeExponentP)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", types.ErrInvalidKey, err)
	}
	dq, err := encoding.DecodeWeb(wire.PrimeExponentQ)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", types.ErrInvalidKey, err)
	}
	qinv, err := encoding.DecodeWeb(wire.CRTCoefficient)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", types.ErrInvalidKey, err)
	}

	params := primitives.RSAPrivateParams{
		Public:          primitives.RSAPublicParams{Modulus: modulus, PublicExponent: exponent},
		PrivateExponent: privExp,
		PrimeP:          primeP,
		PrimeQ:          primeQ,
		PrimeExponentP:  dp,
		PrimeExponentQ:  dq,
		CRTCoefficient:  qinv,
	}
	return NewRSAPrivateKey(params, wire.Size)
}
