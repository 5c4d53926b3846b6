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

package keyczar

import (
	"encoding/binary"
	"fmt"

	"github.com/automatethethings/go-keyset/pkg/key"
	"github.com/automatethethings/go-keyset/pkg/keyset"
	"github.com/automatethethings/go-keyset/pkg/types"
)

// Signer produces envelope-framed and unversioned/attached signatures
// under a sign-and-verify keyset's primary key (§4.6).
type Signer struct {
	base
}

// NewSigner wraps ks as a Signer.
func NewSigner(ks *keyset.Keyset) (*Signer, error) {
	b, err := newBase(ks, types.PurposeSignAndVerify)
	if err != nil {
		return nil, err
	}
	return &Signer{base: b}, nil
}

// WithEncoding sets the output text framing and returns the receiver.
func (s *Signer) WithEncoding(enc Encoding) *Signer {
	s.encoding = enc
	return s
}

// signBuf produces a signature/MAC over buf with k. HMAC (and any other
// Macer) keys tag buf directly, since their MAC is its own digest; every
// other signing key goes through digestFor's hash selection first.
func signBuf(k key.Key, buf []byte) ([]byte, error) {
	if macer, ok := k.(key.Macer); ok {
		return macer.Digest(buf)
	}
	signer, ok := k.(key.Signer)
	if !ok {
		return nil, fmt.Errorf("%w: key of type %s cannot sign", types.ErrInvalidKey, k.Algorithm())
	}
	digest, err := digestFor(k, buf)
	if err != nil {
		return nil, err
	}
	return signer.Sign(digest)
}

func signWithPrimary(ks *keyset.Keyset, buf []byte) (key.Key, []byte, error) {
	primary, ok := ks.PrimaryKey()
	if !ok {
		return nil, nil, fmt.Errorf("%w: keyset %q has no primary key", types.ErrInvalidKeyset, ks.Name())
	}
	sig, err := signBuf(primary, buf)
	if err != nil {
		return nil, nil, err
	}
	return primary, sig, nil
}

// Sign runs the §4.6 Signer pipeline: append the version byte to data,
// sign, prefix the envelope header, encode.
func (s *Signer) Sign(data []byte) ([]byte, error) {
	buf := append(append([]byte{}, data...), VersionByte)
	primary, sig, err := signWithPrimary(s.ks, buf)
	if err != nil {
		return nil, err
	}
	envelope := append(buildHeader(primary.Hash()), sig...)
	return encodeOutput(envelope, s.encoding), nil
}

// SignUnversioned signs data as-is with no trailing version byte and no
// envelope header, per the UnversionedSigner variant.
func (s *Signer) SignUnversioned(data []byte) ([]byte, error) {
	_, sig, err := signWithPrimary(s.ks, data)
	if err != nil {
		return nil, err
	}
	return encodeOutput(sig, s.encoding), nil
}

// AttachedSign produces a signature over data bound to an optional
// nonce, per the AttachedSign variant:
// header ‖ len32(nonce) ‖ nonce ‖ sign(data ‖ len32(nonce) ‖ nonce ‖ version_byte).
// The output carries the nonce but not data; AttachedVerify takes data
// from its caller.
func (s *Signer) AttachedSign(data, nonce []byte) ([]byte, error) {
	primary, ok := s.ks.PrimaryKey()
	if !ok {
		return nil, fmt.Errorf("%w: keyset %q has no primary key", types.ErrInvalidKeyset, s.ks.Name())
	}

	nonceLen := make([]byte, 4)
	binary.BigEndian.PutUint32(nonceLen, uint32(len(nonce)))

	buf := append(append([]byte{}, data...), nonceLen...)
	buf = append(buf, nonce...)
	buf = append(buf, VersionByte)

	signature, err := signBuf(primary, buf)
	if err != nil {
		return nil, err
	}

	out := append(buildHeader(primary.Hash()), nonceLen...)
	out = append(out, nonce...)
	out = append(out, signature...)
	return encodeOutput(out, s.encoding), nil
}
