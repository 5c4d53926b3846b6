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

// Verifier checks envelope-framed, unversioned, and attached signatures
// against a sign-and-verify or verify-only keyset (§4.6).
type Verifier struct {
	base
}

// NewVerifier wraps ks as a Verifier.
func NewVerifier(ks *keyset.Keyset) (*Verifier, error) {
	b, err := newBase(ks, types.PurposeSignAndVerify, types.PurposeVerify)
	if err != nil {
		return nil, err
	}
	return &Verifier{base: b}, nil
}

// WithEncoding sets the expected input text framing and returns the
// receiver.
func (v *Verifier) WithEncoding(enc Encoding) *Verifier {
	v.encoding = enc
	return v
}

// verifyBuf checks sig against buf with k. HMAC (and any other Macer)
// keys verify the MAC directly over buf, mirroring signBuf's dispatch;
// every other verifying key goes through digestFor's hash selection
// first.
func verifyBuf(k key.Key, buf, sig []byte) (bool, error) {
	if macer, ok := k.(key.Macer); ok {
		return macer.VerifyMAC(buf, sig)
	}
	verifier, ok := k.(key.Verifier)
	if !ok {
		return false, fmt.Errorf("%w: key of type %s cannot verify", types.ErrInvalidKey, k.Algorithm())
	}
	digest, err := digestFor(k, buf)
	if err != nil {
		return false, err
	}
	return verifier.Verify(digest, sig)
}

// Verify runs the §4.6 Verifier pipeline: decode, extract the header,
// look up the key by hash, and check the signature over data‖version_byte.
func (v *Verifier) Verify(data, signature []byte) (bool, error) {
	raw, err := decodeInput(signature, v.encoding)
	if err != nil {
		return false, err
	}

	hash, sig, err := parseHeader(raw)
	if err != nil {
		return false, err
	}

	candidates := v.ks.KeysForHash(hash)
	if len(candidates) == 0 {
		v.log.Debugf("verify: unknown key hash %x", hash)
		return false, types.ErrVerificationFailed
	}

	buf := append(append([]byte{}, data...), VersionByte)
	for _, k := range candidates {
		ok, err := verifyBuf(k, buf, sig)
		if err == nil && ok {
			return true, nil
		}
	}
	return false, nil
}

// VerifyUnversioned checks a header-less signature against every key in
// the keyset, in version order, returning true on the first match. The
// reference keyczar tool allows this because older clients may not know
// which of several active keys produced the signature.
func (v *Verifier) VerifyUnversioned(data, signature []byte) (bool, error) {
	sig, err := decodeInput(signature, v.encoding)
	if err != nil {
		return false, err
	}
	for _, k := range v.ks.Iter() {
		ok, err := verifyBuf(k, data, sig)
		if err == nil && ok {
			return true, nil
		}
	}
	return false, nil
}

// AttachedVerify checks an AttachedSign envelope, returning the
// recovered nonce alongside the boolean result. Signature layout:
// header ‖ len32(nonce) ‖ nonce ‖ signature.
func (v *Verifier) AttachedVerify(attached, data []byte) (nonce []byte, ok bool, err error) {
	raw, err := decodeInput(attached, v.encoding)
	if err != nil {
		return nil, false, err
	}

	hash, rest, err := parseHeader(raw)
	if err != nil {
		return nil, false, err
	}
	if len(rest) < 4 {
		return nil, false, fmt.Errorf("%w: truncated attached signature", types.ErrFormatError)
	}
	nonceLen := binary.BigEndian.Uint32(rest[:4])
	if uint32(len(rest)-4) < nonceLen {
		return nil, false, fmt.Errorf("%w: truncated attached signature", types.ErrFormatError)
	}
	nonce = rest[4 : 4+nonceLen]
	sig := rest[4+nonceLen:]

	candidates := v.ks.KeysForHash(hash)
	if len(candidates) == 0 {
		v.log.Debugf("attached verify: unknown key hash %x", hash)
		return nonce, false, types.ErrVerificationFailed
	}

	buf := append(append([]byte{}, data...), rest[:4+nonceLen]...)
	buf = append(buf, VersionByte)

	for _, k := range candidates {
		valid, err := verifyBuf(k, buf, sig)
		if err == nil && valid {
			return nonce, true, nil
		}
	}
	return nonce, false, nil
}
