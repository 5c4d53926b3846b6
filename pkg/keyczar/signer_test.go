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
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// Scenario 1 (spec §8): HMAC round-trip.
func TestSignVerifyHMACRoundTrip(t *testing.T) {
	ks := newHMACKeyset(t, 256)
	signer, err := NewSigner(ks)
	require.NoError(t, err)
	verifier, err := NewVerifier(ks)
	require.NoError(t, err)

	sig, err := signer.Sign([]byte("hello"))
	require.NoError(t, err)

	ok, err := verifier.Verify([]byte("hello"), sig)
	require.NoError(t, err)
	assert.True(t, ok)

	ok, err = verifier.Verify([]byte("hellO"), sig)
	require.NoError(t, err)
	assert.False(t, ok)
}

// Scenario 4 (spec §8): after a second version is added and promoted,
// an unversioned signature from that new primary verifies against the
// whole keyset, while a verifier over a separate single-version keyset
// rejects it.
func TestVerifyUnversionedAcrossVersions(t *testing.T) {
	ks := newHMACKeyset(t, 256)
	v1Only, err := NewVerifier(newHMACKeyset(t, 256))
	require.NoError(t, err)

	v2, err := ks.AddVersion()
	require.NoError(t, err)
	require.NoError(t, ks.Promote(v2))

	signer, err := NewSigner(ks)
	require.NoError(t, err)
	verifier, err := NewVerifier(ks)
	require.NoError(t, err)

	sig, err := signer.SignUnversioned([]byte("payload"))
	require.NoError(t, err)

	ok, err := verifier.VerifyUnversioned([]byte("payload"), sig)
	require.NoError(t, err)
	assert.True(t, ok)

	ok, err = v1Only.VerifyUnversioned([]byte("payload"), sig)
	require.NoError(t, err)
	assert.False(t, ok)
}

// Scenario 5 (spec §8): attached signature with a nonce round-trips and
// returns the nonce, and verifying it against a different payload is
// rejected.
func TestAttachedSignVerifyWithNonce(t *testing.T) {
	ks := newHMACKeyset(t, 256)
	signer, err := NewSigner(ks)
	require.NoError(t, err)
	verifier, err := NewVerifier(ks)
	require.NoError(t, err)

	attached, err := signer.AttachedSign([]byte("payload"), []byte("nonce"))
	require.NoError(t, err)

	nonce, ok, err := verifier.AttachedVerify(attached, []byte("payload"))
	require.NoError(t, err)
	require.True(t, ok)
	assert.Equal(t, []byte("nonce"), nonce)

	_, ok, err = verifier.AttachedVerify(attached, []byte("wrong payload"))
	require.NoError(t, err)
	assert.False(t, ok)
}

func TestSignerRejectsWrongPurpose(t *testing.T) {
	ks := newAESKeyset(t)
	_, err := NewSigner(ks)
	require.Error(t, err)
}

func TestSignRSARoundTrip(t *testing.T) {
	priv, pub := newRSASignKeysetPair(t)
	signer, err := NewSigner(priv)
	require.NoError(t, err)
	verifier, err := NewVerifier(pub)
	require.NoError(t, err)

	sig, err := signer.Sign([]byte("interop payload"))
	require.NoError(t, err)

	ok, err := verifier.Verify([]byte("interop payload"), sig)
	require.NoError(t, err)
	assert.True(t, ok)
}
