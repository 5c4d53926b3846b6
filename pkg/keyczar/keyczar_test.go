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

	"github.com/stretchr/testify/require"

	"github.com/automatethethings/go-keyset/pkg/keyset"
	"github.com/automatethethings/go-keyset/pkg/types"
)

// newHMACKeyset builds a single-version sign-and-verify HMAC keyset for
// the Signer/Verifier test scenarios in spec §8.
func newHMACKeyset(t *testing.T, size int) *keyset.Keyset {
	t.Helper()
	ks := keyset.New("test-hmac", types.PurposeSignAndVerify, types.AlgHMACSHA1)
	_, err := ks.AddVersion()
	require.NoError(t, err)
	_ = size
	return ks
}

// newAESKeyset builds a single-version decrypt-and-encrypt AES keyset
// for the Encrypter/Crypter test scenarios.
func newAESKeyset(t *testing.T) *keyset.Keyset {
	t.Helper()
	ks := keyset.New("test-aes", types.PurposeDecryptAndEncrypt, types.AlgAES)
	_, err := ks.AddVersion()
	require.NoError(t, err)
	return ks
}

// newRSASignKeysetPair builds a sign-and-verify RSA private keyset plus its
// matching verify-only public keyset, used by the signed-session tests.
func newRSASignKeysetPair(t *testing.T) (priv, pub *keyset.Keyset) {
	t.Helper()
	priv = keyset.New("sender-priv", types.PurposeSignAndVerify, types.AlgRSAPriv)
	v, err := priv.AddVersion()
	require.NoError(t, err)
	pubJSON, err := priv.ExportPublic(v)
	require.NoError(t, err)

	pub = keyset.New("sender-pub", types.PurposeVerify, types.AlgRSAPub)
	_, err = pub.Import(pubJSON)
	require.NoError(t, err)
	return priv, pub
}

// newRSACryptKeysetPair builds a decrypt-and-encrypt RSA private keyset
// plus its matching encrypt-only public keyset.
func newRSACryptKeysetPair(t *testing.T) (priv, pub *keyset.Keyset) {
	t.Helper()
	priv = keyset.New("recipient-priv", types.PurposeDecryptAndEncrypt, types.AlgRSAPriv)
	v, err := priv.AddVersion()
	require.NoError(t, err)
	pubJSON, err := priv.ExportPublic(v)
	require.NoError(t, err)

	pub = keyset.New("recipient-pub", types.PurposeEncrypt, types.AlgRSAPub)
	_, err = pub.Import(pubJSON)
	require.NoError(t, err)
	return priv, pub
}
