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
	"crypto"
	"crypto/rand"
	"crypto/sha256"
	"crypto/x509"
	"testing"

	"github.com/automatethethings/go-keyset/pkg/types"
	"github.com/stretchr/testify/require"
)

func TestHMACKeyRoundTrip(t *testing.T) {
	k, err := GenerateHMACKey(256)
	require.NoError(t, err)

	data, err := k.MarshalJSON()
	require.NoError(t, err)

	loaded, err := UnmarshalHMACKey(data)
	require.NoError(t, err)
	require.Equal(t, k.Hash(), loaded.Hash())

	sig, err := k.Digest([]byte("hello"))
	require.NoError(t, err)
	ok, err := loaded.VerifyMAC([]byte("hello"), sig)
	require.NoError(t, err)
	require.True(t, ok)
}

func TestAESKeyRoundTrip(t *testing.T) {
	k, err := GenerateAESKey(128)
	require.NoError(t, err)

	data, err := k.MarshalJSON()
	require.NoError(t, err)

	loaded, err := UnmarshalAESKey(data)
	require.NoError(t, err)
	require.Equal(t, k.Hash(), loaded.Hash())

	iv := make([]byte, k.IVSize())
	ct, err := k.Encrypt(iv, []byte("abc"))
	require.NoError(t, err)
	pt, err := loaded.Decrypt(iv, ct)
	require.NoError(t, err)
	require.Equal(t, []byte("abc"), pt)
}

func TestRSAKeyPairSharesHash(t *testing.T) {
	priv, err := GenerateRSAPrivateKey(2048)
	require.NoError(t, err)
	require.Equal(t, priv.Hash(), priv.PublicKey().Hash())

	digest := sha256.Sum256([]byte("hello"))
	sig, err := priv.Sign(digest[:])
	require.NoError(t, err)
	ok, err := priv.PublicKey().Verify(digest[:], sig)
	require.NoError(t, err)
	require.True(t, ok)
}

func TestRSAKeyRoundTrip(t *testing.T) {
	priv, err := GenerateRSAPrivateKey(2048)
	require.NoError(t, err)

	data, err := priv.MarshalJSON()
	require.NoError(t, err)

	loaded, err := UnmarshalRSAPrivateKey(data)
	require.NoError(t, err)
	require.Equal(t, priv.Hash(), loaded.Hash())
}

func TestRSACryptoSignerMatchesNativeSign(t *testing.T) {
	priv, err := GenerateRSAPrivateKey(2048)
	require.NoError(t, err)

	signer, err := priv.CryptoSigner()
	require.NoError(t, err)
	require.Equal(t, x509.RSA, signer.GetKeyAlgorithm())

	digest := sha256.Sum256([]byte("hello"))
	sig, err := signer.Sign(rand.Reader, digest[:], crypto.SHA256)
	require.NoError(t, err)

	ok, err := priv.PublicKey().Verify(digest[:], sig)
	require.NoError(t, err)
	require.True(t, ok)
}

func TestDSAKeyPairSharesHash(t *testing.T) {
	priv, err := GenerateDSAPrivateKey(1024)
	require.NoError(t, err)
	require.Equal(t, priv.Hash(), priv.PublicKey().Hash())

	digest := sha256.Sum256([]byte("hello"))
	sig, err := priv.Sign(digest[:])
	require.NoError(t, err)
	ok, err := priv.PublicKey().Verify(digest[:], sig)
	require.NoError(t, err)
	require.True(t, ok)
}

func TestLoadDispatchesByType(t *testing.T) {
	k, err := GenerateHMACKey(256)
	require.NoError(t, err)
	data, err := k.MarshalJSON()
	require.NoError(t, err)

	loaded, err := Load(types.AlgHMACSHA1, data)
	require.NoError(t, err)
	require.Equal(t, k.Hash(), loaded.Hash())

	_, err = Load(types.AlgID("bogus"), data)
	require.Error(t, err)
}
