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

	"github.com/automatethethings/go-keyset/pkg/encoding"
)

// Scenario 2 (spec §8): AES encrypt/decrypt round-trip, and tampering
// with any byte of the decoded ciphertext breaks decryption.
func TestEncryptDecryptAESRoundTrip(t *testing.T) {
	ks := newAESKeyset(t)
	enc, err := NewEncrypter(ks)
	require.NoError(t, err)
	crypt, err := NewCrypter(ks)
	require.NoError(t, err)

	ct, err := enc.Encrypt([]byte("abc"))
	require.NoError(t, err)

	pt, err := crypt.Decrypt(ct)
	require.NoError(t, err)
	assert.Equal(t, []byte("abc"), pt)
}

func TestDecryptRejectsTamperedCiphertext(t *testing.T) {
	ks := newAESKeyset(t)
	enc, err := NewEncrypter(ks)
	require.NoError(t, err)
	crypt, err := NewCrypter(ks)
	require.NoError(t, err)

	ct, err := enc.Encrypt([]byte("abc"))
	require.NoError(t, err)

	raw, err := encoding.DecodeWeb(string(ct))
	require.NoError(t, err)

	for i := range raw {
		tampered := append([]byte(nil), raw...)
		tampered[i] ^= 0xFF
		_, err := crypt.Decrypt([]byte(encoding.EncodeWeb(tampered)))
		assert.Error(t, err, "position %d should fail to decrypt", i)
	}
}

func TestCrypterRejectsWrongPurpose(t *testing.T) {
	ks := newHMACKeyset(t, 256)
	_, err := NewCrypter(ks)
	require.Error(t, err)
}

func TestEncryptDecryptRSARoundTrip(t *testing.T) {
	priv, pub := newRSACryptKeysetPair(t)
	enc, err := NewEncrypter(pub)
	require.NoError(t, err)
	crypt, err := NewCrypter(priv)
	require.NoError(t, err)

	ct, err := enc.Encrypt([]byte("secret message"))
	require.NoError(t, err)

	pt, err := crypt.Decrypt(ct)
	require.NoError(t, err)
	assert.Equal(t, []byte("secret message"), pt)
}
