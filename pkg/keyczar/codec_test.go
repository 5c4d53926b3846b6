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

func TestEncrypterWithGzipCompressionRoundTrip(t *testing.T) {
	ks := newAESKeyset(t)
	enc, err := NewEncrypter(ks)
	require.NoError(t, err)
	enc.WithCompression(GzipCompression)
	crypt, err := NewCrypter(ks)
	require.NoError(t, err)
	crypt.WithCompression(GzipCompression)

	plaintext := []byte("some moderately repetitive plaintext plaintext plaintext")
	ct, err := enc.Encrypt(plaintext)
	require.NoError(t, err)

	pt, err := crypt.Decrypt(ct)
	require.NoError(t, err)
	assert.Equal(t, plaintext, pt)
}

func TestEncrypterWithNoEncodingProducesRawEnvelope(t *testing.T) {
	ks := newAESKeyset(t)
	enc, err := NewEncrypter(ks)
	require.NoError(t, err)
	enc.WithEncoding(NoEncoding)
	crypt, err := NewCrypter(ks)
	require.NoError(t, err)
	crypt.WithEncoding(NoEncoding)

	ct, err := enc.Encrypt([]byte("abc"))
	require.NoError(t, err)
	require.Equal(t, byte(VersionByte), ct[0])

	pt, err := crypt.Decrypt(ct)
	require.NoError(t, err)
	assert.Equal(t, []byte("abc"), pt)
}

func TestGetHashExtractsEnvelopeHash(t *testing.T) {
	ks := newAESKeyset(t)
	enc, err := NewEncrypter(ks)
	require.NoError(t, err)
	enc.WithEncoding(NoEncoding)

	ct, err := enc.Encrypt([]byte("abc"))
	require.NoError(t, err)

	hash, err := GetHash(ct)
	require.NoError(t, err)
	assert.NotEmpty(t, hash)

	_, err = GetHash(ct[:3])
	require.Error(t, err)
}
