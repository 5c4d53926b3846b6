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
	"crypto/sha256"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestHMACDigestVerify(t *testing.T) {
	mac, err := NewHMAC(256)
	require.NoError(t, err)

	key := []byte("0123456789abcdef0123456789abcdef")
	data := []byte("hello")

	digest, err := mac.Digest(key, data)
	require.NoError(t, err)

	ok, err := mac.Verify(key, data, digest)
	require.NoError(t, err)
	require.True(t, ok)

	ok, err = mac.Verify(key, []byte("hellO"), digest)
	require.NoError(t, err)
	require.False(t, ok)
}

func TestAESCBCRoundTrip(t *testing.T) {
	c := NewAESCBC()
	key := make([]byte, 16)
	iv := make([]byte, c.IVSize())
	for i := range key {
		key[i] = byte(i)
	}

	ct, err := c.Encrypt(key, iv, []byte("abc"))
	require.NoError(t, err)

	pt, err := c.Decrypt(key, iv, ct)
	require.NoError(t, err)
	require.Equal(t, []byte("abc"), pt)
}

func TestAESCBCRejectsTamperedCiphertext(t *testing.T) {
	c := NewAESCBC()
	key := make([]byte, 16)
	iv := make([]byte, c.IVSize())

	ct, err := c.Encrypt(key, iv, []byte("a message longer than one block!!"))
	require.NoError(t, err)

	ct[len(ct)-1] ^= 0xFF
	_, err = c.Decrypt(key, iv, ct)
	require.Error(t, err)
}

func TestRSASignVerifyRoundTrip(t *testing.T) {
	r := NewRSA()
	priv, err := r.GenerateKey(2048)
	require.NoError(t, err)

	digest := sha256.Sum256([]byte("hello"))
	sig, err := r.Sign(priv, digest[:], 0)
	require.NoError(t, err)

	ok, err := r.Verify(priv.Public, digest[:], sig, 0)
	require.NoError(t, err)
	require.True(t, ok)
}

func TestRSAEncryptDecryptRoundTrip(t *testing.T) {
	r := NewRSA()
	priv, err := r.GenerateKey(2048)
	require.NoError(t, err)

	ct, err := r.Encrypt(priv.Public, []byte("secret"))
	require.NoError(t, err)

	pt, err := r.Decrypt(priv, ct)
	require.NoError(t, err)
	require.Equal(t, []byte("secret"), pt)
}

func TestDSASignVerifyRoundTrip(t *testing.T) {
	d := NewDSA()
	priv, err := d.GenerateKey(1024)
	require.NoError(t, err)

	digest := sha256.Sum256([]byte("hello"))
	r, s, err := d.Sign(priv, digest[:])
	require.NoError(t, err)

	ok, err := d.Verify(priv.Public, digest[:], r, s)
	require.NoError(t, err)
	require.True(t, ok)
}
