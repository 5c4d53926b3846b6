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
	"encoding/json"
	"fmt"

	"github.com/automatethethings/go-keyset/pkg/encoding"
	"github.com/automatethethings/go-keyset/pkg/key"
	"github.com/automatethethings/go-keyset/pkg/keyset"
	"github.com/automatethethings/go-keyset/pkg/types"
)

// sessionMaterial is the JSON shape carried alongside a session's
// output: the fresh AES key sealed under the recipient's encrypt key,
// plus (for the signed variant) a signature over the sealed key binding
// it to the sender.
type sessionMaterial struct {
	Key       string `json:"key"`
	Signature string `json:"signature,omitempty"`
}

// sessionOutput is the §4.6/§6 signed-session wire format:
// {"output": base64w_ct, "sessionMaterial": json}.
type sessionOutput struct {
	Output          string          `json:"output"`
	SessionMaterial sessionMaterial `json:"sessionMaterial"`
}

// sealSessionKey wraps aesKey's canonical JSON under the recipient's
// primary encrypt-capable key; SignedSessionEncrypter uses it to seal
// the session key it then signs.
func sealSessionKey(ks *keyset.Keyset, aesKey *key.AESKey) ([]byte, error) {
	primary, ok := ks.PrimaryKey()
	if !ok {
		return nil, fmt.Errorf("%w: keyset %q has no primary key", types.ErrInvalidKeyset, ks.Name())
	}
	raw, err := aesKey.MarshalJSON()
	if err != nil {
		return nil, err
	}
	header := buildHeader(primary.Hash())
	body, err := encryptBody(primary, header, raw)
	if err != nil {
		return nil, err
	}
	return append(header, body...), nil
}

// unsealSessionKey is the inverse of sealSessionKey: it looks up the
// recipient's key by the envelope hash and decrypts the wrapped AES key
// JSON.
func unsealSessionKey(ks *keyset.Keyset, sealed []byte) (*key.AESKey, error) {
	hash, body, err := parseHeader(sealed)
	if err != nil {
		return nil, err
	}
	candidates := ks.KeysForHash(hash)
	if len(candidates) == 0 {
		return nil, types.ErrDecryptionFailed
	}
	var plaintext []byte
	var lastErr error
	for _, k := range candidates {
		plaintext, lastErr = decryptBody(k, sealed[:HeaderSize], body)
		if lastErr == nil {
			break
		}
	}
	if lastErr != nil {
		return nil, types.ErrDecryptionFailed
	}
	return key.UnmarshalAESKey(plaintext)
}

// SignedSessionEncrypter seals a fresh AES session key under a
// recipient's encrypt-capable keyset and signs the sealed key with a
// sender's signing keyset, per §4.6's SignedSessionEncrypter/§6's
// signed-session format.
type SignedSessionEncrypter struct {
	recipient *Encrypter
	sender    *Signer
}

// NewSignedSessionEncrypter wraps a recipient encrypt keyset and a
// sender sign-and-verify keyset into a signed-session encrypter.
func NewSignedSessionEncrypter(recipient *keyset.Keyset, sender *keyset.Keyset) (*SignedSessionEncrypter, error) {
	enc, err := NewEncrypter(recipient)
	if err != nil {
		return nil, err
	}
	sig, err := NewSigner(sender)
	if err != nil {
		return nil, err
	}
	return &SignedSessionEncrypter{recipient: enc, sender: sig}, nil
}

// Encrypt generates a fresh AES-128 session key, seals it under the
// recipient's primary key, signs the sealed key material, encrypts
// plaintext under the session key with encoding=none, and returns the
// §6 JSON envelope {"output", "sessionMaterial"}.
func (e *SignedSessionEncrypter) Encrypt(plaintext []byte) ([]byte, error) {
	sessionKey, err := key.GenerateAESKey(types.AlgAES.DefaultSize())
	if err != nil {
		return nil, err
	}
	defer sessionKey.Zeroize()

	sealed, err := sealSessionKey(e.recipient.ks, sessionKey)
	if err != nil {
		return nil, err
	}

	sig, err := e.sender.SignUnversioned(sealed)
	if err != nil {
		return nil, err
	}

	header := buildHeader(sessionKey.Hash())
	body, err := encryptBody(sessionKey, header, plaintext)
	if err != nil {
		return nil, err
	}
	envelope := append(header, body...)

	out := sessionOutput{
		Output: encoding.EncodeWeb(envelope),
		SessionMaterial: sessionMaterial{
			Key:       encoding.EncodeWeb(sealed),
			Signature: encoding.EncodeWeb(sig),
		},
	}
	return json.Marshal(out)
}

// SignedSessionDecrypter unseals and verifies a signed session, then
// decrypts its payload.
type SignedSessionDecrypter struct {
	recipient *Crypter
	sender    *Verifier
}

// NewSignedSessionDecrypter wraps a recipient decrypt-and-encrypt
// keyset and a sender verify-capable keyset into a signed-session
// decrypter.
func NewSignedSessionDecrypter(recipient *keyset.Keyset, sender *keyset.Keyset) (*SignedSessionDecrypter, error) {
	c, err := NewCrypter(recipient)
	if err != nil {
		return nil, err
	}
	v, err := NewVerifier(sender)
	if err != nil {
		return nil, err
	}
	return &SignedSessionDecrypter{recipient: c, sender: v}, nil
}

// Decrypt parses the §6 JSON envelope, verifies the sender's signature
// over the sealed session key, unseals the session key with the
// recipient's private key, and decrypts the payload.
func (d *SignedSessionDecrypter) Decrypt(input []byte) ([]byte, error) {
	var wire sessionOutput
	if err := json.Unmarshal(input, &wire); err != nil {
		return nil, fmt.Errorf("%w: malformed session JSON: %v", types.ErrFormatError, err)
	}

	sealed, err := encoding.DecodeWeb(wire.SessionMaterial.Key)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", types.ErrFormatError, err)
	}
	sig, err := encoding.DecodeWeb(wire.SessionMaterial.Signature)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", types.ErrFormatError, err)
	}

	ok, err := d.sender.VerifyUnversioned(sealed, sig)
	if err != nil {
		return nil, err
	}
	if !ok {
		return nil, types.ErrVerificationFailed
	}

	sessionKey, err := unsealSessionKey(d.recipient.ks, sealed)
	if err != nil {
		return nil, err
	}
	defer sessionKey.Zeroize()

	envelope, err := encoding.DecodeWeb(wire.Output)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", types.ErrFormatError, err)
	}
	hash, body, err := parseHeader(envelope)
	if err != nil {
		return nil, err
	}
	if hash != sessionKey.Hash() {
		return nil, fmt.Errorf("%w: session output was not sealed under the recovered session key", types.ErrFormatError)
	}
	plaintext, err := decryptBody(sessionKey, envelope[:HeaderSize], body)
	if err != nil {
		return nil, types.ErrDecryptionFailed
	}
	return plaintext, nil
}
