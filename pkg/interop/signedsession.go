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

package interop

import (
	"github.com/automatethethings/go-keyset/pkg/keyczar"
	"github.com/automatethethings/go-keyset/pkg/types"
)

// SignedSessionOperation exercises SignedSessionEncrypter/Decrypter
// (§4.6), the harness's "signedSession" operation. algorithm names the
// recipient's encrypt keyset; the "signer" option names the sender's
// signing keyset.
type SignedSessionOperation struct {
	store *Store
}

// NewSignedSessionOperation builds the signedSession operation over
// store.
func NewSignedSessionOperation(store *Store) *SignedSessionOperation {
	return &SignedSessionOperation{store: store}
}

func (o *SignedSessionOperation) Generate(algorithm string, params Params) ([]byte, error) {
	senderPath, err := params.Signer()
	if err != nil {
		return nil, err
	}

	recipient, err := o.store.Load(algorithm, false, types.PurposeEncrypt, nil)
	if err != nil {
		return nil, err
	}
	sender, err := o.store.Load(senderPath, false, types.PurposeSignAndVerify, nil)
	if err != nil {
		return nil, err
	}

	enc, err := keyczar.NewSignedSessionEncrypter(recipient, sender)
	if err != nil {
		return nil, err
	}
	return enc.Encrypt([]byte(params.Message()))
}

func (o *SignedSessionOperation) Test(output []byte, algorithm string, genParams, testParams Params) (bool, error) {
	senderPath, err := genParams.Signer()
	if err != nil {
		return false, err
	}

	recipient, err := o.store.Load(algorithm, false, types.PurposeDecryptAndEncrypt, nil)
	if err != nil {
		return false, err
	}
	sender, err := o.store.Load(senderPath, false, types.PurposeVerify, nil)
	if err != nil {
		return false, err
	}

	dec, err := keyczar.NewSignedSessionDecrypter(recipient, sender)
	if err != nil {
		return false, err
	}
	pt, err := dec.Decrypt(output)
	if err != nil {
		return false, nil
	}
	return string(pt) == genParams.Message(), nil
}
