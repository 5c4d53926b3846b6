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

// EncryptOperation exercises Encrypter/Crypter (§4.6), the harness's
// "encrypt" operation.
type EncryptOperation struct {
	store *Store
}

// NewEncryptOperation builds the encrypt operation over store.
func NewEncryptOperation(store *Store) *EncryptOperation {
	return &EncryptOperation{store: store}
}

func (o *EncryptOperation) Generate(algorithm string, params Params) ([]byte, error) {
	ks, err := o.store.Load(algorithm, false, types.PurposeEncrypt, nil)
	if err != nil {
		return nil, err
	}
	enc, err := keyczar.NewEncrypter(ks)
	if err != nil {
		return nil, err
	}
	if err := applyEncoding(params, func(e keyczar.Encoding) { enc.WithEncoding(e) }); err != nil {
		return nil, err
	}

	ct, err := enc.Encrypt([]byte(params.Message()))
	if err != nil {
		return nil, err
	}
	return wrapOutput(ct)
}

func (o *EncryptOperation) Test(output []byte, algorithm string, genParams, testParams Params) (bool, error) {
	ct, err := unwrapOutput(output)
	if err != nil {
		return false, err
	}
	ks, err := o.store.Load(algorithm, false, types.PurposeDecryptAndEncrypt, nil)
	if err != nil {
		return false, err
	}
	crypt, err := keyczar.NewCrypter(ks)
	if err != nil {
		return false, err
	}
	if err := applyEncoding(genParams, func(e keyczar.Encoding) { crypt.WithEncoding(e) }); err != nil {
		return false, err
	}

	pt, err := crypt.Decrypt(ct)
	if err != nil {
		return false, nil
	}
	return string(pt) == genParams.Message(), nil
}
