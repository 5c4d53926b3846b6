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

// UnversionedOperation exercises SignUnversioned/VerifyUnversioned
// (§4.6), the harness's "unversioned" operation: a header-less
// signature checked by trying every key in the keyset.
type UnversionedOperation struct {
	store *Store
}

// NewUnversionedOperation builds the unversioned operation over store.
func NewUnversionedOperation(store *Store) *UnversionedOperation {
	return &UnversionedOperation{store: store}
}

func (o *UnversionedOperation) Generate(algorithm string, params Params) ([]byte, error) {
	ks, err := o.store.Load(algorithm, false, types.PurposeSignAndVerify, nil)
	if err != nil {
		return nil, err
	}
	signer, err := keyczar.NewSigner(ks)
	if err != nil {
		return nil, err
	}
	if err := applyEncoding(params, func(e keyczar.Encoding) { signer.WithEncoding(e) }); err != nil {
		return nil, err
	}

	sig, err := signer.SignUnversioned([]byte(params.Message()))
	if err != nil {
		return nil, err
	}
	return wrapOutput(sig)
}

func (o *UnversionedOperation) Test(output []byte, algorithm string, genParams, testParams Params) (bool, error) {
	sig, err := unwrapOutput(output)
	if err != nil {
		return false, err
	}
	ks, err := o.store.Load(algorithm, false, types.PurposeSignAndVerify, nil)
	if err != nil {
		return false, err
	}
	verifier, err := keyczar.NewVerifier(ks)
	if err != nil {
		return false, err
	}
	if err := applyEncoding(genParams, func(e keyczar.Encoding) { verifier.WithEncoding(e) }); err != nil {
		return false, err
	}

	return verifier.VerifyUnversioned([]byte(genParams.Message()), sig)
}
