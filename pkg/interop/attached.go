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

// AttachedOperation exercises AttachedSign/AttachedVerify (§4.6), the
// harness's "attached" operation: a signature bound to an optional
// nonce. The output carries the nonce; the signed message is supplied
// again at verify time.
type AttachedOperation struct {
	store *Store
}

// NewAttachedOperation builds the attached operation over store.
func NewAttachedOperation(store *Store) *AttachedOperation {
	return &AttachedOperation{store: store}
}

func (o *AttachedOperation) Generate(algorithm string, params Params) ([]byte, error) {
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

	attached, err := signer.AttachedSign([]byte(params.Message()), []byte(params.Nonce()))
	if err != nil {
		return nil, err
	}
	return wrapOutput(attached)
}

func (o *AttachedOperation) Test(output []byte, algorithm string, genParams, testParams Params) (bool, error) {
	attached, err := unwrapOutput(output)
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

	_, ok, err := verifier.AttachedVerify(attached, []byte(genParams.Message()))
	return ok, err
}
