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

// SignOperation exercises the versioned Signer/Verifier pipeline
// (§4.6), the harness's "sign" operation.
type SignOperation struct {
	store *Store
}

// NewSignOperation builds the sign operation over store.
func NewSignOperation(store *Store) *SignOperation {
	return &SignOperation{store: store}
}

// Generate signs params.Message() (DefaultMessage unless the "message"
// option is set) under algorithm's keyset and returns the §6 output
// wrapper.
func (o *SignOperation) Generate(algorithm string, params Params) ([]byte, error) {
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

	sig, err := signer.Sign([]byte(params.Message()))
	if err != nil {
		return nil, err
	}
	return wrapOutput(sig)
}

// Test verifies a previously generated signature against algorithm's
// keyset.
func (o *SignOperation) Test(output []byte, algorithm string, genParams, testParams Params) (bool, error) {
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

	return verifier.Verify([]byte(genParams.Message()), sig)
}

// applyEncoding resolves the "encoding" option and applies it via set,
// shared by every operation that has a WithEncoding-style setter.
func applyEncoding(params Params, set func(keyczar.Encoding)) error {
	enc, err := params.Encoding()
	if err != nil {
		return err
	}
	if enc == EncodingUnencoded {
		set(keyczar.NoEncoding)
	} else {
		set(keyczar.Base64WEncoding)
	}
	return nil
}
