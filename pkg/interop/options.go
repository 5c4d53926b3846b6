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
	"fmt"

	"github.com/automatethethings/go-keyset/pkg/types"
)

// Params is the option-key/value bag §6 names for Generate/Test calls:
// "encoding", "class", and "signer" (the latter only for signedSession).
type Params map[string]string

// EncodingName is the recognized value of the "encoding" option key.
type EncodingName string

const (
	EncodingEncoded   EncodingName = "encoded"
	EncodingUnencoded EncodingName = "unencoded"
)

// ClassName is the recognized value of the "class" option key.
// Params.Class parses and validates it; the operations' Generate and
// Test methods do not read it.
type ClassName string

const (
	ClassSigner    ClassName = "signer"
	ClassVerifier  ClassName = "verifier"
	ClassEncrypter ClassName = "encrypter"
	ClassCrypter   ClassName = "crypter"
)

// Encoding returns the "encoding" option, defaulting to encoded per the
// envelope format's usual text framing.
func (p Params) Encoding() (EncodingName, error) {
	v, ok := p["encoding"]
	if !ok || v == "" {
		return EncodingEncoded, nil
	}
	switch EncodingName(v) {
	case EncodingEncoded, EncodingUnencoded:
		return EncodingName(v), nil
	default:
		return "", fmt.Errorf("%w: unrecognized encoding option %q", types.ErrUnsupportedAlgorithm, v)
	}
}

// Class returns the "class" option, with no default: callers that need
// it must supply it.
func (p Params) Class() (ClassName, error) {
	v, ok := p["class"]
	if !ok || v == "" {
		return "", fmt.Errorf("%w: missing required \"class\" option", types.ErrUnsupportedAlgorithm)
	}
	switch ClassName(v) {
	case ClassSigner, ClassVerifier, ClassEncrypter, ClassCrypter:
		return ClassName(v), nil
	default:
		return "", fmt.Errorf("%w: unrecognized class option %q", types.ErrUnsupportedAlgorithm, v)
	}
}

// Signer returns the "signer" option naming the sender keyset's
// algorithm path, used only by the signedSession operation.
func (p Params) Signer() (string, error) {
	v, ok := p["signer"]
	if !ok || v == "" {
		return "", fmt.Errorf("%w: missing required \"signer\" option", types.ErrUnsupportedAlgorithm)
	}
	return v, nil
}

// Nonce returns the "nonce" option, defaulting to empty, used by the
// attached operation.
func (p Params) Nonce() string {
	return p["nonce"]
}

// Message returns the "message" option, defaulting to DefaultMessage.
func (p Params) Message() string {
	if v, ok := p["message"]; ok && v != "" {
		return v
	}
	return DefaultMessage
}
