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
	"encoding/json"
	"fmt"

	"github.com/automatethethings/go-keyset/pkg/encoding"
	"github.com/automatethethings/go-keyset/pkg/types"
)

// outputEnvelope is the §6 serialization wrapper used by every
// operation except signedSession, which has its own two-field shape.
type outputEnvelope struct {
	Output string `json:"output"`
}

// wrapOutput serializes raw bytes into the {"output": base64w(bytes)}
// wrapper.
func wrapOutput(raw []byte) ([]byte, error) {
	return json.Marshal(outputEnvelope{Output: encoding.EncodeWeb(raw)})
}

// unwrapOutput is the inverse of wrapOutput.
func unwrapOutput(data []byte) ([]byte, error) {
	var env outputEnvelope
	if err := json.Unmarshal(data, &env); err != nil {
		return nil, fmt.Errorf("%w: malformed output envelope: %v", types.ErrFormatError, err)
	}
	raw, err := encoding.DecodeWeb(env.Output)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", types.ErrFormatError, err)
	}
	return raw, nil
}
