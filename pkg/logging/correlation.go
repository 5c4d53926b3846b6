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

package logging

import "github.com/google/uuid"

// NewCorrelationID returns a fresh identifier for tagging every log line
// emitted by one façade instance, so a sign/verify/encrypt/decrypt call's
// debug trail can be picked out of an interleaved log stream.
func NewCorrelationID() string {
	return uuid.New().String()
}
