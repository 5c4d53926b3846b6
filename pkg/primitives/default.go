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

// defaultProvider wires together the stdlib-backed implementations of
// each primitive family. It is the Provider every keyset uses unless a
// test harness substitutes one (§9's "must be injected... to keep the
// core deterministic under test").
type defaultProvider struct {
	cipher BlockCipher
	rsa    RSA
	dsa    DSA
}

// NewProvider returns the default Provider.
func NewProvider() Provider {
	return &defaultProvider{
		cipher: NewAESCBC(),
		rsa:    NewRSA(),
		dsa:    NewDSA(),
	}
}

func (p *defaultProvider) Cipher() BlockCipher { return p.cipher }
func (p *defaultProvider) RSA() RSA            { return p.rsa }
func (p *defaultProvider) DSA() DSA            { return p.dsa }
