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

// Command interopctl drives the interop operations harness (pkg/interop)
// from the command line, for generating and checking cross-implementation
// test vectors against on-disk keysets.
package main

import (
	"fmt"
	"os"

	"github.com/automatethethings/go-keyset/cmd/interopctl/cmd"
)

func main() {
	if err := cmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, "interopctl:", err)
		os.Exit(1)
	}
}
