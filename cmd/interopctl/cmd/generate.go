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

package cmd

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/automatethethings/go-keyset/pkg/interop"
)

var (
	genEncoding string
	genNonce    string
	genMessage  string
	genSigner   string
	genOutFile  string
)

var generateCmd = &cobra.Command{
	Use:   "generate <operation> <algorithm>",
	Short: "Generate a test vector for an interop operation",
	Long: `Generate runs an operation's Generate step (sign, attached,
unversioned, encrypt, signedSession) against the named keyset and writes
the §6 output envelope to stdout, or to --out if given.`,
	Args: cobra.ExactArgs(2),
	RunE: func(cmd *cobra.Command, args []string) error {
		op, err := reg.Get(args[0])
		if err != nil {
			return err
		}

		params := interop.Params{
			"encoding": genEncoding,
			"nonce":    genNonce,
			"message":  genMessage,
			"signer":   genSigner,
		}

		out, err := op.Generate(args[1], params)
		if err != nil {
			return fmt.Errorf("generate: %w", err)
		}

		if genOutFile != "" {
			return os.WriteFile(genOutFile, out, 0600)
		}
		_, err = cmd.OutOrStdout().Write(out)
		return err
	},
}

func init() {
	generateCmd.Flags().StringVar(&genEncoding, "encoding", "", "encoding option: encoded or unencoded")
	generateCmd.Flags().StringVar(&genNonce, "nonce", "", "nonce option, for the attached operation")
	generateCmd.Flags().StringVar(&genMessage, "message", "", "message to sign/encrypt, defaults to the harness default")
	generateCmd.Flags().StringVar(&genSigner, "signer", "", "sender keyset name, for the signedSession operation")
	generateCmd.Flags().StringVar(&genOutFile, "out", "", "write output to this file instead of stdout")
}
