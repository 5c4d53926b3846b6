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
	testEncoding string
	testNonce    string
	testMessage  string
	testSigner   string
	testInFile   string
)

var testCmd = &cobra.Command{
	Use:   "test <operation> <algorithm>",
	Short: "Check a test vector against an interop operation",
	Long: `Test runs an operation's Test step over a previously generated
output (read from --in, or stdin), using the same options the vector was
generated with. Exits non-zero if the vector does not verify.`,
	Args: cobra.ExactArgs(2),
	RunE: func(cmd *cobra.Command, args []string) error {
		op, err := reg.Get(args[0])
		if err != nil {
			return err
		}

		var output []byte
		if testInFile != "" {
			output, err = os.ReadFile(testInFile)
		} else {
			output, err = readAll(cmd.InOrStdin())
		}
		if err != nil {
			return fmt.Errorf("reading vector: %w", err)
		}

		genParams := interop.Params{
			"encoding": testEncoding,
			"nonce":    testNonce,
			"message":  testMessage,
			"signer":   testSigner,
		}

		ok, err := op.Test(output, args[1], genParams, interop.Params{})
		if err != nil {
			return fmt.Errorf("test: %w", err)
		}
		if !ok {
			fmt.Fprintln(cmd.OutOrStdout(), "FAIL")
			return fmt.Errorf("vector did not verify")
		}
		fmt.Fprintln(cmd.OutOrStdout(), "PASS")
		return nil
	},
}

func init() {
	testCmd.Flags().StringVar(&testEncoding, "encoding", "", "encoding option the vector was generated with")
	testCmd.Flags().StringVar(&testNonce, "nonce", "", "nonce option the vector was generated with")
	testCmd.Flags().StringVar(&testMessage, "message", "", "message the vector was generated with")
	testCmd.Flags().StringVar(&testSigner, "signer", "", "sender keyset name the vector was generated with")
	testCmd.Flags().StringVar(&testInFile, "in", "", "read the vector from this file instead of stdin")
}
