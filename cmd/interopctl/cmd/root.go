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

	"github.com/spf13/cobra"

	"github.com/automatethethings/go-keyset/pkg/config"
	"github.com/automatethethings/go-keyset/pkg/interop"
)

var (
	configFile string
	baseDir    string

	cfg *config.Config
	reg *interop.Registry
)

var rootCmd = &cobra.Command{
	Use:   "interopctl",
	Short: "Generate and check keyset interop test vectors",
	Long: `interopctl drives the sign, attached, unversioned, encrypt, and
signedSession operations over on-disk keysets (one subdirectory per
keyset under --base-dir), for producing or checking cross-implementation
test vectors (env vars prefixed KEYSET_).`,
	SilenceUsage:  true,
	SilenceErrors: true,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		loaded, err := config.Load(configFile)
		if err != nil {
			return fmt.Errorf("loading configuration: %w", err)
		}
		if baseDir != "" {
			loaded.BaseDir = baseDir
		}
		cfg = loaded
		reg = interop.NewRegistry(cfg.BaseDir)
		return nil
	},
}

// Execute runs the root command.
func Execute() error {
	return rootCmd.Execute()
}

func init() {
	rootCmd.PersistentFlags().StringVar(&configFile, "config", "",
		"path to a YAML config file (default none)")
	rootCmd.PersistentFlags().StringVar(&baseDir, "base-dir", "",
		"root directory of keyset subdirectories (overrides config/env)")

	rootCmd.AddCommand(generateCmd)
	rootCmd.AddCommand(testCmd)
	rootCmd.AddCommand(operationsCmd)
}
