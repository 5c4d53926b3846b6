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

// Package config loads the interop command-line driver's settings
// (default key sizes, default envelope encoding/compression, PBKDF2 work
// factor for encrypted keysets) from a config file, environment
// variables, and flags, via spf13/viper.
package config

import (
	"fmt"
	"strings"

	"github.com/spf13/viper"
)

// Config holds the interop driver's tunables. Fields mirror the
// algorithm defaults and façade toggles the library itself exposes, so
// the CLI never hardcodes a value the library already knows how to pick.
type Config struct {
	BaseDir string `mapstructure:"base_dir"`

	KeySize struct {
		HMAC int `mapstructure:"hmac"`
		AES  int `mapstructure:"aes"`
		RSA  int `mapstructure:"rsa"`
		DSA  int `mapstructure:"dsa"`
	} `mapstructure:"key_size"`

	Encoding    string `mapstructure:"encoding"`
	Compression string `mapstructure:"compression"`

	// PBKDF2Iterations is loaded from configuration but is not read by
	// pkg/keyset, which wraps an encrypted keyset's private material at
	// rest with its own fixed iteration count.
	PBKDF2Iterations int `mapstructure:"pbkdf2_iterations"`
}

// defaults populates v with the library's own algorithm defaults before
// any file/env/flag layer is applied, so a caller that sets nothing
// still gets sane values.
func defaults(v *viper.Viper) {
	v.SetDefault("base_dir", "./testdata")
	v.SetDefault("key_size.hmac", 256)
	v.SetDefault("key_size.aes", 128)
	v.SetDefault("key_size.rsa", 2048)
	v.SetDefault("key_size.dsa", 1024)
	v.SetDefault("encoding", "base64w")
	v.SetDefault("compression", "none")
	v.SetDefault("pbkdf2_iterations", 100000)
}

// Load builds a Config from (in ascending priority) built-in defaults,
// an optional config file named by configFile, and environment
// variables prefixed KEYSET_ (e.g. KEYSET_BASE_DIR, KEYSET_KEY_SIZE_RSA).
func Load(configFile string) (*Config, error) {
	v := viper.New()
	defaults(v)

	v.SetEnvPrefix("KEYSET")
	v.AutomaticEnv()
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))

	if configFile != "" {
		v.SetConfigFile(configFile)
		if err := v.ReadInConfig(); err != nil {
			return nil, fmt.Errorf("config: failed to read %q: %w", configFile, err)
		}
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("config: failed to unmarshal: %w", err)
	}
	return &cfg, nil
}
