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

// Package keyczar implements the role-bound façades of §4.6: Encrypter,
// Crypter, Signer, Verifier, and their unversioned/attached variants, each
// wrapping a keyset and enforcing purpose compatibility before producing
// or consuming an envelope-framed output.
package keyczar

import (
	"bytes"
	"compress/gzip"
	"compress/zlib"
	"fmt"
	"io"

	"github.com/automatethethings/go-keyset/pkg/encoding"
	"github.com/automatethethings/go-keyset/pkg/types"
)

// Encoding selects the text framing applied to an envelope's bytes.
type Encoding int

const (
	// NoEncoding leaves the envelope as raw bytes.
	NoEncoding Encoding = iota
	// Base64WEncoding renders the envelope as unpadded URL-safe base64.
	Base64WEncoding
)

func encodeOutput(data []byte, enc Encoding) []byte {
	if enc == NoEncoding {
		return data
	}
	return []byte(encoding.EncodeWeb(data))
}

func decodeInput(data []byte, enc Encoding) ([]byte, error) {
	if enc == NoEncoding {
		return data, nil
	}
	out, err := encoding.DecodeWeb(string(data))
	if err != nil {
		return nil, fmt.Errorf("%w: %v", types.ErrFormatError, err)
	}
	return out, nil
}

// Compression selects the optional compression pass applied before
// encryption and after decryption. The default is always explicit
// NoCompression; §9's design note flags the reference's inconsistent
// defaulting as a bug this rewrite does not repeat.
type Compression int

const (
	NoCompression Compression = iota
	GzipCompression
	ZlibCompression
)

func compressBody(data []byte, c Compression) ([]byte, error) {
	switch c {
	case NoCompression:
		return data, nil
	case GzipCompression:
		var buf bytes.Buffer
		w := gzip.NewWriter(&buf)
		if _, err := w.Write(data); err != nil {
			return nil, err
		}
		if err := w.Close(); err != nil {
			return nil, err
		}
		return buf.Bytes(), nil
	case ZlibCompression:
		var buf bytes.Buffer
		w := zlib.NewWriter(&buf)
		if _, err := w.Write(data); err != nil {
			return nil, err
		}
		if err := w.Close(); err != nil {
			return nil, err
		}
		return buf.Bytes(), nil
	default:
		return nil, fmt.Errorf("%w: unknown compression %d", types.ErrUnsupportedAlgorithm, c)
	}
}

func decompressBody(data []byte, c Compression) ([]byte, error) {
	switch c {
	case NoCompression:
		return data, nil
	case GzipCompression:
		r, err := gzip.NewReader(bytes.NewReader(data))
		if err != nil {
			return nil, fmt.Errorf("%w: %v", types.ErrFormatError, err)
		}
		defer r.Close()
		return io.ReadAll(r)
	case ZlibCompression:
		r, err := zlib.NewReader(bytes.NewReader(data))
		if err != nil {
			return nil, fmt.Errorf("%w: %v", types.ErrFormatError, err)
		}
		defer r.Close()
		return io.ReadAll(r)
	default:
		return nil, fmt.Errorf("%w: unknown compression %d", types.ErrUnsupportedAlgorithm, c)
	}
}
