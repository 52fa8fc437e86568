// Package textutils provides text decoding utilities for uploaded files.
package textutils

import (
	"bytes"
	"fmt"
	"io"
	"unicode/utf8"

	"golang.org/x/net/html/charset"
)

var utf8BOM = []byte{0xEF, 0xBB, 0xBF}

// DecodeText converts raw file bytes to a UTF-8 string. A declared charset
// (from an upload's Content-Type, may be empty) is honored first; otherwise
// the bytes are taken as UTF-8 when valid, with Latin-1 as the fallback
// since that is what mis-exported Swiss spreadsheets usually are. A UTF-8
// BOM is stripped in all cases.
func DecodeText(data []byte, declaredCharset string) (string, error) {
	data = bytes.TrimPrefix(data, utf8BOM)

	if declaredCharset != "" && declaredCharset != "utf-8" {
		encoding, _ := charset.Lookup(declaredCharset)
		if encoding == nil {
			return "", fmt.Errorf("unsupported charset: %s", declaredCharset)
		}
		decoded, err := io.ReadAll(encoding.NewDecoder().Reader(bytes.NewReader(data)))
		if err != nil {
			return "", fmt.Errorf("decoding %s: %w", declaredCharset, err)
		}
		return string(decoded), nil
	}

	if utf8.Valid(data) {
		return string(data), nil
	}

	// Latin-1 maps every byte to a rune, so this cannot fail.
	encoding, _ := charset.Lookup("iso-8859-1")
	decoded, err := io.ReadAll(encoding.NewDecoder().Reader(bytes.NewReader(data)))
	if err != nil {
		return "", fmt.Errorf("decoding fallback latin-1: %w", err)
	}
	return string(decoded), nil
}
