// Package output serializes extraction results to JSON files.
package output

import (
	"bytes"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"unicode/utf16"
	"unicode/utf8"

	"github.com/ukaji3/resumedata-go/pkg/resumedata/models"
)

// Indent is the per-level indentation of pretty output.
const Indent = "  "

// ToJSON serializes a payload. Pretty output is indented; all non-ASCII
// characters are written as \u escapes either way.
func ToJSON(payload *models.Payload, pretty bool) ([]byte, error) {
	return marshal(payload, pretty)
}

// SheetToJSON serializes a single raw sheet.
func SheetToJSON(sheet *models.RawSheet, pretty bool) ([]byte, error) {
	return marshal(sheet, pretty)
}

// WriteFile writes data to path, creating parent directories as needed.
func WriteFile(path string, data []byte) error {
	if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
		return fmt.Errorf("create output directory: %w", err)
	}
	return os.WriteFile(path, data, 0644)
}

func marshal(v interface{}, pretty bool) ([]byte, error) {
	var buf bytes.Buffer
	enc := json.NewEncoder(&buf)
	enc.SetEscapeHTML(false)
	if pretty {
		enc.SetIndent("", Indent)
	}
	if err := enc.Encode(v); err != nil {
		return nil, err
	}
	// Encode terminates with a newline
	return EscapeNonASCII(bytes.TrimSuffix(buf.Bytes(), []byte("\n"))), nil
}

// EscapeNonASCII rewrites every non-ASCII rune of encoded JSON as a \uXXXX
// escape, using a surrogate pair above the Basic Multilingual Plane.
func EscapeNonASCII(data []byte) []byte {
	var out bytes.Buffer
	out.Grow(len(data))

	for len(data) > 0 {
		r, size := utf8.DecodeRune(data)
		data = data[size:]
		switch {
		case r < utf8.RuneSelf:
			out.WriteByte(byte(r))
		case r > 0xFFFF:
			hi, lo := utf16.EncodeRune(r)
			fmt.Fprintf(&out, `\u%04x\u%04x`, hi, lo)
		default:
			fmt.Fprintf(&out, `\u%04x`, r)
		}
	}

	return out.Bytes()
}
