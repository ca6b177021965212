// Package b64 encodes and decodes text as base64.
package b64

import (
	"encoding/base64"
	"strings"
	"unicode/utf8"

	"github.com/pkg/errors"
)

// Format selects the base64 alphabet
type Format int

const (
	// Standard is the RFC 4648 alphabet with padding
	Standard Format = iota
	// URLSafe is the URL and filename safe alphabet without padding
	URLSafe
)

var (
	// ErrUnsupportedFormat is returned for an unknown format name
	ErrUnsupportedFormat = errors.New("unsupported base64 format")
	// ErrNotText is returned when decoded bytes are not valid UTF-8
	ErrNotText = errors.New("decoded bytes are not valid utf-8 text")
)

// ParseFormat maps "standard" or "urlsafe" (any case) to a Format
func ParseFormat(s string) (Format, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "standard":
		return Standard, nil
	case "urlsafe":
		return URLSafe, nil
	}
	return 0, errors.Wrapf(ErrUnsupportedFormat, "%q", s)
}

func (f Format) String() string {
	if f == URLSafe {
		return "urlsafe"
	}
	return "standard"
}

func (f Format) encoding() *base64.Encoding {
	if f == URLSafe {
		return base64.RawURLEncoding
	}
	return base64.StdEncoding
}

// Encode returns the base64 text of input
func Encode(input []byte, format Format) string {
	return format.encoding().EncodeToString(input)
}

// Decode decodes base64 text and requires the result to be UTF-8
func Decode(input string, format Format) (string, error) {
	b, err := format.encoding().DecodeString(input)
	if err != nil {
		return "", errors.Wrapf(err, "failed to decode %s base64", format)
	}
	if !utf8.Valid(b) {
		return "", ErrNotText
	}
	return string(b), nil
}
