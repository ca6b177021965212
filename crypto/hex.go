package crypto

import (
	"encoding/hex"

	"github.com/pkg/errors"
)

// EncodeHex returns the lowercase hex encoding of b.
func EncodeHex(b []byte) string {
	return hex.EncodeToString(b)
}

// DecodeHex decodes hex text. Upper and lower case digits are accepted; odd
// length or any other character fails with ErrInvalidEncoding.
func DecodeHex(s string) ([]byte, error) {
	b, err := hex.DecodeString(s)
	if err != nil {
		return nil, errors.Wrapf(ErrInvalidEncoding, "decode %d hex chars: %v", len(s), err)
	}
	return b, nil
}
