package crypto

import (
	"io"
	"strings"

	"github.com/pkg/errors"
)

// SignatureFormat selects the sign/verify algorithm
type SignatureFormat int

const (
	// FormatBlake3 is a BLAKE3 keyed hash used as a MAC
	FormatBlake3 SignatureFormat = iota
	// FormatEd25519 is an Ed25519 signature
	FormatEd25519
)

// ParseSignatureFormat maps "blake3" or "ed25519" (any case) to a format
func ParseSignatureFormat(s string) (SignatureFormat, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "blake3":
		return FormatBlake3, nil
	case "ed25519":
		return FormatEd25519, nil
	}
	return 0, errors.Wrapf(ErrUnsupportedFormat, "%q", s)
}

func (f SignatureFormat) String() string {
	switch f {
	case FormatBlake3:
		return "blake3"
	case FormatEd25519:
		return "ed25519"
	}
	return "unknown"
}

// KeySize returns the decoded key length the format expects
func (f SignatureFormat) KeySize() int {
	switch f {
	case FormatBlake3:
		return Blake3KeySize
	case FormatEd25519:
		return Ed25519KeypairSize
	}
	return 0
}

// SignatureSize returns the decoded signature length the format produces
func (f SignatureFormat) SignatureSize() int {
	switch f {
	case FormatBlake3:
		return Blake3SignatureSize
	case FormatEd25519:
		return Ed25519SignatureSize
	}
	return 0
}

var (
	_ TextVerifier = (*Blake3)(nil)
	_ TextVerifier = (*Ed25519)(nil)
	_ PublicKeyer  = (*Ed25519)(nil)
)

// NewVerifier builds the sign/verify implementation for format from hex key text.
// It is the only place that branches on the algorithm.
func NewVerifier(format SignatureFormat, keyText string) (TextVerifier, error) {
	switch format {
	case FormatBlake3:
		b, err := ParseBlake3(keyText)
		if err != nil {
			return nil, err
		}
		return b, nil
	case FormatEd25519:
		e, err := ParseEd25519(keyText)
		if err != nil {
			return nil, err
		}
		return e, nil
	}
	return nil, errors.Wrapf(ErrUnsupportedFormat, "format %d", int(format))
}

// GenerateKey draws fresh key material for format from rnd and returns it as hex
func GenerateKey(format SignatureFormat, rnd io.Reader) (string, error) {
	switch format {
	case FormatBlake3:
		key, err := GenerateBlake3Key(rnd)
		if err != nil {
			return "", err
		}
		return EncodeHex(key[:]), nil
	case FormatEd25519:
		keypair, err := GenerateEd25519Keypair(rnd)
		if err != nil {
			return "", err
		}
		return EncodeHex(keypair[:]), nil
	}
	return "", errors.Wrapf(ErrUnsupportedFormat, "format %d", int(format))
}
