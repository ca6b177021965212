package crypto

import (
	"crypto/rand"
	"io"

	"github.com/pkg/errors"
)

const (
	// Blake3KeySize is the BLAKE3 keyed-hash key length
	Blake3KeySize = 32
	// Blake3SignatureSize is the BLAKE3 digest length used as a signature
	Blake3SignatureSize = 32
	// Ed25519SeedSize is the Ed25519 private seed length
	Ed25519SeedSize = 32
	// Ed25519KeypairSize is seed followed by public key
	Ed25519KeypairSize = 64
	// Ed25519SignatureSize is the Ed25519 signature length
	Ed25519SignatureSize = 64
	// CipherKeySize is the ChaCha20-Poly1305 key length
	CipherKeySize = 32
)

// KeyFromText hex-decodes text and checks the result is exactly the size
// format requires.
func KeyFromText(text string, format SignatureFormat) ([]byte, error) {
	size := format.KeySize()
	if size == 0 {
		return nil, errors.Wrapf(ErrUnsupportedFormat, "format %d", int(format))
	}
	return decodeKey(text, size)
}

func decodeKey(text string, size int) ([]byte, error) {
	key, err := DecodeHex(text)
	if err != nil {
		return nil, errors.Wrap(err, "failed to decode key")
	}
	if len(key) != size {
		return nil, errors.Wrapf(ErrInvalidKeyLength, "got %d bytes, want %d", len(key), size)
	}
	return key, nil
}

// GenerateCipherKey draws a ChaCha20-Poly1305 key from rnd
func GenerateCipherKey(rnd io.Reader) ([CipherKeySize]byte, error) {
	var key [CipherKeySize]byte
	if err := fillRandom(rnd, key[:]); err != nil {
		return key, err
	}
	return key, nil
}

// ParseCipherKey decodes hex key text for the symmetric cipher
func ParseCipherKey(text string) ([CipherKeySize]byte, error) {
	var key [CipherKeySize]byte
	b, err := decodeKey(text, CipherKeySize)
	if err != nil {
		return key, err
	}
	copy(key[:], b)
	return key, nil
}

func fillRandom(rnd io.Reader, b []byte) error {
	if rnd == nil {
		rnd = rand.Reader
	}
	if _, err := io.ReadFull(rnd, b); err != nil {
		return errors.Wrap(err, "failed to read random bytes")
	}
	return nil
}
