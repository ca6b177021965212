package crypto

import (
	"crypto/subtle"
	"io"

	"github.com/pkg/errors"
	"lukechampine.com/blake3"
)

// Blake3 signs messages with a BLAKE3 keyed hash
type Blake3 struct {
	key [Blake3KeySize]byte
}

// NewBlake3 wraps a 32-byte key
func NewBlake3(key [Blake3KeySize]byte) *Blake3 {
	return &Blake3{key: key}
}

// ParseBlake3 builds a Blake3 signer from 64 hex characters
func ParseBlake3(text string) (*Blake3, error) {
	b, err := decodeKey(text, Blake3KeySize)
	if err != nil {
		return nil, err
	}
	var key [Blake3KeySize]byte
	copy(key[:], b)
	return NewBlake3(key), nil
}

// GenerateBlake3Key draws a BLAKE3 key from rnd
func GenerateBlake3Key(rnd io.Reader) ([Blake3KeySize]byte, error) {
	var key [Blake3KeySize]byte
	if err := fillRandom(rnd, key[:]); err != nil {
		return key, errors.Wrap(err, "failed to generate blake3 key")
	}
	return key, nil
}

func (b *Blake3) AlgorithmName() string {
	return FormatBlake3.String()
}

func (b *Blake3) mac(message []byte) []byte {
	h := blake3.New(Blake3SignatureSize, b.key[:])
	h.Write(message)
	return h.Sum(nil)
}

// Sign returns the hex keyed hash of message
func (b *Blake3) Sign(message []byte) string {
	return EncodeHex(b.mac(message))
}

// Verify recomputes the keyed hash and compares it in constant time
func (b *Blake3) Verify(message []byte, signature string) (bool, error) {
	sig, err := DecodeHex(signature)
	if err != nil {
		return false, errors.Wrap(err, "failed to decode signature")
	}
	if len(sig) != Blake3SignatureSize {
		return false, errors.Wrapf(ErrMalformedSignature, "got %d bytes, want %d", len(sig), Blake3SignatureSize)
	}
	return subtle.ConstantTimeCompare(b.mac(message), sig) == 1, nil
}
