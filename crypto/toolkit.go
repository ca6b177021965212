package crypto

import (
	"crypto/rand"
	"io"

	"github.com/pkg/errors"
)

// Toolkit is the entry point for the text crypto operations. Each call builds
// its key objects from the supplied text and discards them on return, so a
// Toolkit is safe for concurrent use.
type Toolkit struct {
	rand io.Reader
}

// Option configures a Toolkit
type Option func(*Toolkit)

// WithRand replaces the entropy source used for key generation and nonces
func WithRand(r io.Reader) Option {
	return func(t *Toolkit) {
		t.rand = r
	}
}

// NewToolkit returns a Toolkit reading entropy from crypto/rand unless overridden
func NewToolkit(opts ...Option) *Toolkit {
	t := &Toolkit{rand: rand.Reader}
	for _, opt := range opts {
		opt(t)
	}
	return t
}

// Sign signs message with the hex key for format
func (t *Toolkit) Sign(message []byte, key string, format SignatureFormat) (string, error) {
	v, err := NewVerifier(format, key)
	if err != nil {
		return "", errors.Wrap(err, "failed to load signing key")
	}
	return v.Sign(message), nil
}

// Verify reports whether signature is valid for message under key. A mismatch
// is (false, nil); malformed key or signature text is an error.
func (t *Toolkit) Verify(message []byte, key, signature string, format SignatureFormat) (bool, error) {
	v, err := NewVerifier(format, key)
	if err != nil {
		return false, errors.Wrap(err, "failed to load verification key")
	}
	return v.Verify(message, signature)
}

// GenerateKey returns fresh hex key material for format
func (t *Toolkit) GenerateKey(format SignatureFormat) (string, error) {
	return GenerateKey(format, t.rand)
}

// GenerateCipherKey returns a fresh hex key for Encrypt/Decrypt
func (t *Toolkit) GenerateCipherKey() (string, error) {
	key, err := GenerateCipherKey(t.rand)
	if err != nil {
		return "", err
	}
	return EncodeHex(key[:]), nil
}

// Encrypt seals message under the hex key and returns the hex blob
func (t *Toolkit) Encrypt(message []byte, key string) (string, error) {
	c, err := ParseTextCipher(key, t.rand)
	if err != nil {
		return "", errors.Wrap(err, "failed to load encryption key")
	}
	return c.Encrypt(message)
}

// Decrypt opens a hex blob under the hex key and returns the message text
func (t *Toolkit) Decrypt(blob, key string) (string, error) {
	c, err := ParseTextCipher(key, t.rand)
	if err != nil {
		return "", errors.Wrap(err, "failed to load decryption key")
	}
	return c.Decrypt(blob)
}
