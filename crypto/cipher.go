package crypto

import (
	"io"
	"unicode/utf8"

	"github.com/pkg/errors"
	"golang.org/x/crypto/chacha20poly1305"
)

const (
	// NonceSize is the ChaCha20-Poly1305 nonce length prepended to every blob
	NonceSize = chacha20poly1305.NonceSize
	// TagSize is the Poly1305 authentication tag length
	TagSize = chacha20poly1305.Overhead
)

// TextCipher encrypts messages with ChaCha20-Poly1305. Blobs are
// hex(nonce || ciphertext || tag) with a fresh nonce per call.
type TextCipher struct {
	key  [CipherKeySize]byte
	rand io.Reader
}

var _ TextEncryptor = (*TextCipher)(nil)

// NewTextCipher wraps a 32-byte key. Nonces are read from rnd, or from
// crypto/rand when rnd is nil.
func NewTextCipher(key [CipherKeySize]byte, rnd io.Reader) *TextCipher {
	return &TextCipher{key: key, rand: rnd}
}

// ParseTextCipher builds a cipher from 64 hex characters of key text
func ParseTextCipher(text string, rnd io.Reader) (*TextCipher, error) {
	key, err := ParseCipherKey(text)
	if err != nil {
		return nil, err
	}
	return NewTextCipher(key, rnd), nil
}

func (c *TextCipher) AlgorithmName() string {
	return "chacha20poly1305"
}

// Seal encrypts plaintext and returns nonce || ciphertext || tag
func (c *TextCipher) Seal(plaintext []byte) ([]byte, error) {
	aead, err := chacha20poly1305.New(c.key[:])
	if err != nil {
		return nil, errors.Wrap(err, "failed to create chacha20poly1305")
	}

	nonce := make([]byte, NonceSize, NonceSize+len(plaintext)+TagSize)
	if err := fillRandom(c.rand, nonce); err != nil {
		return nil, errors.Wrap(err, "failed to generate nonce")
	}

	return aead.Seal(nonce, nonce, plaintext, nil), nil
}

// Open splits the nonce off a sealed blob and authenticates the rest. No
// plaintext is returned when authentication fails.
func (c *TextCipher) Open(sealed []byte) ([]byte, error) {
	if len(sealed) < NonceSize+TagSize {
		return nil, errors.Wrapf(ErrMalformedCiphertext, "got %d bytes, need at least %d", len(sealed), NonceSize+TagSize)
	}

	aead, err := chacha20poly1305.New(c.key[:])
	if err != nil {
		return nil, errors.Wrap(err, "failed to create chacha20poly1305")
	}

	nonce, ciphertext := sealed[:NonceSize], sealed[NonceSize:]
	plaintext, err := aead.Open(nil, nonce, ciphertext, nil)
	if err != nil {
		return nil, ErrAuthenticationFailed
	}
	return plaintext, nil
}

// Encrypt seals plaintext and hex-encodes the blob
func (c *TextCipher) Encrypt(plaintext []byte) (string, error) {
	sealed, err := c.Seal(plaintext)
	if err != nil {
		return "", err
	}
	return EncodeHex(sealed), nil
}

// Decrypt decodes a hex blob, opens it and returns the plaintext as text
func (c *TextCipher) Decrypt(blob string) (string, error) {
	sealed, err := DecodeHex(blob)
	if err != nil {
		return "", errors.Wrap(err, "failed to decode ciphertext")
	}
	plaintext, err := c.Open(sealed)
	if err != nil {
		return "", err
	}
	if !utf8.Valid(plaintext) {
		return "", ErrDecodedNotText
	}
	return string(plaintext), nil
}
