package crypto

import "github.com/pkg/errors"

// Errors returned by the text crypto operations. Callers classify failures
// with errors.Is; every returned error wraps exactly one of these.
var (
	// ErrInvalidEncoding is returned when hex text has odd length or a non-hex character
	ErrInvalidEncoding = errors.New("invalid hex encoding")

	// ErrInvalidKeyLength is returned when decoded key bytes do not match the size
	// required by the selected algorithm
	ErrInvalidKeyLength = errors.New("invalid key length")

	// ErrKeypairMismatch is returned when the public half of an Ed25519 keypair
	// was not derived from its seed
	ErrKeypairMismatch = errors.New("ed25519 public key does not match seed")

	// ErrMalformedSignature is returned when a decoded signature has the wrong size
	ErrMalformedSignature = errors.New("malformed signature")

	// ErrMalformedCiphertext is returned when a decoded blob is too short to hold
	// a nonce and an authentication tag
	ErrMalformedCiphertext = errors.New("malformed ciphertext")

	// ErrAuthenticationFailed is returned when the AEAD tag does not verify, which
	// means the blob was tampered with or the key is wrong
	ErrAuthenticationFailed = errors.New("authentication failed")

	// ErrDecodedNotText is returned when a blob decrypts cleanly but the
	// plaintext is not valid UTF-8
	ErrDecodedNotText = errors.New("decrypted bytes are not valid utf-8 text")

	// ErrUnsupportedFormat is returned for an unknown signature format name
	ErrUnsupportedFormat = errors.New("unsupported signature format")
)
