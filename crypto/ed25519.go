package crypto

import (
	"crypto/subtle"
	"io"

	"github.com/cloudflare/circl/sign/ed25519"
	"github.com/pkg/errors"
)

// Ed25519 signs messages with an Ed25519 keypair
type Ed25519 struct {
	priv ed25519.PrivateKey
	pub  ed25519.PublicKey
}

// NewEd25519 derives the keypair from a 32-byte seed
func NewEd25519(seed [Ed25519SeedSize]byte) *Ed25519 {
	priv := ed25519.NewKeyFromSeed(seed[:])
	return &Ed25519{
		priv: priv,
		pub:  ed25519.PublicKey(priv[Ed25519SeedSize:]),
	}
}

// ParseEd25519 builds an Ed25519 signer from a 64-byte keypair encoding
// (seed followed by public key) in hex. The public half must match the seed.
func ParseEd25519(text string) (*Ed25519, error) {
	b, err := decodeKey(text, Ed25519KeypairSize)
	if err != nil {
		return nil, err
	}
	var seed [Ed25519SeedSize]byte
	copy(seed[:], b[:Ed25519SeedSize])
	e := NewEd25519(seed)
	if subtle.ConstantTimeCompare(e.pub, b[Ed25519SeedSize:]) != 1 {
		return nil, ErrKeypairMismatch
	}
	return e, nil
}

// GenerateEd25519Keypair draws a seed from rnd and returns seed || public key
func GenerateEd25519Keypair(rnd io.Reader) ([Ed25519KeypairSize]byte, error) {
	var keypair [Ed25519KeypairSize]byte
	var seed [Ed25519SeedSize]byte
	if err := fillRandom(rnd, seed[:]); err != nil {
		return keypair, errors.Wrap(err, "failed to generate ed25519 seed")
	}
	copy(keypair[:], NewEd25519(seed).priv)
	return keypair, nil
}

func (e *Ed25519) AlgorithmName() string {
	return FormatEd25519.String()
}

// PublicKey returns the hex public half of the keypair
func (e *Ed25519) PublicKey() string {
	return EncodeHex(e.pub)
}

// Sign returns the hex Ed25519 signature of message. Signatures are deterministic.
func (e *Ed25519) Sign(message []byte) string {
	return EncodeHex(ed25519.Sign(e.priv, message))
}

// Verify checks a hex signature against the public half of the keypair
func (e *Ed25519) Verify(message []byte, signature string) (bool, error) {
	return verifyEd25519(e.pub, message, signature)
}

// VerifyWithPublicKey checks a hex signature using only a hex public key
func VerifyWithPublicKey(publicKey string, message []byte, signature string) (bool, error) {
	pub, err := decodeKey(publicKey, ed25519.PublicKeySize)
	if err != nil {
		return false, err
	}
	return verifyEd25519(ed25519.PublicKey(pub), message, signature)
}

func verifyEd25519(pub ed25519.PublicKey, message []byte, signature string) (bool, error) {
	sig, err := DecodeHex(signature)
	if err != nil {
		return false, errors.Wrap(err, "failed to decode signature")
	}
	if len(sig) != Ed25519SignatureSize {
		return false, errors.Wrapf(ErrMalformedSignature, "got %d bytes, want %d", len(sig), Ed25519SignatureSize)
	}
	return ed25519.Verify(pub, message, sig), nil
}
