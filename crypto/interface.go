package crypto

// TextSigner produces a hex signature over a message
type TextSigner interface {
	Sign(message []byte) string
	AlgorithmName() string
}

// TextVerifier checks a hex signature produced by the matching TextSigner.
// A well-formed signature that does not match yields (false, nil); structurally
// malformed input yields an error.
type TextVerifier interface {
	TextSigner
	Verify(message []byte, signature string) (bool, error)
}

// PublicKeyer is implemented by verifiers with a shareable public half
type PublicKeyer interface {
	PublicKey() string
}

// TextEncryptor seals and opens messages as hex blobs
type TextEncryptor interface {
	Encrypt(plaintext []byte) (string, error)
	Decrypt(blob string) (string, error)
	AlgorithmName() string
}
