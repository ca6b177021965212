package crypto

import (
	"bytes"
	"strings"
	"testing"

	"github.com/pkg/errors"
)

const (
	testCipherKey = "d15b212054ab60da12d67534d79d06f432bc1d7be2b5902297189639078c4a38"
	testMessage   = "你好，世界！"
	testBlob      = "2a49e9b2deb0f9c8cd440699f6e22757249a5f924656fbc8f420ed7978df53d89d51964ae6a76a1d647beff3be46"
)

func TestTextCipherRoundTrip(t *testing.T) {
	c, err := ParseTextCipher(testCipherKey, nil)
	if err != nil {
		t.Fatalf("Failed to load key: %v", err)
	}

	for _, msg := range []string{testMessage, "", "hello world", strings.Repeat("x", 1<<16)} {
		blob, err := c.Encrypt([]byte(msg))
		if err != nil {
			t.Fatalf("Encryption failed: %v", err)
		}
		if len(blob) != 2*(NonceSize+len(msg)+TagSize) {
			t.Fatalf("Blob is %d chars, expected %d", len(blob), 2*(NonceSize+len(msg)+TagSize))
		}

		got, err := c.Decrypt(blob)
		if err != nil {
			t.Fatalf("Decryption failed: %v", err)
		}
		if got != msg {
			t.Fatalf("Decrypted text does not match input. Got: %q, Want: %q", got, msg)
		}
	}
}

func TestTextCipherDecryptKnownBlob(t *testing.T) {
	c, err := ParseTextCipher(testCipherKey, nil)
	if err != nil {
		t.Fatalf("Failed to load key: %v", err)
	}

	got, err := c.Decrypt(testBlob)
	if err != nil {
		t.Fatalf("Decryption failed: %v", err)
	}
	if got != testMessage {
		t.Fatalf("Expected %q, got %q", testMessage, got)
	}
}

func TestTextCipherEncryptWithFixedNonce(t *testing.T) {
	nonce, _ := DecodeHex(testBlob[:2*NonceSize])
	c, err := ParseTextCipher(testCipherKey, bytes.NewReader(nonce))
	if err != nil {
		t.Fatalf("Failed to load key: %v", err)
	}

	blob, err := c.Encrypt([]byte(testMessage))
	if err != nil {
		t.Fatalf("Encryption failed: %v", err)
	}
	if blob != testBlob {
		t.Fatalf("Expected %s, got %s", testBlob, blob)
	}
}

func TestTextCipherFreshNonce(t *testing.T) {
	c, err := ParseTextCipher(testCipherKey, nil)
	if err != nil {
		t.Fatalf("Failed to load key: %v", err)
	}

	first, _ := c.Encrypt([]byte(testMessage))
	second, _ := c.Encrypt([]byte(testMessage))
	if first[:2*NonceSize] == second[:2*NonceSize] {
		t.Fatal("Nonce reused across encryptions")
	}
	if first == second {
		t.Fatal("Same message encrypted twice should give different blobs")
	}
}

func TestTextCipherWrongKey(t *testing.T) {
	other, err := GenerateCipherKey(nil)
	if err != nil {
		t.Fatalf("Key generation failed: %v", err)
	}

	_, err = NewTextCipher(other, nil).Decrypt(testBlob)
	if !errors.Is(err, ErrAuthenticationFailed) {
		t.Fatalf("Expected ErrAuthenticationFailed, got %v", err)
	}
}

func TestTextCipherTamperedBlob(t *testing.T) {
	c, err := ParseTextCipher(testCipherKey, nil)
	if err != nil {
		t.Fatalf("Failed to load key: %v", err)
	}
	sealed, _ := DecodeHex(testBlob)

	for i := range sealed {
		tampered := append([]byte(nil), sealed...)
		tampered[i] ^= 0x01

		got, err := c.Decrypt(EncodeHex(tampered))
		if !errors.Is(err, ErrAuthenticationFailed) {
			t.Fatalf("Byte %d: expected ErrAuthenticationFailed, got %v", i, err)
		}
		if got != "" {
			t.Fatalf("Byte %d: partial plaintext returned on failure", i)
		}
	}
}

func TestTextCipherMalformedInput(t *testing.T) {
	c, err := ParseTextCipher(testCipherKey, nil)
	if err != nil {
		t.Fatalf("Failed to load key: %v", err)
	}

	if _, err := c.Decrypt("not hex"); !errors.Is(err, ErrInvalidEncoding) {
		t.Fatalf("Expected ErrInvalidEncoding, got %v", err)
	}

	short := testBlob[:2*(NonceSize+TagSize-1)]
	if _, err := c.Decrypt(short); !errors.Is(err, ErrMalformedCiphertext) {
		t.Fatalf("Expected ErrMalformedCiphertext, got %v", err)
	}
	if _, err := c.Decrypt(""); !errors.Is(err, ErrMalformedCiphertext) {
		t.Fatalf("Expected ErrMalformedCiphertext for empty blob, got %v", err)
	}
}

func TestTextCipherDecodedNotText(t *testing.T) {
	c, err := ParseTextCipher(testCipherKey, nil)
	if err != nil {
		t.Fatalf("Failed to load key: %v", err)
	}

	sealed, err := c.Seal([]byte{0xff, 0xfe, 0xfd})
	if err != nil {
		t.Fatalf("Seal failed: %v", err)
	}
	opened, err := c.Open(sealed)
	if err != nil {
		t.Fatalf("Open failed: %v", err)
	}
	if !bytes.Equal(opened, []byte{0xff, 0xfe, 0xfd}) {
		t.Fatalf("Unexpected plaintext %x", opened)
	}

	if _, err := c.Decrypt(EncodeHex(sealed)); !errors.Is(err, ErrDecodedNotText) {
		t.Fatalf("Expected ErrDecodedNotText, got %v", err)
	}
}

func TestParseTextCipherKeyLength(t *testing.T) {
	if _, err := ParseTextCipher(testCipherKey[:62], nil); !errors.Is(err, ErrInvalidKeyLength) {
		t.Fatalf("Expected ErrInvalidKeyLength, got %v", err)
	}
	if _, err := ParseTextCipher(testCipherKey+"00", nil); !errors.Is(err, ErrInvalidKeyLength) {
		t.Fatalf("Expected ErrInvalidKeyLength, got %v", err)
	}
	if _, err := ParseTextCipher(testCipherKey[:63], nil); !errors.Is(err, ErrInvalidEncoding) {
		t.Fatalf("Expected ErrInvalidEncoding, got %v", err)
	}
}
