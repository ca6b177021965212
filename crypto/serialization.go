package crypto

import (
	"encoding/json"
	"strings"

	"github.com/pkg/errors"
)

// KeyInfo describes generated key material for storage or transmission
type KeyInfo struct {
	Format    string `json:"format"`
	Key       string `json:"key"`
	PublicKey string `json:"public_key,omitempty"`
}

// DescribeKey builds the KeyInfo for hex key text. For Ed25519 the public
// half is included so it can be handed to verifiers on its own.
func DescribeKey(format SignatureFormat, key string) (*KeyInfo, error) {
	v, err := NewVerifier(format, key)
	if err != nil {
		return nil, err
	}

	info := &KeyInfo{
		Format: format.String(),
		Key:    key,
	}
	if pk, ok := v.(PublicKeyer); ok {
		info.PublicKey = pk.PublicKey()
	}
	return info, nil
}

// SerializeKeyInfo encodes key info as indented JSON
func SerializeKeyInfo(info *KeyInfo) ([]byte, error) {
	b, err := json.MarshalIndent(info, "", "  ")
	if err != nil {
		return nil, errors.Wrap(err, "failed to marshal key info")
	}
	return b, nil
}

// DeserializeKeyInfo decodes key info JSON and loads the key for its format.
// A public_key field, when present, must be the public half of key.
func DeserializeKeyInfo(data []byte) (*KeyInfo, SignatureFormat, error) {
	var info KeyInfo
	if err := json.Unmarshal(data, &info); err != nil {
		return nil, 0, errors.Wrap(err, "failed to unmarshal key info")
	}

	format, err := ParseSignatureFormat(info.Format)
	if err != nil {
		return nil, 0, err
	}
	v, err := NewVerifier(format, info.Key)
	if err != nil {
		return nil, 0, err
	}

	if info.PublicKey == "" {
		return &info, format, nil
	}
	pk, ok := v.(PublicKeyer)
	if !ok {
		return nil, 0, errors.Wrapf(ErrKeypairMismatch, "%s keys have no public half", format)
	}
	if !strings.EqualFold(pk.PublicKey(), info.PublicKey) {
		return nil, 0, ErrKeypairMismatch
	}
	return &info, format, nil
}
