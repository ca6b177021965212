// Package passgen generates random passwords from unambiguous character sets.
package passgen

import (
	"crypto/rand"
	"io"
	"math/big"

	"github.com/ccojocar/zxcvbn-go"
	"github.com/pkg/errors"
)

const (
	uppers  = "ABCDEFGHJKLMNPQRSTUVWXYZ"
	lowers  = "abcdefghijkmnopqrstuvwxyz"
	numbers = "123456789"
	symbols = "!@#$%^&*-_"
)

// DefaultLength is used by the CLI when --length is not given
const DefaultLength = 16

var (
	// ErrNoCharset is returned when every character set is disabled
	ErrNoCharset = errors.New("at least one character set must be enabled")
	// ErrLengthTooShort is returned when the length cannot hold one character per enabled set
	ErrLengthTooShort = errors.New("password length too short for the enabled character sets")
)

// Options selects the password length and which character sets to leave out
type Options struct {
	Length   int
	NoUpper  bool
	NoLower  bool
	NoNum    bool
	NoSymbol bool
}

func (o Options) charsets() []string {
	var sets []string
	if !o.NoUpper {
		sets = append(sets, uppers)
	}
	if !o.NoLower {
		sets = append(sets, lowers)
	}
	if !o.NoNum {
		sets = append(sets, numbers)
	}
	if !o.NoSymbol {
		sets = append(sets, symbols)
	}
	return sets
}

// Generate builds a password with at least one character from each enabled set.
// rnd defaults to crypto/rand when nil.
func Generate(opts Options, rnd io.Reader) (string, error) {
	if rnd == nil {
		rnd = rand.Reader
	}

	sets := opts.charsets()
	if len(sets) == 0 {
		return "", ErrNoCharset
	}
	if opts.Length < len(sets) {
		return "", errors.Wrapf(ErrLengthTooShort, "length %d, need at least %d", opts.Length, len(sets))
	}

	password := make([]byte, 0, opts.Length)
	var all string
	for _, set := range sets {
		c, err := pick(rnd, set)
		if err != nil {
			return "", err
		}
		password = append(password, c)
		all += set
	}
	for len(password) < opts.Length {
		c, err := pick(rnd, all)
		if err != nil {
			return "", err
		}
		password = append(password, c)
	}

	// Fisher-Yates so the guaranteed characters are not always up front
	for i := len(password) - 1; i > 0; i-- {
		j, err := randIndex(rnd, i+1)
		if err != nil {
			return "", err
		}
		password[i], password[j] = password[j], password[i]
	}
	return string(password), nil
}

func pick(rnd io.Reader, set string) (byte, error) {
	i, err := randIndex(rnd, len(set))
	if err != nil {
		return 0, err
	}
	return set[i], nil
}

func randIndex(rnd io.Reader, n int) (int, error) {
	v, err := rand.Int(rnd, big.NewInt(int64(n)))
	if err != nil {
		return 0, errors.Wrap(err, "failed to read random bytes")
	}
	return int(v.Int64()), nil
}

// Strength returns the zxcvbn score of password, from 0 (weak) to 4 (strong)
func Strength(password string) int {
	return zxcvbn.PasswordStrength(password, nil).Score
}
