package passgen

import (
	"bytes"
	"strings"
	"testing"

	"github.com/pkg/errors"
	"github.com/stretchr/testify/require"
)

func containsAny(s, set string) bool {
	return strings.ContainsAny(s, set)
}

func TestGenerateAllSets(t *testing.T) {
	pw, err := Generate(Options{Length: DefaultLength}, nil)
	require.NoError(t, err)
	require.Len(t, pw, DefaultLength)
	require.True(t, containsAny(pw, uppers))
	require.True(t, containsAny(pw, lowers))
	require.True(t, containsAny(pw, numbers))
	require.True(t, containsAny(pw, symbols))
}

func TestGenerateExcludesSets(t *testing.T) {
	tests := []struct {
		name     string
		opts     Options
		excluded string
	}{
		{"no upper", Options{Length: 16, NoUpper: true}, uppers},
		{"no lower", Options{Length: 16, NoLower: true}, lowers},
		{"no num", Options{Length: 16, NoNum: true}, numbers},
		{"no symbol", Options{Length: 16, NoSymbol: true}, symbols},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			for i := 0; i < 20; i++ {
				pw, err := Generate(tt.opts, nil)
				require.NoError(t, err)
				require.Len(t, pw, 16)
				require.False(t, containsAny(pw, tt.excluded))
			}
		})
	}
}

func TestGenerateOmitsAmbiguousGlyphs(t *testing.T) {
	pw, err := Generate(Options{Length: 200}, nil)
	require.NoError(t, err)
	require.False(t, containsAny(pw, "IOl0"))
}

func TestGenerateErrors(t *testing.T) {
	_, err := Generate(Options{Length: 16, NoUpper: true, NoLower: true, NoNum: true, NoSymbol: true}, nil)
	require.True(t, errors.Is(err, ErrNoCharset))

	_, err = Generate(Options{Length: 3}, nil)
	require.True(t, errors.Is(err, ErrLengthTooShort))

	pw, err := Generate(Options{Length: 1, NoUpper: true, NoLower: true, NoSymbol: true}, nil)
	require.NoError(t, err)
	require.True(t, containsAny(pw, numbers))
}

func TestGenerateRandomSourceExhausted(t *testing.T) {
	_, err := Generate(Options{Length: 16}, bytes.NewReader([]byte{1}))
	require.Error(t, err)
}

func TestStrength(t *testing.T) {
	require.LessOrEqual(t, Strength("password"), 1)

	pw, err := Generate(Options{Length: 24}, nil)
	require.NoError(t, err)
	require.GreaterOrEqual(t, Strength(pw), 3)
}
