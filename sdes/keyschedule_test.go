package sdes

import (
	"testing"

	"github.com/dalival/cryptography/bitops"
	"github.com/stretchr/testify/require"
)

// TestExpandKeyKnownAnswer сверяет раундовые ключи с эталонными значениями.
func TestExpandKeyKnownAnswer(t *testing.T) {
	t.Parallel()

	testCases := []struct {
		key string
		k1  string
		k2  string
	}{
		// Учебный пример: 1010000010 -> P10 1000001100
		{"1010000010", "10100100", "01000011"},
		{"0111111101", "01011111", "11111100"},
		{"1000101110", "11101000", "10010011"},
		{"0000000000", "00000000", "00000000"},
		{"1111111111", "11111111", "11111111"},
	}

	for _, tc := range testCases {
		key, err := ParseKey(tc.key)
		require.NoError(t, err)

		keyExpansion := &SDESKeyExpansion{}
		roundKeys := keyExpansion.ExpandKey(key)
		require.Equal(t, tc.k1, roundKeys[0].String(), "K1 для %s", tc.key)
		require.Equal(t, tc.k2, roundKeys[1].String(), "K2 для %s", tc.key)
	}
}

// TestExpandKeyDoesNotMutateKey проверяет, что ключ не меняется при
// расширении.
func TestExpandKeyDoesNotMutateKey(t *testing.T) {
	t.Parallel()

	key, err := ParseKey("1010000010")
	require.NoError(t, err)
	before := key

	keyExpansion := &SDESKeyExpansion{}
	first := keyExpansion.ExpandKey(key)
	second := keyExpansion.ExpandKey(key)

	require.Equal(t, before, key)
	require.Equal(t, first, second)
}

// TestNewKeyValidation проверяет отказ на ключах неверной длины и со
// значениями вне {0, 1}.
func TestNewKeyValidation(t *testing.T) {
	t.Parallel()

	testCases := []struct {
		name  string
		bits  []uint8
		valid bool
	}{
		{"valid", []uint8{1, 0, 1, 0, 0, 0, 0, 0, 1, 0}, true},
		{"nil", nil, false},
		{"empty", []uint8{}, false},
		{"nine bits", []uint8{1, 0, 1, 0, 0, 0, 0, 0, 1}, false},
		{"eleven bits", []uint8{1, 0, 1, 0, 0, 0, 0, 0, 1, 0, 0}, false},
		{"value two", []uint8{1, 0, 1, 0, 2, 0, 0, 0, 1, 0}, false},
		{"value max", []uint8{1, 0, 1, 0, 0, 0, 0, 0, 1, 255}, false},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			key, err := NewKey(tc.bits)
			if !tc.valid {
				require.ErrorIs(t, err, ErrInvalidKey)

				_, err = New(tc.bits)
				require.ErrorIs(t, err, ErrInvalidKey)
				return
			}

			require.NoError(t, err)
			require.Equal(t, "1010000010", key.String())
		})
	}
}

// TestNewKeyEveryLength проверяет отказ на всех длинах кроме 10.
func TestNewKeyEveryLength(t *testing.T) {
	t.Parallel()

	for n := 0; n <= 32; n++ {
		_, err := NewKey(make([]uint8, n))
		if n == KeySize {
			require.NoError(t, err)
			continue
		}
		require.ErrorIs(t, err, ErrInvalidKey, "длина %d", n)
	}
}

func TestParseKey(t *testing.T) {
	t.Parallel()

	key, err := ParseKey("1010000010")
	require.NoError(t, err)
	require.Equal(t, Key{1, 0, 1, 0, 0, 0, 0, 0, 1, 0}, key)

	_, err = ParseKey("101000001")
	require.ErrorIs(t, err, ErrInvalidKey)

	_, err = ParseKey("10100000x0")
	require.ErrorIs(t, err, ErrInvalidKey)
	require.ErrorIs(t, err, bitops.ErrInvalidBit)
}
