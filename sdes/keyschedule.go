package sdes

import (
	"fmt"

	"github.com/dalival/cryptography/bitops"
)

const (
	// KeySize размер ключа в битах
	KeySize = 10

	halfKeySize = KeySize / 2
	numRounds   = 2
)

// Key основной 10-битный ключ
type Key [KeySize]uint8

// RoundKey раундовый 8-битный ключ
type RoundKey [BlockSize]uint8

// NewKey проверяет и копирует ключ
func NewKey(bits []uint8) (Key, error) {
	var key Key
	if len(bits) != KeySize {
		return key, fmt.Errorf("%w: получено %d значений", ErrInvalidKey, len(bits))
	}
	if err := bitops.Validate(bits); err != nil {
		return key, fmt.Errorf("%w: %w", ErrInvalidKey, err)
	}
	copy(key[:], bits)
	return key, nil
}

// ParseKey разбирает ключ из строки вида "1010000010"
func ParseKey(s string) (Key, error) {
	bits, err := bitops.Parse(s)
	if err != nil {
		return Key{}, fmt.Errorf("%w: %w", ErrInvalidKey, err)
	}
	return NewKey(bits)
}

func (k Key) String() string {
	return bitops.Bits(k[:]).String()
}

func (k RoundKey) String() string {
	return bitops.Bits(k[:]).String()
}

// SDESKeyExpansion реализация расширения ключа для S-DES
type SDESKeyExpansion struct{}

// ExpandKey генерирует два раундовых ключа. Половины ключа после P10
// сдвигаются накопительно: на 1 для первого ключа и ещё на 2 для второго.
func (ke *SDESKeyExpansion) ExpandKey(key Key) [numRounds]RoundKey {
	var permuted Key
	bitops.Permute(permuted[:], key[:], p10[:], startBitIndex)

	var left, right [halfKeySize]uint8
	copy(left[:], permuted[:halfKeySize])
	copy(right[:], permuted[halfKeySize:])

	var roundKeys [numRounds]RoundKey
	for round, shifts := range shiftTable {
		bitops.RotateLeft(left[:], shifts)
		bitops.RotateLeft(right[:], shifts)

		var combined Key
		copy(combined[:halfKeySize], left[:])
		copy(combined[halfKeySize:], right[:])

		bitops.Permute(roundKeys[round][:], combined[:], p8[:], startBitIndex)
	}

	return roundKeys
}
