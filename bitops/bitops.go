// Package bitops содержит операции над последовательностями битов, где
// каждый бит хранится отдельным элементом со значением 0 или 1.
package bitops

import (
	"errors"
	"fmt"
	"slices"
	"strings"
)

// ErrInvalidBit возвращается, если значение бита отлично от 0 и 1.
var ErrInvalidBit = errors.New("бит должен быть 0 или 1")

// Bits последовательность битов произвольной длины
type Bits []uint8

// Parse разбирает строку из символов '0' и '1', например "10010111"
func Parse(s string) (Bits, error) {
	bits := make(Bits, 0, len(s))
	for i, c := range s {
		switch c {
		case '0':
			bits = append(bits, 0)
		case '1':
			bits = append(bits, 1)
		default:
			return nil, fmt.Errorf("символ %q в позиции %d: %w", c, i, ErrInvalidBit)
		}
	}
	return bits, nil
}

// Validate проверяет, что каждый элемент равен 0 или 1
func Validate(bits []uint8) error {
	for i, b := range bits {
		if b > 1 {
			return fmt.Errorf("значение %d в позиции %d: %w", b, i, ErrInvalidBit)
		}
	}
	return nil
}

func (b Bits) String() string {
	var sb strings.Builder
	sb.Grow(len(b))
	for _, bit := range b {
		sb.WriteByte('0' + bit)
	}
	return sb.String()
}

// Unpack раскладывает байты в биты. При bitIndexingFromLSB первым идёт
// младший бит каждого байта, иначе старший.
func Unpack(data []byte, bitIndexingFromLSB bool) Bits {
	bits := make(Bits, 0, len(data)*8)
	for _, b := range data {
		for i := 0; i < 8; i++ {
			if bitIndexingFromLSB {
				bits = append(bits, (b>>i)&1)
			} else {
				bits = append(bits, (b>>(7-i))&1)
			}
		}
	}
	return bits
}

// Pack собирает биты обратно в байты в том же порядке, что и Unpack.
// Неполный последний байт дополняется нулями.
func Pack(bits []uint8, bitIndexingFromLSB bool) []byte {
	result := make([]byte, (len(bits)+7)/8)
	for i, bit := range bits {
		if bit == 0 {
			continue
		}
		if bitIndexingFromLSB {
			result[i/8] |= 1 << (i % 8)
		} else {
			result[i/8] |= 1 << (7 - i%8)
		}
	}
	return result
}

// Permute выполняет перестановку битов по P-блоку: dst[i] получает бит
// src с номером table[i]. Нумерация позиций в таблице начинается со
// startBitIndex. Таблица может повторять позиции (расширяющая перестановка).
func Permute(dst, src []uint8, table []int, startBitIndex int) {
	if len(dst) != len(table) {
		panic(fmt.Sprintf("размер результата %d не совпадает с таблицей перестановки %d", len(dst), len(table)))
	}

	for i, pos := range table {
		sourceIndex := pos - startBitIndex
		if sourceIndex < 0 || sourceIndex >= len(src) {
			panic(fmt.Sprintf("позиция %d вне диапазона входа из %d бит", pos, len(src)))
		}
		dst[i] = src[sourceIndex]
	}
}

// RotateLeft выполняет циклический левый сдвиг на месте
func RotateLeft(bits []uint8, shifts int) {
	n := len(bits)
	if n == 0 {
		return
	}
	shifts %= n
	if shifts < 0 {
		shifts += n
	}

	// Сдвиг тремя разворотами, без дополнительного буфера
	slices.Reverse(bits[:shifts])
	slices.Reverse(bits[shifts:])
	slices.Reverse(bits)
}

// Xor записывает в dst побитовый XOR a и b. dst может совпадать с a или b.
func Xor(dst, a, b []uint8) {
	if len(a) != len(b) || len(dst) != len(a) {
		panic(fmt.Sprintf("XOR над буферами разной длины: %d, %d, %d", len(dst), len(a), len(b)))
	}
	for i := range dst {
		dst[i] = a[i] ^ b[i]
	}
}
