// Package codec переводит текст в последовательность битов и обратно.
//
// Текст хранится как последовательность 16-битных кодовых единиц UTF-16.
// Каждая единица занимает два байта в порядке little-endian, каждый байт
// раскладывается в 8 бит начиная с младшего. Этот порядок определяет
// раскладку битов шифротекста и не может меняться.
package codec

import (
	"encoding/binary"
	"errors"
	"fmt"
	"unicode/utf16"

	"github.com/dalival/cryptography/bitops"
)

// bytesPerUnit количество байт на одну кодовую единицу
const bytesPerUnit = 2

// ErrOddByteCount возвращается, если биты складываются в нечётное число
// байт и последняя кодовая единица неполна.
var ErrOddByteCount = errors.New("нечётное количество байт: неполная кодовая единица")

// Text последовательность кодовых единиц UTF-16. В отличие от string может
// содержать одиночные суррогаты, которые появляются в шифротексте.
type Text []uint16

// NewText кодирует строку Go в кодовые единицы UTF-16
func NewText(s string) Text {
	return utf16.Encode([]rune(s))
}

// String декодирует текст в строку Go. Одиночные суррогаты заменяются на
// U+FFFD, поэтому для шифротекста используйте сам Text.
func (t Text) String() string {
	return string(utf16.Decode(t))
}

// Bytes сериализует текст в байты, по два байта little-endian на единицу
func (t Text) Bytes() []byte {
	data := make([]byte, len(t)*bytesPerUnit)
	for i, unit := range t {
		binary.LittleEndian.PutUint16(data[i*bytesPerUnit:], unit)
	}
	return data
}

// FromBytes собирает текст из байтов, записанных Bytes
func FromBytes(data []byte) (Text, error) {
	if len(data)%bytesPerUnit != 0 {
		return nil, fmt.Errorf("%w: %d байт", ErrOddByteCount, len(data))
	}

	text := make(Text, len(data)/bytesPerUnit)
	for i := range text {
		text[i] = binary.LittleEndian.Uint16(data[i*bytesPerUnit:])
	}
	return text, nil
}

// StringToBits раскладывает текст в биты: бит i последовательности равен
// биту i mod 8 байта i div 8.
func StringToBits(text Text) bitops.Bits {
	return bitops.Unpack(text.Bytes(), true)
}

// BitsToString выполняет обратное преобразование. Неполный последний байт
// дополняется нулевыми битами.
func BitsToString(bits []uint8) (Text, error) {
	if err := bitops.Validate(bits); err != nil {
		return nil, err
	}

	text, err := FromBytes(bitops.Pack(bits, true))
	if err != nil {
		return nil, fmt.Errorf("ошибка сборки текста из %d бит: %w", len(bits), err)
	}
	return text, nil
}
