// Package sdes реализует упрощённый DES (S-DES): блок 8 бит, ключ 10 бит,
// два раунда сети Фейстеля. Блоки шифруются независимо друг от друга.
//
// Шифр учебный и не обеспечивает никакой криптостойкости.
package sdes

import (
	"fmt"

	"github.com/dalival/cryptography/bitops"
	"github.com/dalival/cryptography/codec"
)

// Cipher шифр S-DES с вычисленными раундовыми ключами. После создания не
// изменяется, поэтому может использоваться из нескольких горутин.
type Cipher struct {
	roundFunction RoundFunction
	roundKeys     [numRounds]RoundKey
}

var (
	_ BlockCipher = (*Cipher)(nil)
	_ Encryptor   = (*Cipher)(nil)
)

// New создает шифр из 10 значений 0 или 1
func New(key []uint8) (*Cipher, error) {
	k, err := NewKey(key)
	if err != nil {
		return nil, err
	}
	return NewWithKey(k), nil
}

// NewWithKey создает шифр из проверенного ключа. Раундовые ключи
// вычисляются один раз.
func NewWithKey(key Key) *Cipher {
	keyExpansion := &SDESKeyExpansion{}

	c := &Cipher{
		roundFunction: &SDESRoundFunction{},
		roundKeys:     keyExpansion.ExpandKey(key),
	}
	log.Debugf("Создан шифр S-DES, раундов: %d", numRounds)

	return c
}

// RoundKeys возвращает раундовые ключи K1 и K2
func (c *Cipher) RoundKeys() (RoundKey, RoundKey) {
	return c.roundKeys[0], c.roundKeys[1]
}

// EncryptBlock шифрует блок: первый раунд с K1, второй с K2
func (c *Cipher) EncryptBlock(block Block) Block {
	return c.processBlock(block, c.roundKeys[0], c.roundKeys[1])
}

// DecryptBlock расшифровывает блок той же схемой с обратным порядком ключей
func (c *Cipher) DecryptBlock(block Block) Block {
	return c.processBlock(block, c.roundKeys[1], c.roundKeys[0])
}

func (c *Cipher) processBlock(block Block, firstKey, secondKey RoundKey) Block {
	afterFirst := c.roundFunction.Apply(block, firstKey, FirstRound)
	return c.roundFunction.Apply(afterFirst, secondKey, SecondRound)
}

// Encrypt шифрует текст и возвращает шифротекст в виде текста
func (c *Cipher) Encrypt(message codec.Text) (codec.Text, error) {
	bits, err := c.EncryptBits(message)
	if err != nil {
		return nil, err
	}

	ciphertext, err := codec.BitsToString(bits)
	if err != nil {
		return nil, fmt.Errorf("ошибка кодирования шифротекста: %w", err)
	}
	return ciphertext, nil
}

// Decrypt расшифровывает шифротекст, полученный от Encrypt
func (c *Cipher) Decrypt(ciphertext codec.Text) (codec.Text, error) {
	return c.DecryptBits(codec.StringToBits(ciphertext))
}

// EncryptBits шифрует текст и возвращает биты шифротекста
func (c *Cipher) EncryptBits(message codec.Text) (bitops.Bits, error) {
	encrypted, err := c.processECB(codec.StringToBits(message), c.EncryptBlock)
	if err != nil {
		return nil, fmt.Errorf("ошибка шифрования: %w", err)
	}
	return encrypted, nil
}

// DecryptBits расшифровывает биты шифротекста и возвращает текст
func (c *Cipher) DecryptBits(bits []uint8) (codec.Text, error) {
	decrypted, err := c.processECB(bits, c.DecryptBlock)
	if err != nil {
		return nil, fmt.Errorf("ошибка дешифрования: %w", err)
	}

	message, err := codec.BitsToString(decrypted)
	if err != nil {
		return nil, fmt.Errorf("ошибка декодирования текста: %w", err)
	}
	return message, nil
}

// processECB разбивает биты на блоки и обрабатывает каждый независимо
func (c *Cipher) processECB(bits []uint8, transform func(Block) Block) (bitops.Bits, error) {
	blocks, err := splitBlocks(bits)
	if err != nil {
		return nil, err
	}

	result := make(bitops.Bits, 0, len(bits))
	for _, block := range blocks {
		out := transform(block)
		result = append(result, out[:]...)
	}
	log.Tracef("Обработано блоков: %d", len(blocks))

	return result, nil
}

func splitBlocks(bits []uint8) ([]Block, error) {
	if len(bits)%BlockSize != 0 {
		return nil, fmt.Errorf("%w: %d бит, блок %d бит", ErrInvalidLength, len(bits), BlockSize)
	}
	if err := bitops.Validate(bits); err != nil {
		return nil, err
	}

	blocks := make([]Block, len(bits)/BlockSize)
	for i := range blocks {
		copy(blocks[i][:], bits[i*BlockSize:])
	}
	return blocks, nil
}
