package main

import (
	"fmt"

	"github.com/dalival/cryptography/bitops"
	"github.com/dalival/cryptography/codec"
	"github.com/dalival/cryptography/sdes"
	"github.com/urfave/cli"
)

// Учебный пример S-DES
const (
	demoKey        = "1010000010"
	demoPlaintext  = "10010111"
	demoCiphertext = "00111000"
)

var demoCommand = cli.Command{
	Name:   "demo",
	Usage:  "демонстрация работы S-DES на учебном примере",
	Action: runDemo,
}

func runDemo(_ *cli.Context) error {
	key, err := sdes.ParseKey(demoKey)
	if err != nil {
		return err
	}
	c := sdes.NewWithKey(key)

	if err := demonstrateKnownAnswer(c); err != nil {
		return err
	}
	if err := demonstrateTextEncryption(c); err != nil {
		return err
	}
	demonstrateAvalanche(key)

	return nil
}

func demonstrateKnownAnswer(c *sdes.Cipher) error {
	fmt.Println("=== УЧЕБНЫЙ ПРИМЕР ===")

	k1, k2 := c.RoundKeys()
	fmt.Printf("Ключ: %s\n", demoKey)
	fmt.Printf("K1: %s, K2: %s\n", k1, k2)

	bits, err := bitops.Parse(demoPlaintext)
	if err != nil {
		return err
	}
	plaintext := sdes.Block(bits)

	ciphertext := c.EncryptBlock(plaintext)
	fmt.Printf("Открытый блок: %s\n", plaintext)
	fmt.Printf("Шифроблок:     %s (ожидается %s)\n", ciphertext, demoCiphertext)

	decrypted := c.DecryptBlock(ciphertext)
	fmt.Printf("Расшифровано:  %s\n", decrypted)
	fmt.Printf("Корректность: %s\n\n", boolToCheckmark(
		ciphertext.String() == demoCiphertext && decrypted == plaintext,
	))

	return nil
}

func demonstrateTextEncryption(c *sdes.Cipher) error {
	fmt.Println("=== ШИФРОВАНИЕ ТЕКСТА ===")

	messages := []string{
		"Hello, S-DES!",
		"Привет, мир",
		"",
	}

	for _, message := range messages {
		ciphertext, err := c.Encrypt(codec.NewText(message))
		if err != nil {
			return fmt.Errorf("ошибка шифрования %q: %w", message, err)
		}

		decrypted, err := c.Decrypt(ciphertext)
		if err != nil {
			return fmt.Errorf("ошибка дешифрования %q: %w", message, err)
		}

		fmt.Printf("Исходный текст: %q\n", message)
		fmt.Printf("Шифротекст (hex): %s\n", textToHex(ciphertext))
		fmt.Printf("Расшифровано: %q %s\n\n", decrypted.String(),
			boolToCheckmark(decrypted.String() == message))
	}

	return nil
}

// demonstrateAvalanche показывает, сколько блоков меняется при инверсии
// каждого бита ключа
func demonstrateAvalanche(key sdes.Key) {
	fmt.Println("=== ЛАВИННЫЙ ЭФФЕКТ ПО КЛЮЧУ ===")

	base := sdes.NewWithKey(key)
	for bit := 0; bit < sdes.KeySize; bit++ {
		flipped := key
		flipped[bit] ^= 1
		other := sdes.NewWithKey(flipped)

		changed := 0
		for v := 0; v < 256; v++ {
			block := sdes.Block(bitops.Unpack([]byte{byte(v)}, false))
			if base.EncryptBlock(block) != other.EncryptBlock(block) {
				changed++
			}
		}
		fmt.Printf("Бит %d: изменилось блоков %d из 256\n", bit+1, changed)
	}
	fmt.Println()
}

func boolToCheckmark(b bool) string {
	if b {
		return "✓"
	}
	return "✗"
}
