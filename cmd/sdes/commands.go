package main

import (
	"encoding/hex"
	"errors"
	"fmt"

	"github.com/dalival/cryptography/bitops"
	"github.com/dalival/cryptography/codec"
	"github.com/dalival/cryptography/sdes"
	"github.com/urfave/cli"
)

var keyFlag = cli.StringFlag{
	Name:  "key",
	Usage: "10-битный ключ, например 1010000010",
}

var keysCommand = cli.Command{
	Name:   "keys",
	Usage:  "вывести раундовые ключи K1 и K2",
	Flags:  []cli.Flag{keyFlag},
	Action: printKeys,
}

var encryptCommand = cli.Command{
	Name:  "encrypt",
	Usage: "зашифровать текст",
	Description: `
	Шифротекст выводится в hex как байты UTF-16LE: в нём могут быть
	одиночные суррогаты, которые нельзя вывести строкой.`,
	Flags: []cli.Flag{
		keyFlag,
		cli.StringFlag{
			Name:  "text",
			Usage: "открытый текст",
		},
		cli.BoolFlag{
			Name:  "bits",
			Usage: "дополнительно вывести биты шифротекста",
		},
	},
	Action: encrypt,
}

var decryptCommand = cli.Command{
	Name:  "decrypt",
	Usage: "расшифровать шифротекст",
	Flags: []cli.Flag{
		keyFlag,
		cli.StringFlag{
			Name:  "hex",
			Usage: "шифротекст в hex (байты UTF-16LE)",
		},
		cli.StringFlag{
			Name:  "bits",
			Usage: "шифротекст в виде битовой строки",
		},
	},
	Action: decrypt,
}

func cipherFromContext(ctx *cli.Context) (*sdes.Cipher, error) {
	if !ctx.IsSet("key") {
		return nil, errors.New("не задан ключ (--key)")
	}

	key, err := sdes.ParseKey(ctx.String("key"))
	if err != nil {
		return nil, err
	}
	return sdes.NewWithKey(key), nil
}

func printKeys(ctx *cli.Context) error {
	c, err := cipherFromContext(ctx)
	if err != nil {
		return err
	}

	k1, k2 := c.RoundKeys()
	fmt.Printf("K1: %s\n", k1)
	fmt.Printf("K2: %s\n", k2)
	return nil
}

func encrypt(ctx *cli.Context) error {
	c, err := cipherFromContext(ctx)
	if err != nil {
		return err
	}

	message := codec.NewText(ctx.String("text"))
	bits, err := c.EncryptBits(message)
	if err != nil {
		return err
	}
	ciphertext, err := codec.BitsToString(bits)
	if err != nil {
		return err
	}
	log.Debugf("Зашифровано кодовых единиц: %d", len(ciphertext))

	fmt.Printf("Шифротекст (hex): %s\n", textToHex(ciphertext))
	if ctx.Bool("bits") {
		fmt.Printf("Шифротекст (bin): %s\n", bits)
	}
	return nil
}

func decrypt(ctx *cli.Context) error {
	c, err := cipherFromContext(ctx)
	if err != nil {
		return err
	}

	var plaintext codec.Text
	switch {
	case ctx.IsSet("hex"):
		ciphertext, err := hexToText(ctx.String("hex"))
		if err != nil {
			return err
		}
		plaintext, err = c.Decrypt(ciphertext)
		if err != nil {
			return err
		}

	case ctx.IsSet("bits"):
		bits, err := bitops.Parse(ctx.String("bits"))
		if err != nil {
			return err
		}
		plaintext, err = c.DecryptBits(bits)
		if err != nil {
			return err
		}

	default:
		return errors.New("нужен шифротекст (--hex или --bits)")
	}

	fmt.Printf("Открытый текст: %s\n", plaintext)
	return nil
}

// textToHex выводит текст как hex его байтов UTF-16LE
func textToHex(t codec.Text) string {
	return hex.EncodeToString(t.Bytes())
}

func hexToText(s string) (codec.Text, error) {
	data, err := hex.DecodeString(s)
	if err != nil {
		return nil, fmt.Errorf("ошибка разбора hex: %w", err)
	}
	return codec.FromBytes(data)
}
