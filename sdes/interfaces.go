package sdes

import "github.com/dalival/cryptography/codec"

// KeyExpansion интерфейс для расширения ключа (генерации раундовых ключей)
type KeyExpansion interface {
	// ExpandKey генерирует раундовые ключи из основного ключа
	ExpandKey(key Key) [numRounds]RoundKey
}

// RoundFunction интерфейс для выполнения одного раунда сети Фейстеля
type RoundFunction interface {
	// Apply выполняет раунд round над блоком с раундовым ключом
	Apply(block Block, roundKey RoundKey, round Round) Block
}

// BlockCipher интерфейс шифрования отдельных блоков
type BlockCipher interface {
	EncryptBlock(block Block) Block
	DecryptBlock(block Block) Block
}

// Encryptor интерфейс шифрования текста
type Encryptor interface {
	Encrypt(message codec.Text) (codec.Text, error)
	Decrypt(ciphertext codec.Text) (codec.Text, error)
}
