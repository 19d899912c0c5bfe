package sdes

import "errors"

var (
	// ErrInvalidKey возвращается для ключа, длина которого отлична от 10
	// или который содержит значения кроме 0 и 1.
	ErrInvalidKey = errors.New("ключ должен состоять из 10 значений 0 или 1")

	// ErrInvalidLength возвращается, если длина битовой последовательности
	// не кратна размеру блока.
	ErrInvalidLength = errors.New("длина не кратна размеру блока")
)
