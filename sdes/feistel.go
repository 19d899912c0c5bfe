package sdes

import (
	"fmt"

	"github.com/dalival/cryptography/bitops"
)

const (
	// BlockSize размер блока в битах
	BlockSize = 8

	halfBlockSize = BlockSize / 2
)

// Block 8-битный блок открытого текста или шифротекста
type Block [BlockSize]uint8

func (b Block) String() string {
	return bitops.Bits(b[:]).String()
}

// Round номер раунда сети Фейстеля
type Round int

const (
	// FirstRound начинается с IP и заканчивается обменом половин
	FirstRound Round = iota

	// SecondRound работает без IP и заканчивается перестановкой P1
	SecondRound
)

func (r Round) String() string {
	switch r {
	case FirstRound:
		return "FirstRound"
	case SecondRound:
		return "SecondRound"
	default:
		return "Unknown"
	}
}

type halfBlock [halfBlockSize]uint8

// SDESRoundFunction реализация раунда S-DES
type SDESRoundFunction struct{}

// Apply выполняет один раунд. Оба раунда общие во всём, кроме начала (IP
// только в первом) и конца (обмен половин в первом, P1 во втором).
func (rf *SDESRoundFunction) Apply(block Block, roundKey RoundKey, round Round) Block {
	input := block
	if round == FirstRound {
		bitops.Permute(input[:], block[:], ip8[:], startBitIndex)
	}

	var left, right halfBlock
	copy(left[:], input[:halfBlockSize])
	copy(right[:], input[halfBlockSize:])

	f := feistelFunction(right, roundKey)

	var newLeft halfBlock
	bitops.Xor(newLeft[:], left[:], f[:])

	var combined Block
	copy(combined[:halfBlockSize], newLeft[:])
	copy(combined[halfBlockSize:], right[:])

	var output Block
	switch round {
	case FirstRound:
		copy(output[:halfBlockSize], combined[halfBlockSize:])
		copy(output[halfBlockSize:], combined[:halfBlockSize])
	case SecondRound:
		bitops.Permute(output[:], combined[:], p1[:], startBitIndex)
	default:
		panic(fmt.Sprintf("неизвестный раунд %d", round))
	}

	return output
}

// feistelFunction расширяет правую половину, смешивает с ключом, пропускает
// через S-блоки и P4
func feistelFunction(right halfBlock, roundKey RoundKey) halfBlock {
	var expanded [BlockSize]uint8
	bitops.Permute(expanded[:], right[:], ep[:], startBitIndex)
	bitops.Xor(expanded[:], expanded[:], roundKey[:])

	var substituted halfBlock
	for i := range sBoxes {
		out := substitute(&sBoxes[i], halfBlock(expanded[i*halfBlockSize:(i+1)*halfBlockSize]))
		copy(substituted[i*2:], out[:])
	}

	var result halfBlock
	bitops.Permute(result[:], substituted[:], p4[:], startBitIndex)
	return result
}

// substitute применяет S-блок к 4 битам b0 b1 b2 b3: строка (b0, b3),
// столбец (b1, b2). Значение ячейки возвращается двумя битами, старший первым.
func substitute(box *[4][4]uint8, in halfBlock) [2]uint8 {
	row := in[0]<<1 | in[3]
	col := in[1]<<1 | in[2]
	value := box[row][col]
	return [2]uint8{value >> 1 & 1, value & 1}
}
