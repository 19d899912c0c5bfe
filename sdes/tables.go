package sdes

// Позиции во всех таблицах перестановок нумеруются с единицы
const startBitIndex = 1

// Перестановка ключа P10
var p10 = [KeySize]int{3, 5, 2, 7, 4, 10, 1, 9, 8, 6}

// Сжимающая перестановка P8, выбирает 8 из 10 бит ключа
var p8 = [BlockSize]int{6, 3, 7, 4, 8, 5, 10, 9}

// Начальная перестановка (IP)
var ip8 = [BlockSize]int{2, 6, 3, 1, 4, 8, 5, 7}

// Расширяющая перестановка (E/P), 4 бита -> 8 бит
var ep = [BlockSize]int{4, 1, 2, 3, 2, 3, 4, 1}

// P-блок перестановка результата S-блоков
var p4 = [halfBlockSize]int{2, 4, 3, 1}

// Финальная перестановка, обратная IP
var p1 = [BlockSize]int{4, 1, 3, 5, 7, 2, 8, 6}

// S-блоки: строка задаётся битами 0 и 3 входа, столбец битами 1 и 2
var sBoxes = [2][4][4]uint8{
	{
		{1, 0, 3, 2},
		{3, 2, 1, 0},
		{0, 2, 1, 3},
		{3, 1, 3, 2},
	},
	{
		{0, 1, 2, 3},
		{2, 0, 1, 3},
		{3, 0, 1, 0},
		{2, 1, 0, 3},
	},
}

// Количество левых сдвигов половин ключа перед каждым раундовым ключом
var shiftTable = [numRounds]int{1, 2}
