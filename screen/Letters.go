package screen

const glyphWidth = 3  // 每個字的寬度(格)
const glyphHeight = 5 // 每個字的高度(格)

// 數字點陣，# 代表要畫的格子
var glyphs = map[rune][glyphHeight]string{
	'0': {"###", "#.#", "#.#", "#.#", "###"},
	'1': {".#.", "##.", ".#.", ".#.", "###"},
	'2': {"###", "..#", "###", "#..", "###"},
	'3': {"###", "..#", "###", "..#", "###"},
	'4': {"#.#", "#.#", "###", "..#", "..#"},
	'5': {"###", "#..", "###", "..#", "###"},
	'6': {"###", "#..", "###", "#.#", "###"},
	'7': {"###", "..#", "..#", "..#", "..#"},
	'8': {"###", "#.#", "###", "#.#", "###"},
	'9': {"###", "#.#", "###", "..#", "###"},
}

// getCellsFromChar returns the (col, row) offsets lit for ch, or nil when
// ch has no glyph.
func getCellsFromChar(ch rune) [][2]int {
	g, ok := glyphs[ch]
	if !ok {
		return nil
	}
	var cells [][2]int
	for row, line := range g {
		for col, c := range line {
			if c == '#' {
				cells = append(cells, [2]int{col, row})
			}
		}
	}
	return cells
}

// lettersWidth is the number of columns drawLetters uses for word.
func lettersWidth(word string) int {
	n := len([]rune(word))
	if n == 0 {
		return 0
	}
	return n*(glyphWidth+1) - 1
}
