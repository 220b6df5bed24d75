package model

import "unicode"

// BoardSize is the fixed grid dimension
const BoardSize = 5

// Position identifies a cell on the board
type Position struct {
	Row int `json:"row"` // 0-indexed from top
	Col int `json:"col"` // 0-indexed from left
}

// Step returns the next position along the given direction
func (p Position) Step(dir Direction, n int) Position {
	if dir == Horizontal {
		return Position{Row: p.Row, Col: p.Col + n}
	}
	return Position{Row: p.Row + n, Col: p.Col}
}

// Board is the shared letter grid. Cells hold uppercase letters, 0 means empty.
// A filled cell is never cleared for the rest of the game.
type Board struct {
	Size  int      `json:"size"`
	Cells [][]rune `json:"cells"` // Row-major: Cells[row][col]
}

// NewBoard creates an empty board of the given size
func NewBoard(size int) *Board {
	cells := make([][]rune, size)
	for i := range cells {
		cells[i] = make([]rune, size)
	}
	return &Board{
		Size:  size,
		Cells: cells,
	}
}

// Center returns the center cell used by the opening-move rule
func (b *Board) Center() Position {
	return Position{Row: b.Size / 2, Col: b.Size / 2}
}

// LetterAt returns the letter at the given position, or 0 if empty or out of bounds
func (b *Board) LetterAt(pos Position) rune {
	if !b.IsValidPosition(pos) {
		return 0
	}
	return b.Cells[pos.Row][pos.Col]
}

// IsEmpty returns true if the cell at the given position is empty
func (b *Board) IsEmpty(pos Position) bool {
	return b.LetterAt(pos) == 0
}

// IsValidPosition returns true if the position is within bounds
func (b *Board) IsValidPosition(pos Position) bool {
	return pos.Row >= 0 && pos.Row < b.Size && pos.Col >= 0 && pos.Col < b.Size
}

var neighborOffsets = [4]Position{{-1, 0}, {1, 0}, {0, -1}, {0, 1}}

// HasNeighbor reports whether any orthogonal neighbor of pos holds a letter
func (b *Board) HasNeighbor(pos Position) bool {
	for _, d := range neighborOffsets {
		if !b.IsEmpty(Position{Row: pos.Row + d.Row, Col: pos.Col + d.Col}) {
			return true
		}
	}
	return false
}

// Place writes word into consecutive cells from start along dir.
// Occupied cells are left as they are. The move must already be validated.
func (b *Board) Place(word string, start Position, dir Direction) {
	pos := start
	for _, r := range word {
		if b.IsEmpty(pos) {
			b.Cells[pos.Row][pos.Col] = unicode.ToUpper(r)
		}
		pos = pos.Step(dir, 1)
	}
}

// IsFull returns true if all cells are filled
func (b *Board) IsFull() bool {
	return b.EmptyCount() == 0
}

// EmptyCount returns the number of empty cells
func (b *Board) EmptyCount() int {
	count := 0
	for row := 0; row < b.Size; row++ {
		for col := 0; col < b.Size; col++ {
			if b.Cells[row][col] == 0 {
				count++
			}
		}
	}
	return count
}

// CrossWord returns the run of letters through pos on the axis perpendicular
// to dir, read top-to-bottom or left-to-right. The letter at pos is included,
// so a cell with no perpendicular neighbors yields a single character.
func (b *Board) CrossWord(pos Position, dir Direction) string {
	cross := dir.Perpendicular()

	start := pos
	for !b.IsEmpty(start.Step(cross, -1)) {
		start = start.Step(cross, -1)
	}

	var letters []rune
	for p := start; !b.IsEmpty(p); p = p.Step(cross, 1) {
		letters = append(letters, b.LetterAt(p))
	}
	return string(letters)
}

// Rows returns the board as one string per row with '.' for empty cells
func (b *Board) Rows() []string {
	rows := make([]string, b.Size)
	for row := 0; row < b.Size; row++ {
		line := make([]rune, b.Size)
		for col := 0; col < b.Size; col++ {
			if b.Cells[row][col] == 0 {
				line[col] = '.'
			} else {
				line[col] = b.Cells[row][col]
			}
		}
		rows[row] = string(line)
	}
	return rows
}

// Clone returns a deep copy of the board
func (b *Board) Clone() *Board {
	clone := NewBoard(b.Size)
	for row := range b.Cells {
		copy(clone.Cells[row], b.Cells[row])
	}
	return clone
}
