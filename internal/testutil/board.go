package testutil

import (
	"unicode"

	"github.com/mcoot/royalsquare/internal/model"
)

// BoardFromRows builds a board from one string per row. '.' and ' ' are empty.
func BoardFromRows(rows ...string) *model.Board {
	board := model.NewBoard(model.BoardSize)
	for row, line := range rows {
		col := 0
		for _, r := range line {
			if r != '.' && r != ' ' {
				board.Cells[row][col] = unicode.ToUpper(r)
			}
			col++
		}
	}
	return board
}
