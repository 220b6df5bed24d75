package cli

import (
	"encoding/json"
	"fmt"
	"io"
	"strings"

	"github.com/mcoot/royalsquare/internal/api/response"
)

// Output handles formatting output based on the configured format
type Output struct {
	format string
	w      io.Writer
}

// NewOutput creates a new Output formatter
func NewOutput(format string, w io.Writer) *Output {
	return &Output{format: format, w: w}
}

// Print outputs data in the configured format
func (o *Output) Print(data any) {
	if o.format == formatJSON {
		o.printJSON(data)
	} else {
		o.printText(data)
	}
}

// PrintMessage outputs a simple message
func (o *Output) PrintMessage(msg string) {
	if o.format == formatJSON {
		data, _ := json.Marshal(map[string]string{"message": msg})
		fmt.Fprintln(o.w, string(data))
	} else {
		fmt.Fprintln(o.w, msg)
	}
}

func (o *Output) printJSON(data any) {
	enc := json.NewEncoder(o.w)
	enc.SetIndent("", "  ")
	_ = enc.Encode(data)
}

func (o *Output) printText(data any) {
	switch v := data.(type) {
	case response.Game:
		o.printGame(v)
	case response.Move:
		o.printMove(v)
	case response.WordCheck:
		o.printWordCheck(v)
	case []response.GameSummary:
		o.printSummaries(v)
	case response.Health:
		o.printHealth(v)
	default:
		// Fallback to JSON for unknown types
		o.printJSON(data)
	}
}

func (o *Output) printGame(g response.Game) {
	fmt.Fprintf(o.w, "Game: %s\n", g.ID)
	fmt.Fprintf(o.w, "Status: %s\n", g.Status)
	fmt.Fprintf(o.w, "Scores: player 1 %d, player 2 %d\n", g.Scores.Player1, g.Scores.Player2)

	switch {
	case g.Winner != nil && *g.Winner == 0:
		fmt.Fprintf(o.w, "Result: tie (%s)\n", g.EndReason)
	case g.Winner != nil:
		fmt.Fprintf(o.w, "Result: player %d wins (%s)\n", *g.Winner, g.EndReason)
	default:
		fmt.Fprintf(o.w, "To move: player %d\n", g.CurrentPlayer)
	}

	if g.Selected != nil {
		fmt.Fprintf(o.w, "Selected: %d,%d\n", g.Selected.Row, g.Selected.Col)
	}
	if len(g.UsedWords) > 0 {
		fmt.Fprintf(o.w, "Used words: %s\n", strings.Join(g.UsedWords, ", "))
	}

	fmt.Fprintln(o.w)
	o.printBoard(g.Board)
}

func (o *Output) printBoard(cells [][]string) {
	size := len(cells)
	if size == 0 {
		return
	}

	// Column headers
	fmt.Fprint(o.w, "    ")
	for col := 0; col < size; col++ {
		fmt.Fprintf(o.w, " %d ", col)
	}
	fmt.Fprintln(o.w)

	border := "   +" + strings.Repeat("---", size) + "+"
	fmt.Fprintln(o.w, border)

	for row := 0; row < size; row++ {
		fmt.Fprintf(o.w, " %d |", row)
		for _, cell := range cells[row] {
			if cell == "" {
				cell = "."
			}
			fmt.Fprintf(o.w, " %s ", cell)
		}
		fmt.Fprintln(o.w, "|")
	}

	fmt.Fprintln(o.w, border)
}

func (o *Output) printMove(m response.Move) {
	fmt.Fprintf(o.w, "Player %d played %s for %d points\n", m.Player, m.Word, m.Score)
	if m.GameOver {
		fmt.Fprintln(o.w, "Game over!")
	}
	fmt.Fprintln(o.w)
	o.printGame(m.Game)
}

func (o *Output) printWordCheck(c response.WordCheck) {
	inDict := "no"
	if c.InDictionary {
		inDict = "yes"
	}
	used := "no"
	if c.Used {
		used = "yes"
	}
	fmt.Fprintf(o.w, "Word: %s\n", c.Word)
	fmt.Fprintf(o.w, "In dictionary: %s\n", inDict)
	fmt.Fprintf(o.w, "Already used: %s\n", used)
}

func (o *Output) printSummaries(summaries []response.GameSummary) {
	if len(summaries) == 0 {
		fmt.Fprintln(o.w, "No completed games")
		return
	}
	for _, s := range summaries {
		result := "tie"
		if s.Winner != 0 {
			result = fmt.Sprintf("player %d", s.Winner)
		}
		fmt.Fprintf(o.w, "%s  %s  %d:%d  %s (%s)\n",
			s.CompletedAt.Format("2006-01-02 15:04"), s.ID, s.Scores.Player1, s.Scores.Player2, result, s.EndReason)
	}
}

func (o *Output) printHealth(h response.Health) {
	fmt.Fprintf(o.w, "Status: %s\n", h.Status)
	fmt.Fprintf(o.w, "Dictionary words: %d\n", h.DictionaryWords)
}
