package console

import (
	"fmt"
	"io"
	"strings"

	"github.com/muesli/termenv"

	"github.com/rocketscienceinc/tictactoe-agent/internal/tictactoe"
)

const (
	boardHeader    = "  | 1 | 2 | 3 |"
	boardSeparator = "---------------"

	colorX = "12"
	colorO = "9"
)

// Renderer draws a position as a lettered grid.
type Renderer struct {
	output *termenv.Output
}

// NewRenderer writes to w. Without color the marks are plain text.
func NewRenderer(w io.Writer, color bool) *Renderer {
	profile := termenv.Ascii
	if color {
		profile = termenv.ANSI256
	}

	return &Renderer{output: termenv.NewOutput(w, termenv.WithProfile(profile))}
}

func (that *Renderer) Render(pos tictactoe.Position) error {
	var sb strings.Builder

	sb.WriteString(boardHeader + "\n")
	sb.WriteString(boardSeparator + "\n")

	for row := 0; row < tictactoe.Size; row++ {
		sb.WriteByte(rowLabels[row])
		sb.WriteString(" |")

		for col := 0; col < tictactoe.Size; col++ {
			sb.WriteString(" " + that.mark(pos.At(row, col)) + " |")
		}

		sb.WriteString("\n" + boardSeparator + "\n")
	}

	sb.WriteString("\n")

	if _, err := fmt.Fprint(that.output, sb.String()); err != nil {
		return fmt.Errorf("failed to render board: %w", err)
	}

	return nil
}

func (that *Renderer) mark(cell tictactoe.Cell) string {
	switch cell {
	case tictactoe.CellX:
		return that.output.String("X").Foreground(that.output.Color(colorX)).Bold().String()
	case tictactoe.CellO:
		return that.output.String("O").Foreground(that.output.Color(colorO)).Bold().String()
	default:
		return "-"
	}
}

// Println writes a plain line through the renderer's output.
func (that *Renderer) Println(line string) error {
	if _, err := fmt.Fprintln(that.output, line); err != nil {
		return fmt.Errorf("failed to write line: %w", err)
	}

	return nil
}
