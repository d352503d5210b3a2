package cli

import (
	"encoding/json"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/fatih/color"

	"github.com/mcoot/fairychess/internal/api/response"
	"github.com/mcoot/fairychess/internal/geom"
)

// Output handles formatting output based on the configured format
type Output struct {
	format string
	w      io.Writer
}

// NewOutput creates a new Output formatter writing to w
func NewOutput(format string, w io.Writer) *Output {
	if w == nil {
		w = os.Stdout
	}
	return &Output{format: format, w: w}
}

// Print outputs data in the configured format
func (o *Output) Print(data any) {
	if o.format == "json" {
		o.printJSON(data)
	} else {
		o.printText(data)
	}
}

// PrintError outputs an error
func (o *Output) PrintError(err error) {
	if o.format == "json" {
		errData := map[string]any{
			"error": map[string]string{
				"message": err.Error(),
			},
		}
		data, _ := json.Marshal(errData)
		fmt.Fprintln(os.Stderr, string(data))
	} else {
		fmt.Fprintf(os.Stderr, "Error: %s\n", err)
	}
}

// PrintMessage outputs a simple message
func (o *Output) PrintMessage(msg string) {
	if o.format == "json" {
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
	case response.GameList:
		o.printGameList(v)
	case response.MoveResult:
		o.printMoveResult(v)
	case response.Modes:
		o.printModes(v)
	case HealthResult:
		o.printHealthResult(v)
	default:
		// Fallback to JSON for unknown types
		o.printJSON(data)
	}
}

// HealthResult response type
type HealthResult struct {
	Status string `json:"status"`
}

func (o *Output) printGame(g response.Game) {
	ai := "off"
	if g.AI {
		ai = "on (" + g.Strategy + ")"
	}
	fmt.Fprintf(o.w, "Game: %s (%s)\n", g.Name, g.ID)
	fmt.Fprintf(o.w, "Mode: %s\n", g.Mode)
	fmt.Fprintf(o.w, "Computer: %s\n", ai)
	fmt.Fprintf(o.w, "Plies: %d\n", g.Plies)
	fmt.Fprintln(o.w)
	fmt.Fprint(o.w, RenderBoard(g.Board))
}

func (o *Output) printGameList(l response.GameList) {
	if len(l.Games) == 0 {
		fmt.Fprintln(o.w, "No games")
		return
	}
	for _, g := range l.Games {
		fmt.Fprintf(o.w, "%s  %-24s %-14s plies=%-4d %s to move\n",
			g.ID, g.Name, g.Mode, g.Plies, g.Board.Turn)
	}
}

func (o *Output) printMoveResult(r response.MoveResult) {
	switch {
	case r.Move != nil:
		fmt.Fprintf(o.w, "Computer played %s\n", r.Move.Notation)
	case r.Moved:
		fmt.Fprintln(o.w, "Move played")
	default:
		fmt.Fprintln(o.w, "No move")
	}
	fmt.Fprintln(o.w)
	fmt.Fprint(o.w, RenderBoard(r.Game.Board))
}

func (o *Output) printModes(m response.Modes) {
	fmt.Fprintf(o.w, "Modes: %s\n", strings.Join(m.Modes, ", "))
	fmt.Fprintf(o.w, "Strategies: %s\n", strings.Join(m.Strategies, ", "))
}

func (o *Output) printHealthResult(h HealthResult) {
	fmt.Fprintf(o.w, "Status: %s\n", h.Status)
}

const cellWidth = 3

// RenderBoard draws the grid with x across and y down. Pieces show as side
// code plus type, e.g. "WP". Highlighted destinations are marked "*" and
// coloured green; the selected piece is yellow and pieces in check red.
// Colours are dropped when color.NoColor is set.
func RenderBoard(b response.Board) string {
	var sb strings.Builder

	at := make(map[geom.Point]response.Piece, len(b.Pieces))
	for _, p := range b.Pieces {
		at[p.Square] = p
	}
	highlighted := make(map[geom.Point]bool, len(b.Highlights))
	for _, h := range b.Highlights {
		highlighted[h.Square] = true
	}
	checked := make(map[geom.Point]bool, len(b.Checks))
	for _, p := range b.Checks {
		checked[p.Square] = true
	}

	writePool(&sb, "Captured by black", b.Captured.Black)

	sb.WriteString("    ")
	for x := 0; x < b.Size; x++ {
		fmt.Fprintf(&sb, " %-*d", cellWidth, x)
	}
	sb.WriteString("\n")
	border := "   +" + strings.Repeat("-", b.Size*(cellWidth+1)+1) + "+\n"
	sb.WriteString(border)

	for y := 0; y < b.Size; y++ {
		fmt.Fprintf(&sb, "%2d | ", y)
		for x := 0; x < b.Size; x++ {
			sq := geom.Pt(x, y)
			var attrs []color.Attribute
			text := "."
			if p, ok := at[sq]; ok {
				text = sideCode(p.Side) + p.Type
				attrs = append(attrs, sideColor(p.Side), color.Bold)
			} else if highlighted[sq] {
				text = "*"
			}

			switch {
			case checked[sq]:
				attrs = append(attrs, color.BgRed)
			case b.Selected != nil && b.Selected.Square == sq:
				attrs = append(attrs, color.BgYellow)
			case highlighted[sq]:
				attrs = append(attrs, color.BgGreen)
			case b.LastMoved != nil && b.LastMoved.Square == sq:
				attrs = append(attrs, color.Underline)
			}

			cell := fmt.Sprintf("%-*s", cellWidth, text)
			if len(attrs) > 0 {
				cell = color.New(attrs...).Sprint(cell)
			}
			sb.WriteString(cell)
			sb.WriteString(" ")
		}
		sb.WriteString("|\n")
	}
	sb.WriteString(border)

	writePool(&sb, "Captured by white", b.Captured.White)

	status := b.Turn + " to move"
	if b.State != "" && b.State != "none" {
		status += ", " + b.State
	} else if len(b.Checks) > 0 {
		status += ", check"
	}
	sb.WriteString(status + "\n")
	return sb.String()
}

func writePool(sb *strings.Builder, label string, pieces []response.Piece) {
	if len(pieces) == 0 {
		return
	}
	codes := make([]string, 0, len(pieces))
	for _, p := range pieces {
		codes = append(codes, color.New(sideColor(p.Side)).Sprint(sideCode(p.Side)+p.Type))
	}
	fmt.Fprintf(sb, "%s: %s\n", label, strings.Join(codes, " "))
}

func sideCode(side string) string {
	if side == "black" {
		return "B"
	}
	return "W"
}

func sideColor(side string) color.Attribute {
	if side == "black" {
		return color.FgHiRed
	}
	return color.FgHiWhite
}
