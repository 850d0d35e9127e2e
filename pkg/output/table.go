// Package output renders pipcheck results: bordered console tables and the
// structured JSON, CSV, and XML formats.
package output

import (
	"fmt"
	"io"
	"strings"

	"github.com/fatih/color"

	"github.com/ajxudir/pipcheck/pkg/utils"
)

// Border selects the table border characters.
type Border int

const (
	// BorderBox draws borders with box-drawing characters.
	BorderBox Border = iota
	// BorderASCII draws borders with plain ASCII (+, -, |).
	BorderASCII
)

// Accent selects the header row color.
type Accent int

const (
	// AccentNone leaves the header row uncolored.
	AccentNone Accent = iota
	AccentRed
	AccentYellow
	AccentGreen
	AccentMagenta
	AccentCyan
)

// Style is the rendering mode selected by the caller. Cell content is the
// same for every style.
//
// Fields:
//   - Border: Border characters to draw with
//   - Accent: Color of the header row
type Style struct {
	Border Border
	Accent Accent
}

// Renderer renders rows of plain strings as a table.
//
// Row 0 is the header row. Rows may have different lengths; missing cells
// render empty.
type Renderer interface {
	Render(w io.Writer, rows [][]string, style Style) error
}

// borderSet holds the characters for one border style.
type borderSet struct {
	horizontal, vertical               string
	topLeft, topMid, topRight          string
	midLeft, midMid, midRight          string
	bottomLeft, bottomMid, bottomRight string
}

var (
	boxBorders = borderSet{
		horizontal: "─", vertical: "│",
		topLeft: "┌", topMid: "┬", topRight: "┐",
		midLeft: "├", midMid: "┼", midRight: "┤",
		bottomLeft: "└", bottomMid: "┴", bottomRight: "┘",
	}
	asciiBorders = borderSet{
		horizontal: "-", vertical: "|",
		topLeft: "+", topMid: "+", topRight: "+",
		midLeft: "+", midMid: "+", midRight: "+",
		bottomLeft: "+", bottomMid: "+", bottomRight: "+",
	}
)

// accentColors maps accents to terminal colors.
var accentColors = map[Accent]*color.Color{
	AccentRed:     color.New(color.FgRed, color.Bold),
	AccentYellow:  color.New(color.FgYellow, color.Bold),
	AccentGreen:   color.New(color.FgGreen, color.Bold),
	AccentMagenta: color.New(color.FgMagenta, color.Bold),
	AccentCyan:    color.New(color.FgCyan, color.Bold),
}

// TableRenderer is the console Renderer. Column widths are measured with
// unicode-aware display widths; colors are applied after padding so they
// never affect alignment.
type TableRenderer struct{}

// NewTableRenderer creates a TableRenderer.
func NewTableRenderer() *TableRenderer {
	return &TableRenderer{}
}

// Render writes rows as a bordered table.
//
// It performs the following operations:
//   - Step 1: Computes each column's width from the widest cell
//   - Step 2: Draws the top border, the header row, and a separator
//   - Step 3: Draws each data row and the bottom border
//
// Parameters:
//   - w: Destination writer
//   - rows: Table rows; rows[0] is the header
//   - style: Border characters and header accent
//
// Returns:
//   - error: The first write error, or nil; an empty rows slice writes nothing
func (r *TableRenderer) Render(w io.Writer, rows [][]string, style Style) error {
	if len(rows) == 0 {
		return nil
	}

	widths := columnWidths(rows)
	b := boxBorders
	if style.Border == BorderASCII {
		b = asciiBorders
	}

	var sb strings.Builder
	sb.WriteString(rule(widths, b, b.topLeft, b.topMid, b.topRight))
	sb.WriteString(row(rows[0], widths, b, accentColors[style.Accent]))
	sb.WriteString(rule(widths, b, b.midLeft, b.midMid, b.midRight))
	for _, cells := range rows[1:] {
		sb.WriteString(row(cells, widths, b, nil))
	}
	sb.WriteString(rule(widths, b, b.bottomLeft, b.bottomMid, b.bottomRight))

	_, err := io.WriteString(w, sb.String())
	return err
}

func columnWidths(rows [][]string) []int {
	count := 0
	for _, cells := range rows {
		count = utils.Max(count, len(cells))
	}
	widths := make([]int, count)
	for _, cells := range rows {
		for i, cell := range cells {
			widths[i] = utils.Max(widths[i], utils.DisplayWidth(cell))
		}
	}
	return widths
}

func rule(widths []int, b borderSet, left, mid, right string) string {
	parts := make([]string, len(widths))
	for i, width := range widths {
		parts[i] = strings.Repeat(b.horizontal, width+2)
	}
	return left + strings.Join(parts, mid) + right + "\n"
}

func row(cells []string, widths []int, b borderSet, accent *color.Color) string {
	parts := make([]string, len(widths))
	for i, width := range widths {
		cell := ""
		if i < len(cells) {
			cell = cells[i]
		}
		padded := utils.ToWidth(cell, width)
		if accent != nil {
			padded = accent.Sprint(padded)
		}
		parts[i] = " " + padded + " "
	}
	return b.vertical + strings.Join(parts, b.vertical) + b.vertical + "\n"
}

// SetColorEnabled forces terminal colors on or off. Colors are otherwise
// enabled only when stdout is a terminal.
func SetColorEnabled(enabled bool) {
	color.NoColor = !enabled
}

// ColorEnabled reports whether colored output is active.
func ColorEnabled() bool {
	return !color.NoColor
}

// Notice prints an informational line in cyan to w.
func Notice(w io.Writer, format string, args ...interface{}) {
	_, _ = fmt.Fprintln(w, accentColors[AccentCyan].Sprintf(format, args...))
}
