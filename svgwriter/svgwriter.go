// Package svgwriter renders a solved (or partially solved) grid.Layout as an
// SVG document: a cell per grid square, a clue number on every slot's
// starting cell, and a letter on every filled cell.
package svgwriter

import (
	"fmt"
	"io"
	"math"
	"strings"

	"github.com/karnobh/crosswordist/grid"
)

// attr is one SVG tag attribute, rendered only when val is non-empty; order
// is preserved as given.
type attr struct {
	name, val string
}

func writeEmptyTag(w io.Writer, tag string, attrs []attr) error {
	var b strings.Builder
	b.WriteString("<")
	b.WriteString(tag)
	writeAttrs(&b, attrs)
	b.WriteString(" />")
	_, err := fmt.Fprintln(w, b.String())
	return err
}

func writeTextTag(w io.Writer, attrs []attr, body string) error {
	var b strings.Builder
	b.WriteString("<text")
	writeAttrs(&b, attrs)
	b.WriteString(">")
	b.WriteString(body)
	b.WriteString("</text>")
	_, err := fmt.Fprintln(w, b.String())
	return err
}

func writeAttrs(b *strings.Builder, attrs []attr) {
	for _, a := range attrs {
		if a.val == "" {
			continue
		}
		b.WriteString(" ")
		b.WriteString(a.name)
		b.WriteString("='")
		b.WriteString(a.val)
		b.WriteString("'")
	}
}

// pyRound matches Python 3's round(): round-half-to-even, not round-half-
// away-from-zero, which matters for the even cell sizes a puzzle grid tends
// to produce.
func pyRound(x float64) int { return int(math.RoundToEven(x)) }

// Write renders layout as a size_px×size_px SVG document to w.
func Write(w io.Writer, layout *grid.Layout, sizePx int) error {
	if _, err := fmt.Fprintf(w, "<svg width=\"%d\" height=\"%d\" xmlns=\"http://www.w3.org/2000/svg\">\n", sizePx, sizePx); err != nil {
		return err
	}
	if err := drawCrossword(w, layout, sizePx); err != nil {
		return err
	}
	_, err := fmt.Fprintln(w, "</svg>")
	return err
}

func drawCrossword(w io.Writer, layout *grid.Layout, sizePx int) error {
	g := layout.Grid()
	gridW, gridH := g.Size()
	if gridW == 0 {
		return nil
	}
	cellSize := sizePx / gridW

	for x := 0; x < gridW; x++ {
		cellX := x * cellSize
		for y := 0; y < gridH; y++ {
			cellY := y * cellSize
			fill := "white"
			if g.Get(x, y) != 0 {
				fill = "black"
			}
			attrs := []attr{
				{"x", fmt.Sprint(cellX)},
				{"y", fmt.Sprint(cellY)},
				{"width", fmt.Sprint(cellSize)},
				{"height", fmt.Sprint(cellSize)},
				{"stroke", "black"},
				{"stroke-width", "2"},
				{"fill", fill},
			}
			if err := writeEmptyTag(w, "rect", attrs); err != nil {
				return err
			}
		}
	}

	seen := make(map[int]bool)
	numberSize := pyRound(float64(cellSize/10) * 1.5)
	for _, slot := range layout.All() {
		if seen[slot.WordNum()] {
			continue
		}
		seen[slot.WordNum()] = true
		x, y := slot.Start()
		cellX, cellY := x*cellSize, y*cellSize
		attrs := []attr{
			{"x", fmt.Sprint(cellX + numberSize/2)},
			{"y", fmt.Sprint(cellY + numberSize)},
			{"text-anchor", "start"},
			{"font-size", fmt.Sprint(numberSize)},
		}
		if err := writeTextTag(w, attrs, fmt.Sprint(slot.WordNum()+1)); err != nil {
			return err
		}
	}

	letterSize := pyRound(float64(cellSize) * 0.85)
	letterYInset := pyRound(float64(cellSize) * 0.10)
	for x := 0; x < gridW; x++ {
		cellX := x * cellSize
		for y := 0; y < gridH; y++ {
			c := layout.LetterAt(x, y)
			if c == 0 {
				continue
			}
			cellY := y * cellSize
			attrs := []attr{
				{"x", fmt.Sprint(cellX + cellSize/2)},
				{"y", fmt.Sprint(cellY + cellSize - letterYInset)},
				{"text-anchor", "middle"},
				{"font-size", fmt.Sprint(letterSize)},
			}
			if err := writeTextTag(w, attrs, string(c)); err != nil {
				return err
			}
		}
	}

	return nil
}
