// Package Render prints the level arrays of the trees in package Trees to a
// console. It knows nothing about trees beyond the layout of the rows: row i
// has 2^i slots and the children of slot j of row i are slots 2j and 2j+1 of
// row i+1; a nil slot means there's no node.
package Render

import (
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/fatih/color"
	"github.com/xlab/treeprint"
	"golang.org/x/exp/constraints"
	"golang.org/x/term"
)

// DefaultWidth is used when the width of the terminal is unknown.
const DefaultWidth = 80

type Options struct {
	Width   int // columns available to the widest row; <=0 means DefaultWidth.
	NoColor bool
}

// TermWidth returns the width of the terminal f is attached to, or DefaultWidth.
func TermWidth(f *os.File) int {
	if w, _, e := term.GetSize(int(f.Fd())); e == nil && w > 0 {
		return w
	}
	return DefaultWidth
}

func (o Options) paint(attrs ...color.Attribute) *color.Color {
	c := color.New(attrs...)
	if o.NoColor {
		c.DisableColor()
	}
	return c
}

// Levels prints rows one per line with proportional indentation: row i is cut
// into 2^i cells of equal width and every key is centered in its cell. Cells
// never get narrower than the widest key plus one column, so deep rows may
// be wider than o.Width.
func Levels[T constraints.Integer](w io.Writer, rows [][]*T, o Options) error {
	title, key := o.paint(color.Bold), o.paint(color.FgCyan)
	if _, e := fmt.Fprintln(w, title.Sprint("Tree:")); e != nil {
		return e
	}
	if len(rows) == 0 {
		_, e := fmt.Fprintln(w, "[empty]")
		return e
	}
	width, kw := o.Width, 0
	if width <= 0 {
		width = DefaultWidth
	}
	for _, row := range rows {
		for _, c := range row {
			if c != nil {
				kw = max(kw, len(fmt.Sprint(*c)))
			}
		}
	}
	var sb strings.Builder
	for _, row := range rows {
		sb.Reset()
		cell, pad := max(width/len(row), kw+1), 0 // pad is the blank run not yet written.
		for _, c := range row {
			if c == nil {
				pad += cell
				continue
			}
			s := fmt.Sprint(*c)
			left := (cell - len(s)) / 2
			sb.WriteString(strings.Repeat(" ", pad+left))
			sb.WriteString(key.Sprint(s))
			pad = cell - len(s) - left
		}
		if _, e := fmt.Fprintln(w, sb.String()); e != nil {
			return e
		}
	}
	return nil
}

// Hierarchy draws the rows as an indented tree, children marked L or R.
func Hierarchy[T constraints.Integer](rows [][]*T) string {
	if len(rows) == 0 || rows[0][0] == nil {
		return "[empty]\n"
	}
	tr := treeprint.NewWithRoot(*rows[0][0])
	var add func(br treeprint.Tree, i, j int)
	add = func(br treeprint.Tree, i, j int) {
		if i+1 >= len(rows) {
			return
		}
		for k, side := range [2]string{"L", "R"} {
			if c := rows[i+1][j<<1|k]; c != nil {
				add(br.AddMetaBranch(side, *c), i+1, j<<1|k)
			}
		}
	}
	add(tr, 0, 0)
	return tr.String()
}

// Path prints "label (length n): k0 k1 ...", n being the number of edges.
func Path[T constraints.Integer](w io.Writer, label string, keys []T, o Options) error {
	ks := make([]string, len(keys))
	for i, k := range keys {
		ks[i] = fmt.Sprint(k)
	}
	_, e := fmt.Fprintf(w, "%s (length %d): %s\n", o.paint(color.Bold).Sprint(label), max(len(keys)-1, 0), o.paint(color.FgCyan).Sprint(strings.Join(ks, " ")))
	return e
}
