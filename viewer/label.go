package viewer

import (
	"image"

	termui "github.com/gizak/termui/v3"
	"github.com/mattn/go-runewidth"
)

// A single line of plain text. Unlike widgets.Paragraph the text isn't
// parsed for style markup, so "Time [ms]" prints as is.
type label struct {
	termui.Block
	Text     string
	Style    termui.Style
	Vertical bool
}

func newLabel(text string, style termui.Style, x, y int) *label {
	l := &label{Block: *termui.NewBlock(), Text: text, Style: style}
	l.Border = false
	w := runewidth.StringWidth(text)
	if w == 0 {
		w = 1
	}
	l.SetRect(x, y, x+w, y+1)
	return l
}

func newVerticalLabel(text string, style termui.Style, x, y int) *label {
	l := &label{Block: *termui.NewBlock(), Text: text, Style: style, Vertical: true}
	l.Border = false
	l.SetRect(x, y, x+1, y+len([]rune(text)))
	return l
}

func (l *label) Draw(buf *termui.Buffer) {
	if !l.Vertical {
		buf.SetString(l.Text, l.Style, l.Min)
		return
	}
	for i, r := range []rune(l.Text) {
		buf.SetCell(termui.NewCell(r, l.Style), image.Pt(l.Min.X, l.Min.Y+i))
	}
}
