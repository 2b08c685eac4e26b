package render

import (
	"strings"

	"github.com/gdamore/tcell/v2"
	"github.com/mattn/go-runewidth"
)

const ellipsis = '…'

// widthCache memoizes runewidth lookups. Rendering happens on the UI loop
// only, so there is no locking.
type widthCache struct {
	ascii [128]int8 // width+1, 0 while unknown
	other map[rune]int
}

func (c *widthCache) width(ru rune) int {
	if ru >= 0 && ru < 128 {
		if w := c.ascii[ru]; w != 0 {
			return int(w) - 1
		}
		w := runewidth.RuneWidth(ru)
		c.ascii[ru] = int8(w + 1)
		return w
	}
	if w, ok := c.other[ru]; ok {
		return w
	}
	if c.other == nil {
		c.other = make(map[rune]int)
	}
	w := runewidth.RuneWidth(ru)
	c.other[ru] = w
	return w
}

func (r *Renderer) measureTextWidth(text string) int {
	total := 0
	for _, ru := range text {
		total += r.widths.width(ru)
	}
	return total
}

// truncateTextToWidth cuts text to maxWidth columns, ending in an ellipsis
// when anything was dropped.
func (r *Renderer) truncateTextToWidth(text string, maxWidth int) string {
	if maxWidth <= 0 {
		return ""
	}
	if r.measureTextWidth(text) <= maxWidth {
		return text
	}

	room := maxWidth - r.widths.width(ellipsis)
	if room <= 0 {
		return string(ellipsis)
	}
	var b strings.Builder
	used := 0
	for _, ru := range text {
		w := r.widths.width(ru)
		if used+w > room {
			break
		}
		b.WriteRune(ru)
		used += w
	}
	b.WriteRune(ellipsis)
	return b.String()
}

// drawTextLine draws text from startX within maxWidth columns and returns
// the column after the last cell drawn. Zero-width runes ride along as
// combining marks of the rune before them.
func (r *Renderer) drawTextLine(startX, y, maxWidth int, text string, style tcell.Style) int {
	x := startX
	limit := startX + maxWidth
	runes := []rune(text)

	for i := 0; i < len(runes) && x < limit; {
		mainc := runes[i]
		i++
		end := i
		for end < len(runes) && r.widths.width(runes[end]) == 0 {
			end++
		}
		var combc []rune
		if end > i {
			combc = runes[i:end]
		}
		i = end

		r.screen.SetContent(x, y, mainc, combc, style)
		if w := r.widths.width(mainc); w > 0 {
			x += w
		} else {
			x++
		}
	}
	return x
}

// drawCell draws a single rune and returns the next free column. The second
// column of a wide rune is blanked so stale content never shows through.
func (r *Renderer) drawCell(x, y, maxX int, ru rune, style tcell.Style) int {
	if x >= maxX {
		return x
	}
	w := r.widths.width(ru)
	if w < 1 {
		w = 1
	}
	r.screen.SetContent(x, y, ru, nil, style)
	for pad := x + 1; pad < x+w && pad < maxX; pad++ {
		r.screen.SetContent(pad, y, ' ', nil, style)
	}
	return x + w
}
