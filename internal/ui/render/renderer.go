package render

import (
	"fmt"
	"path/filepath"
	"strings"

	fsutil "github.com/YummyOreo/onyx/internal/fs"
	searchpkg "github.com/YummyOreo/onyx/internal/search"
	statepkg "github.com/YummyOreo/onyx/internal/state"
	textutil "github.com/YummyOreo/onyx/internal/textutil"
	"github.com/gdamore/tcell/v2"
)

const appTitle = "onyx"

// Renderer handles all UI rendering
type Renderer struct {
	screen tcell.Screen
	theme  ColorTheme
	widths widthCache
}

// NewRenderer creates a new renderer
func NewRenderer(screen tcell.Screen) *Renderer {
	return &Renderer{
		screen: screen,
		theme:  GetColorTheme(),
	}
}

// Render draws the entire UI based on state. The layout is a header row,
// the entry list and a single info line at the bottom.
func (r *Renderer) Render(state *statepkg.AppState) {
	r.screen.Clear()

	w, h := r.screen.Size()
	if w <= 0 || h <= 0 {
		r.screen.Show()
		return
	}

	r.drawHeader(state, w)
	r.drawFileList(state, w, h)
	r.drawInfoLine(state, w, h)

	r.screen.Show()
}

// drawHeader renders the top bar with the title and the current path.
func (r *Renderer) drawHeader(state *statepkg.AppState, w int) {
	headerStyle := tcell.StyleDefault.Background(r.theme.HeaderBg).Foreground(r.theme.HeaderFg)

	endX := r.drawTextLine(0, 0, w, appTitle+" ", headerStyle.Bold(true))
	if endX < w {
		path := textutil.SanitizeTerminalText(displayPath(state.CurrentPath))
		path = r.truncateTextToWidth(path, w-endX)
		endX = r.drawTextLine(endX, 0, w-endX, path, headerStyle)
	}

	for x := endX; x < w; x++ {
		r.screen.SetContent(x, 0, ' ', nil, headerStyle)
	}
}

// displayPath strips the Windows extended-length prefix for display.
func displayPath(path string) string {
	if path == "" {
		return string(filepath.Separator)
	}
	path = strings.TrimPrefix(path, `\\?\`)
	return filepath.Clean(path)
}

func (r *Renderer) drawFileList(state *statepkg.AppState, w, h int) {
	baseStyle := tcell.StyleDefault.Foreground(r.theme.Foreground)
	listStartY := 1
	bottomLimit := h - 1
	if bottomLimit <= listStartY {
		return
	}

	if len(state.Display) == 0 {
		style := baseStyle.Foreground(r.theme.HiddenFg).Italic(true)
		r.drawTextLine(1, listStartY, w-1, "No Files", style)
		return
	}

	endIndex := state.ScrollOffset + (bottomLimit - listStartY)
	if endIndex > len(state.Display) {
		endIndex = len(state.Display)
	}

	y := listStartY
	for idx := state.ScrollOffset; idx < endIndex; idx++ {
		ranked := state.Display[idx]
		rowStyle := r.rowStyle(ranked.Entry, idx == state.SelectedIndex)
		matchStyle := rowStyle.Foreground(r.theme.MatchFg).Bold(true)
		if idx == state.SelectedIndex {
			matchStyle = rowStyle.Bold(true).Underline(true)
		}

		x := r.drawTextLine(0, y, w, " "+kindIcon(ranked.Entry)+" ", rowStyle)
		x = r.drawEntryName(x, y, w, ranked, rowStyle, matchStyle)
		for ; x < w; x++ {
			r.screen.SetContent(x, y, ' ', nil, rowStyle)
		}
		y++
	}
}

func (r *Renderer) rowStyle(entry fsutil.Entry, selected bool) tcell.Style {
	if selected {
		return tcell.StyleDefault.Background(r.theme.SelectionBg).Foreground(r.theme.SelectionFg)
	}
	style := tcell.StyleDefault
	switch entry.Kind {
	case fsutil.KindSymlink:
		style = style.Foreground(r.theme.SymlinkFg)
	case fsutil.KindDirectory:
		style = style.Foreground(r.theme.DirectoryFg)
	default:
		style = style.Foreground(r.theme.FileFg)
	}
	if entry.IsHidden() {
		style = style.Foreground(r.theme.HiddenFg)
	}
	return style
}

// kindIcon: @ for symlinks, / for directories, space for files.
func kindIcon(entry fsutil.Entry) string {
	switch entry.Kind {
	case fsutil.KindSymlink:
		return "@"
	case fsutil.KindDirectory:
		return "/"
	default:
		return " "
	}
}

// drawEntryName draws the name, highlighting fuzzy-matched runs. Each rune
// is sanitized on its own so match offsets stay aligned with the raw name.
func (r *Renderer) drawEntryName(x, y, maxX int, ranked searchpkg.Ranked, style, matchStyle tcell.Style) int {
	name := ranked.Entry.Name
	available := maxX - x
	truncated := r.measureTextWidth(textutil.SanitizeTerminalText(name)) > available
	spans := ranked.Spans()
	span := 0

	for offset, ru := range name {
		for span < len(spans) && offset > spans[span].End {
			span++
		}
		safe := textutil.SanitizeTerminalText(string(ru))
		need := r.measureTextWidth(safe)
		if truncated && x+need >= maxX {
			return r.drawTextLine(x, y, maxX-x, string(ellipsis), style)
		}
		if x+need > maxX {
			return x
		}
		runeStyle := style
		if span < len(spans) && offset >= spans[span].Start {
			runeStyle = matchStyle
		}
		for _, sr := range safe {
			x = r.drawCell(x, y, maxX, sr, runeStyle)
		}
	}
	return x
}

// drawInfoLine shows the prompt while a mode owns the keyboard, otherwise the
// latest notification, otherwise the selected path (with its target for
// symlinks).
func (r *Renderer) drawInfoLine(state *statepkg.AppState, w, h int) {
	y := h - 1
	if y < 1 {
		return
	}
	style := tcell.StyleDefault.Background(r.theme.InfoBg).Foreground(r.theme.InfoFg)
	text := ""

	if prompt, ok := promptText(state.Mode); ok {
		style = style.Foreground(r.theme.PromptFg)
		text = prompt
	} else if n, ok := state.LatestNotification(); ok {
		text = n.String()
		if n.IsError() {
			style = tcell.StyleDefault.Background(r.theme.ErrorBg).Foreground(r.theme.ErrorFg)
		}
	} else {
		text = displayPath(state.CurrentFilePath())
		if cur := state.CurrentEntry(); cur != nil {
			text += linkSuffix(cur.Entry)
		}
		if state.PendingMutations > 0 {
			text = fmt.Sprintf("%s  [%d pending]", text, state.PendingMutations)
		}
	}

	text = r.truncateTextToWidth(textutil.FirstLine(text), w)
	endX := r.drawTextLine(0, y, w, text, style)
	for x := endX; x < w; x++ {
		r.screen.SetContent(x, y, ' ', nil, style)
	}
}

func promptText(m statepkg.Mode) (string, bool) {
	buf, ok := statepkg.BufferOf(m)
	if !ok {
		return "", false
	}
	title := statepkg.Title(m)
	switch m.(type) {
	case statepkg.SearchMode, statepkg.EscapedSearchMode, statepkg.CommandMode:
		return title + buf, true
	default:
		return title + ": " + buf, true
	}
}

// linkSuffix renders " -> target" for symlinks and "" for anything else.
func linkSuffix(entry fsutil.Entry) string {
	if !entry.IsSymlink() {
		return ""
	}
	target, err := entry.SymlinkTarget()
	if err != nil {
		return " -> (broken)"
	}
	return " -> " + displayPath(target)
}
