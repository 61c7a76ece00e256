package highlight

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"
)

// GutterWidth is the width of the line number column, excluding the
// separating space.
const GutterWidth = 8

// Styles holds the lipgloss style of each token kind and of the gutter.
type Styles struct {
	Gutter lipgloss.Style
	Kinds  map[Kind]lipgloss.Style
}

func newStyle() lipgloss.Style {
	return lipgloss.NewStyle().TabWidth(lipgloss.NoTabConversion)
}

// DefaultStyles mirrors the console palette of the firmware test runner:
// magenta keywords, green strings, cyan numbers, white operators and yellow
// identifiers on a light gray gutter.
func DefaultStyles() Styles {
	return Styles{
		Gutter: newStyle().Background(lipgloss.Color("7")).Foreground(lipgloss.Color("0")),
		Kinds: map[Kind]lipgloss.Style{
			KindKeyword:      newStyle().Foreground(lipgloss.Color("13")),
			KindIdentifier:   newStyle().Foreground(lipgloss.Color("11")),
			KindNumber:       newStyle().Foreground(lipgloss.Color("14")),
			KindString:       newStyle().Foreground(lipgloss.Color("10")),
			KindOperator:     newStyle().Foreground(lipgloss.Color("15")),
			KindComment:      newStyle().Foreground(lipgloss.Color("8")).Italic(true),
			KindPreprocessor: newStyle().Foreground(lipgloss.Color("12")),
		},
	}
}

// Options selects the lines to render. Zero values mean "from the first line"
// and "to the last line".
type Options struct {
	From   int
	To     int
	Styles Styles
}

func (o Options) contains(line int) bool {
	return line >= o.From && (o.To == 0 || line <= o.To)
}

type renderer struct {
	b       strings.Builder
	opts    Options
	line    int
	pending bool
}

// Render returns src with every token styled and each line prefixed by its
// number. The whole source is tokenized so comments spanning the selected
// range are still recognized.
func Render(src string, opts Options) string {
	r := &renderer{opts: opts, line: 1, pending: true}

	for _, token := range Tokenize(src) {
		r.write(token)
	}

	if r.b.Len() > 0 && !strings.HasSuffix(r.b.String(), "\n") {
		r.b.WriteString("\n")
	}

	return r.b.String()
}

func (r *renderer) write(token Token) {
	parts := strings.Split(token.Text, "\n")

	for i, part := range parts {
		if i > 0 {
			r.newline()
		}

		if part == "" || !r.opts.contains(r.line) {
			continue
		}

		r.gutter()

		style, ok := r.opts.Styles.Kinds[token.Kind]
		if !ok {
			r.b.WriteString(part)
			continue
		}

		r.b.WriteString(style.Render(part))
	}
}

func (r *renderer) gutter() {
	if !r.pending {
		return
	}

	r.pending = false
	r.b.WriteString(r.opts.Styles.Gutter.Render(fmt.Sprintf("%-*d", GutterWidth, r.line)))
	r.b.WriteString(" ")
}

func (r *renderer) newline() {
	if r.opts.contains(r.line) {
		r.gutter()
		r.b.WriteString("\n")
	}

	r.line++
	r.pending = true
}
