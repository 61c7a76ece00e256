package highlight

import (
	"testing"

	"github.com/charmbracelet/lipgloss"
	"github.com/stretchr/testify/assert"
)

func plainStyles() Styles {
	return Styles{Gutter: lipgloss.NewStyle()}
}

func TestRender(t *testing.T) {
	tests := []struct {
		name string
		src  string
		opts Options
		want string
	}{
		{
			name: "empty source",
			src:  "",
			want: "",
		},
		{
			name: "gutter on every line",
			src:  "int a;\n\nint b;\n",
			want: "1        int a;\n" +
				"2        \n" +
				"3        int b;\n",
		},
		{
			name: "missing trailing newline is added",
			src:  "x",
			want: "1        x\n",
		},
		{
			name: "range selection",
			src:  "a\nb\nc\nd\n",
			opts: Options{From: 2, To: 3},
			want: "2        b\n3        c\n",
		},
		{
			name: "block comment spanning lines",
			src:  "/* a\nb */ c\n",
			opts: Options{From: 2},
			want: "2        b */ c\n",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			opts := tt.opts
			opts.Styles = plainStyles()

			assert.Equal(t, tt.want, Render(tt.src, opts))
		})
	}
}

func TestDefaultStyles(t *testing.T) {
	styles := DefaultStyles()

	for _, kind := range []Kind{KindKeyword, KindIdentifier, KindNumber, KindString, KindOperator, KindComment, KindPreprocessor} {
		_, ok := styles.Kinds[kind]
		assert.True(t, ok, "missing style for kind %d", kind)
	}

	_, ok := styles.Kinds[KindPlain]
	assert.False(t, ok, "plain text is never styled")
}
