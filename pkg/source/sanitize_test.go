package source

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestHTMLToText(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  string
	}{
		{
			name:  "plain text unchanged",
			input: "just plain text",
			want:  "just plain text",
		},
		{
			name:  "tags stripped",
			input: "<p>Hello <b>world</b></p>",
			want:  "Hello world",
		},
		{
			name:  "adjacent blocks keep word boundary",
			input: "<p>first</p><p>second</p>",
			want:  "first second",
		},
		{
			name:  "list items flattened",
			input: "<ul><li>one</li><li>two</li></ul>",
			want:  "one two",
		},
		{
			name:  "script content dropped",
			input: "<p>keep this</p><script>var x = 1;</script>",
			want:  "keep this",
		},
		{
			name:  "style content dropped",
			input: "<style>p { color: red }</style><p>visible</p>",
			want:  "visible",
		},
		{
			name:  "entities decoded",
			input: "Research &amp; Development &quot;2026&quot;",
			want:  `Research & Development "2026"`,
		},
		{
			name:  "whitespace collapsed",
			input: "  line one\n\n\tline two  ",
			want:  "line one line two",
		},
		{
			name:  "double-encoded markup not resurrected",
			input: "x &lt;script&gt;alert(1)&lt;/script&gt; y",
			want:  "x y",
		},
		{
			name:  "empty input",
			input: "",
			want:  "",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, htmlToText(tt.input))
		})
	}
}
