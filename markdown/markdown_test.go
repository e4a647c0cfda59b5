package markdown

import (
	"bytes"
	"strings"
	"testing"
)

func TestFormatInlineBold(t *testing.T) {
	tests := []struct {
		input    string
		expected string
	}{
		{"**negrita**", "<strong>negrita</strong>"},
		{"__negrita__", "<strong>negrita</strong>"},
		{"texto **negrita** más", "texto <strong>negrita</strong> más"},
	}
	for _, tt := range tests {
		got := FormatInline(tt.input)
		if got != tt.expected {
			t.Errorf("FormatInline(%q) = %q, want %q", tt.input, got, tt.expected)
		}
	}
}

func TestFormatInlineItalic(t *testing.T) {
	tests := []struct {
		input    string
		expected string
	}{
		{"*cursiva*", "<em>cursiva</em>"},
		{"_cursiva_", "<em>cursiva</em>"},
	}
	for _, tt := range tests {
		got := FormatInline(tt.input)
		if got != tt.expected {
			t.Errorf("FormatInline(%q) = %q, want %q", tt.input, got, tt.expected)
		}
	}
}

func TestFormatInlineNested(t *testing.T) {
	got := FormatInline("**negrita *cursiva* texto**")
	want := "<strong>negrita <em>cursiva</em> texto</strong>"
	if got != want {
		t.Errorf("FormatInline nested = %q, want %q", got, want)
	}
}

func TestFormatInlineLink(t *testing.T) {
	got := FormatInline("ver [el blog](/blog/)")
	if !strings.Contains(got, `<a href="/blog/">el blog</a>`) {
		t.Errorf("link not rendered: %q", got)
	}
}

func TestFormatInlineExternalLinkOpensNewTab(t *testing.T) {
	got := FormatInline("[Google](https://google.com)")
	if !strings.Contains(got, `target="_blank"`) || !strings.Contains(got, `rel="noopener"`) {
		t.Errorf("external link should open in new tab: %q", got)
	}
}

func TestFormatInlineRejectsUnsafeScheme(t *testing.T) {
	got := FormatInline("[x](javascript:alert(1))")
	if strings.Contains(got, "javascript:") {
		t.Errorf("unsafe scheme should be stripped: %q", got)
	}
}

func TestFormatInlineEscapesHTML(t *testing.T) {
	got := FormatInline("<script>alert(1)</script>")
	if strings.Contains(got, "<script>") {
		t.Errorf("raw HTML should be escaped: %q", got)
	}
}

func TestRenderHeadingsAndParagraphs(t *testing.T) {
	var buf bytes.Buffer
	Render(&buf, "## Título\n\nUn párrafo.\nSegunda línea.\n\nOtro párrafo.")
	got := buf.String()
	for _, want := range []string{"<h2>Título</h2>", "<p>Un párrafo. Segunda línea.</p>", "<p>Otro párrafo.</p>"} {
		if !strings.Contains(got, want) {
			t.Errorf("Render missing %q in %q", want, got)
		}
	}
}

func TestRenderLists(t *testing.T) {
	var buf bytes.Buffer
	Render(&buf, "- uno\n- dos\n\n1. primero\n2. segundo")
	got := buf.String()
	for _, want := range []string{"<ul>", "<li>uno</li>", "</ul>", "<ol>", "<li>primero</li>", "</ol>"} {
		if !strings.Contains(got, want) {
			t.Errorf("Render missing %q in %q", want, got)
		}
	}
}

func TestRenderCodeBlockWithLanguage(t *testing.T) {
	var buf bytes.Buffer
	Render(&buf, "```go\nfmt.Println(\"hola\")\n```")
	got := buf.String()
	if !strings.Contains(got, `class="language-go"`) {
		t.Errorf("code block should have language class: %q", got)
	}
	if !strings.Contains(got, "fmt.Println(&#34;hola&#34;)") {
		t.Errorf("code content should be escaped: %q", got)
	}
}

func TestRenderBlockquote(t *testing.T) {
	var buf bytes.Buffer
	Render(&buf, "> una cita\n\ndespués")
	got := buf.String()
	if !strings.Contains(got, "<blockquote>una cita</blockquote>") {
		t.Errorf("blockquote not rendered: %q", got)
	}
}

func TestRenderUnclosedCodeBlockIsFlushed(t *testing.T) {
	var buf bytes.Buffer
	Render(&buf, "```\nsin cerrar")
	got := buf.String()
	if !strings.Contains(got, "</code></pre>") {
		t.Errorf("unclosed code block should still be closed: %q", got)
	}
}
