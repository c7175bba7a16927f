package markdown

import (
	"bytes"
	"log/slog"

	"github.com/yuin/goldmark"
	"github.com/yuin/goldmark/extension"
	"github.com/yuin/goldmark/renderer/html"
)

// renderer converts the assembled document to HTML for the live
// preview. WithUnsafe keeps the raw HTML header, badges and back-to-top
// anchor intact, matching GitHub-flavored passthrough behavior.
var renderer = goldmark.New(
	goldmark.WithExtensions(extension.GFM),
	goldmark.WithRendererOptions(html.WithUnsafe()),
)

// ToHTML renders generated Markdown as GFM HTML
func ToHTML(md string) string {
	var buf bytes.Buffer
	if err := renderer.Convert([]byte(md), &buf); err != nil {
		slog.Error("markdown to HTML conversion failed", "error", err)
		return ""
	}
	return buf.String()
}
