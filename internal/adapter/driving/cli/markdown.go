package cli

import (
	"bytes"
	"html/template"

	"github.com/microcosm-cc/bluemonday"
	"github.com/yuin/goldmark"
	"github.com/yuin/goldmark/extension"
	"github.com/yuin/goldmark/renderer/html"

	"github.com/ericfisherdev/tasktracker/internal/domain/model"
)

// Descriptions are free text typed at a prompt, so raw HTML passes through
// goldmark and is then cut down to bluemonday's UGC allowlist.
var (
	descriptionMarkdown = goldmark.New(
		goldmark.WithExtensions(extension.GFM),
		goldmark.WithRendererOptions(html.WithUnsafe()),
	)
	descriptionPolicy = bluemonday.UGCPolicy()
)

// renderDescription returns the export HTML for a task's description. The
// default description is shown as a placeholder rather than rendered.
func renderDescription(t model.Task) template.HTML {
	if t.Description == model.DefaultDescription {
		return template.HTML(`<em class="placeholder">` + template.HTMLEscapeString(t.DisplayDescription()) + `</em>`) //nolint:gosec
	}

	// Sanitized by descriptionPolicy.
	return template.HTML(renderMarkdown(t.Description)) //nolint:gosec
}

// renderMarkdown converts markdown to sanitized HTML. Returns "" for "".
func renderMarkdown(src string) string {
	if src == "" {
		return ""
	}

	var buf bytes.Buffer
	if err := descriptionMarkdown.Convert([]byte(src), &buf); err != nil {
		return descriptionPolicy.Sanitize(src)
	}

	return descriptionPolicy.Sanitize(buf.String())
}
