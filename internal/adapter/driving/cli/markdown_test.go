package cli

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/ericfisherdev/tasktracker/internal/domain/model"
)

func TestRenderMarkdown_EmptyInput(t *testing.T) {
	assert.Equal(t, "", renderMarkdown(""))
}

func TestRenderMarkdown_Bold(t *testing.T) {
	assert.Contains(t, renderMarkdown("buy **oat** milk"), "<strong>oat</strong>")
}

func TestRenderMarkdown_Link(t *testing.T) {
	result := renderMarkdown("[recipe](https://example.com)")
	assert.Contains(t, result, `<a href="https://example.com"`)
	assert.Contains(t, result, "recipe</a>")
}

func TestRenderMarkdown_SanitizesScript(t *testing.T) {
	assert.NotContains(t, renderMarkdown(`<script>alert("xss")</script>`), "<script>")
}

func TestRenderMarkdown_GFMStrikethrough(t *testing.T) {
	assert.Contains(t, renderMarkdown("~~eggs~~"), "<del>eggs</del>")
}

func TestRenderMarkdown_GFMTaskList(t *testing.T) {
	result := renderMarkdown("- [x] flour\n- [ ] sugar")
	assert.Contains(t, result, "<li>")
	assert.Contains(t, result, "flour")
	assert.Contains(t, result, "sugar")
}

func TestRenderDescription_DefaultIsPlaceholder(t *testing.T) {
	got := string(renderDescription(model.Task{Description: model.DefaultDescription}))

	assert.Equal(t, `<em class="placeholder">No description provided</em>`, got)
}

func TestRenderDescription_RendersMarkdown(t *testing.T) {
	got := string(renderDescription(model.Task{Description: "buy **oat** milk <script>x()</script>"}))

	assert.Contains(t, got, "<strong>oat</strong>")
	assert.NotContains(t, got, "<script>")
	assert.NotContains(t, got, "placeholder")
}
