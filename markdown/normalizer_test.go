package markdown_test

import (
	"testing"

	"github.com/fwojciec/msdocs/markdown"
	"github.com/stretchr/testify/assert"
)

func TestNormalize(t *testing.T) {
	t.Parallel()

	t.Run("strips anchor and div tags keeping inner text", func(t *testing.T) {
		t.Parallel()

		got := markdown.Normalize(`<div class="alert"><a href="/docs" id="x">important</a></div>`)

		assert.Equal(t, "important", got)
	})

	t.Run("collapses runs of spaces", func(t *testing.T) {
		t.Parallel()

		got := markdown.Normalize("a    b  c")

		assert.Equal(t, "a b c", got)
	})

	t.Run("caps blank line runs at one blank line", func(t *testing.T) {
		t.Parallel()

		got := markdown.Normalize("one\n\n\n\ntwo")

		assert.Equal(t, "one\n\ntwo", got)
	})

	t.Run("removes blank lines adjacent to tags", func(t *testing.T) {
		t.Parallel()

		got := markdown.Normalize("<td>x</td>\n\n<td>y</td>")

		assert.Equal(t, "<td>x</td><td>y</td>", got)
	})

	t.Run("rewrites dash headings with capitalization", func(t *testing.T) {
		t.Parallel()

		got := markdown.Normalize("## -description\n\nBody.")

		assert.Equal(t, "## Description\n\nBody.", got)
	})

	t.Run("drops the function suffix from headings", func(t *testing.T) {
		t.Parallel()

		got := markdown.Normalize("# CreateFile function\n\nBody.")

		assert.Equal(t, "# CreateFile\n\nBody.", got)
	})

	t.Run("removes a see-also section up to the next heading", func(t *testing.T) {
		t.Parallel()

		got := markdown.Normalize("## See-also\n\n**ReadFile**\n\n## Remarks\n\nStill here.")

		assert.NotContains(t, got, "See-also")
		assert.NotContains(t, got, "ReadFile")
		assert.Contains(t, got, "## Remarks")
		assert.Contains(t, got, "Still here.")
	})

	t.Run("rewrites links to bold text", func(t *testing.T) {
		t.Parallel()

		got := markdown.Normalize("[text](http://x)")

		assert.Equal(t, "**text**", got)
	})

	t.Run("collapses blank lines inside tables only", func(t *testing.T) {
		t.Parallel()

		got := markdown.Normalize("<table>\n\n<tr>a</tr>\n\n</table>\n\npara one\n\npara two")

		// Table internals are tightened while the surrounding paragraphs
		// keep their single blank line.
		assert.Contains(t, got, `<table border="1" cellspacing="0" cellpadding="3"><tr>a</tr></table>`)
		assert.Contains(t, got, "para one\n\npara two")
	})

	t.Run("drops fixed column widths and forces bordered tables", func(t *testing.T) {
		t.Parallel()

		got := markdown.Normalize(`<table><td width="40%">a</td><td width="60%">b</td></table>`)

		assert.Equal(t, `<table border="1" cellspacing="0" cellpadding="3"><td>a</td><td>b</td></table>`, got)
	})

	t.Run("converts h3 tags to markdown headings", func(t *testing.T) {
		t.Parallel()

		got := markdown.Normalize("before<h3>Parameters</h3>after")

		assert.Equal(t, "before\n\n### Parameters\n\nafter", got)
	})

	t.Run("is idempotent on representative input", func(t *testing.T) {
		t.Parallel()

		raw := `## -description

Opens a <a href="/file">file</a>.

<table>

<tr><td width="40%">Value</td><td width="60%">Meaning</td></tr>

</table>

<h3>Remarks</h3>

See [docs](http://example.com).

## See-also

**ReadFile**

## Requirements

Header: fileapi.h
`
		once := markdown.Normalize(raw)
		twice := markdown.Normalize(once)

		assert.Equal(t, once, twice)
	})
}
