package markdown

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRenderer_Render(t *testing.T) {
	r := NewRenderer()

	t.Run("renders basic markdown", func(t *testing.T) {
		html, err := r.Render("**bold** and _italic_")
		require.NoError(t, err)
		assert.Contains(t, html, "<strong>bold</strong>")
		assert.Contains(t, html, "<em>italic</em>")
	})

	t.Run("strips script tags", func(t *testing.T) {
		html, err := r.Render("hello <script>alert(1)</script> world")
		require.NoError(t, err)
		assert.NotContains(t, html, "<script>")
		assert.Contains(t, html, "hello")
	})

	t.Run("renders gfm tables", func(t *testing.T) {
		html, err := r.Render("| a | b |\n|---|---|\n| 1 | 2 |")
		require.NoError(t, err)
		assert.Contains(t, html, "<table>")
	})
}
