package mailer

import (
	"testing"
	"testing/fstest"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRenderer_Render(t *testing.T) {
	t.Parallel()

	fsys := fstest.MapFS{
		"layouts/base.html": &fstest.MapFile{
			Data: []byte(`<html><head><title>{{.Metadata.Subject}}</title></head><body>{{.Content}}</body></html>`),
		},
		"welcome.md": &fstest.MapFile{
			Data: []byte("---\nSubject: Hello\n---\nHi **{{.Name}}**!\n"),
		},
		"plain.md": &fstest.MapFile{
			Data: []byte("No frontmatter here.\n"),
		},
	}

	r := NewRenderer(fsys)

	t.Run("renders markdown into layout", func(t *testing.T) {
		t.Parallel()

		result, err := r.Render("base.html", "welcome.md", map[string]string{"Name": "Alex"})
		require.NoError(t, err)

		assert.Equal(t, "Hello", result.Metadata["Subject"])
		assert.Contains(t, result.HTML, "<strong>Alex</strong>")
		assert.Contains(t, result.HTML, "<title>Hello</title>")
		assert.Contains(t, result.Text, "Hi **Alex**!")
	})

	t.Run("template without frontmatter", func(t *testing.T) {
		t.Parallel()

		result, err := r.Render("base.html", "plain.md", nil)
		require.NoError(t, err)
		assert.Empty(t, result.Metadata)
		assert.Contains(t, result.HTML, "No frontmatter here.")
	})

	t.Run("missing template", func(t *testing.T) {
		t.Parallel()

		_, err := r.Render("base.html", "missing.md", nil)
		assert.ErrorIs(t, err, ErrTemplateNotFound)
	})

	t.Run("missing layout", func(t *testing.T) {
		t.Parallel()

		_, err := r.Render("missing.html", "welcome.md", nil)
		assert.ErrorIs(t, err, ErrLayoutNotFound)
	})
}

func TestParseFrontmatter(t *testing.T) {
	t.Parallel()

	t.Run("metadata and body", func(t *testing.T) {
		t.Parallel()

		meta, body, err := parseFrontmatter([]byte("---\nSubject: Hi\nTag: x\n---\nBody text"))
		require.NoError(t, err)
		assert.Equal(t, "Hi", meta["Subject"])
		assert.Equal(t, "x", meta["Tag"])
		assert.Equal(t, "Body text", body)
	})

	t.Run("unterminated frontmatter", func(t *testing.T) {
		t.Parallel()

		_, _, err := parseFrontmatter([]byte("---\nSubject: Hi\nBody text"))
		assert.ErrorIs(t, err, ErrInvalidFrontmatter)
	})

	t.Run("invalid yaml", func(t *testing.T) {
		t.Parallel()

		_, _, err := parseFrontmatter([]byte("---\n\t: bad\n---\nBody"))
		assert.ErrorIs(t, err, ErrInvalidFrontmatter)
	})
}
