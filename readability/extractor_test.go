package readability_test

import (
	"testing"

	"github.com/fwojciec/seosheet"
	"github.com/fwojciec/seosheet/readability"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestExtractor_RejectsEmptyInput(t *testing.T) {
	t.Parallel()

	ext := readability.NewExtractor()
	_, err := ext.Extract("")

	require.Error(t, err)
	assert.Equal(t, seosheet.EINVALID, seosheet.ErrorCode(err))
}

func TestExtractor_ExtractsArticleText(t *testing.T) {
	t.Parallel()

	html := `<!DOCTYPE html>
<html>
<head><title>Test</title></head>
<body>
<nav><a href="/home">Home Nav Link</a><a href="/about">About Nav Link</a></nav>
<article>
<h1>Trail Running Shoes</h1>
<p>This is the main article content that should be preserved in the output. It describes
the grip, the cushioning and the durability of our trail running shoes in some detail so
that the readability scorer treats it as the primary content of the page.</p>
<p>A second paragraph adds more words about sizing, materials and care instructions to make
the article long enough to be selected as the main content block.</p>
</article>
<footer>Footer text</footer>
</body>
</html>`

	ext := readability.NewExtractor()
	text, err := ext.Extract(html)

	require.NoError(t, err)
	assert.Contains(t, text, "main article content")
	assert.NotContains(t, text, "Home Nav Link")
}
