package seosheet_test

import (
	"testing"

	"github.com/fwojciec/seosheet"
	"github.com/stretchr/testify/assert"
)

func TestReadRow(t *testing.T) {
	t.Parallel()

	t.Run("reads and trims input columns", func(t *testing.T) {
		t.Parallel()

		row := seosheet.ReadRow(1, []string{" https://example.com ", " provided ", " kw1, kw2 ", "old title"})

		assert.Equal(t, 1, row.Index)
		assert.Equal(t, 2, row.Number)
		assert.Equal(t, "https://example.com", row.URL)
		assert.Equal(t, "provided", row.ProvidedContent)
		assert.Equal(t, "kw1, kw2", row.Keywords)
	})

	t.Run("short rows read as empty", func(t *testing.T) {
		t.Parallel()

		row := seosheet.ReadRow(3, []string{"https://example.com"})

		assert.Equal(t, 4, row.Number)
		assert.Equal(t, "https://example.com", row.URL)
		assert.Empty(t, row.ProvidedContent)
		assert.Empty(t, row.Keywords)
	})

	t.Run("nil cells give an empty row", func(t *testing.T) {
		t.Parallel()

		row := seosheet.ReadRow(2, nil)

		assert.Empty(t, row.URL)
	})
}
