package catalog_driver

import (
	"slices"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"unrot/domain"
)

func TestLoadCatalog(t *testing.T) {
	catalog, err := LoadCatalog()
	require.NoError(t, err)

	require.NotEmpty(t, catalog.Books)
	require.NotEmpty(t, catalog.MathTopics)

	ids := map[string]bool{}
	for _, b := range catalog.Books {
		assert.NotEmpty(t, b.ID)
		assert.NotEmpty(t, b.Title)
		assert.False(t, ids[b.ID], "duplicate book id %s", b.ID)
		ids[b.ID] = true
		assert.True(t, slices.Contains(domain.BookCategories, b.Category), "unknown category %s", b.Category)
	}

	for _, topic := range catalog.MathTopics {
		assert.NotEmpty(t, topic.ID)
		assert.NotEmpty(t, topic.Category)
		assert.NotEmpty(t, topic.Explanation)
	}
}
