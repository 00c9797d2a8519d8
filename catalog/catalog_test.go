package catalog

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/rajeev06code/thekua/models"
)

func loadTestCatalog(t *testing.T) *Catalog {
	t.Helper()
	c, err := Load()
	require.NoError(t, err)
	require.NotEmpty(t, c.All())
	return c
}

func TestLoadEmbeddedData(t *testing.T) {
	c := loadTestCatalog(t)

	for _, p := range c.All() {
		assert.NotEmpty(t, p.ID)
		assert.NotEmpty(t, p.Name)
		assert.Greater(t, p.Price, 0.0)
		assert.NotEmpty(t, p.PackSizes)
	}
	assert.NotEmpty(t, c.Testimonials())
}

func TestByID(t *testing.T) {
	c := loadTestCatalog(t)

	p, ok := c.ByID("classic-thekua")
	require.True(t, ok)
	assert.Equal(t, "Classic Thekua", p.Name)

	_, ok = c.ByID("no-such-product")
	assert.False(t, ok)
}

func TestFindBySearch(t *testing.T) {
	c := loadTestCatalog(t)

	matched := c.Find(Filter{Search: "COCONUT"})
	require.Len(t, matched, 1)
	assert.Equal(t, "coconut-thekua", matched[0].ID)

	assert.Empty(t, c.Find(Filter{Search: "pizza"}))
}

func TestFindByCategory(t *testing.T) {
	c := loadTestCatalog(t)

	for _, p := range c.Find(Filter{Category: models.CategoryHealthy}) {
		assert.Equal(t, models.CategoryHealthy, p.Category)
	}
	assert.NotEmpty(t, c.Find(Filter{Category: models.CategoryHealthy}))
}

func TestFindByTagAndPackSize(t *testing.T) {
	c := loadTestCatalog(t)

	for _, p := range c.Find(Filter{Tag: "bestseller"}) {
		assert.Contains(t, p.Tags, "bestseller")
	}

	for _, p := range c.Find(Filter{PackSize: "1kg"}) {
		assert.Contains(t, p.PackSizes, "1kg")
	}
}

func TestFindByPriceBand(t *testing.T) {
	c := loadTestCatalog(t)

	min, max := 300.0, 500.0
	matched := c.Find(Filter{MinPrice: &min, MaxPrice: &max})
	require.NotEmpty(t, matched)
	for _, p := range matched {
		assert.GreaterOrEqual(t, p.Price, min)
		assert.LessOrEqual(t, p.Price, max)
	}
}

func TestFindPreservesCatalogOrder(t *testing.T) {
	c := loadTestCatalog(t)

	all := c.All()
	matched := c.Find(Filter{})
	assert.Equal(t, all, matched)
}
