package catalog

import (
	"testing"

	"storefront/error_messages"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMemoryStoreSeedsDemoCatalog(t *testing.T) {
	s := NewMemoryStore()

	products, err := s.List()
	require.NoError(t, err)
	assert.Len(t, products, 6)
	assert.Equal(t, 1, products[0].ID)
	assert.Equal(t, "قميص رجالي أنيق", products[0].Name)
}

func TestMemoryStoreCreateAssignsIncreasingIDs(t *testing.T) {
	s := NewMemoryStore()

	first, err := s.Create(Product{Name: "جديد ١", Price: 100})
	require.NoError(t, err)
	second, err := s.Create(Product{Name: "جديد ٢", Price: 120})
	require.NoError(t, err)

	assert.Equal(t, 7, first.ID)
	assert.Equal(t, 8, second.ID)
	assert.Greater(t, second.ID, first.ID)
}

func TestMemoryStoreCreateReusesGapAfterDeleteOfMax(t *testing.T) {
	s := NewMemoryStore()

	require.NoError(t, s.Delete(6))
	created, err := s.Create(Product{Name: "جديد", Price: 100})
	require.NoError(t, err)

	// max(existing ids)+1: after removing id 6 the next id is 6 again.
	assert.Equal(t, 6, created.ID)
}

func TestMemoryStoreUpdate(t *testing.T) {
	s := NewMemoryStore()

	updated, err := s.Update(Product{ID: 2, Name: "بنطلون معدل", Price: 210})
	require.NoError(t, err)
	assert.Equal(t, "بنطلون معدل", updated.Name)

	products, err := s.List()
	require.NoError(t, err)
	assert.Equal(t, "بنطلون معدل", products[1].Name)

	_, err = s.Update(Product{ID: 404, Name: "مفقود", Price: 1})
	assert.ErrorIs(t, err, error_messages.ErrNotExists)
}

func TestMemoryStoreDeleteRemovesExactlyOne(t *testing.T) {
	s := NewMemoryStore()

	require.NoError(t, s.Delete(3))

	products, err := s.List()
	require.NoError(t, err)
	assert.Len(t, products, 5)
	for _, p := range products {
		assert.NotEqual(t, 3, p.ID)
	}

	assert.ErrorIs(t, s.Delete(3), error_messages.ErrNotExists)
}

func TestMemoryStoreReseedRestoresDemoCatalog(t *testing.T) {
	s := NewMemoryStore()
	require.NoError(t, s.Delete(1))
	_, err := s.Create(Product{Name: "إضافي", Price: 50})
	require.NoError(t, err)

	products, err := s.Reseed()
	require.NoError(t, err)
	assert.Len(t, products, 6)
	assert.Equal(t, 1, products[0].ID)
}

func TestSeedProductsReturnsIndependentCopies(t *testing.T) {
	a := SeedProducts()
	a[0].Name = "changed"
	a[0].AvailableSizes[0] = "changed"

	b := SeedProducts()
	assert.Equal(t, "قميص رجالي أنيق", b[0].Name)
	assert.Equal(t, "S", b[0].AvailableSizes[0])
}
