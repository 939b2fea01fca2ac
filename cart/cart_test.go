package cart

import (
	"testing"

	"storefront/catalog"

	"github.com/stretchr/testify/assert"
)

var (
	shirt = catalog.Product{ID: 1, Name: "قميص رجالي أنيق", Price: 150, Category: "قمصان"}
	shoes = catalog.Product{ID: 3, Name: "حذاء رياضي مريح", Price: 300, Category: "أحذية"}
)

func TestAddSameLineAccumulatesQuantity(t *testing.T) {
	c := New()

	for i := 0; i < 4; i++ {
		c.Add(shirt, "M")
	}
	c.Add(shirt, "L")

	items := c.Items()
	assert.Len(t, items, 2)
	assert.Equal(t, 4, items[0].Quantity)
	assert.Equal(t, "M", items[0].SelectedSize)
	assert.Equal(t, 1, items[1].Quantity)
	assert.Equal(t, 5, c.ItemCount())
}

func TestSizesAreIndependentLines(t *testing.T) {
	c := New()
	c.Add(shoes, "42")
	c.Add(shoes, "43")
	c.Add(shoes, "42")

	items := c.Items()
	assert.Len(t, items, 2)
	assert.Equal(t, 3, c.ItemCount())

	c.Remove(shoes.ID, "42")
	items = c.Items()
	assert.Len(t, items, 1)
	assert.Equal(t, "43", items[0].SelectedSize)
}

func TestUpdateQuantityZeroEqualsRemove(t *testing.T) {
	build := func() *Cart {
		c := New()
		c.Add(shirt, "M")
		c.Add(shoes, "42")
		return c
	}

	viaUpdate := build()
	viaUpdate.UpdateQuantity(shirt.ID, "M", 0)

	viaRemove := build()
	viaRemove.Remove(shirt.ID, "M")

	assert.Equal(t, viaRemove.Items(), viaUpdate.Items())
	assert.Equal(t, viaRemove.ItemCount(), viaUpdate.ItemCount())
}

func TestUpdateQuantitySetsExactValue(t *testing.T) {
	c := New()
	c.Add(shirt, "M")
	c.UpdateQuantity(shirt.ID, "M", 7)

	assert.Equal(t, 7, c.ItemCount())
	assert.Equal(t, 7*150.0, c.Total())
}

func TestUpdateQuantityUnknownLineIsNoop(t *testing.T) {
	c := New()
	c.Add(shirt, "M")
	c.UpdateQuantity(999, "M", 3)

	assert.Equal(t, 1, c.ItemCount())
}

func TestTotalAndClear(t *testing.T) {
	c := New()
	c.Add(shirt, "")
	c.Add(shoes, "M")

	assert.Equal(t, 450.0, c.Total())
	assert.Equal(t, 2, c.ItemCount())

	c.Clear()
	assert.Equal(t, 0, c.ItemCount())
	assert.Empty(t, c.Items())
	assert.Equal(t, 0.0, c.Total())
}

func TestItemsReturnsSnapshot(t *testing.T) {
	c := New()
	c.Add(shirt, "M")

	snapshot := c.Items()
	snapshot[0].Quantity = 99

	assert.Equal(t, 1, c.ItemCount())
}

func TestRegistryOwnsOneCartPerSession(t *testing.T) {
	r := NewRegistry()

	a := r.Get("session-a")
	b := r.Get("session-b")
	assert.NotSame(t, a, b)

	a.Add(shirt, "M")
	assert.Equal(t, 0, b.ItemCount())
	assert.Same(t, a, r.Get("session-a"))
}
