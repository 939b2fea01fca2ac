package orders

import (
	"testing"

	"storefront/cart"
	"storefront/catalog"

	"github.com/stretchr/testify/assert"
)

var testCustomer = Customer{
	Name:           "محمد أحمد",
	Email:          "mohamed@example.com",
	Phone:          "0501234567",
	City:           "دبي",
	AddressDetails: "شارع الشيخ زايد، مبنى ٥",
}

func testItems() []cart.Item {
	return []cart.Item{
		{Product: catalog.Product{ID: 1, Name: "قميص رجالي أنيق", Price: 150}, Quantity: 1},
		{Product: catalog.Product{ID: 3, Name: "حذاء رياضي مريح", Price: 300}, Quantity: 1, SelectedSize: "M"},
	}
}

func TestNewOrderSnapshotsCart(t *testing.T) {
	items := testItems()
	order := NewOrder(testCustomer, items)

	assert.Equal(t, 450.0, order.Total)
	assert.Equal(t, StatusUnderReview, order.Status)
	assert.False(t, order.CreatedAt.IsZero())
	assert.Equal(t, 0, order.ID)

	// Mutating the submitted slice must not reach the snapshot.
	items[0].Quantity = 50
	assert.Equal(t, 1, order.Items[0].Quantity)
}

func TestNewOrderTotalMultipliesQuantity(t *testing.T) {
	items := []cart.Item{
		{Product: catalog.Product{ID: 2, Price: 200}, Quantity: 3},
		{Product: catalog.Product{ID: 5, Price: 180}, Quantity: 2},
	}
	order := NewOrder(testCustomer, items)
	assert.Equal(t, 960.0, order.Total)
}

func TestCustomerValidate(t *testing.T) {
	tests := []struct {
		name     string
		mutate   func(*Customer)
		expected bool
	}{
		{"complete", func(c *Customer) {}, true},
		{"optional fields empty", func(c *Customer) { c.AlternatePhone = ""; c.Note = "" }, true},
		{"missing name", func(c *Customer) { c.Name = "" }, false},
		{"missing email", func(c *Customer) { c.Email = "" }, false},
		{"missing phone", func(c *Customer) { c.Phone = "" }, false},
		{"missing city", func(c *Customer) { c.City = "" }, false},
		{"missing address", func(c *Customer) { c.AddressDetails = "" }, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			c := testCustomer
			tt.mutate(&c)
			assert.Equal(t, tt.expected, c.Validate())
		})
	}
}

func TestValidStatus(t *testing.T) {
	for _, s := range AllStatuses {
		assert.True(t, ValidStatus(s))
	}
	assert.False(t, ValidStatus("shipped"))
	assert.False(t, ValidStatus(""))
}
