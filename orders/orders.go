package orders

import (
	"time"

	"storefront/cart"
)

type Status string

// The order lifecycle statuses, displayed verbatim by the Arabic storefront.
// Transitions are unconstrained: the back office may move an order from any
// status to any other.
const (
	StatusUnderReview Status = "قيد المراجعة"
	StatusProcessing  Status = "قيد التجهيز"
	StatusShipped     Status = "تم الشحن"
	StatusDelivered   Status = "تم التوصيل"
	StatusCancelled   Status = "ملغي"
)

var AllStatuses = []Status{
	StatusUnderReview,
	StatusProcessing,
	StatusShipped,
	StatusDelivered,
	StatusCancelled,
}

func ValidStatus(s Status) bool {
	for _, known := range AllStatuses {
		if s == known {
			return true
		}
	}
	return false
}

type Customer struct {
	Name           string `json:"name"`
	Email          string `json:"email"`
	Phone          string `json:"phone"`
	AlternatePhone string `json:"alternatePhone,omitempty"`
	City           string `json:"city"`
	AddressDetails string `json:"addressDetails"`
	Note           string `json:"note,omitempty"`
}

// Validate checks that every required field is filled in. AlternatePhone and
// Note are optional.
func (c Customer) Validate() bool {
	return c.Name != "" && c.Email != "" && c.Phone != "" && c.City != "" && c.AddressDetails != ""
}

type Order struct {
	ID        int         `json:"id,omitempty"`
	Customer  Customer    `json:"customer"`
	Items     []cart.Item `json:"items"`
	Total     float64     `json:"total"`
	Status    Status      `json:"status"`
	CreatedAt time.Time   `json:"created_at"`
}

// NewOrder snapshots the submitted cart into an order: total computed from
// the lines, status stamped "under review", creation time stamped now. The
// id is left for the persistence layer to assign.
func NewOrder(customer Customer, items []cart.Item) Order {
	var total float64
	for _, item := range items {
		total += item.Product.Price * float64(item.Quantity)
	}

	snapshot := make([]cart.Item, len(items))
	copy(snapshot, items)

	return Order{
		Customer:  customer,
		Items:     snapshot,
		Total:     total,
		Status:    StatusUnderReview,
		CreatedAt: time.Now().UTC(),
	}
}

// Store is the order data-access surface, with a local and a remote
// implementation selected at startup alongside the product store.
type Store interface {
	Submit(customer Customer, items []cart.Item) (Order, error)
	// List returns all orders, newest first.
	List() ([]Order, error)
	UpdateStatus(id int, status Status) (Order, error)
	Delete(id int) error
	DeleteByStatus(status Status) error
}
