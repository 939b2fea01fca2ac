package error_messages

import "errors"

var (
	ErrDuplicate    = errors.New("record already exists")
	ErrNotExists    = errors.New("row not exists")
	ErrUpdateFailed = errors.New("update failed")
	ErrDeleteFailed = errors.New("delete failed")

	ErrInvalidProduct  = errors.New("invalid product")
	ErrInvalidCustomer = errors.New("invalid customer details")
	ErrInvalidStatus   = errors.New("invalid order status")
	ErrInvalidSettings = errors.New("invalid store settings")
	ErrEmptyCart       = errors.New("cart is empty")
)
