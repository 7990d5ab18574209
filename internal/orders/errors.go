package orders

import "errors"

var (
	ErrNotFound       = errors.New("order not found")
	ErrDuplicateItem  = errors.New("item is already on the order")
	ErrItemNotOnOrder = errors.New("item is not on the order")
	ErrEmptyOrder     = errors.New("order has no items")
)
