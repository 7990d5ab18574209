package orders

import (
	"time"

	"github.com/shopspring/decimal"
)

type Order struct {
	ID         int
	Login      string
	Paid       bool
	ReceivedAt time.Time
	Total      decimal.Decimal
}

type LineItem struct {
	OrderID     int
	ItemName    string
	LastUpdated time.Time
	Status      string
	Comment     string
}

// DefaultStatus is the status every line item starts with.
const DefaultStatus = "Hasn't started"

// MaxCommentLen caps a line item comment.
const MaxCommentLen = 130
