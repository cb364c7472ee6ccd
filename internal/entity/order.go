package domain

import (
	"errors"
	"time"
)

type Status string

const (
	StatusPending    Status = "PENDING"    // placed, not yet handed to payment
	StatusProcessing Status = "PROCESSING" // payment in flight
	StatusPaid       Status = "PAID"
	StatusCancelled  Status = "CANCELLED"
	StatusFailed     Status = "FAILED"
)

// Display labels shown to buyers. The storefront renders Korean.
var statusLabels = map[Status]string{
	StatusPending:    "결제대기",
	StatusProcessing: "결제진행중",
	StatusPaid:       "결제완료",
	StatusCancelled:  "주문취소",
	StatusFailed:     "결제실패",
}

func (s Status) Label() string {
	if l, ok := statusLabels[s]; ok {
		return l
	}
	return string(s)
}

// Cancellable reports whether a buyer may still cancel the order.
// Paid orders go through a separate refund path that this service
// does not own.
func (s Status) Cancellable() bool {
	return s == StatusPending || s == StatusProcessing
}

const MaxSpecialRequestLen = 50

var (
	ErrInvalidAmount     = errors.New("invalid amount")
	ErrSpecialRequestLen = errors.New("special request too long")
)

// Order is one purchase transaction. Code is the business key
// (unique, immutable once assigned); ID is the surrogate key owned
// by the store.
type Order struct {
	ID             int64
	Code           string
	BuyerID        int64
	Status         Status
	OrderDate      time.Time
	TotalPrice     int64 // KRW, whole won
	SpecialRequest string
	PaymentMethod  string
}

func (o *Order) Validate() error {
	if o.TotalPrice < 0 {
		return ErrInvalidAmount
	}
	if len([]rune(o.SpecialRequest)) > MaxSpecialRequestLen {
		return ErrSpecialRequestLen
	}
	return nil
}

// OrderItem is a line entry snapshot. Name and price are copied from
// the product at order time so later catalog edits don't rewrite
// history.
type OrderItem struct {
	ID          int64
	OrderID     int64
	ProductID   int64
	ProductName string
	UnitPrice   int64
	Quantity    int64
}

func (i OrderItem) ExtendedPrice() int64 { return i.UnitPrice * i.Quantity }

// SumItems returns the total of the extended prices. An order's
// TotalPrice must equal this at creation.
func SumItems(items []OrderItem) int64 {
	var total int64
	for _, it := range items {
		total += it.ExtendedPrice()
	}
	return total
}
