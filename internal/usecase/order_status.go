package usecase

import (
	"context"
	"fmt"

	domain "github.com/ji-nious/mosi-project-sub001/internal/entity"
)

// OrderStatus applies externally-driven transitions: the queue
// consumer moves freshly placed orders into processing, and payment
// events settle them.
type OrderStatus struct {
	orders OrderRepo
	cache  OrderCache
}

func NewOrderStatus(orders OrderRepo, cache OrderCache) *OrderStatus {
	return &OrderStatus{orders: orders, cache: cache}
}

// MarkProcessing transitions PENDING -> PROCESSING. Redelivered
// messages find the order already moved on and are dropped silently.
func (uc *OrderStatus) MarkProcessing(ctx context.Context, orderID int64) error {
	ok, err := uc.orders.UpdateStatusIf(ctx, orderID, domain.StatusPending, domain.StatusProcessing)
	if err != nil {
		return fmt.Errorf("mark processing: %w", err)
	}
	if !ok {
		return nil
	}
	uc.refreshCache(ctx, orderID, domain.StatusProcessing)
	return nil
}

// ApplyPaymentStatus settles a PROCESSING order from a payment event.
// Unknown statuses are rejected; stale events on already-settled
// orders are ignored.
func (uc *OrderStatus) ApplyPaymentStatus(ctx context.Context, orderID int64, status string) error {
	var to domain.Status
	switch status {
	case "SUCCESS":
		to = domain.StatusPaid
	case "FAILED":
		to = domain.StatusFailed
	default:
		return fmt.Errorf("unknown payment status %q", status)
	}
	ok, err := uc.orders.UpdateStatusIf(ctx, orderID, domain.StatusProcessing, to)
	if err != nil {
		return fmt.Errorf("apply payment status: %w", err)
	}
	if !ok {
		return nil
	}
	uc.refreshCache(ctx, orderID, to)
	return nil
}

func (uc *OrderStatus) refreshCache(ctx context.Context, orderID int64, s domain.Status) {
	if uc.cache == nil {
		return
	}
	if o, err := uc.orders.GetByID(ctx, orderID); err == nil {
		_ = uc.cache.SetStatus(ctx, o.Code, string(s))
	}
}
