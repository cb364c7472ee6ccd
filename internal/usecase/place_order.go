package usecase

import (
	"context"
	"errors"
	"fmt"
	"strconv"
	"time"

	domain "github.com/ji-nious/mosi-project-sub001/internal/entity"
)

// codeRetryAttempts bounds the duplicate-code retry loop. The count-
// then-insert sequence is racy by design; the unique index resolves
// the race and we re-read the count on each attempt.
const codeRetryAttempts = 3

type PlaceOrderInput struct {
	BuyerID        int64
	CartItemIDs    []int64
	SpecialRequest string
	PaymentMethod  string
	Amount         int64 // total the buyer saw on the order form
	IdempotencyKey string
}

func (in PlaceOrderInput) validate() error {
	var v ValidationError
	if len(in.CartItemIDs) == 0 {
		v.add("cartItemIds", "at least one cart item is required")
	}
	if in.Amount <= 0 {
		v.add("amount", "must be positive")
	}
	if in.PaymentMethod == "" {
		v.add("paymentMethod", "is required")
	}
	if len([]rune(in.SpecialRequest)) > domain.MaxSpecialRequestLen {
		v.add("specialRequest", fmt.Sprintf("must be at most %d characters", domain.MaxSpecialRequestLen))
	}
	return v.orNil()
}

type PlaceOrderOutput struct {
	OrderID   int64
	OrderCode string
	Status    domain.Status
}

type PlaceOrder struct {
	orders OrderRepo
	carts  CartRepo
	idem   IdempotencyStore
	cache  OrderCache
	queue  OrderQueue
	now    func() time.Time
}

func NewPlaceOrder(orders OrderRepo, carts CartRepo, idem IdempotencyStore, cache OrderCache, queue OrderQueue) *PlaceOrder {
	return &PlaceOrder{
		orders: orders,
		carts:  carts,
		idem:   idem,
		cache:  cache,
		queue:  queue,
		now:    time.Now,
	}
}

// WithClock overrides the time source.
func (uc *PlaceOrder) WithClock(now func() time.Time) *PlaceOrder {
	uc.now = now
	return uc
}

func (uc *PlaceOrder) Execute(ctx context.Context, in PlaceOrderInput) (PlaceOrderOutput, error) {
	if err := in.validate(); err != nil {
		return PlaceOrderOutput{}, err
	}

	scope := strconv.FormatInt(in.BuyerID, 10)

	// Fast path: same buyer replaying the same request.
	if in.IdempotencyKey != "" {
		if code, ok, _ := uc.idem.Recall(ctx, scope, in.IdempotencyKey); ok {
			if o, err := uc.orders.GetByCode(ctx, code); err == nil {
				return PlaceOrderOutput{OrderID: o.ID, OrderCode: o.Code, Status: o.Status}, nil
			}
			return PlaceOrderOutput{OrderCode: code, Status: domain.StatusPending}, nil
		}
		ok, err := uc.idem.TryLock(ctx, scope, in.IdempotencyKey)
		if err != nil {
			return PlaceOrderOutput{}, err
		}
		if !ok {
			return PlaceOrderOutput{}, ErrDuplicate
		}
	}

	lines, err := uc.carts.GetByIDs(ctx, in.BuyerID, in.CartItemIDs)
	if err != nil {
		return PlaceOrderOutput{}, fmt.Errorf("load cart: %w", err)
	}
	if len(lines) != len(in.CartItemIDs) {
		return PlaceOrderOutput{}, &ValidationError{Fields: []FieldViolation{
			{Field: "cartItemIds", Message: "contains unknown or foreign cart items"},
		}}
	}

	items := make([]domain.OrderItem, 0, len(lines))
	for _, l := range lines {
		items = append(items, domain.OrderItem{
			ProductID:   l.ProductID,
			ProductName: l.ProductName,
			UnitPrice:   l.UnitPrice,
			Quantity:    l.Quantity,
		})
	}
	if total := domain.SumItems(items); total != in.Amount {
		return PlaceOrderOutput{}, ErrAmountMismatch
	}

	order, err := uc.createWithFreshCode(ctx, in, items)
	if err != nil {
		return PlaceOrderOutput{}, err
	}

	// Post-commit effects are best-effort; the reconciling consumers
	// key off the committed row, not off these.
	_ = uc.carts.DeleteByIDs(ctx, in.BuyerID, in.CartItemIDs)
	_ = uc.queue.PublishPlaced(ctx, PlacedMsg{
		OrderID:       order.ID,
		OrderCode:     order.Code,
		BuyerID:       order.BuyerID,
		TotalPrice:    order.TotalPrice,
		PaymentMethod: order.PaymentMethod,
	})
	if uc.cache != nil {
		_ = uc.cache.SetStatus(ctx, order.Code, string(order.Status))
	}
	if in.IdempotencyKey != "" {
		_ = uc.idem.Remember(ctx, scope, in.IdempotencyKey, order.Code)
	}

	return PlaceOrderOutput{OrderID: order.ID, OrderCode: order.Code, Status: order.Status}, nil
}

// createWithFreshCode generates a code and inserts, retrying with a
// re-read count when the unique index rejects a collision.
func (uc *PlaceOrder) createWithFreshCode(ctx context.Context, in PlaceOrderInput, items []domain.OrderItem) (*domain.Order, error) {
	for attempt := 0; attempt < codeRetryAttempts; attempt++ {
		code, err := NextOrderCode(ctx, uc.orders, uc.now())
		if err != nil {
			return nil, err
		}
		order := &domain.Order{
			Code:           code,
			BuyerID:        in.BuyerID,
			Status:         domain.StatusPending,
			OrderDate:      uc.now(),
			TotalPrice:     in.Amount,
			SpecialRequest: in.SpecialRequest,
			PaymentMethod:  in.PaymentMethod,
		}
		if err := order.Validate(); err != nil {
			return nil, err
		}
		err = uc.orders.Create(ctx, order, items)
		if err == nil {
			return order, nil
		}
		if !errors.Is(err, ErrDuplicateCode) {
			return nil, fmt.Errorf("create order: %w", err)
		}
	}
	return nil, ErrOrderCreationFailed
}

// CancelOrder flips a buyer's own order to CANCELLED while it is
// still pending or processing.
type CancelOrder struct {
	orders OrderRepo
	cache  OrderCache
}

func NewCancelOrder(orders OrderRepo, cache OrderCache) *CancelOrder {
	return &CancelOrder{orders: orders, cache: cache}
}

func (uc *CancelOrder) Execute(ctx context.Context, buyerID, orderID int64) error {
	o, err := uc.orders.GetByID(ctx, orderID)
	if err != nil {
		return err
	}
	if o.BuyerID != buyerID {
		return ErrUnauthorized
	}
	if !o.Status.Cancellable() {
		return ErrCancelNotAllowed
	}
	ok, err := uc.orders.UpdateStatusIf(ctx, o.ID, o.Status, domain.StatusCancelled)
	if err != nil {
		return err
	}
	if !ok {
		// Status moved under us (e.g. payment confirmed); re-read to
		// report the precise reason.
		return ErrCancelNotAllowed
	}
	if uc.cache != nil {
		_ = uc.cache.SetStatus(ctx, o.Code, string(domain.StatusCancelled))
	}
	return nil
}
