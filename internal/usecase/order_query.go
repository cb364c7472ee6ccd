package usecase

import (
	"context"
	"errors"
)

// OrderQuery serves the read side: form, detail, listing and the
// completion page.
type OrderQuery struct {
	orders  OrderRepo
	carts   CartRepo
	members MemberRepo
	cache   OrderCache
}

func NewOrderQuery(orders OrderRepo, carts CartRepo, members MemberRepo, cache OrderCache) *OrderQuery {
	return &OrderQuery{orders: orders, carts: carts, members: members, cache: cache}
}

// Form builds the pre-order confirmation view for the buyer's selected
// cart lines.
func (uc *OrderQuery) Form(ctx context.Context, buyerID int64, cartItemIDs []int64) (OrderFormView, error) {
	if len(cartItemIDs) == 0 {
		return OrderFormView{}, &ValidationError{Fields: []FieldViolation{
			{Field: "cartItemIds", Message: "at least one cart item is required"},
		}}
	}
	m, err := uc.members.GetByID(ctx, buyerID)
	if err != nil {
		return OrderFormView{}, err
	}
	lines, err := uc.carts.GetByIDs(ctx, buyerID, cartItemIDs)
	if err != nil {
		return OrderFormView{}, err
	}
	if len(lines) != len(cartItemIDs) {
		return OrderFormView{}, &ValidationError{Fields: []FieldViolation{
			{Field: "cartItemIds", Message: "contains unknown or foreign cart items"},
		}}
	}
	return NewOrderFormView(m, lines), nil
}

// Detail returns the full order view. Only the buyer who placed the
// order may read it.
func (uc *OrderQuery) Detail(ctx context.Context, buyerID, orderID int64) (OrderDetailView, error) {
	o, err := uc.orders.GetByID(ctx, orderID)
	if err != nil {
		return OrderDetailView{}, err
	}
	if o.BuyerID != buyerID {
		return OrderDetailView{}, ErrUnauthorized
	}
	items, err := uc.orders.ItemsByOrderID(ctx, o.ID)
	if err != nil {
		return OrderDetailView{}, err
	}
	return NewOrderDetailView(o, items), nil
}

// OrderPage is one page of a buyer's order history.
type OrderPage struct {
	Orders []OrderDetailView `json:"orders"`
	Total  int64             `json:"total"`
	Limit  int               `json:"limit"`
	Offset int               `json:"offset"`
}

const (
	defaultPageSize = 10
	maxPageSize     = 50
)

// ListMine pages through the buyer's orders, newest first unless asked
// otherwise. Items are not joined in; the listing shows header rows.
func (uc *OrderQuery) ListMine(ctx context.Context, buyerID int64, sort OrderSort, limit, offset int) (OrderPage, error) {
	switch sort {
	case OrderSortDateAsc, OrderSortDateDesc:
	case "":
		sort = OrderSortDateDesc
	default:
		return OrderPage{}, &ValidationError{Fields: []FieldViolation{
			{Field: "sort", Message: "must be date_asc or date_desc"},
		}}
	}
	if limit <= 0 {
		limit = defaultPageSize
	}
	if limit > maxPageSize {
		limit = maxPageSize
	}
	if offset < 0 {
		offset = 0
	}

	total, err := uc.orders.CountByBuyer(ctx, buyerID)
	if err != nil {
		return OrderPage{}, err
	}
	rows, err := uc.orders.ListByBuyer(ctx, buyerID, sort, limit, offset)
	if err != nil {
		return OrderPage{}, err
	}
	views := make([]OrderDetailView, 0, len(rows))
	for i := range rows {
		views = append(views, NewOrderDetailView(&rows[i], nil))
	}
	return OrderPage{Orders: views, Total: total, Limit: limit, Offset: offset}, nil
}

// CompleteByCode renders the post-payment confirmation page.
func (uc *OrderQuery) CompleteByCode(ctx context.Context, buyerID int64, code string) (OrderCompleteView, error) {
	o, err := uc.orders.GetByCode(ctx, code)
	if err != nil {
		return OrderCompleteView{}, err
	}
	if o.BuyerID != buyerID {
		return OrderCompleteView{}, ErrUnauthorized
	}
	return NewOrderCompleteView(o), nil
}

// Status reads an order's live status, preferring the cache and
// falling back to the row.
func (uc *OrderQuery) Status(ctx context.Context, buyerID int64, code string) (string, error) {
	if uc.cache != nil {
		if s, ok, err := uc.cache.GetStatus(ctx, code); err == nil && ok {
			// Ownership still has to hold even on a cache hit.
			o, err := uc.orders.GetByCode(ctx, code)
			if err != nil {
				return "", err
			}
			if o.BuyerID != buyerID {
				return "", ErrUnauthorized
			}
			return s, nil
		}
	}
	o, err := uc.orders.GetByCode(ctx, code)
	if err != nil {
		return "", err
	}
	if o.BuyerID != buyerID {
		return "", ErrUnauthorized
	}
	if uc.cache != nil {
		_ = uc.cache.SetStatus(ctx, code, string(o.Status))
	}
	return string(o.Status), nil
}

// Remove soft-deletes a buyer's own order. Removing an order that is
// already gone is not an error.
func (uc *OrderQuery) Remove(ctx context.Context, buyerID, orderID int64) error {
	o, err := uc.orders.GetByID(ctx, orderID)
	if err != nil {
		if errors.Is(err, ErrNotFound) {
			return nil
		}
		return err
	}
	if o.BuyerID != buyerID {
		return ErrUnauthorized
	}
	return uc.orders.DeleteByID(ctx, orderID)
}
