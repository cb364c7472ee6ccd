package usecase

import (
	"time"

	domain "github.com/ji-nious/mosi-project-sub001/internal/entity"
)

// OrderItemView is one display line shared by the form and detail views.
type OrderItemView struct {
	ProductID     int64  `json:"productId"`
	ProductName   string `json:"productName"`
	UnitPrice     int64  `json:"unitPrice"`
	Quantity      int64  `json:"quantity"`
	ExtendedPrice int64  `json:"extendedPrice"`
}

// OrderFormView is what the buyer confirms before placing the order.
type OrderFormView struct {
	BuyerName  string          `json:"buyerName"`
	BuyerEmail string          `json:"buyerEmail"`
	BuyerTel   string          `json:"buyerTel"`
	Items      []OrderItemView `json:"items"`
	TotalPrice int64           `json:"totalPrice"`
}

// OrderCompleteView is the confirmation page shown right after payment.
// Items are intentionally absent: the page only confirms the code and
// the paid amount.
type OrderCompleteView struct {
	OrderCode   string          `json:"orderCode"`
	OrderDate   time.Time       `json:"orderDate"`
	StatusLabel string          `json:"statusLabel"`
	TotalPrice  int64           `json:"totalPrice"`
	Items       []OrderItemView `json:"items"`
}

// OrderDetailView is the full read model for a single order.
type OrderDetailView struct {
	OrderID        int64           `json:"orderId"`
	OrderCode      string          `json:"orderCode"`
	OrderDate      time.Time       `json:"orderDate"`
	Status         string          `json:"status"`
	StatusLabel    string          `json:"statusLabel"`
	TotalPrice     int64           `json:"totalPrice"`
	SpecialRequest string          `json:"specialRequest"`
	PaymentMethod  string          `json:"paymentMethod"`
	Items          []OrderItemView `json:"items"`
}

func toItemViews(items []domain.OrderItem) []OrderItemView {
	out := make([]OrderItemView, 0, len(items))
	for _, it := range items {
		out = append(out, OrderItemView{
			ProductID:     it.ProductID,
			ProductName:   it.ProductName,
			UnitPrice:     it.UnitPrice,
			Quantity:      it.Quantity,
			ExtendedPrice: it.ExtendedPrice(),
		})
	}
	return out
}

// NewOrderFormView assembles the confirmation form from the member and
// their selected cart lines. Pure; no I/O.
func NewOrderFormView(m *domain.Member, lines []domain.CartItem) OrderFormView {
	items := make([]OrderItemView, 0, len(lines))
	var total int64
	for _, l := range lines {
		ext := l.ExtendedPrice()
		total += ext
		items = append(items, OrderItemView{
			ProductID:     l.ProductID,
			ProductName:   l.ProductName,
			UnitPrice:     l.UnitPrice,
			Quantity:      l.Quantity,
			ExtendedPrice: ext,
		})
	}
	return OrderFormView{
		BuyerName:  m.Name,
		BuyerEmail: m.Email,
		BuyerTel:   m.Tel,
		Items:      items,
		TotalPrice: total,
	}
}

// NewOrderCompleteView reports the order as paid regardless of the
// row's live status: the page is rendered from the payment callback
// and always shows the paid label with an empty item list.
func NewOrderCompleteView(o *domain.Order) OrderCompleteView {
	return OrderCompleteView{
		OrderCode:   o.Code,
		OrderDate:   o.OrderDate,
		StatusLabel: domain.StatusPaid.Label(),
		TotalPrice:  o.TotalPrice,
		Items:       []OrderItemView{},
	}
}

// NewOrderDetailView joins an order with its item rows.
func NewOrderDetailView(o *domain.Order, items []domain.OrderItem) OrderDetailView {
	return OrderDetailView{
		OrderID:        o.ID,
		OrderCode:      o.Code,
		OrderDate:      o.OrderDate,
		Status:         string(o.Status),
		StatusLabel:    o.Status.Label(),
		TotalPrice:     o.TotalPrice,
		SpecialRequest: o.SpecialRequest,
		PaymentMethod:  o.PaymentMethod,
		Items:          toItemViews(items),
	}
}
