package kafka

import (
	"context"

	"github.com/ji-nious/mosi-project-sub001/internal/usecase"
)

// PaymentStatusHandler settles processing orders from the payment
// gateway's result stream.
type PaymentStatusHandler struct {
	status *usecase.OrderStatus
}

func NewPaymentStatusHandler(status *usecase.OrderStatus) *PaymentStatusHandler {
	return &PaymentStatusHandler{status: status}
}

func (h *PaymentStatusHandler) Handle(ctx context.Context, ev usecase.PaymentStatusMsg) error {
	return h.status.ApplyPaymentStatus(ctx, ev.OrderID, ev.Status)
}
