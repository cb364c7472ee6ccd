package queue

import (
	"context"

	"github.com/ji-nious/mosi-project-sub001/internal/usecase"
)

// OrderPlacedHandler moves a freshly placed order into processing.
// Deliveries can arrive more than once; the guarded status update
// makes the replay a no-op.
type OrderPlacedHandler struct {
	status *usecase.OrderStatus
}

func NewOrderPlacedHandler(status *usecase.OrderStatus) *OrderPlacedHandler {
	return &OrderPlacedHandler{status: status}
}

// HandlePlaced is intended to be used with the JSON adapter
// (queue.JSONHandler[usecase.PlacedMsg]).
func (h *OrderPlacedHandler) HandlePlaced(ctx context.Context, msg usecase.PlacedMsg) error {
	return h.status.MarkProcessing(ctx, msg.OrderID)
}

// PlacedQueueName is the queue the router should consume for these
// events; the producer declares and binds it.
func PlacedQueueName() string { return queueName }
