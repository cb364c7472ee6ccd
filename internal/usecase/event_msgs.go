package usecase

// PlacedMsg is published to RabbitMQ when an order row is committed.
type PlacedMsg struct {
	OrderID       int64  `json:"orderId"`
	OrderCode     string `json:"orderCode"`
	BuyerID       int64  `json:"buyerId"`
	TotalPrice    int64  `json:"totalPrice"`
	PaymentMethod string `json:"paymentMethod"`
}

// PaymentStatusMsg arrives on Kafka from the payment gateway.
type PaymentStatusMsg struct {
	OrderID   int64  `json:"orderId"`
	OrderCode string `json:"orderCode"`
	Status    string `json:"status"` // "SUCCESS" | "FAILED"
}
