package domain

import "time"

// Review is a buyer's write-up of one purchased order item. Ownership
// checks compare against the order item's buyer, not the review row
// alone, so a review can only ever be edited by its author.
type Review struct {
	ID          int64
	OrderItemID int64
	BuyerID     int64
	SellerID    int64
	Rating      int // 1..5
	Content     string
	CreatedAt   time.Time
	UpdatedAt   time.Time
}

func (r *Review) RatingValid() bool { return r.Rating >= 1 && r.Rating <= 5 }
