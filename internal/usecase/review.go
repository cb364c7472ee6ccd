package usecase

import (
	"context"
	"fmt"

	domain "github.com/ji-nious/mosi-project-sub001/internal/entity"
)

// ReviewService guards review pages with ownership and role checks.
// Rendering is the caller's job; this layer only decides who may see
// what.
type ReviewService struct {
	reviews ReviewRepo
	members MemberRepo
}

func NewReviewService(reviews ReviewRepo, members MemberRepo) *ReviewService {
	return &ReviewService{reviews: reviews, members: members}
}

// AddForm authorizes the review-write page for an order item. Only the
// buyer who purchased the item may open it.
func (uc *ReviewService) AddForm(ctx context.Context, buyerID, orderItemID int64) error {
	owner, _, err := uc.reviews.OrderItemParties(ctx, orderItemID)
	if err != nil {
		return err
	}
	if owner != buyerID {
		return ErrUnauthorized
	}
	return nil
}

// EditForm loads a review for editing. Only its author may edit.
func (uc *ReviewService) EditForm(ctx context.Context, buyerID, reviewID int64) (*domain.Review, error) {
	r, err := uc.reviews.GetByID(ctx, reviewID)
	if err != nil {
		return nil, err
	}
	if r.BuyerID != buyerID {
		return nil, ErrUnauthorized
	}
	return r, nil
}

// SellerList returns reviews left on the member's products. The member
// must hold the seller role.
func (uc *ReviewService) SellerList(ctx context.Context, memberID int64) ([]domain.Review, error) {
	m, err := uc.members.GetByID(ctx, memberID)
	if err != nil {
		return nil, err
	}
	if m.Role != domain.RoleSeller {
		return nil, ErrUnauthorized
	}
	return uc.reviews.ListBySeller(ctx, memberID)
}

// BuyerList returns the member's own reviews.
func (uc *ReviewService) BuyerList(ctx context.Context, memberID int64) ([]domain.Review, error) {
	return uc.reviews.ListByBuyer(ctx, memberID)
}

// Submit writes a new review for an order item the buyer purchased.
// The seller is resolved from the order item, not from the request.
func (uc *ReviewService) Submit(ctx context.Context, buyerID int64, r *domain.Review) error {
	if err := checkReview(r); err != nil {
		return err
	}
	owner, sellerID, err := uc.reviews.OrderItemParties(ctx, r.OrderItemID)
	if err != nil {
		return err
	}
	if owner != buyerID {
		return ErrUnauthorized
	}
	r.BuyerID = buyerID
	r.SellerID = sellerID
	return uc.reviews.Create(ctx, r)
}

// Edit updates the rating and content of the buyer's own review.
func (uc *ReviewService) Edit(ctx context.Context, buyerID, reviewID int64, rating int, content string) (*domain.Review, error) {
	r, err := uc.EditForm(ctx, buyerID, reviewID)
	if err != nil {
		return nil, err
	}
	r.Rating = rating
	r.Content = content
	if err := checkReview(r); err != nil {
		return nil, err
	}
	if err := uc.reviews.Update(ctx, r); err != nil {
		return nil, err
	}
	return r, nil
}

func checkReview(r *domain.Review) error {
	var v ValidationError
	if !r.RatingValid() {
		v.add("rating", fmt.Sprintf("must be between 1 and 5, got %d", r.Rating))
	}
	if r.Content == "" {
		v.add("content", "is required")
	}
	return v.orNil()
}
