package usecase

import (
	"context"

	domain "github.com/ji-nious/mosi-project-sub001/internal/entity"
)

// OrderSort is a caller-supplied ordering for buyer listings.
type OrderSort string

const (
	OrderSortDateDesc OrderSort = "date_desc"
	OrderSortDateAsc  OrderSort = "date_asc"
)

type OrderRepo interface {
	// Create inserts the order and its items. ErrDuplicateCode when the
	// order code collides with an existing row (unique index).
	Create(ctx context.Context, o *domain.Order, items []domain.OrderItem) error
	GetByID(ctx context.Context, id int64) (*domain.Order, error)
	GetByCode(ctx context.Context, code string) (*domain.Order, error)
	ItemsByOrderID(ctx context.Context, orderID int64) ([]domain.OrderItem, error)
	ListByBuyer(ctx context.Context, buyerID int64, sort OrderSort, limit, offset int) ([]domain.Order, error)
	CountByBuyer(ctx context.Context, buyerID int64) (int64, error)
	// CountByCodePrefix counts every row ever written with the prefix,
	// soft-deleted included, so generated sequence numbers never regress.
	CountByCodePrefix(ctx context.Context, prefix string) (int64, error)
	// Update returns ErrNotFound when no live row matched the id. The
	// MySQL adapter relies on clientFoundRows=true in the DSN so a
	// no-op update of an existing row still counts as matched.
	Update(ctx context.Context, o *domain.Order) error
	UpdateStatusIf(ctx context.Context, id int64, from, to domain.Status) (bool, error)
	// DeleteByID soft-deletes; deleting a missing id is not an error.
	DeleteByID(ctx context.Context, id int64) error
}

type CartRepo interface {
	// GetByIDs returns the buyer's cart lines for the given ids.
	// Lines owned by another buyer are silently excluded.
	GetByIDs(ctx context.Context, buyerID int64, ids []int64) ([]domain.CartItem, error)
	DeleteByIDs(ctx context.Context, buyerID int64, ids []int64) error
}

type MemberRepo interface {
	GetByID(ctx context.Context, id int64) (*domain.Member, error)
	GetByEmail(ctx context.Context, email string) (*domain.Member, error)
}

type ReviewRepo interface {
	Create(ctx context.Context, r *domain.Review) error
	Update(ctx context.Context, r *domain.Review) error
	GetByID(ctx context.Context, id int64) (*domain.Review, error)
	ListByBuyer(ctx context.Context, buyerID int64) ([]domain.Review, error)
	ListBySeller(ctx context.Context, sellerID int64) ([]domain.Review, error)
	// OrderItemParties resolves the buyer who purchased an order item
	// and the seller of its product; ErrNotFound when the item does
	// not exist.
	OrderItemParties(ctx context.Context, orderItemID int64) (buyerID, sellerID int64, err error)
}

type BoardRepo interface {
	GetPost(ctx context.Context, id int64) (*domain.Post, error)
	// ToggleLike flips the member's like on the post and returns the
	// new state plus the resulting count.
	ToggleLike(ctx context.Context, postID, memberID int64) (liked bool, count int64, err error)
	ToggleReport(ctx context.Context, postID, memberID int64) (reported bool, count int64, err error)
}

type IdempotencyStore interface {
	TryLock(ctx context.Context, scope, key string) (bool, error)
	Remember(ctx context.Context, scope, key, value string) error
	Recall(ctx context.Context, scope, key string) (string, bool, error)
}

type OrderCache interface {
	SetStatus(ctx context.Context, orderCode string, status string) error
	GetStatus(ctx context.Context, orderCode string) (string, bool, error)
}

type OrderQueue interface {
	PublishPlaced(ctx context.Context, msg PlacedMsg) error
}
