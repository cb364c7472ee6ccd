package repo

import (
	"context"
	"database/sql"
	"errors"

	domain "github.com/ji-nious/mosi-project-sub001/internal/entity"
	"github.com/ji-nious/mosi-project-sub001/internal/usecase"
)

type MySQLReviewRepo struct{ db *sql.DB }

func NewMySQLReviewRepo(db *sql.DB) *MySQLReviewRepo { return &MySQLReviewRepo{db: db} }

func (r *MySQLReviewRepo) Create(ctx context.Context, rv *domain.Review) error {
	res, err := r.db.ExecContext(ctx, `
INSERT INTO reviews (order_item_id,buyer_id,seller_id,rating,content,created_at,updated_at)
VALUES (?,?,?,?,?,NOW(),NOW())
`, rv.OrderItemID, rv.BuyerID, rv.SellerID, rv.Rating, rv.Content)
	if err != nil {
		return err
	}
	id, err := res.LastInsertId()
	if err != nil {
		return err
	}
	rv.ID = id
	return nil
}

// Update maps zero matched rows to ErrNotFound; the DSN carries
// clientFoundRows=true so an unchanged row still counts as matched.
func (r *MySQLReviewRepo) Update(ctx context.Context, rv *domain.Review) error {
	res, err := r.db.ExecContext(ctx, `
UPDATE reviews SET rating=?, content=?, updated_at=NOW() WHERE id=?`,
		rv.Rating, rv.Content, rv.ID)
	if err != nil {
		return err
	}
	rows, err := res.RowsAffected()
	if err != nil {
		return err
	}
	if rows == 0 {
		return usecase.ErrNotFound
	}
	return nil
}

const reviewColumns = `id,order_item_id,buyer_id,seller_id,rating,content,created_at,updated_at`

func (r *MySQLReviewRepo) GetByID(ctx context.Context, id int64) (*domain.Review, error) {
	var rv domain.Review
	err := r.db.QueryRowContext(ctx, `
SELECT `+reviewColumns+` FROM reviews WHERE id=?`, id).
		Scan(&rv.ID, &rv.OrderItemID, &rv.BuyerID, &rv.SellerID, &rv.Rating, &rv.Content, &rv.CreatedAt, &rv.UpdatedAt)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, usecase.ErrNotFound
		}
		return nil, err
	}
	return &rv, nil
}

func (r *MySQLReviewRepo) list(ctx context.Context, where string, arg int64) ([]domain.Review, error) {
	rows, err := r.db.QueryContext(ctx, `
SELECT `+reviewColumns+` FROM reviews WHERE `+where+` ORDER BY created_at DESC, id DESC`, arg)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var out []domain.Review
	for rows.Next() {
		var rv domain.Review
		if err := rows.Scan(&rv.ID, &rv.OrderItemID, &rv.BuyerID, &rv.SellerID, &rv.Rating, &rv.Content, &rv.CreatedAt, &rv.UpdatedAt); err != nil {
			return nil, err
		}
		out = append(out, rv)
	}
	return out, rows.Err()
}

func (r *MySQLReviewRepo) ListByBuyer(ctx context.Context, buyerID int64) ([]domain.Review, error) {
	return r.list(ctx, "buyer_id=?", buyerID)
}

func (r *MySQLReviewRepo) ListBySeller(ctx context.Context, sellerID int64) ([]domain.Review, error) {
	return r.list(ctx, "seller_id=?", sellerID)
}

// OrderItemParties joins the item back to its order header for the
// purchasing buyer and to its product for the seller. The seller id is
// resolved here, never taken from the client.
func (r *MySQLReviewRepo) OrderItemParties(ctx context.Context, orderItemID int64) (int64, int64, error) {
	var buyerID, sellerID int64
	err := r.db.QueryRowContext(ctx, `
SELECT o.buyer_id, p.seller_id
FROM order_items oi
JOIN orders o ON o.id = oi.order_id
JOIN products p ON p.id = oi.product_id
WHERE oi.id=?`, orderItemID).Scan(&buyerID, &sellerID)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return 0, 0, usecase.ErrNotFound
		}
		return 0, 0, err
	}
	return buyerID, sellerID, nil
}

var _ usecase.ReviewRepo = (*MySQLReviewRepo)(nil)
