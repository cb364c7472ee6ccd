package repo

import (
	"context"
	"database/sql"
	"strings"

	domain "github.com/ji-nious/mosi-project-sub001/internal/entity"
	"github.com/ji-nious/mosi-project-sub001/internal/usecase"
)

type MySQLCartRepo struct{ db *sql.DB }

func NewMySQLCartRepo(db *sql.DB) *MySQLCartRepo { return &MySQLCartRepo{db: db} }

func placeholders(n int) string {
	return strings.TrimSuffix(strings.Repeat("?,", n), ",")
}

// GetByIDs loads the buyer's cart lines. Ids that belong to another
// buyer simply do not come back; the caller compares lengths.
func (r *MySQLCartRepo) GetByIDs(ctx context.Context, buyerID int64, ids []int64) ([]domain.CartItem, error) {
	if len(ids) == 0 {
		return nil, nil
	}
	args := make([]any, 0, len(ids)+1)
	args = append(args, buyerID)
	for _, id := range ids {
		args = append(args, id)
	}
	rows, err := r.db.QueryContext(ctx, `
SELECT id,buyer_id,product_id,product_name,unit_price,quantity
FROM cart_items WHERE buyer_id=? AND id IN (`+placeholders(len(ids))+`)`, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var out []domain.CartItem
	for rows.Next() {
		var c domain.CartItem
		if err := rows.Scan(&c.ID, &c.BuyerID, &c.ProductID, &c.ProductName, &c.UnitPrice, &c.Quantity); err != nil {
			return nil, err
		}
		out = append(out, c)
	}
	return out, rows.Err()
}

func (r *MySQLCartRepo) DeleteByIDs(ctx context.Context, buyerID int64, ids []int64) error {
	if len(ids) == 0 {
		return nil
	}
	args := make([]any, 0, len(ids)+1)
	args = append(args, buyerID)
	for _, id := range ids {
		args = append(args, id)
	}
	_, err := r.db.ExecContext(ctx, `
DELETE FROM cart_items WHERE buyer_id=? AND id IN (`+placeholders(len(ids))+`)`, args...)
	return err
}

var _ usecase.CartRepo = (*MySQLCartRepo)(nil)
