package repo

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/go-sql-driver/mysql"

	domain "github.com/ji-nious/mosi-project-sub001/internal/entity"
	"github.com/ji-nious/mosi-project-sub001/internal/usecase"
)

const mysqlErrDupEntry = 1062

type MySQLOrderRepo struct{ db *sql.DB }

func NewMySQLOrderRepo(db *sql.DB) *MySQLOrderRepo { return &MySQLOrderRepo{db: db} }

// Create inserts the order header and its items in one transaction.
// A unique index on orders.order_code turns code collisions into
// ErrDuplicateCode so the caller can regenerate.
func (r *MySQLOrderRepo) Create(ctx context.Context, o *domain.Order, items []domain.OrderItem) error {
	tx, err := r.db.BeginTx(ctx, nil)
	if err != nil {
		return err
	}
	defer tx.Rollback()

	res, err := tx.ExecContext(ctx, `
INSERT INTO orders (order_code,buyer_id,status,order_date,total_price,special_request,payment_method,created_at,updated_at)
VALUES (?,?,?,?,?,?,?,NOW(),NOW())
`, o.Code, o.BuyerID, string(o.Status), o.OrderDate, o.TotalPrice, o.SpecialRequest, o.PaymentMethod)
	if err != nil {
		var me *mysql.MySQLError
		if errors.As(err, &me) && me.Number == mysqlErrDupEntry {
			return usecase.ErrDuplicateCode
		}
		return err
	}
	id, err := res.LastInsertId()
	if err != nil {
		return err
	}
	o.ID = id

	for i := range items {
		res, err := tx.ExecContext(ctx, `
INSERT INTO order_items (order_id,product_id,product_name,unit_price,quantity)
VALUES (?,?,?,?,?)
`, id, items[i].ProductID, items[i].ProductName, items[i].UnitPrice, items[i].Quantity)
		if err != nil {
			return err
		}
		itemID, err := res.LastInsertId()
		if err != nil {
			return err
		}
		items[i].ID = itemID
		items[i].OrderID = id
	}

	return tx.Commit()
}

const orderColumns = `id,order_code,buyer_id,status,order_date,total_price,special_request,payment_method`

func scanOrder(row interface{ Scan(...any) error }) (*domain.Order, error) {
	var o domain.Order
	var status string
	if err := row.Scan(&o.ID, &o.Code, &o.BuyerID, &status, &o.OrderDate, &o.TotalPrice, &o.SpecialRequest, &o.PaymentMethod); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, usecase.ErrNotFound
		}
		return nil, err
	}
	o.Status = domain.Status(status)
	return &o, nil
}

func (r *MySQLOrderRepo) GetByID(ctx context.Context, id int64) (*domain.Order, error) {
	row := r.db.QueryRowContext(ctx, `
SELECT `+orderColumns+` FROM orders WHERE id=? AND deleted_at IS NULL`, id)
	return scanOrder(row)
}

func (r *MySQLOrderRepo) GetByCode(ctx context.Context, code string) (*domain.Order, error) {
	row := r.db.QueryRowContext(ctx, `
SELECT `+orderColumns+` FROM orders WHERE order_code=? AND deleted_at IS NULL`, code)
	return scanOrder(row)
}

func (r *MySQLOrderRepo) ItemsByOrderID(ctx context.Context, orderID int64) ([]domain.OrderItem, error) {
	rows, err := r.db.QueryContext(ctx, `
SELECT id,order_id,product_id,product_name,unit_price,quantity
FROM order_items WHERE order_id=? ORDER BY id`, orderID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var items []domain.OrderItem
	for rows.Next() {
		var it domain.OrderItem
		if err := rows.Scan(&it.ID, &it.OrderID, &it.ProductID, &it.ProductName, &it.UnitPrice, &it.Quantity); err != nil {
			return nil, err
		}
		items = append(items, it)
	}
	return items, rows.Err()
}

func (r *MySQLOrderRepo) ListByBuyer(ctx context.Context, buyerID int64, sort usecase.OrderSort, limit, offset int) ([]domain.Order, error) {
	dir := "DESC"
	if sort == usecase.OrderSortDateAsc {
		dir = "ASC"
	}
	// dir is chosen from a fixed set above, never caller input.
	q := fmt.Sprintf(`
SELECT `+orderColumns+` FROM orders
WHERE buyer_id=? AND deleted_at IS NULL
ORDER BY order_date %s, id %s
LIMIT ? OFFSET ?`, dir, dir)

	rows, err := r.db.QueryContext(ctx, q, buyerID, limit, offset)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var out []domain.Order
	for rows.Next() {
		o, err := scanOrder(rows)
		if err != nil {
			return nil, err
		}
		out = append(out, *o)
	}
	return out, rows.Err()
}

func (r *MySQLOrderRepo) CountByBuyer(ctx context.Context, buyerID int64) (int64, error) {
	var n int64
	err := r.db.QueryRowContext(ctx, `
SELECT COUNT(*) FROM orders WHERE buyer_id=? AND deleted_at IS NULL`, buyerID).Scan(&n)
	return n, err
}

// CountByCodePrefix counts soft-deleted rows too: the code sequence
// must never reuse a number.
func (r *MySQLOrderRepo) CountByCodePrefix(ctx context.Context, prefix string) (int64, error) {
	var n int64
	err := r.db.QueryRowContext(ctx, `
SELECT COUNT(*) FROM orders WHERE order_code LIKE CONCAT(?, '%')`, prefix).Scan(&n)
	return n, err
}

// Update requires clientFoundRows=true in the DSN: with the default
// driver flags MySQL reports 0 affected rows when the new values equal
// the old ones, which would look like a missing order here.
func (r *MySQLOrderRepo) Update(ctx context.Context, o *domain.Order) error {
	res, err := r.db.ExecContext(ctx, `
UPDATE orders
SET status=?, total_price=?, special_request=?, payment_method=?, updated_at=NOW()
WHERE id=? AND deleted_at IS NULL`,
		string(o.Status), o.TotalPrice, o.SpecialRequest, o.PaymentMethod, o.ID)
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

func (r *MySQLOrderRepo) UpdateStatusIf(ctx context.Context, id int64, from, to domain.Status) (bool, error) {
	res, err := r.db.ExecContext(ctx, `
UPDATE orders
SET status=?, updated_at=NOW()
WHERE id=? AND status=? AND deleted_at IS NULL`,
		string(to), id, string(from))
	if err != nil {
		return false, err
	}
	rows, err := res.RowsAffected()
	if err != nil {
		return false, err
	}
	// rows == 0 → nothing matched (either not found or status mismatch)
	return rows > 0, nil
}

func (r *MySQLOrderRepo) DeleteByID(ctx context.Context, id int64) error {
	_, err := r.db.ExecContext(ctx, `
UPDATE orders SET deleted_at=NOW(), updated_at=NOW() WHERE id=? AND deleted_at IS NULL`, id)
	return err
}

var _ usecase.OrderRepo = (*MySQLOrderRepo)(nil)
