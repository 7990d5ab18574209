package orders

import (
	"context"
	"errors"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

type Repo struct{ DB *pgxpool.Pool }

// totalSQL recomputes an order's total as the sum of the current menu prices
// of its line items. Running it inside the same transaction as the item
// mutation keeps the stored total equal to the real sum at every commit.
const totalSQL = `
	UPDATE orders SET total = COALESCE((
		SELECT SUM(m.price)
		FROM item_status s JOIN menu m ON m.item_name = s.item_name
		WHERE s.order_id = orders.order_id
	), 0)
	WHERE order_id = $1`

// Create writes a staged order in one transaction: draw a fresh id from the
// order sequence, insert the header, then one line item per staged entry.
func (r *Repo) Create(ctx context.Context, login string, staged *Staging) (int, error) {
	if staged.Empty() {
		return 0, ErrEmptyOrder
	}

	tx, err := r.DB.BeginTx(ctx, pgx.TxOptions{})
	if err != nil {
		return 0, err
	}
	defer func() { _ = tx.Rollback(ctx) }()

	var orderID int
	if err := tx.QueryRow(ctx, `SELECT nextval('orders_orderid_seq')`).Scan(&orderID); err != nil {
		return 0, err
	}

	now := time.Now()
	_, err = tx.Exec(ctx, `
		INSERT INTO orders(order_id, login, paid, time_stamp_received, total)
		VALUES ($1, $2, FALSE, $3, $4)`,
		orderID, login, now, staged.Total())
	if err != nil {
		return 0, err
	}

	for _, it := range staged.Items() {
		_, err = tx.Exec(ctx, `
			INSERT INTO item_status(order_id, item_name, last_updated, status, comments)
			VALUES ($1, $2, $3, $4, $5)`,
			orderID, it.Name, now, DefaultStatus, it.Comment)
		if err != nil {
			return 0, err
		}
	}

	if err := tx.Commit(ctx); err != nil {
		return 0, err
	}
	return orderID, nil
}

func (r *Repo) Get(ctx context.Context, orderID int) (Order, error) {
	var o Order
	err := r.DB.QueryRow(ctx, `
		SELECT order_id, login, paid, time_stamp_received, total
		FROM orders WHERE order_id = $1`, orderID).
		Scan(&o.ID, &o.Login, &o.Paid, &o.ReceivedAt, &o.Total)
	if errors.Is(err, pgx.ErrNoRows) {
		return Order{}, ErrNotFound
	}
	return o, err
}

// RecentByLogin returns a login's most recent orders, newest first.
func (r *Repo) RecentByLogin(ctx context.Context, login string, limit int) ([]Order, error) {
	rows, err := r.DB.Query(ctx, `
		SELECT order_id, login, paid, time_stamp_received, total
		FROM orders WHERE login = $1
		ORDER BY time_stamp_received DESC LIMIT $2`, login, limit)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	return scanOrders(rows)
}

// WithinLast24h returns every order received in the last 24 hours, newest
// first.
func (r *Repo) WithinLast24h(ctx context.Context) ([]Order, error) {
	rows, err := r.DB.Query(ctx, `
		SELECT order_id, login, paid, time_stamp_received, total
		FROM orders WHERE time_stamp_received >= now() - interval '24 hours'
		ORDER BY time_stamp_received DESC`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	return scanOrders(rows)
}

func scanOrders(rows pgx.Rows) ([]Order, error) {
	var out []Order
	for rows.Next() {
		var o Order
		if err := rows.Scan(&o.ID, &o.Login, &o.Paid, &o.ReceivedAt, &o.Total); err != nil {
			return nil, err
		}
		out = append(out, o)
	}
	return out, rows.Err()
}

func (r *Repo) Items(ctx context.Context, orderID int) ([]LineItem, error) {
	rows, err := r.DB.Query(ctx, `
		SELECT order_id, item_name, last_updated, status, comments
		FROM item_status WHERE order_id = $1 ORDER BY item_name`, orderID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var out []LineItem
	for rows.Next() {
		var li LineItem
		if err := rows.Scan(&li.OrderID, &li.ItemName, &li.LastUpdated, &li.Status, &li.Comment); err != nil {
			return nil, err
		}
		out = append(out, li)
	}
	return out, rows.Err()
}

func (r *Repo) HasItem(ctx context.Context, orderID int, itemName string) (bool, error) {
	var n int
	err := r.DB.QueryRow(ctx, `
		SELECT COUNT(*) FROM item_status
		WHERE order_id = $1 AND item_name = $2`, orderID, itemName).Scan(&n)
	return n > 0, err
}

// AddItem inserts a line item and recomputes the order total, both in one
// transaction. The caller is expected to have checked for duplicates, but the
// insert races are harmless: the recompute never trusts the stored total.
func (r *Repo) AddItem(ctx context.Context, orderID int, itemName, comment string) error {
	tx, err := r.DB.BeginTx(ctx, pgx.TxOptions{})
	if err != nil {
		return err
	}
	defer func() { _ = tx.Rollback(ctx) }()

	_, err = tx.Exec(ctx, `
		INSERT INTO item_status(order_id, item_name, last_updated, status, comments)
		VALUES ($1, $2, $3, $4, $5)`,
		orderID, itemName, time.Now(), DefaultStatus, comment)
	if err != nil {
		return err
	}
	if _, err := tx.Exec(ctx, totalSQL, orderID); err != nil {
		return err
	}
	return tx.Commit(ctx)
}

// DeleteItem removes a line item and recomputes the order total in one
// transaction.
func (r *Repo) DeleteItem(ctx context.Context, orderID int, itemName string) error {
	tx, err := r.DB.BeginTx(ctx, pgx.TxOptions{})
	if err != nil {
		return err
	}
	defer func() { _ = tx.Rollback(ctx) }()

	ct, err := tx.Exec(ctx, `
		DELETE FROM item_status WHERE order_id = $1 AND item_name = $2`,
		orderID, itemName)
	if err != nil {
		return err
	}
	if ct.RowsAffected() == 0 {
		return ErrItemNotOnOrder
	}
	if _, err := tx.Exec(ctx, totalSQL, orderID); err != nil {
		return err
	}
	return tx.Commit(ctx)
}

// UpdateComment overwrites a line item's comment. The total is untouched.
func (r *Repo) UpdateComment(ctx context.Context, orderID int, itemName, comment string) error {
	ct, err := r.DB.Exec(ctx, `
		UPDATE item_status SET comments = $1, last_updated = $2
		WHERE order_id = $3 AND item_name = $4`,
		comment, time.Now(), orderID, itemName)
	if err != nil {
		return err
	}
	if ct.RowsAffected() == 0 {
		return ErrItemNotOnOrder
	}
	return nil
}

// MarkPaid sets the paid flag unconditionally, so marking twice is a no-op.
func (r *Repo) MarkPaid(ctx context.Context, orderID int) error {
	ct, err := r.DB.Exec(ctx,
		`UPDATE orders SET paid = TRUE WHERE order_id = $1`, orderID)
	if err != nil {
		return err
	}
	if ct.RowsAffected() == 0 {
		return ErrNotFound
	}
	return nil
}

// Delete removes the order's line items first, then the header, in one
// transaction, so no orphaned line items can survive.
func (r *Repo) Delete(ctx context.Context, orderID int) error {
	tx, err := r.DB.BeginTx(ctx, pgx.TxOptions{})
	if err != nil {
		return err
	}
	defer func() { _ = tx.Rollback(ctx) }()

	if _, err := tx.Exec(ctx, `DELETE FROM item_status WHERE order_id = $1`, orderID); err != nil {
		return err
	}
	ct, err := tx.Exec(ctx, `DELETE FROM orders WHERE order_id = $1`, orderID)
	if err != nil {
		return err
	}
	if ct.RowsAffected() == 0 {
		return ErrNotFound
	}
	return tx.Commit(ctx)
}
