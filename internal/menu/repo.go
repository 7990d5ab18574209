package menu

import (
	"context"
	"errors"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/shopspring/decimal"
)

var ErrNotFound = errors.New("menu item not found")

type Repo struct{ DB *pgxpool.Pool }

func (r *Repo) Exists(ctx context.Context, name string) (bool, error) {
	var n int
	err := r.DB.QueryRow(ctx,
		`SELECT COUNT(*) FROM menu WHERE item_name = $1`, name).Scan(&n)
	return n > 0, err
}

func (r *Repo) Get(ctx context.Context, name string) (Item, error) {
	var it Item
	err := r.DB.QueryRow(ctx, `
		SELECT item_name, type, price, description, image_url
		FROM menu WHERE item_name = $1`, name).
		Scan(&it.Name, &it.Type, &it.Price, &it.Description, &it.ImageURL)
	if errors.Is(err, pgx.ErrNoRows) {
		return Item{}, ErrNotFound
	}
	return it, err
}

func (r *Repo) ByCategory(ctx context.Context, cat Category) ([]Item, error) {
	rows, err := r.DB.Query(ctx, `
		SELECT item_name, type, price, description, image_url
		FROM menu WHERE type = $1 ORDER BY item_name`, string(cat))
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var out []Item
	for rows.Next() {
		var it Item
		if err := rows.Scan(&it.Name, &it.Type, &it.Price, &it.Description, &it.ImageURL); err != nil {
			return nil, err
		}
		out = append(out, it)
	}
	return out, rows.Err()
}

func (r *Repo) Price(ctx context.Context, name string) (decimal.Decimal, error) {
	var p decimal.Decimal
	err := r.DB.QueryRow(ctx,
		`SELECT price FROM menu WHERE item_name = $1`, name).Scan(&p)
	if errors.Is(err, pgx.ErrNoRows) {
		return decimal.Decimal{}, ErrNotFound
	}
	return p, err
}

func (r *Repo) Insert(ctx context.Context, it Item) error {
	_, err := r.DB.Exec(ctx, `
		INSERT INTO menu(item_name, type, price, description, image_url)
		VALUES ($1, $2, $3, $4, $5)`,
		it.Name, string(it.Type), it.Price, it.Description, it.ImageURL)
	return err
}

func (r *Repo) Rename(ctx context.Context, name, newName string) error {
	return r.update(ctx, `UPDATE menu SET item_name = $1 WHERE item_name = $2`, newName, name)
}

func (r *Repo) SetType(ctx context.Context, name string, cat Category) error {
	return r.update(ctx, `UPDATE menu SET type = $1 WHERE item_name = $2`, string(cat), name)
}

func (r *Repo) SetPrice(ctx context.Context, name string, price decimal.Decimal) error {
	return r.update(ctx, `UPDATE menu SET price = $1 WHERE item_name = $2`, price, name)
}

func (r *Repo) SetDescription(ctx context.Context, name, description string) error {
	return r.update(ctx, `UPDATE menu SET description = $1 WHERE item_name = $2`, description, name)
}

func (r *Repo) SetImageURL(ctx context.Context, name, imageURL string) error {
	return r.update(ctx, `UPDATE menu SET image_url = $1 WHERE item_name = $2`, imageURL, name)
}

func (r *Repo) Delete(ctx context.Context, name string) error {
	return r.update(ctx, `DELETE FROM menu WHERE item_name = $1`, name)
}

func (r *Repo) update(ctx context.Context, sql string, args ...any) error {
	ct, err := r.DB.Exec(ctx, sql, args...)
	if err != nil {
		return err
	}
	if ct.RowsAffected() == 0 {
		return ErrNotFound
	}
	return nil
}
