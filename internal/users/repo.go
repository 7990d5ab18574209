package users

import (
	"context"
	"errors"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

var ErrNotFound = errors.New("user not found")

type Repo struct{ DB *pgxpool.Pool }

func (r *Repo) Exists(ctx context.Context, login string) (bool, error) {
	var n int
	err := r.DB.QueryRow(ctx,
		`SELECT COUNT(*) FROM users WHERE login = $1`, login).Scan(&n)
	return n > 0, err
}

func (r *Repo) Create(ctx context.Context, u User) error {
	_, err := r.DB.Exec(ctx, `
		INSERT INTO users(phone_num, login, password, fav_items, type)
		VALUES ($1, $2, $3, $4, $5)`,
		u.Phone, u.Login, u.Password, u.FavItems, string(u.Role))
	return err
}

// Authenticate reports whether an exact (login, password) pair exists.
func (r *Repo) Authenticate(ctx context.Context, login, password string) (bool, error) {
	var n int
	err := r.DB.QueryRow(ctx,
		`SELECT COUNT(*) FROM users WHERE login = $1 AND password = $2`,
		login, password).Scan(&n)
	return n > 0, err
}

func (r *Repo) IsManager(ctx context.Context, login string) (bool, error) {
	var n int
	err := r.DB.QueryRow(ctx,
		`SELECT COUNT(*) FROM users WHERE login = $1 AND type = $2`,
		login, string(RoleManager)).Scan(&n)
	return n > 0, err
}

func (r *Repo) UpdatePassword(ctx context.Context, login, password string) error {
	return r.update(ctx, `UPDATE users SET password = $1 WHERE login = $2`, password, login)
}

func (r *Repo) UpdatePhone(ctx context.Context, login, phone string) error {
	return r.update(ctx, `UPDATE users SET phone_num = $1 WHERE login = $2`, phone, login)
}

func (r *Repo) UpdateFavorites(ctx context.Context, login, favItems string) error {
	return r.update(ctx, `UPDATE users SET fav_items = $1 WHERE login = $2`, favItems, login)
}

func (r *Repo) Favorites(ctx context.Context, login string) (string, error) {
	var fav string
	err := r.DB.QueryRow(ctx,
		`SELECT fav_items FROM users WHERE login = $1`, login).Scan(&fav)
	if errors.Is(err, pgx.ErrNoRows) {
		return "", ErrNotFound
	}
	return fav, err
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
