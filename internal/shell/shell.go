package shell

import (
	"bufio"
	"context"
	"io"

	"github.com/shopspring/decimal"

	"cafe/internal/menu"
	"cafe/internal/orders"
	"cafe/internal/users"
)

// UserStore is what the shell needs from the user repository.
type UserStore interface {
	Exists(ctx context.Context, login string) (bool, error)
	Create(ctx context.Context, u users.User) error
	Authenticate(ctx context.Context, login, password string) (bool, error)
	IsManager(ctx context.Context, login string) (bool, error)
	UpdatePassword(ctx context.Context, login, password string) error
	UpdatePhone(ctx context.Context, login, phone string) error
	UpdateFavorites(ctx context.Context, login, favItems string) error
	Favorites(ctx context.Context, login string) (string, error)
}

// MenuStore is what the shell needs from the menu repository.
type MenuStore interface {
	Exists(ctx context.Context, name string) (bool, error)
	Get(ctx context.Context, name string) (menu.Item, error)
	ByCategory(ctx context.Context, cat menu.Category) ([]menu.Item, error)
	Insert(ctx context.Context, it menu.Item) error
	Rename(ctx context.Context, name, newName string) error
	SetType(ctx context.Context, name string, cat menu.Category) error
	SetPrice(ctx context.Context, name string, price decimal.Decimal) error
	SetDescription(ctx context.Context, name, description string) error
	SetImageURL(ctx context.Context, name, imageURL string) error
	Delete(ctx context.Context, name string) error
}

// OrderStore is what the shell needs from the order repository.
type OrderStore interface {
	Create(ctx context.Context, login string, staged *orders.Staging) (int, error)
	Get(ctx context.Context, orderID int) (orders.Order, error)
	RecentByLogin(ctx context.Context, login string, limit int) ([]orders.Order, error)
	WithinLast24h(ctx context.Context) ([]orders.Order, error)
	Items(ctx context.Context, orderID int) ([]orders.LineItem, error)
	HasItem(ctx context.Context, orderID int, itemName string) (bool, error)
	AddItem(ctx context.Context, orderID int, itemName, comment string) error
	DeleteItem(ctx context.Context, orderID int, itemName string) error
	UpdateComment(ctx context.Context, orderID int, itemName, comment string) error
	MarkPaid(ctx context.Context, orderID int) error
	Delete(ctx context.Context, orderID int) error
}

// Shell drives the interactive menus over an injected pair of streams, so
// sessions can be scripted in tests.
type Shell struct {
	in     *bufio.Scanner
	out    io.Writer
	errOut io.Writer

	users  UserStore
	menu   MenuStore
	orders OrderStore

	session string
}

func New(in io.Reader, out, errOut io.Writer, us UserStore, ms MenuStore, ors OrderStore) *Shell {
	return &Shell{
		in:     bufio.NewScanner(in),
		out:    out,
		errOut: errOut,
		users:  us,
		menu:   ms,
		orders: ors,
	}
}
