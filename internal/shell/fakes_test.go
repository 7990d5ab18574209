package shell

import (
	"context"

	"github.com/shopspring/decimal"

	"cafe/internal/menu"
	"cafe/internal/orders"
	"cafe/internal/users"
)

type fakeUsers struct {
	m map[string]users.User
}

func newFakeUsers(us ...users.User) *fakeUsers {
	f := &fakeUsers{m: map[string]users.User{}}
	for _, u := range us {
		f.m[u.Login] = u
	}
	return f
}

func (f *fakeUsers) Exists(_ context.Context, login string) (bool, error) {
	_, ok := f.m[login]
	return ok, nil
}

func (f *fakeUsers) Create(_ context.Context, u users.User) error {
	f.m[u.Login] = u
	return nil
}

func (f *fakeUsers) Authenticate(_ context.Context, login, password string) (bool, error) {
	u, ok := f.m[login]
	return ok && u.Password == password, nil
}

func (f *fakeUsers) IsManager(_ context.Context, login string) (bool, error) {
	u, ok := f.m[login]
	return ok && u.Role == users.RoleManager, nil
}

func (f *fakeUsers) UpdatePassword(_ context.Context, login, password string) error {
	u := f.m[login]
	u.Password = password
	f.m[login] = u
	return nil
}

func (f *fakeUsers) UpdatePhone(_ context.Context, login, phone string) error {
	u := f.m[login]
	u.Phone = phone
	f.m[login] = u
	return nil
}

func (f *fakeUsers) UpdateFavorites(_ context.Context, login, favItems string) error {
	u := f.m[login]
	u.FavItems = favItems
	f.m[login] = u
	return nil
}

func (f *fakeUsers) Favorites(_ context.Context, login string) (string, error) {
	u, ok := f.m[login]
	if !ok {
		return "", users.ErrNotFound
	}
	return u.FavItems, nil
}

type fakeMenu struct {
	m map[string]menu.Item
}

func newFakeMenu(items ...menu.Item) *fakeMenu {
	f := &fakeMenu{m: map[string]menu.Item{}}
	for _, it := range items {
		f.m[it.Name] = it
	}
	return f
}

func (f *fakeMenu) Exists(_ context.Context, name string) (bool, error) {
	_, ok := f.m[name]
	return ok, nil
}

func (f *fakeMenu) Get(_ context.Context, name string) (menu.Item, error) {
	it, ok := f.m[name]
	if !ok {
		return menu.Item{}, menu.ErrNotFound
	}
	return it, nil
}

func (f *fakeMenu) ByCategory(_ context.Context, cat menu.Category) ([]menu.Item, error) {
	var out []menu.Item
	for _, it := range f.m {
		if it.Type == cat {
			out = append(out, it)
		}
	}
	return out, nil
}

func (f *fakeMenu) Insert(_ context.Context, it menu.Item) error {
	f.m[it.Name] = it
	return nil
}

func (f *fakeMenu) Rename(_ context.Context, name, newName string) error {
	it := f.m[name]
	delete(f.m, name)
	it.Name = newName
	f.m[newName] = it
	return nil
}

func (f *fakeMenu) SetType(_ context.Context, name string, cat menu.Category) error {
	it := f.m[name]
	it.Type = cat
	f.m[name] = it
	return nil
}

func (f *fakeMenu) SetPrice(_ context.Context, name string, price decimal.Decimal) error {
	it := f.m[name]
	it.Price = price
	f.m[name] = it
	return nil
}

func (f *fakeMenu) SetDescription(_ context.Context, name, description string) error {
	it := f.m[name]
	it.Description = description
	f.m[name] = it
	return nil
}

func (f *fakeMenu) SetImageURL(_ context.Context, name, imageURL string) error {
	it := f.m[name]
	it.ImageURL = imageURL
	f.m[name] = it
	return nil
}

func (f *fakeMenu) Delete(_ context.Context, name string) error {
	delete(f.m, name)
	return nil
}

// fakeOrders keeps orders in memory and recomputes totals from the fake
// menu's prices after every item mutation, the same contract the real repo
// honors transactionally.
type fakeOrders struct {
	menu  *fakeMenu
	seq   int
	m     map[int]*orders.Order
	items map[int][]orders.LineItem
}

func newFakeOrders(fm *fakeMenu) *fakeOrders {
	return &fakeOrders{menu: fm, m: map[int]*orders.Order{}, items: map[int][]orders.LineItem{}}
}

// seed registers an existing order with the given line item names.
func (f *fakeOrders) seed(login string, paid bool, itemNames ...string) int {
	f.seq++
	id := f.seq
	f.m[id] = &orders.Order{ID: id, Login: login, Paid: paid}
	for _, name := range itemNames {
		f.items[id] = append(f.items[id], orders.LineItem{
			OrderID: id, ItemName: name, Status: orders.DefaultStatus,
		})
	}
	f.recompute(id)
	return id
}

func (f *fakeOrders) recompute(orderID int) {
	total := decimal.Zero
	for _, li := range f.items[orderID] {
		total = total.Add(f.menu.m[li.ItemName].Price)
	}
	f.m[orderID].Total = total
}

func (f *fakeOrders) Create(_ context.Context, login string, staged *orders.Staging) (int, error) {
	if staged.Empty() {
		return 0, orders.ErrEmptyOrder
	}
	f.seq++
	id := f.seq
	f.m[id] = &orders.Order{ID: id, Login: login, Total: staged.Total()}
	for _, it := range staged.Items() {
		f.items[id] = append(f.items[id], orders.LineItem{
			OrderID: id, ItemName: it.Name, Status: orders.DefaultStatus, Comment: it.Comment,
		})
	}
	return id, nil
}

func (f *fakeOrders) Get(_ context.Context, orderID int) (orders.Order, error) {
	o, ok := f.m[orderID]
	if !ok {
		return orders.Order{}, orders.ErrNotFound
	}
	return *o, nil
}

func (f *fakeOrders) RecentByLogin(_ context.Context, login string, limit int) ([]orders.Order, error) {
	var out []orders.Order
	for _, o := range f.m {
		if o.Login == login && len(out) < limit {
			out = append(out, *o)
		}
	}
	return out, nil
}

func (f *fakeOrders) WithinLast24h(_ context.Context) ([]orders.Order, error) {
	var out []orders.Order
	for _, o := range f.m {
		out = append(out, *o)
	}
	return out, nil
}

func (f *fakeOrders) Items(_ context.Context, orderID int) ([]orders.LineItem, error) {
	return f.items[orderID], nil
}

func (f *fakeOrders) HasItem(_ context.Context, orderID int, itemName string) (bool, error) {
	for _, li := range f.items[orderID] {
		if li.ItemName == itemName {
			return true, nil
		}
	}
	return false, nil
}

func (f *fakeOrders) AddItem(_ context.Context, orderID int, itemName, comment string) error {
	f.items[orderID] = append(f.items[orderID], orders.LineItem{
		OrderID: orderID, ItemName: itemName, Status: orders.DefaultStatus, Comment: comment,
	})
	f.recompute(orderID)
	return nil
}

func (f *fakeOrders) DeleteItem(_ context.Context, orderID int, itemName string) error {
	items := f.items[orderID]
	for i, li := range items {
		if li.ItemName == itemName {
			f.items[orderID] = append(items[:i:i], items[i+1:]...)
			f.recompute(orderID)
			return nil
		}
	}
	return orders.ErrItemNotOnOrder
}

func (f *fakeOrders) UpdateComment(_ context.Context, orderID int, itemName, comment string) error {
	for i, li := range f.items[orderID] {
		if li.ItemName == itemName {
			f.items[orderID][i].Comment = comment
			return nil
		}
	}
	return orders.ErrItemNotOnOrder
}

func (f *fakeOrders) MarkPaid(_ context.Context, orderID int) error {
	o, ok := f.m[orderID]
	if !ok {
		return orders.ErrNotFound
	}
	o.Paid = true
	return nil
}

func (f *fakeOrders) Delete(_ context.Context, orderID int) error {
	if _, ok := f.m[orderID]; !ok {
		return orders.ErrNotFound
	}
	delete(f.items, orderID)
	delete(f.m, orderID)
	return nil
}
