package orders

import "context"

// RoleSource answers whether a login holds the Manager role.
type RoleSource interface {
	IsManager(ctx context.Context, login string) (bool, error)
}

// CanEdit is the single authorization rule for every order mutation:
// a manager may act on any order; anyone else only on an order they own
// that has not been paid yet.
func CanEdit(ctx context.Context, roles RoleSource, actor string, o Order) (bool, error) {
	mgr, err := roles.IsManager(ctx, actor)
	if err != nil {
		return false, err
	}
	if mgr {
		return true, nil
	}
	return o.Login == actor && !o.Paid, nil
}
