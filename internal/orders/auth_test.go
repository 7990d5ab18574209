package orders

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type staticRoles map[string]bool

func (r staticRoles) IsManager(_ context.Context, login string) (bool, error) {
	return r[login], nil
}

func TestCanEdit(t *testing.T) {
	roles := staticRoles{"boss": true}
	ctx := context.Background()

	cases := []struct {
		name  string
		actor string
		order Order
		want  bool
	}{
		{"owner of unpaid order", "alice", Order{Login: "alice", Paid: false}, true},
		{"owner of paid order", "alice", Order{Login: "alice", Paid: true}, false},
		{"stranger", "alice", Order{Login: "bob", Paid: false}, false},
		{"manager on any order", "boss", Order{Login: "bob", Paid: false}, true},
		{"manager on paid order", "boss", Order{Login: "bob", Paid: true}, true},
	}
	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			got, err := CanEdit(ctx, roles, c.actor, c.order)
			require.NoError(t, err)
			assert.Equal(t, c.want, got)
		})
	}
}
