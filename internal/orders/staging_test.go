package orders

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func d(s string) decimal.Decimal { return decimal.RequireFromString(s) }

func TestStagingTotal(t *testing.T) {
	s := NewStaging()
	assert.True(t, s.Empty())
	assert.True(t, s.Total().IsZero())

	require.NoError(t, s.Add("Coffee", d("2.50"), ""))
	require.NoError(t, s.Add("Soup", d("4.00"), "extra hot"))
	assert.Equal(t, "6.5", s.Total().String())

	require.NoError(t, s.Add("Tea", d("1.75"), ""))
	assert.Equal(t, "8.25", s.Total().String())
	assert.False(t, s.Empty())
	assert.Len(t, s.Items(), 3)
}

func TestStagingRejectsDuplicates(t *testing.T) {
	s := NewStaging()
	require.NoError(t, s.Add("Coffee", d("2.50"), ""))
	err := s.Add("Coffee", d("2.50"), "again")
	assert.ErrorIs(t, err, ErrDuplicateItem)
	assert.Len(t, s.Items(), 1)
	assert.Equal(t, "2.5", s.Total().String())
}

func TestNormalizeComment(t *testing.T) {
	assert.Equal(t, "", NormalizeComment("None"))
	assert.Equal(t, "", NormalizeComment("none"))
	assert.Equal(t, "", NormalizeComment(" NONE "))
	assert.Equal(t, "no sugar", NormalizeComment("no sugar"))
	assert.Equal(t, "", NormalizeComment(""))
}
