package menu

import (
	"strings"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
)

func validItem() Item {
	return Item{
		Name:        "Coffee",
		Type:        CategoryDrinks,
		Price:       decimal.RequireFromString("2.50"),
		Description: "House blend",
		ImageURL:    "http://img/coffee",
	}
}

func TestItemValidate(t *testing.T) {
	assert.NoError(t, validItem().Validate())

	long := validItem()
	long.Name = strings.Repeat("x", MaxNameLen+1)
	assert.Error(t, long.Validate())

	badType := validItem()
	badType.Type = "Pasta"
	assert.Error(t, badType.Validate())

	negative := validItem()
	negative.Price = decimal.RequireFromString("-0.01")
	assert.Error(t, negative.Validate())

	free := validItem()
	free.Price = decimal.Zero
	assert.NoError(t, free.Validate())

	longDesc := validItem()
	longDesc.Description = strings.Repeat("d", MaxDescriptionLen+1)
	assert.Error(t, longDesc.Validate())

	longURL := validItem()
	longURL.ImageURL = strings.Repeat("u", MaxImageURLLen+1)
	assert.Error(t, longURL.Validate())

	noName := validItem()
	noName.Name = ""
	assert.Error(t, noName.Validate())
}

func TestValidCategory(t *testing.T) {
	assert.True(t, ValidCategory("Drinks"))
	assert.True(t, ValidCategory("Sweets"))
	assert.True(t, ValidCategory("Soup"))
	assert.False(t, ValidCategory("drinks"))
	assert.False(t, ValidCategory(""))
}
