package menu

import "github.com/shopspring/decimal"

type Category string

const (
	CategoryDrinks Category = "Drinks"
	CategorySweets Category = "Sweets"
	CategorySoup   Category = "Soup"
)

// Categories in the order the browse view prints them.
var Categories = []Category{CategoryDrinks, CategorySweets, CategorySoup}

func ValidCategory(s string) bool {
	switch Category(s) {
	case CategoryDrinks, CategorySweets, CategorySoup:
		return true
	}
	return false
}

const (
	MaxNameLen        = 50
	MaxDescriptionLen = 400
	MaxImageURLLen    = 256
)

type Item struct {
	Name        string          `validate:"required,max=50"`
	Type        Category        `validate:"required,oneof=Drinks Sweets Soup"`
	Price       decimal.Decimal `validate:"gte=0"`
	Description string          `validate:"max=400"`
	ImageURL    string          `validate:"max=256"`
}
