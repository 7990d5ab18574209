package orders

import (
	"strings"

	"github.com/shopspring/decimal"
)

// StagedItem is one entry of an order being assembled, before anything is
// written to the database.
type StagedItem struct {
	Name    string
	Price   decimal.Decimal
	Comment string
}

// Staging accumulates items while a customer places an order. Nothing is
// persisted until the whole staging list is handed to Repo.Create.
type Staging struct {
	items []StagedItem
}

func NewStaging() *Staging {
	return &Staging{}
}

func (s *Staging) Add(name string, price decimal.Decimal, comment string) error {
	if s.Has(name) {
		return ErrDuplicateItem
	}
	s.items = append(s.items, StagedItem{Name: name, Price: price, Comment: comment})
	return nil
}

func (s *Staging) Has(name string) bool {
	for _, it := range s.items {
		if it.Name == name {
			return true
		}
	}
	return false
}

func (s *Staging) Items() []StagedItem { return s.items }

func (s *Staging) Empty() bool { return len(s.items) == 0 }

func (s *Staging) Total() decimal.Decimal {
	total := decimal.Zero
	for _, it := range s.items {
		total = total.Add(it.Price)
	}
	return total
}

// NormalizeComment applies the comment convention: the literal token "None"
// (any case) means no comment.
func NormalizeComment(comment string) string {
	if strings.EqualFold(strings.TrimSpace(comment), "None") {
		return ""
	}
	return comment
}
