package shell

import (
	"context"
	"errors"
	"log"
	"strings"
	"unicode/utf8"

	"cafe/internal/menu"
	"cafe/internal/orders"
)

// isDone recognizes the sentinels that end item entry.
func isDone(line string) bool {
	switch strings.ToUpper(strings.TrimSpace(line)) {
	case "DONE", "QUIT", "Q":
		return true
	}
	return false
}

// isMenuEscape recognizes the inline request to reprint the catalog.
func isMenuEscape(line string) bool {
	return strings.EqualFold(strings.TrimSpace(line), "MENU")
}

// readComment reads a line item comment: re-prompts past the length cap and
// normalizes the "None" token to an empty comment.
func (s *Shell) readComment() (string, error) {
	comment, err := s.prompt("Any comments for this item? (or 'None'): ")
	if err != nil {
		return "", err
	}
	for utf8.RuneCountInString(comment) > orders.MaxCommentLen {
		comment, err = s.prompt("Comments must be less than 130 characters. Try again: ")
		if err != nil {
			return "", err
		}
	}
	return orders.NormalizeComment(comment), nil
}

func (s *Shell) printStaged(staged *orders.Staging) {
	s.println("\nYour order so far:")
	s.println("-------------------------")
	for _, it := range staged.Items() {
		s.printf("%-50s $%8s", it.Name, it.Price.StringFixed(2))
		if it.Comment != "" {
			s.printf("  (%s)", it.Comment)
		}
		s.println()
	}
	s.printf("Total: $%s\n", staged.Total().StringFixed(2))
}

// placeOrder assembles an order item by item and writes it only once the
// customer is done. Ending the session with nothing staged writes nothing.
func (s *Shell) placeOrder(ctx context.Context, login string) error {
	staged := orders.NewStaging()
	for {
		name, err := s.prompt("\nEnter an item name ('MENU' to see the menu, 'DONE' to finish): ")
		if err != nil {
			return err
		}
		if isDone(name) {
			break
		}
		if isMenuEscape(name) {
			if err := s.printCatalog(ctx); err != nil {
				return err
			}
			continue
		}
		item, err := s.menu.Get(ctx, name)
		if errors.Is(err, menu.ErrNotFound) {
			s.println("Item not found, please try again.")
			continue
		}
		if err != nil {
			return s.abandon(err)
		}
		if staged.Has(item.Name) {
			s.println("That item is already on this order.")
			continue
		}
		comment, err := s.readComment()
		if err != nil {
			return err
		}
		if err := staged.Add(item.Name, item.Price, comment); err != nil {
			s.println("That item is already on this order.")
			continue
		}
		s.printStaged(staged)
	}

	if staged.Empty() {
		s.println("No items ordered.")
		return nil
	}

	orderID, err := s.orders.Create(ctx, login, staged)
	if err != nil {
		return s.abandon(err)
	}
	log.Printf("session %s: order %d placed by %s", s.session, orderID, login)
	s.printf("\nOrder placed! Your order ID is %d. Total: $%s\n",
		orderID, staged.Total().StringFixed(2))
	return nil
}
