package shell

import (
	"context"
	"errors"
	"strconv"
	"strings"

	"cafe/internal/menu"
	"cafe/internal/orders"
)

func (s *Shell) updateOrder(ctx context.Context, actor string) error {
	isManager, err := s.users.IsManager(ctx, actor)
	if err != nil {
		return s.abandon(err)
	}

	s.println("\nUPDATE ORDER")
	s.println("---------")
	s.println("1. Modify an order")
	s.println("2. Delete an order")
	if isManager {
		s.println("3. View all orders within 24 hours")
	}
	s.println(".........................")
	s.println("9. Return to Main Menu")

	choice, err := s.readChoice()
	if err != nil {
		return err
	}
	switch choice {
	case 1:
		return s.modifyOrder(ctx, actor, isManager)
	case 2:
		return s.deleteOrder(ctx, actor)
	case 3:
		if !isManager {
			s.println("Unrecognized choice!")
			return nil
		}
		return s.printOrdersWithin24h(ctx)
	case 9:
	default:
		s.println("Unrecognized choice!")
	}
	return nil
}

func (s *Shell) printOrders(list []orders.Order) {
	s.printf("%-10s %-20s %-6s %-20s %10s\n", "ORDER ID", "LOGIN", "PAID", "RECEIVED", "TOTAL")
	for _, o := range list {
		s.printf("%-10d %-20s %-6t %-20s %10s\n",
			o.ID, o.Login, o.Paid, o.ReceivedAt.Format("2006-01-02 15:04:05"),
			o.Total.StringFixed(2))
	}
	s.printf("(%d orders)\n", len(list))
}

func (s *Shell) printOrdersWithin24h(ctx context.Context) error {
	list, err := s.orders.WithinLast24h(ctx)
	if err != nil {
		return s.abandon(err)
	}
	s.println("\nOrders received within the last 24 hours:")
	s.printOrders(list)
	return nil
}

// selectOrder shows the actor's five most recent orders, then asks for an
// order id until it names an existing order the actor may edit, or until the
// actor backs out with 9. The zero Order with ok=false means "backed out".
func (s *Shell) selectOrder(ctx context.Context, actor string) (orders.Order, bool, error) {
	recent, err := s.orders.RecentByLogin(ctx, actor, 5)
	if err != nil {
		return orders.Order{}, false, s.abandon(err)
	}
	s.println("\nYour five most recent orders:")
	s.printOrders(recent)

	for {
		line, err := s.prompt("\nEnter an order ID ('9' to go back): ")
		if err != nil {
			return orders.Order{}, false, err
		}
		line = strings.TrimSpace(line)
		if line == "9" {
			return orders.Order{}, false, nil
		}
		id, aerr := strconv.Atoi(line)
		if aerr != nil {
			s.println("Your input is invalid!")
			continue
		}
		o, err := s.orders.Get(ctx, id)
		if errors.Is(err, orders.ErrNotFound) {
			s.println("Order not found, please try again.")
			continue
		}
		if err != nil {
			return orders.Order{}, false, s.abandon(err)
		}
		ok, err := orders.CanEdit(ctx, s.users, actor, o)
		if err != nil {
			return orders.Order{}, false, s.abandon(err)
		}
		if !ok {
			s.println("You may only modify your own unpaid orders.")
			continue
		}
		return o, true, nil
	}
}

func (s *Shell) modifyOrder(ctx context.Context, actor string, isManager bool) error {
	o, ok, err := s.selectOrder(ctx, actor)
	if err != nil || !ok {
		return err
	}

	for {
		s.printf("\nEDIT ORDER #%d\n", o.ID)
		s.println("---------")
		s.println("1. View order")
		s.println("2. Add an item")
		s.println("3. Delete an item")
		s.println("4. Update an item comment")
		if isManager {
			s.println("5. Mark as paid")
		}
		s.println(".........................")
		s.println("9. Return to Main Menu")

		choice, err := s.readChoice()
		if err != nil {
			return err
		}
		switch choice {
		case 1:
			err = s.viewOrder(ctx, o.ID)
		case 2:
			err = s.addOrderItem(ctx, o.ID)
		case 3:
			err = s.deleteOrderItem(ctx, o.ID)
		case 4:
			err = s.updateItemComment(ctx, o.ID)
		case 5:
			if !isManager {
				s.println("Unrecognized choice!")
				continue
			}
			if err := s.orders.MarkPaid(ctx, o.ID); err != nil {
				return s.abandon(err)
			}
			s.println("\nOrder marked as paid.")
		case 9:
			return nil
		default:
			s.println("Unrecognized choice!")
			continue
		}
		if err != nil {
			return err
		}
	}
}

func (s *Shell) viewOrder(ctx context.Context, orderID int) error {
	items, err := s.orders.Items(ctx, orderID)
	if err != nil {
		return s.abandon(err)
	}
	o, err := s.orders.Get(ctx, orderID)
	if err != nil {
		return s.abandon(err)
	}
	s.printf("\nOrder #%d:\n-------------------------\n", orderID)
	for _, li := range items {
		s.printf("%-50s %-20s", li.ItemName, li.Status)
		if li.Comment != "" {
			s.printf("  (%s)", li.Comment)
		}
		s.println()
	}
	s.printf("Total: $%s\n", o.Total.StringFixed(2))
	return nil
}

func (s *Shell) addOrderItem(ctx context.Context, orderID int) error {
	for {
		name, err := s.prompt("\nEnter an item name ('MENU' to see the menu, 'DONE' to cancel): ")
		if err != nil {
			return err
		}
		if isDone(name) {
			return nil
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
		onOrder, err := s.orders.HasItem(ctx, orderID, item.Name)
		if err != nil {
			return s.abandon(err)
		}
		if onOrder {
			s.println("That item is already on this order.")
			continue
		}
		comment, err := s.readComment()
		if err != nil {
			return err
		}
		if err := s.orders.AddItem(ctx, orderID, item.Name, comment); err != nil {
			return s.abandon(err)
		}
		s.println("\nItem added to the order!")
		return s.viewOrder(ctx, orderID)
	}
}

func (s *Shell) deleteOrderItem(ctx context.Context, orderID int) error {
	name, err := s.prompt("\nEnter the name of the item to remove: ")
	if err != nil {
		return err
	}
	err = s.orders.DeleteItem(ctx, orderID, name)
	if errors.Is(err, orders.ErrItemNotOnOrder) {
		s.println("That item is not on this order.")
		return nil
	}
	if err != nil {
		return s.abandon(err)
	}
	s.println("\nItem removed from the order!")
	return s.viewOrder(ctx, orderID)
}

func (s *Shell) updateItemComment(ctx context.Context, orderID int) error {
	name, err := s.prompt("\nEnter the name of the item to comment on: ")
	if err != nil {
		return err
	}
	onOrder, err := s.orders.HasItem(ctx, orderID, name)
	if err != nil {
		return s.abandon(err)
	}
	if !onOrder {
		s.println("That item is not on this order.")
		return nil
	}
	comment, err := s.readComment()
	if err != nil {
		return err
	}
	if err := s.orders.UpdateComment(ctx, orderID, name, comment); err != nil {
		return s.abandon(err)
	}
	s.println("\nComment updated!")
	return nil
}

func (s *Shell) deleteOrder(ctx context.Context, actor string) error {
	o, ok, err := s.selectOrder(ctx, actor)
	if err != nil || !ok {
		return err
	}
	confirm, err := s.prompt("Are you sure you want to delete this order? (Y/N): ")
	if err != nil {
		return err
	}
	confirm = strings.TrimSpace(confirm)
	if !strings.EqualFold(confirm, "Y") && !strings.EqualFold(confirm, "yes") {
		s.println("Deletion cancelled.")
		return nil
	}
	if err := s.orders.Delete(ctx, o.ID); err != nil {
		return s.abandon(err)
	}
	s.println("\nOrder deleted!")
	return nil
}
