package shell

import (
	"context"
	"errors"
	"unicode/utf8"

	"github.com/shopspring/decimal"

	"cafe/internal/menu"
)

func (s *Shell) menuOptions(ctx context.Context, login string) error {
	isManager, err := s.users.IsManager(ctx, login)
	if err != nil {
		return s.abandon(err)
	}

	s.println("\nMENU OPTIONS")
	s.println("---------")
	s.println("1. Browse Menu")
	s.println("2. Search By Name")
	s.println("3. Search By Category")
	if isManager {
		s.println("4. Update Menu")
	}
	s.println(".........................")
	s.println("9. Return to Main Menu")

	choice, err := s.readChoice()
	if err != nil {
		return err
	}
	switch choice {
	case 1:
		return s.printCatalog(ctx)
	case 2:
		name, err := s.prompt("\nEnter item name: ")
		if err != nil {
			return err
		}
		it, err := s.menu.Get(ctx, name)
		if errors.Is(err, menu.ErrNotFound) {
			s.println("Item not found, please try again.")
			return nil
		}
		if err != nil {
			return s.abandon(err)
		}
		s.printItem(it)
		s.println("(1 items)")
	case 3:
		cat, err := s.prompt("\nEnter 'Drinks', 'Sweets', or 'Soup': ")
		if err != nil {
			return err
		}
		if !menu.ValidCategory(cat) {
			s.println("Invalid input, please try again.")
			return nil
		}
		return s.printCategory(ctx, menu.Category(cat))
	case 4:
		if !isManager {
			s.println("Unrecognized choice!")
			return nil
		}
		return s.editMenu(ctx)
	case 9:
	default:
		s.println("Unrecognized choice!")
	}
	return nil
}

func (s *Shell) printItem(it menu.Item) {
	s.printf("%-50s $%8s  %s\n", it.Name, it.Price.StringFixed(2), it.Description)
}

func (s *Shell) printCategory(ctx context.Context, cat menu.Category) error {
	s.printf("\n%s:\n-------------------------\n", cat)
	items, err := s.menu.ByCategory(ctx, cat)
	if err != nil {
		return s.abandon(err)
	}
	for _, it := range items {
		s.printItem(it)
	}
	s.printf("(%d items)\n", len(items))
	return nil
}

func (s *Shell) printCatalog(ctx context.Context) error {
	for _, cat := range menu.Categories {
		if err := s.printCategory(ctx, cat); err != nil {
			return err
		}
	}
	return nil
}

func (s *Shell) editMenu(ctx context.Context) error {
	s.println("\nEDIT MENU")
	s.println("---------")
	s.println("1. Add Item")
	s.println("2. Delete Item")
	s.println("3. Update Item")
	s.println(".........................")
	s.println("9. Return to Main Menu")

	choice, err := s.readChoice()
	if err != nil {
		return err
	}
	switch choice {
	case 1:
		return s.addMenuItem(ctx)
	case 2:
		return s.deleteMenuItem(ctx)
	case 3:
		return s.updateMenuItem(ctx)
	case 9:
	default:
		s.println("Unrecognized choice!")
	}
	return nil
}

// readFreshItemName loops until the name is unused and within the length cap.
func (s *Shell) readFreshItemName(ctx context.Context, label string) (string, error) {
	name, err := s.prompt(label)
	if err != nil {
		return "", err
	}
	for {
		taken, err := s.menu.Exists(ctx, name)
		if err != nil {
			return "", err
		}
		if utf8.RuneCountInString(name) <= menu.MaxNameLen && !taken {
			return name, nil
		}
		name, err = s.prompt("Name already exists, or is > 50 characters. Try again: ")
		if err != nil {
			return "", err
		}
	}
}

// readExistingItemName loops until the name matches an item on the menu.
func (s *Shell) readExistingItemName(ctx context.Context, label, retry string) (string, error) {
	name, err := s.prompt(label)
	if err != nil {
		return "", err
	}
	for {
		found, err := s.menu.Exists(ctx, name)
		if err != nil {
			return "", err
		}
		if utf8.RuneCountInString(name) <= menu.MaxNameLen && found {
			return name, nil
		}
		name, err = s.prompt(retry)
		if err != nil {
			return "", err
		}
	}
}

func (s *Shell) readCategory(label string) (menu.Category, error) {
	cat, err := s.prompt(label)
	if err != nil {
		return "", err
	}
	for !menu.ValidCategory(cat) {
		cat, err = s.prompt("Type must be 'Drinks', 'Sweets', or 'Soup'. Try again: ")
		if err != nil {
			return "", err
		}
	}
	return menu.Category(cat), nil
}

func (s *Shell) readCappedLine(label, retry string, maxLen int) (string, error) {
	line, err := s.prompt(label)
	if err != nil {
		return "", err
	}
	for utf8.RuneCountInString(line) > maxLen {
		line, err = s.prompt(retry)
		if err != nil {
			return "", err
		}
	}
	return line, nil
}

func (s *Shell) addMenuItem(ctx context.Context) error {
	name, err := s.readFreshItemName(ctx, "\nEnter the name of the new item: ")
	if err != nil {
		return s.unwindOrAbandon(err)
	}
	cat, err := s.readCategory("Enter the item's type ('Drinks', 'Sweets', or 'Soup'): ")
	if err != nil {
		return err
	}
	priceLine, err := s.prompt("Enter the item's price (exclude '$'): ")
	if err != nil {
		return err
	}
	// A bad price gets one attempt only; the whole add starts over.
	price, perr := decimal.NewFromString(priceLine)
	if perr != nil {
		s.println("Price must be of the form '12.34'. Please re-add the item.")
		return nil
	}
	description, err := s.readCappedLine(
		"Enter the item's description: ",
		"Description must be less than 400 characters. Try again: ",
		menu.MaxDescriptionLen)
	if err != nil {
		return err
	}
	imageURL, err := s.readCappedLine(
		"Enter the item's image URL: ",
		"Image URL must be less than 256 characters. Try again: ",
		menu.MaxImageURLLen)
	if err != nil {
		return err
	}

	it := menu.Item{Name: name, Type: cat, Price: price, Description: description, ImageURL: imageURL}
	if err := it.Validate(); err != nil {
		return s.abandon(err)
	}
	if err := s.menu.Insert(ctx, it); err != nil {
		return s.abandon(err)
	}
	s.println("\nItem added!")
	return nil
}

func (s *Shell) deleteMenuItem(ctx context.Context) error {
	name, err := s.readExistingItemName(ctx,
		"\nEnter the name of the item to delete: ",
		"Name not found, or is > 50 characters. Try again: ")
	if err != nil {
		return s.unwindOrAbandon(err)
	}
	if err := s.menu.Delete(ctx, name); err != nil {
		return s.abandon(err)
	}
	s.println("\nItem deleted!")
	return nil
}

func (s *Shell) updateMenuItem(ctx context.Context) error {
	name, err := s.readExistingItemName(ctx,
		"\nEnter the name of the item to update: ",
		"Item doesn't exist, or is > 50 characters. Try again: ")
	if err != nil {
		return s.unwindOrAbandon(err)
	}

	s.printf("\nUPDATE ITEM MENU (updating '%s')\n", name)
	s.println("---------")
	s.println("1. Update Name")
	s.println("2. Update Type")
	s.println("3. Update Price")
	s.println("4. Update Description")
	s.println("5. Update Image URL")
	s.println(".........................")
	s.println("9. Return to Main Menu")

	choice, err := s.readChoice()
	if err != nil {
		return err
	}
	switch choice {
	case 1:
		newName, err := s.readFreshItemName(ctx, "Enter a new name for '"+name+"': ")
		if err != nil {
			return s.unwindOrAbandon(err)
		}
		if err := s.menu.Rename(ctx, name, newName); err != nil {
			return s.abandon(err)
		}
		s.println("\nName updated!")
	case 2:
		cat, err := s.readCategory("Enter a new type for '" + name + "' ('Drinks', 'Sweets', or 'Soup'): ")
		if err != nil {
			return err
		}
		if err := s.menu.SetType(ctx, name, cat); err != nil {
			return s.abandon(err)
		}
		s.println("\nType updated!")
	case 3:
		priceLine, err := s.prompt("Enter a new price for '" + name + "' (of the form 12.34): ")
		if err != nil {
			return err
		}
		price, perr := decimal.NewFromString(priceLine)
		if perr != nil {
			s.println("Price must be of the form '12.34'. Please restart the update.")
			return nil
		}
		if err := s.menu.SetPrice(ctx, name, price); err != nil {
			return s.abandon(err)
		}
		s.println("\nPrice updated!")
	case 4:
		description, err := s.readCappedLine(
			"Enter a new description for '"+name+"': ",
			"Description must be less than 400 characters. Try again: ",
			menu.MaxDescriptionLen)
		if err != nil {
			return err
		}
		if err := s.menu.SetDescription(ctx, name, description); err != nil {
			return s.abandon(err)
		}
		s.println("\nDescription updated!")
	case 5:
		imageURL, err := s.readCappedLine(
			"Enter a new image URL for '"+name+"': ",
			"Image URL must be less than 256 characters. Try again: ",
			menu.MaxImageURLLen)
		if err != nil {
			return err
		}
		if err := s.menu.SetImageURL(ctx, name, imageURL); err != nil {
			return s.abandon(err)
		}
		s.println("\nImage URL updated!")
	case 9:
	default:
		s.println("Unrecognized choice!")
	}
	return nil
}
