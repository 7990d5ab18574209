package shell

import (
	"context"

	"cafe/internal/users"
)

// updateProfile edits target's profile on behalf of actor. Managers may pick
// a different target, which re-enters this menu for that login.
func (s *Shell) updateProfile(ctx context.Context, actor, target string) error {
	isManager, err := s.users.IsManager(ctx, actor)
	if err != nil {
		return s.abandon(err)
	}

	s.printf("\nUPDATE PROFILE OPTIONS (user: %s)\n", target)
	s.println("---------")
	s.println("1. Change Password")
	s.println("2. Change Phone Number")
	s.println("3. Change Favorite Items")
	if isManager {
		s.println("4. Update a different user")
	}
	s.println(".........................")
	s.println("9. Return to Main Menu")

	choice, err := s.readChoice()
	if err != nil {
		return err
	}
	switch choice {
	case 1:
		password, err := s.prompt("\nEnter a new password: ")
		if err != nil {
			return err
		}
		for !users.CheckPassword(password) {
			s.println(users.PasswordPolicy)
			password, err = s.readLine()
			if err != nil {
				return err
			}
		}
		if err := s.users.UpdatePassword(ctx, target, password); err != nil {
			return s.abandon(err)
		}
		s.println("\nYour password has been updated.")
	case 2:
		phone, err := s.prompt("\nEnter a new phone number: ")
		if err != nil {
			return err
		}
		if err := s.users.UpdatePhone(ctx, target, phone); err != nil {
			return s.abandon(err)
		}
		s.println("\nYour phone number has been updated.")
	case 3:
		fav, err := s.users.Favorites(ctx, target)
		if err != nil {
			return s.abandon(err)
		}
		s.println("\nList of your favorite items:")
		s.println(fav)
		s.println("\nPlease enter your new list of favorite items separated by commas.")
		newFav, err := s.readLine()
		if err != nil {
			return err
		}
		if err := s.users.UpdateFavorites(ctx, target, newFav); err != nil {
			return s.abandon(err)
		}
		s.println("\nYour list of favorite items has been updated.")
	case 4:
		if !isManager {
			s.println("Unrecognized choice!")
			return nil
		}
		other, err := s.prompt("\nPlease enter the username of the User you are changing.\n")
		if err != nil {
			return err
		}
		for other != "9" {
			found, err := s.users.Exists(ctx, other)
			if err != nil {
				return s.abandon(err)
			}
			if found {
				return s.updateProfile(ctx, actor, other)
			}
			other, err = s.prompt("Username not found. Please try again or press '9' to quit.\n")
			if err != nil {
				return err
			}
		}
	case 9:
	default:
		s.println("Unrecognized choice!")
	}
	return nil
}
