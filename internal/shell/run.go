package shell

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log"

	"github.com/google/uuid"

	"cafe/internal/users"
)

func (s *Shell) greeting() {
	s.println("\n\n*******************************************************")
	s.println("              Cafe User Interface")
	s.println("*******************************************************")
}

// Run drives the top-level menu until the user exits or the input stream
// ends. Database failures inside an operation abandon that operation and fall
// back here; they never terminate the shell.
func (s *Shell) Run(ctx context.Context) error {
	s.greeting()
	for {
		s.println("\nMAIN MENU")
		s.println("---------")
		s.println("1. Create user")
		s.println("2. Log in")
		s.println("9. < EXIT")
		choice, err := s.readChoice()
		if err != nil {
			return err
		}
		switch choice {
		case 1:
			if err := s.createUser(ctx); err != nil {
				return err
			}
		case 2:
			login, err := s.logIn(ctx)
			if err != nil {
				return err
			}
			if login != "" {
				if err := s.userMenu(ctx, login); err != nil {
					return err
				}
			}
		case 9:
			return nil
		default:
			s.println("Unrecognized choice, try again.")
		}
	}
}

// abandon reports a failed database operation and hands control back to the
// enclosing menu loop. The operation is not retried.
func (s *Shell) abandon(err error) error {
	fmt.Fprintln(s.errOut, err)
	return nil
}

// unwindOrAbandon sorts errors out of mixed prompt-and-query loops: a dead
// input stream unwinds the shell, anything else abandons the operation.
func (s *Shell) unwindOrAbandon(err error) error {
	if errors.Is(err, io.EOF) {
		return err
	}
	return s.abandon(err)
}

func (s *Shell) userMenu(ctx context.Context, login string) error {
	for {
		s.println("\nMAIN MENU")
		s.println("---------")
		s.println("1. Go to Menu")
		s.println("2. Update Profile")
		s.println("3. Place an Order")
		s.println("4. Update an Order")
		s.println(".........................")
		s.println("9. Log Out")
		choice, err := s.readChoice()
		if err != nil {
			return err
		}
		switch choice {
		case 1:
			err = s.menuOptions(ctx, login)
		case 2:
			err = s.updateProfile(ctx, login, login)
		case 3:
			err = s.placeOrder(ctx, login)
		case 4:
			err = s.updateOrder(ctx, login)
		case 9:
			s.println("\nSuccessfully logged out.")
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

func (s *Shell) createUser(ctx context.Context) error {
	login, err := s.prompt("\tEnter user login: ")
	if err != nil {
		return err
	}
	taken, err := s.users.Exists(ctx, login)
	if err != nil {
		return s.abandon(err)
	}
	if taken {
		s.println("Username already taken please try again.")
		return nil
	}
	password, err := s.prompt("\tEnter user password: ")
	if err != nil {
		return err
	}
	if !users.CheckPassword(password) {
		s.println(users.PasswordPolicy)
		return nil
	}
	phone, err := s.prompt("\tEnter user phone: ")
	if err != nil {
		return err
	}
	u := users.User{
		Login:    login,
		Password: password,
		Phone:    phone,
		FavItems: "",
		Role:     users.RoleCustomer,
	}
	if err := s.users.Create(ctx, u); err != nil {
		return s.abandon(err)
	}
	s.println("User successfully created!")
	return nil
}

// logIn returns the authenticated login, or "" when the credentials do not
// match.
func (s *Shell) logIn(ctx context.Context) (string, error) {
	login, err := s.prompt("\nEnter user login: ")
	if err != nil {
		return "", err
	}
	password, err := s.prompt("Enter user password: ")
	if err != nil {
		return "", err
	}
	ok, err := s.users.Authenticate(ctx, login, password)
	if err != nil {
		return "", s.abandon(err)
	}
	if !ok {
		s.println("\nLogin not found! Please try again.")
		return "", nil
	}
	s.session = uuid.NewString()
	log.Printf("session %s: %s logged in", s.session, login)
	s.printf("\nLogin successful. Welcome, %s!\n", login)
	return login, nil
}
