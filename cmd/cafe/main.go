package main

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log"
	"os"

	"github.com/joho/godotenv"

	"cafe/internal/config"
	"cafe/internal/menu"
	"cafe/internal/orders"
	"cafe/internal/postgres"
	"cafe/internal/shell"
	"cafe/internal/users"
)

func main() {
	if len(os.Args) != 4 {
		fmt.Fprintf(os.Stderr, "Usage: %s <dbname> <port> <user>\n", os.Args[0])
		os.Exit(1)
	}
	_ = godotenv.Load()

	cfg := config.Load(os.Args[1], os.Args[2], os.Args[3])
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	fmt.Print("Connecting to database...")
	db, err := postgres.Connect(ctx, cfg.DSN())
	if err != nil {
		log.Fatalf("unable to connect to database: %v", err)
	}
	fmt.Println(" Done")

	sh := shell.New(os.Stdin, os.Stdout, os.Stderr,
		&users.Repo{DB: db},
		&menu.Repo{DB: db},
		&orders.Repo{DB: db})

	runErr := sh.Run(ctx)

	fmt.Print("\nDisconnecting from the database... ")
	db.Close()
	fmt.Println("Done!\n\nBye!")

	if runErr != nil && !errors.Is(runErr, io.EOF) {
		log.Fatalf("shell: %v", runErr)
	}
}
