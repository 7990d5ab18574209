package config

import (
	"fmt"
	"os"
)

// Config carries what the connection needs. Database name, port and user come
// from the command line; the rest comes from the environment.
type Config struct {
	DBName     string
	DBPort     string
	DBUser     string
	DBHost     string
	DBPassword string
	SSLMode    string
}

func Load(dbname, port, user string) Config {
	return Config{
		DBName:     dbname,
		DBPort:     port,
		DBUser:     user,
		DBHost:     getenv("CAFE_DB_HOST", "localhost"),
		DBPassword: os.Getenv("CAFE_DB_PASSWORD"),
		SSLMode:    getenv("CAFE_DB_SSLMODE", "disable"),
	}
}

func (c Config) DSN() string {
	return fmt.Sprintf("postgres://%s:%s@%s:%s/%s?sslmode=%s",
		c.DBUser, c.DBPassword, c.DBHost, c.DBPort, c.DBName, c.SSLMode)
}

func getenv(k, def string) string {
	if v := os.Getenv(k); v != "" {
		return v
	}
	return def
}
