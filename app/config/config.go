package config

import (
	"database/sql"
	"fmt"
	"os"

	_ "github.com/lib/pq"
)

// Config holds everything the process needs at start. It is loaded once
// in main and passed down by value; there is no package-level state.
type Config struct {
	Addr            string
	DatabaseURL     string
	JWTSecret       string
	DefaultHostelID string
}

func getenv(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}

// Load reads configuration from the environment.
func Load() Config {
	dbURL := os.Getenv("DATABASE_URL")
	if dbURL == "" {
		dbURL = fmt.Sprintf("host=%s port=%s user=%s password=%s dbname=%s sslmode=%s",
			getenv("PGHOST", "localhost"),
			getenv("PGPORT", "5432"),
			getenv("PGUSER", "postgres"),
			getenv("PGPASSWORD", ""),
			getenv("PGDATABASE", "campuserp"),
			getenv("PGSSLMODE", "disable"),
		)
	}
	return Config{
		Addr:            getenv("LISTEN_ADDR", ":3000"),
		DatabaseURL:     dbURL,
		JWTSecret:       getenv("JWT_SECRET", "campus-erp-secret-key"),
		DefaultHostelID: getenv("DEFAULT_HOSTEL_ID", "H001"),
	}
}

// OpenDB opens and verifies the database connection with pool settings
// applied. The returned handle is shared by reference for the life of
// the process.
func OpenDB(cfg Config) (*sql.DB, error) {
	db, err := sql.Open("postgres", cfg.DatabaseURL)
	if err != nil {
		return nil, err
	}
	db.SetMaxOpenConns(25)
	db.SetMaxIdleConns(5)
	if err := db.Ping(); err != nil {
		db.Close()
		return nil, err
	}
	return db, nil
}
