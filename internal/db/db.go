package db

import (
	"fmt"
	"log"
	"os"
	"strings"
	"syscall"
	"time"

	"golang.org/x/term"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"

	"fornsaga-backend/internal/config"
)

var database *gorm.DB

// InitDBFromConfig opens the PostgreSQL connection described by the loaded
// XML configuration and applies the pool settings.
func InitDBFromConfig(cfg *config.APIConfig) {
	password, err := resolvePassword(cfg.DB.Password)
	if err != nil {
		log.Fatalf("failed to resolve database password: %v", err)
	}

	dsn := fmt.Sprintf("host=%s user=%s password=%s dbname=%s port=%d sslmode=%s TimeZone=%s",
		cfg.DB.Host, cfg.DB.Username, password, cfg.DB.Name, cfg.DB.Port,
		cfg.DB.SSLMode, cfg.Context.TimeZone)

	conn, err := gorm.Open(postgres.Open(dsn), &gorm.Config{})
	if err != nil {
		log.Fatalf("failed to connect to database: %v", err)
	}

	sqlDB, err := conn.DB()
	if err != nil {
		log.Fatalf("failed to access database pool: %v", err)
	}
	if cfg.DB.Pool.MaxOpenConns > 0 {
		sqlDB.SetMaxOpenConns(cfg.DB.Pool.MaxOpenConns)
	}
	if cfg.DB.Pool.MaxIdleConns > 0 {
		sqlDB.SetMaxIdleConns(cfg.DB.Pool.MaxIdleConns)
	}
	if cfg.DB.Pool.ConnMaxLifetime > 0 {
		sqlDB.SetConnMaxLifetime(time.Duration(cfg.DB.Pool.ConnMaxLifetime) * time.Second)
	}

	database = conn
}

// GetDB returns the shared connection.
func GetDB() *gorm.DB {
	return database
}

// Transaction executes a set of operations within a database transaction.
func Transaction(txFunc func(tx *gorm.DB) error) error {
	return database.Transaction(txFunc)
}

// resolvePassword honors the PASSWORD TYPE attribute: "env" reads the named
// environment variable (a .env file is loaded at startup), "prompt" asks on
// the terminal, anything else uses the element text as-is.
func resolvePassword(p config.DBPassword) (string, error) {
	value := strings.TrimSpace(p.Value)
	switch p.Type {
	case "env":
		pw, ok := os.LookupEnv(value)
		if !ok {
			return "", fmt.Errorf("environment variable %s is not set", value)
		}
		return pw, nil
	case "prompt":
		fmt.Print("Database password: ")
		raw, err := term.ReadPassword(int(syscall.Stdin))
		fmt.Println()
		if err != nil {
			return "", err
		}
		return string(raw), nil
	default:
		return value, nil
	}
}
