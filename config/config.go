package config

import (
	"fmt"
	"log"
	"os"
	"strconv"
	"strings"

	"github.com/joho/godotenv"

	"hotel-reservation/utils"
)

// Config holds the file locations and settings the reservation desk runs
// with. Everything comes from the environment, optionally seeded from .env.
type Config struct {
	InventoryFile    string
	ReservationsFile string
	ReceiptStart     int
	HotelName        string
	MetricsFile      string
	SMTP             utils.SMTPSettings
}

const (
	defaultInventoryFile    = "Room Availability.txt"
	defaultReservationsFile = "reservation.txt"
	defaultReceiptStart     = "1001"
	defaultHotelName        = "Aerostop Hotel"
)

func envOrDefault(key, def string) string {
	value := strings.TrimSpace(os.Getenv(key))
	if value == "" {
		return def
	}
	return value
}

// Load reads .env when present and resolves the configuration from the
// environment.
func Load() (*Config, error) {
	if err := godotenv.Load(); err != nil {
		log.Println("⚠️  .env not found or couldn't load it; continuing with environment variables")
	}
	return FromEnv()
}

// FromEnv resolves the configuration from the current environment only.
func FromEnv() (*Config, error) {
	rawStart := envOrDefault("RECEIPT_START", defaultReceiptStart)
	start, err := strconv.Atoi(rawStart)
	if err != nil || start <= 0 {
		return nil, fmt.Errorf("RECEIPT_START must be a positive integer, got %q", rawStart)
	}

	return &Config{
		InventoryFile:    envOrDefault("INVENTORY_FILE", defaultInventoryFile),
		ReservationsFile: envOrDefault("RESERVATIONS_FILE", defaultReservationsFile),
		ReceiptStart:     start,
		HotelName:        envOrDefault("HOTEL_NAME", defaultHotelName),
		MetricsFile:      envOrDefault("METRICS_FILE", ""),
		SMTP: utils.SMTPSettings{
			Host:     envOrDefault("SMTP_HOST", ""),
			Port:     envOrDefault("SMTP_PORT", ""),
			Username: envOrDefault("SMTP_USERNAME", ""),
			Password: envOrDefault("SMTP_PASSWORD", ""),
			FromName: envOrDefault("SMTP_FROM_NAME", defaultHotelName),
		},
	}, nil
}
