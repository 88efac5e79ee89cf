package config

import (
	"fmt"
	"os"
)

func GetDSN() string {
	DATABASE_HOST := os.Getenv("DATABASE_HOST")
	DATABASE_PORT := os.Getenv("DATABASE_PORT")
	DATABASE_SSLMODE := os.Getenv("DATABASE_SSLMODE")
	DATABASE_TIMEZONE := os.Getenv("DATABASE_TIMEZONE")
	DATABASE_USER := os.Getenv("DATABASE_USER")
	DATABASE_PASSWORD := os.Getenv("DATABASE_PASSWORD")
	DATABASE_NAME := os.Getenv("DATABASE_NAME")
	dsn := fmt.Sprintf("host=%s user=%s password=%s dbname=%s port=%s sslmode=%s TimeZone=%s", DATABASE_HOST, DATABASE_USER, DATABASE_PASSWORD, DATABASE_NAME, DATABASE_PORT, DATABASE_SSLMODE, DATABASE_TIMEZONE)
	return dsn
}

// Booking dates carry no time component.
const DATE_PARSE_FORMAT = "2006-01-02"

const PAYMENT_CURRENCY = "ETB"

func ChapaBaseURL() string {
	return os.Getenv("CHAPA_BASE_URL")
}

func ChapaSecretKey() string {
	return os.Getenv("CHAPA_SECRET_KEY")
}

func APIHost() string {
	return os.Getenv("API_HOST")
}

func SMTPFrom() string {
	return os.Getenv("SMTP_FROM")
}
