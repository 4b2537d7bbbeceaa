// File: /config/config.go
package config

import (
	"fmt"
	"os"
	"strconv"
	"strings"
)

type Config struct {
	Port       string
	DBURL      string // host:port/database
	DBUser     string
	DBPassword string
	JWTSecret  string

	// Email Configuration
	SMTPHost     string
	SMTPPort     int
	SMTPUsername string
	SMTPPassword string
	FromEmail    string
	FromName     string
}

func Load() *Config {
	smtpPort, _ := strconv.Atoi(getEnv("SMTP_PORT", "2525"))

	return &Config{
		Port:       getEnv("PORT", "8080"),
		DBURL:      getEnv("DB_URL", "localhost:3306/motostock"),
		DBUser:     getEnv("DB_USER", "root"),
		DBPassword: getEnv("DB_PASSWORD", ""),
		JWTSecret:  getEnv("JWT_SECRET", "your-secret-key"),

		// Email settings (notifications are disabled when SMTP_HOST is unset)
		SMTPHost:     getEnv("SMTP_HOST", ""),
		SMTPPort:     smtpPort,
		SMTPUsername: getEnv("SMTP_USERNAME", ""),
		SMTPPassword: getEnv("SMTP_PASSWORD", ""),
		FromEmail:    getEnv("FROM_EMAIL", "noreply@motostock.local"),
		FromName:     getEnv("FROM_NAME", "MotoStock"),
	}
}

// DSN builds the MySQL connection string from the configured address
// and credentials. DBURL carries "host:port/database".
func (c *Config) DSN() string {
	addr, name, found := strings.Cut(c.DBURL, "/")
	if !found {
		name = "motostock"
	}
	return fmt.Sprintf("%s:%s@tcp(%s)/%s?charset=utf8mb4&parseTime=True&loc=Local",
		c.DBUser, c.DBPassword, addr, name)
}

func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}
