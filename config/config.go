package config

import (
	"log"
	"os"
	"strconv"
	"time"

	"github.com/go-sql-driver/mysql"
	"github.com/joho/godotenv"
)

// Config holds all externally configurable parameters for the service.
type Config struct {
	DBHost     string
	DBUser     string
	DBPassword string
	DBName     string

	JWTSecret string
	TokenTTL  time.Duration

	AllowedOrigin string
	Port          string

	AuthUsername string
	AuthPassword string
}

// LoadEnv loads environment variables from .env file
func LoadEnv() {
	err := godotenv.Load()
	if err != nil {
		log.Println("Warning: .env file not found, using system environment variables")
	}
}

// GetEnv gets an environment variable or returns a default value if not present
func GetEnv(key, fallback string) string {
	if value, exists := os.LookupEnv(key); exists {
		return value
	}
	return fallback
}

// Load builds the service configuration from the environment.
func Load() *Config {
	cfg := &Config{
		DBHost:        GetEnv("DB_HOST", "localhost:3306"),
		DBUser:        GetEnv("DB_USER", "root"),
		DBPassword:    GetEnv("DB_PASSWORD", ""),
		DBName:        GetEnv("DB_NAME", "shottrack"),
		JWTSecret:     GetEnv("JWT_SECRET", ""),
		AllowedOrigin: GetEnv("ALLOWED_ORIGIN", "http://localhost:5173"),
		Port:          GetEnv("PORT", "8000"),
		AuthUsername:  GetEnv("AUTH_USERNAME", "admin"),
		AuthPassword:  GetEnv("AUTH_PASSWORD", "114514"),
	}

	if cfg.JWTSecret == "" {
		log.Println("⚠️ No JWT_SECRET environment variable set, using insecure default")
		cfg.JWTSecret = "change-me-in-production"
	}

	minutes, err := strconv.Atoi(GetEnv("ACCESS_TOKEN_EXPIRE_MINUTES", "30"))
	if err != nil || minutes <= 0 {
		log.Println("⚠️ Invalid ACCESS_TOKEN_EXPIRE_MINUTES, falling back to 30")
		minutes = 30
	}
	cfg.TokenTTL = time.Duration(minutes) * time.Minute

	return cfg
}

// DSN builds the MySQL connection string from the configured database parameters.
func (c *Config) DSN() string {
	mc := mysql.NewConfig()
	mc.User = c.DBUser
	mc.Passwd = c.DBPassword
	mc.Net = "tcp"
	mc.Addr = c.DBHost
	mc.DBName = c.DBName
	mc.ParseTime = true
	return mc.FormatDSN()
}
