package database

import (
	"log"
	"os"
	"time"

	"github.com/shottrack/models"
	"gorm.io/driver/mysql"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

var DB *gorm.DB

// Initialize sets up the GORM database connection and bootstraps the schema.
func Initialize(dsn string) error {
	// Configure GORM logger
	newLogger := logger.New(
		log.New(os.Stdout, "\r\n", log.LstdFlags),
		logger.Config{
			SlowThreshold:             time.Second,
			LogLevel:                  logger.Warn,
			IgnoreRecordNotFoundError: true,
			ParameterizedQueries:      true,
			Colorful:                  true,
		},
	)

	// Connect to database
	db, err := gorm.Open(mysql.Open(dsn), &gorm.Config{
		Logger: newLogger,
	})
	if err != nil {
		return err
	}

	// Get and configure the underlying SQL DB
	sqlDB, err := db.DB()
	if err != nil {
		return err
	}

	// Set connection pool settings
	sqlDB.SetMaxIdleConns(10)
	sqlDB.SetMaxOpenConns(100)
	sqlDB.SetConnMaxLifetime(time.Hour)

	// Auto migrate models: the projects table is created at startup if absent
	if err := db.AutoMigrate(&models.Project{}); err != nil {
		return err
	}

	DB = db
	log.Println("✅ Connected to database")

	// Print connection info
	rows, err := sqlDB.Query("SELECT VERSION()")
	if err == nil {
		var version string
		if rows.Next() {
			if err := rows.Scan(&version); err == nil {
				log.Printf("📊 Database: MySQL %s", version)
			}
		}
		rows.Close()
	}

	return nil
}
