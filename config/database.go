package config

import (
	"fmt"

	"go.uber.org/zap"
	"gorm.io/driver/mysql"
	"gorm.io/gorm"

	"github.com/Inaglyite/secondhand-books-api/logger"
	"github.com/Inaglyite/secondhand-books-api/models"
)

var DB *gorm.DB

// ConnectDatabase establishes a connection to the MySQL database
func ConnectDatabase(cfg *Config) error {
	db, err := gorm.Open(mysql.Open(cfg.DSN()), &gorm.Config{})
	if err != nil {
		return fmt.Errorf("failed to connect to database: %w", err)
	}

	DB = db
	logger.Log.Info("Database connection established successfully")
	return nil
}

// GetDB returns the database instance
func GetDB() *gorm.DB {
	return DB
}

// SetDB replaces the database instance (used by tests)
func SetDB(db *gorm.DB) {
	DB = db
}

// Migrate creates or updates all tables. Safe to run on every start.
func Migrate(db *gorm.DB) error {
	return db.AutoMigrate(
		&models.User{},
		&models.BookCategory{},
		&models.Book{},
		&models.BookImage{},
		&models.Order{},
		&models.Courier{},
		&models.DeliveryTask{},
		&models.Favorite{},
		&models.Review{},
		&models.ChatSession{},
		&models.ChatMessage{},
		&models.Announcement{},
	)
}

// EnsureLegacyColumns patches schemas created before users.hashed_password
// existed. Older MySQL servers reject ADD COLUMN IF NOT EXISTS, so fall back
// to probing information_schema. Failures are logged and swallowed: the
// process starts degraded rather than refusing to come up.
func EnsureLegacyColumns(db *gorm.DB, dbName string) {
	err := db.Exec("ALTER TABLE users ADD COLUMN IF NOT EXISTS hashed_password VARCHAR(128) NULL").Error
	if err == nil {
		return
	}

	var count int64
	probe := db.Raw(
		"SELECT COUNT(*) FROM information_schema.COLUMNS WHERE TABLE_SCHEMA = ? AND TABLE_NAME = 'users' AND COLUMN_NAME = 'hashed_password'",
		dbName,
	).Scan(&count)
	if probe.Error != nil {
		logger.Log.Warn("Unable to ensure hashed_password column", zap.Error(probe.Error))
		return
	}
	if count > 0 {
		return
	}
	if err := db.Exec("ALTER TABLE users ADD COLUMN hashed_password VARCHAR(128) NULL").Error; err != nil {
		logger.Log.Warn("Unable to ensure hashed_password column", zap.Error(err))
	}
}
