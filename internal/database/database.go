package database

import (
	"fmt"
	"log"
	"os"
	"strings"
	"time"

	"gamebeats/backend/internal/models"

	"gorm.io/driver/postgres"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

const (
	DriverPostgres = "postgres"
	DriverSQLite   = "sqlite"
)

var DB *gorm.DB

// Open opens a connection for the given driver without migrating.
func Open(driver, dsn string) (*gorm.DB, error) {
	// Configure GORM logger
	customLogger := logger.New(
		log.New(os.Stdout, "\r\n", log.LstdFlags), // io writer
		logger.Config{
			SlowThreshold:             200 * time.Millisecond, // Slow SQL threshold
			LogLevel:                  logger.Warn,            // Log level
			IgnoreRecordNotFoundError: true,                   // Ignore ErrRecordNotFound error for logger
			Colorful:                  true,                   // Enable color
		},
	)

	var dialector gorm.Dialector
	switch driver {
	case DriverPostgres, "":
		dialector = postgres.Open(dsn)
	case DriverSQLite:
		dialector = sqlite.Open(sqliteDSN(dsn))
	default:
		return nil, fmt.Errorf("unsupported database driver %q", driver)
	}

	return gorm.Open(dialector, &gorm.Config{
		Logger:         customLogger,
		TranslateError: true,
	})
}

// sqliteOptions turns on foreign key enforcement, which cascading deletes rely
// on, and makes transactions take the write lock at BEGIN. A deferred
// transaction that reads and then writes cannot wait on the busy timeout when
// another writer holds the lock; it fails with "database is locked" instead.
const sqliteOptions = "_foreign_keys=on&_busy_timeout=5000&_txlock=immediate"

func sqliteDSN(dsn string) string {
	if dsn == "" {
		dsn = "gamebeats.db"
	}
	if strings.Contains(dsn, "?") {
		return dsn + "&" + sqliteOptions
	}
	return dsn + "?" + sqliteOptions
}

// Migrate creates or updates the catalog schema.
func Migrate(db *gorm.DB) error {
	return db.AutoMigrate(
		&models.Game{},
		&models.Category{},
		&models.GameCategoryRelation{},
		&models.Song{},
		&models.SongRating{},
	)
}

// Connect initializes the database connection and runs migrations.
func Connect(driver, dsn string) *gorm.DB {
	var err error

	DB, err = Open(driver, dsn)
	if err != nil {
		log.Fatalf("Failed to connect to database: %v", err)
	}

	log.Println("Database connection established.")

	// Run migrations
	if err := Migrate(DB); err != nil {
		log.Fatalf("Failed to migrate database: %v", err)
	}

	log.Println("Database migrated successfully.")
	return DB
}
