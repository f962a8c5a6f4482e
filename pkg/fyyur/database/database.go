package database

import (
	"fmt"
	"strings"
	"time"

	mysqldriver "github.com/go-sql-driver/mysql"
	"gorm.io/driver/mysql"
	"gorm.io/driver/postgres"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

// Supported drivers
const (
	DriverSQLite   = "sqlite"
	DriverPostgres = "postgres"
	DriverMySQL    = "mysql"
)

// Options configures a database connection
type Options struct {
	Driver          string
	DSN             string
	LogLevel        string
	MaxOpenConns    int
	MaxIdleConns    int
	ConnMaxLifetime time.Duration
}

// Connect opens a database connection for the configured driver.
// The caller owns the returned handle; there is no package-level instance.
func Connect(opts Options) (*gorm.DB, error) {
	dialector, err := Dialector(opts.Driver, opts.DSN)
	if err != nil {
		return nil, err
	}

	db, err := gorm.Open(dialector, &gorm.Config{
		Logger: logger.Default.LogMode(ParseLogLevel(opts.LogLevel)),
	})
	if err != nil {
		return nil, fmt.Errorf("open %s database: %w", opts.Driver, err)
	}

	sqlDB, err := db.DB()
	if err != nil {
		return nil, fmt.Errorf("get sql.DB: %w", err)
	}
	if opts.MaxOpenConns > 0 {
		sqlDB.SetMaxOpenConns(opts.MaxOpenConns)
	}
	if opts.MaxIdleConns > 0 {
		sqlDB.SetMaxIdleConns(opts.MaxIdleConns)
	}
	if opts.ConnMaxLifetime > 0 {
		sqlDB.SetConnMaxLifetime(opts.ConnMaxLifetime)
	}

	return db, nil
}

// Dialector returns the gorm dialector for a driver name
func Dialector(driver, dsn string) (gorm.Dialector, error) {
	switch strings.ToLower(driver) {
	case "", DriverSQLite, "sqlite3":
		return sqlite.Open(dsn), nil
	case DriverPostgres, "postgresql":
		return postgres.Open(dsn), nil
	case DriverMySQL:
		normalized, err := NormalizeMySQLDSN(dsn)
		if err != nil {
			return nil, err
		}
		return mysql.Open(normalized), nil
	default:
		return nil, fmt.Errorf("unsupported database driver %q", driver)
	}
}

// NormalizeMySQLDSN forces parseTime and UTC so DATETIME columns scan into time.Time
// consistently with the other drivers.
func NormalizeMySQLDSN(dsn string) (string, error) {
	cfg, err := mysqldriver.ParseDSN(dsn)
	if err != nil {
		return "", fmt.Errorf("parse mysql dsn: %w", err)
	}
	cfg.ParseTime = true
	cfg.Loc = time.UTC
	return cfg.FormatDSN(), nil
}

// ParseLogLevel maps a config string onto a gorm log level, defaulting to Warn
func ParseLogLevel(level string) logger.LogLevel {
	switch strings.ToLower(level) {
	case "silent":
		return logger.Silent
	case "error":
		return logger.Error
	case "info":
		return logger.Info
	default:
		return logger.Warn
	}
}
