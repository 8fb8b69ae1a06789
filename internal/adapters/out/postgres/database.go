package postgres

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"strings"

	"tracking/internal/adapters/out/postgres/orderrepo"

	"github.com/lib/pq"
	postgresdriver "gorm.io/driver/postgres"
	"gorm.io/gorm"
)

// maintenanceDB is the database every PostgreSQL server has.
const maintenanceDB = "postgres"

// Settings describe how to reach the PostgreSQL server.
type Settings struct {
	Host     string
	Port     string
	User     string
	Password string
	DBName   string
	SSLMode  string
}

// DSN renders the settings as a libpq keyword/value connection string.
func (s Settings) DSN() string {
	return s.dsnFor(s.DBName)
}

func (s Settings) dsnFor(dbName string) string {
	sslMode := s.SSLMode
	if sslMode == "" {
		sslMode = "disable"
	}

	parts := []string{
		"host=" + quoteValue(s.Host),
		"port=" + quoteValue(s.Port),
		"user=" + quoteValue(s.User),
		"password=" + quoteValue(s.Password),
		"dbname=" + quoteValue(dbName),
		"sslmode=" + quoteValue(sslMode),
	}
	return strings.Join(parts, " ")
}

func quoteValue(v string) string {
	if v != "" && !strings.ContainsAny(v, ` '\`) {
		return v
	}
	v = strings.ReplaceAll(v, `\`, `\\`)
	v = strings.ReplaceAll(v, `'`, `\'`)
	return "'" + v + "'"
}

// EnsureDatabase creates the configured database when it does not exist yet.
func EnsureDatabase(ctx context.Context, s Settings) error {
	db, err := sql.Open("postgres", s.dsnFor(maintenanceDB))
	if err != nil {
		return fmt.Errorf("open maintenance connection: %w", err)
	}
	defer db.Close()

	var exists bool
	err = db.QueryRowContext(ctx,
		"SELECT EXISTS (SELECT 1 FROM pg_database WHERE datname = $1)", s.DBName,
	).Scan(&exists)
	if err != nil {
		return fmt.Errorf("check database %q: %w", s.DBName, err)
	}
	if exists {
		return nil
	}

	if _, err = db.ExecContext(ctx, "CREATE DATABASE "+pq.QuoteIdentifier(s.DBName)); err != nil {
		var pqErr *pq.Error
		// another instance may have won the race
		if errors.As(err, &pqErr) && pqErr.Code == "42P04" {
			return nil
		}
		return fmt.Errorf("create database %q: %w", s.DBName, err)
	}

	return nil
}

// Open connects GORM to the configured database. Driver errors are translated
// to gorm sentinels such as gorm.ErrDuplicatedKey.
func Open(s Settings) (*gorm.DB, error) {
	db, err := gorm.Open(postgresdriver.Open(s.DSN()), &gorm.Config{TranslateError: true})
	if err != nil {
		return nil, fmt.Errorf("connect to database: %w", err)
	}
	return db, nil
}

// Migrate brings the schema up to date.
func Migrate(db *gorm.DB) error {
	return db.AutoMigrate(&orderrepo.OrderDTO{})
}
