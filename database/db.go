package database

import (
	"context"
	"fmt"
	"time"

	"github.com/go-sql-driver/mysql"
	"github.com/jmoiron/sqlx"
	_ "github.com/lib/pq"
	"go.uber.org/zap"
	_ "modernc.org/sqlite"

	"tripplanner/config"
)

// retryDelay is the pause between startup connection attempts.
var retryDelay = 2 * time.Second

func init() {
	// modernc registers itself as "sqlite", which sqlx does not know by name
	sqlx.BindDriver("sqlite", sqlx.QUESTION)
}

// Store is the relational store for users and feedback. Queries are written
// with ? placeholders and rebound for the active driver.
type Store struct {
	db  *sqlx.DB
	log *zap.Logger
}

// NewStore wraps an open connection. Tests pass a sqlmock-backed *sqlx.DB.
func NewStore(db *sqlx.DB, log *zap.Logger) *Store {
	if log == nil {
		log = zap.NewNop()
	}
	return &Store{db: db, log: log}
}

// Open connects to the configured database, waits for it to accept
// connections and creates missing tables.
func Open(ctx context.Context, cfg config.DBConfig, log *zap.Logger) (*Store, error) {
	driver, dsn := BuildDSN(cfg)

	db, err := sqlx.Open(driver, dsn)
	if err != nil {
		return nil, fmt.Errorf("open database: %w", err)
	}

	db.SetMaxOpenConns(10)
	db.SetMaxIdleConns(5)
	db.SetConnMaxLifetime(5 * time.Minute)

	// the database container may still be starting
	for i := 0; i < 10; i++ {
		if err = db.PingContext(ctx); err == nil {
			break
		}
		log.Warn("waiting for database", zap.Int("attempt", i+1), zap.Error(err))
		select {
		case <-ctx.Done():
			db.Close()
			return nil, fmt.Errorf("connect to database: %w", ctx.Err())
		case <-time.After(retryDelay):
		}
	}
	if err != nil {
		db.Close()
		return nil, fmt.Errorf("connect to database after retries: %w", err)
	}

	s := NewStore(db, log)
	if err := s.Migrate(ctx); err != nil {
		db.Close()
		return nil, err
	}
	log.Info("database connected and migrated", zap.String("driver", driver))
	return s, nil
}

// BuildDSN returns the driver name and data source for cfg. DATABASE_URL wins
// over the individual settings.
func BuildDSN(cfg config.DBConfig) (driver, dsn string) {
	switch cfg.Driver {
	case "mysql":
		if cfg.URL != "" {
			return "mysql", cfg.URL
		}
		port := cfg.Port
		if port == "" {
			port = "3306"
		}
		mc := mysql.NewConfig()
		mc.User = cfg.User
		mc.Passwd = cfg.Password
		mc.Net = "tcp"
		mc.Addr = cfg.Host + ":" + port
		mc.DBName = cfg.Name
		mc.ParseTime = true
		return "mysql", mc.FormatDSN()
	case "sqlite":
		if cfg.URL != "" {
			return "sqlite", cfg.URL
		}
		return "sqlite", cfg.Name + ".db"
	default:
		if cfg.URL != "" {
			return "postgres", cfg.URL
		}
		port := cfg.Port
		if port == "" {
			port = "5432"
		}
		return "postgres", fmt.Sprintf("host=%s port=%s user=%s password=%s dbname=%s sslmode=%s",
			cfg.Host, port, cfg.User, cfg.Password, cfg.Name, cfg.SSLMode)
	}
}

var schemas = map[string][]string{
	"postgres": {
		`CREATE TABLE IF NOT EXISTS users (
			id         SERIAL PRIMARY KEY,
			first_name TEXT NOT NULL DEFAULT '',
			last_name  TEXT NOT NULL DEFAULT '',
			email      TEXT NOT NULL UNIQUE,
			password   TEXT NOT NULL,
			created_at TIMESTAMPTZ DEFAULT NOW()
		)`,
		`CREATE TABLE IF NOT EXISTS responses (
			id         SERIAL PRIMARY KEY,
			name       TEXT NOT NULL DEFAULT '',
			email      TEXT NOT NULL DEFAULT '',
			message    TEXT NOT NULL,
			created_at TIMESTAMPTZ DEFAULT NOW()
		)`,
	},
	"mysql": {
		`CREATE TABLE IF NOT EXISTS users (
			id         INT AUTO_INCREMENT PRIMARY KEY,
			first_name VARCHAR(255) NOT NULL DEFAULT '',
			last_name  VARCHAR(255) NOT NULL DEFAULT '',
			email      VARCHAR(255) NOT NULL UNIQUE,
			password   VARCHAR(255) NOT NULL,
			created_at TIMESTAMP DEFAULT CURRENT_TIMESTAMP
		)`,
		`CREATE TABLE IF NOT EXISTS responses (
			id         INT AUTO_INCREMENT PRIMARY KEY,
			name       VARCHAR(255) NOT NULL DEFAULT '',
			email      VARCHAR(255) NOT NULL DEFAULT '',
			message    TEXT NOT NULL,
			created_at TIMESTAMP DEFAULT CURRENT_TIMESTAMP
		)`,
	},
	"sqlite": {
		`CREATE TABLE IF NOT EXISTS users (
			id         INTEGER PRIMARY KEY AUTOINCREMENT,
			first_name TEXT NOT NULL DEFAULT '',
			last_name  TEXT NOT NULL DEFAULT '',
			email      TEXT NOT NULL UNIQUE,
			password   TEXT NOT NULL,
			created_at TIMESTAMP DEFAULT CURRENT_TIMESTAMP
		)`,
		`CREATE TABLE IF NOT EXISTS responses (
			id         INTEGER PRIMARY KEY AUTOINCREMENT,
			name       TEXT NOT NULL DEFAULT '',
			email      TEXT NOT NULL DEFAULT '',
			message    TEXT NOT NULL,
			created_at TIMESTAMP DEFAULT CURRENT_TIMESTAMP
		)`,
	},
}

// Migrate creates the users and responses tables when they do not exist.
func (s *Store) Migrate(ctx context.Context) error {
	stmts, ok := schemas[s.db.DriverName()]
	if !ok {
		return fmt.Errorf("no schema for driver %q", s.db.DriverName())
	}
	for _, m := range stmts {
		if _, err := s.db.ExecContext(ctx, m); err != nil {
			return fmt.Errorf("migration failed: %w", err)
		}
	}
	return nil
}

// Ping reports whether the database is reachable.
func (s *Store) Ping(ctx context.Context) error {
	if s == nil || s.db == nil {
		return fmt.Errorf("database not initialized")
	}
	return s.db.PingContext(ctx)
}

func (s *Store) Close() error {
	return s.db.Close()
}

// insertReturningID runs an INSERT and returns the new row id. Postgres has no
// LastInsertId, so it gets a RETURNING clause instead.
func (s *Store) insertReturningID(ctx context.Context, query string, args ...any) (int64, error) {
	if s.db.DriverName() == "postgres" {
		var id int64
		err := s.db.QueryRowxContext(ctx, s.db.Rebind(query+" RETURNING id"), args...).Scan(&id)
		return id, err
	}
	res, err := s.db.ExecContext(ctx, s.db.Rebind(query), args...)
	if err != nil {
		return 0, err
	}
	return res.LastInsertId()
}
