package postgres

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/lib/pq"

	"github.com/wortle/wortle-server/internal/model"
	"github.com/wortle/wortle-server/internal/storage"
)

// uniqueViolation is the Postgres error code raised when an insert breaks
// a unique constraint. The subject uniqueness invariant lives in the
// schema, not in application-level read-then-write.
const uniqueViolation = "23505"

// Storage is a Postgres-backed implementation of the player store
type Storage struct {
	db *sql.DB
}

// Config holds Postgres connection settings
type Config struct {
	Host     string
	Port     int
	User     string
	Password string
	Database string
	SSLMode  string
}

// DefaultConfig returns sensible defaults for Postgres configuration
func DefaultConfig() Config {
	return Config{
		Host:    "127.0.0.1",
		Port:    5432,
		User:    "wortle",
		SSLMode: "disable",
	}
}

// DSN renders the config as a lib/pq connection string
func (c Config) DSN() string {
	return fmt.Sprintf("host=%s port=%d user=%s password=%s dbname=%s sslmode=%s",
		c.Host, c.Port, c.User, c.Password, c.Database, c.SSLMode)
}

// New opens a connection pool and verifies connectivity
func New(cfg Config) (*Storage, error) {
	db, err := sql.Open("postgres", cfg.DSN())
	if err != nil {
		return nil, err
	}

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	if err := db.PingContext(ctx); err != nil {
		_ = db.Close()
		return nil, err
	}

	return &Storage{db: db}, nil
}

// NewWithDB creates a Postgres storage with an existing handle (for testing)
func NewWithDB(db *sql.DB) *Storage {
	return &Storage{db: db}
}

// Ensure Storage implements the interface
var _ storage.PlayerStore = (*Storage)(nil)

const schema = `
CREATE TABLE IF NOT EXISTS players (
	id               UUID PRIMARY KEY,
	provider_subject TEXT NOT NULL UNIQUE,
	email            TEXT,
	name             TEXT,
	picture          TEXT,
	display_name     TEXT NOT NULL,
	total_score      BIGINT NOT NULL DEFAULT 0,
	created_at       TIMESTAMPTZ NOT NULL DEFAULT now(),
	updated_at       TIMESTAMPTZ NOT NULL DEFAULT now()
)`

// Migrate creates the players table if it does not exist
func (s *Storage) Migrate(ctx context.Context) error {
	_, err := s.db.ExecContext(ctx, schema)
	return err
}

func (s *Storage) GetPlayerBySubject(ctx context.Context, subject string) (*model.PlayerProfile, error) {
	row := s.db.QueryRowContext(ctx, `
		SELECT id, provider_subject, email, name, picture, display_name, total_score, created_at, updated_at
		FROM players
		WHERE provider_subject = $1
	`, subject)

	var p model.PlayerProfile
	err := row.Scan(&p.ID, &p.ProviderSubject, &p.Email, &p.Name, &p.Picture,
		&p.DisplayName, &p.TotalScore, &p.CreatedAt, &p.UpdatedAt)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, model.ErrPlayerNotFound
		}
		return nil, err
	}
	return &p, nil
}

func (s *Storage) InsertPlayer(ctx context.Context, profile *model.PlayerProfile) error {
	id := model.PlayerID(uuid.NewString())

	row := s.db.QueryRowContext(ctx, `
		INSERT INTO players (id, provider_subject, email, name, picture, display_name, total_score)
		VALUES ($1, $2, $3, $4, $5, $6, $7)
		RETURNING created_at, updated_at
	`, id, profile.ProviderSubject, profile.Email, profile.Name, profile.Picture,
		profile.DisplayName, profile.TotalScore)

	if err := row.Scan(&profile.CreatedAt, &profile.UpdatedAt); err != nil {
		var pqErr *pq.Error
		if errors.As(err, &pqErr) && string(pqErr.Code) == uniqueViolation {
			return model.ErrPlayerExists
		}
		return err
	}

	profile.ID = id
	return nil
}

func (s *Storage) UpdateProfileFields(ctx context.Context, id model.PlayerID, email, name, picture *string) error {
	res, err := s.db.ExecContext(ctx, `
		UPDATE players
		SET email = $2, name = $3, picture = $4, updated_at = now()
		WHERE id = $1
	`, id, email, name, picture)
	if err != nil {
		return err
	}

	affected, err := res.RowsAffected()
	if err != nil {
		return err
	}
	if affected == 0 {
		return model.ErrPlayerNotFound
	}
	return nil
}

// Close closes the connection pool
func (s *Storage) Close() error {
	return s.db.Close()
}
