package sqliterepo

import (
	"context"
	"database/sql"
	"embed"
	"errors"
	"fmt"

	"github.com/golang-migrate/migrate/v4"
	"github.com/golang-migrate/migrate/v4/database/sqlite"
	"github.com/golang-migrate/migrate/v4/source/iofs"
	"github.com/jrsteele09/go-auth-gateway/users"

	_ "modernc.org/sqlite"
)

//go:embed migrations/*.sql
var migrations embed.FS

var _ users.UserRepo = (*Store)(nil)

// Store is a SQLite-backed credential store.
type Store struct {
	db *sql.DB
}

// NewStore opens the database at dsn and applies any pending migrations,
// including the seed accounts.
func NewStore(dsn string) (*Store, error) {
	db, err := sql.Open("sqlite", dsn)
	if err != nil {
		return nil, fmt.Errorf("sql.Open: %w", err)
	}
	s := &Store{db: db}
	if err := s.ApplyMigrations(); err != nil {
		_ = db.Close()
		return nil, fmt.Errorf("ApplyMigrations: %w", err)
	}
	return s, nil
}

func (s *Store) Close() error { return s.db.Close() }

// Ping verifies the database connection is still alive.
func (s *Store) Ping(ctx context.Context) error {
	return s.db.PingContext(ctx)
}

// ApplyMigrations runs the embedded up migrations.
func (s *Store) ApplyMigrations() error {
	driver, err := sqlite.WithInstance(s.db, &sqlite.Config{})
	if err != nil {
		return err
	}

	source, err := iofs.New(migrations, "migrations")
	if err != nil {
		return err
	}

	instance, err := migrate.NewWithInstance("iofs", source, "sqlite", driver)
	if err != nil {
		return err
	}

	err = instance.Up()
	if err != nil && !errors.Is(err, migrate.ErrNoChange) {
		return err
	}
	return nil
}

func (s *Store) GetByUsername(ctx context.Context, username string) (*users.User, error) {
	row := s.db.QueryRowContext(ctx,
		`SELECT id, username, password, role FROM users WHERE username = ?`, username)
	return scanUser(row)
}

func (s *Store) GetByID(ctx context.Context, id int) (*users.User, error) {
	row := s.db.QueryRowContext(ctx,
		`SELECT id, username, password, role FROM users WHERE id = ?`, id)
	return scanUser(row)
}

func (s *Store) List(ctx context.Context) ([]*users.User, error) {
	rows, err := s.db.QueryContext(ctx, `SELECT id, username, password, role FROM users ORDER BY id`)
	if err != nil {
		return nil, fmt.Errorf("query users: %w", err)
	}
	defer rows.Close()

	list := make([]*users.User, 0)
	for rows.Next() {
		u, err := scanUser(rows)
		if err != nil {
			return nil, err
		}
		list = append(list, u)
	}
	return list, rows.Err()
}

// Upsert inserts or replaces a user record.
func (s *Store) Upsert(ctx context.Context, u *users.User) error {
	_, err := s.db.ExecContext(ctx,
		`INSERT INTO users (id, username, password, role) VALUES (?, ?, ?, ?)
		 ON CONFLICT(id) DO UPDATE SET username = excluded.username, password = excluded.password, role = excluded.role`,
		u.ID, u.Username, u.Password, string(u.Role))
	if err != nil {
		return fmt.Errorf("upsert user %d: %w", u.ID, err)
	}
	return nil
}

func (s *Store) Delete(ctx context.Context, id int) error {
	if _, err := s.db.ExecContext(ctx, `DELETE FROM users WHERE id = ?`, id); err != nil {
		return fmt.Errorf("delete user %d: %w", id, err)
	}
	return nil
}

type scanner interface {
	Scan(dest ...any) error
}

func scanUser(row scanner) (*users.User, error) {
	var (
		u    users.User
		role string
	)
	if err := row.Scan(&u.ID, &u.Username, &u.Password, &role); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, users.ErrNotFound
		}
		return nil, fmt.Errorf("scan user: %w", err)
	}
	u.Role = users.RoleType(role)
	return &u, nil
}
