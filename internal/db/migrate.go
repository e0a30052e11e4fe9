package db

import (
	"database/sql"
	"errors"
	"fmt"

	"github.com/golang-migrate/migrate/v4"
	"github.com/golang-migrate/migrate/v4/database/postgres"
	"github.com/golang-migrate/migrate/v4/source/iofs"
	_ "github.com/lib/pq"

	"adpilot/db/migrations"
)

// Migrate brings the schema to migrations.Version. A dirty database is
// refused rather than forced.
func Migrate(addr string) error {
	mg, closeFn, err := open(addr)
	if err != nil {
		return err
	}
	defer closeFn()

	_, dirty, err := mg.Version()
	if err != nil && !errors.Is(err, migrate.ErrNilVersion) {
		return err
	}
	if dirty {
		return errors.New("database is in dirty state")
	}

	if err = mg.Migrate(migrations.Version); err != nil && !errors.Is(err, migrate.ErrNoChange) {
		return err
	}
	return nil
}

// Rollback reverts every applied migration.
func Rollback(addr string) error {
	mg, closeFn, err := open(addr)
	if err != nil {
		return err
	}
	defer closeFn()

	if err = mg.Down(); err != nil && !errors.Is(err, migrate.ErrNoChange) {
		return err
	}
	return nil
}

func open(addr string) (*migrate.Migrate, func(), error) {
	src, err := iofs.New(migrations.FS, ".")
	if err != nil {
		return nil, nil, err
	}

	conn, err := sql.Open("postgres", addr)
	if err != nil {
		_ = src.Close()
		return nil, nil, fmt.Errorf("open database: %w", err)
	}
	driver, err := postgres.WithInstance(conn, &postgres.Config{})
	if err != nil {
		_ = src.Close()
		_ = conn.Close()
		return nil, nil, fmt.Errorf("migration driver: %w", err)
	}

	mg, err := migrate.NewWithInstance("iofs", src, "postgres", driver)
	if err != nil {
		_ = src.Close()
		_ = driver.Close()
		return nil, nil, err
	}
	return mg, func() { _, _ = mg.Close() }, nil
}
