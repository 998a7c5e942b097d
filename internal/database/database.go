// Package database centralises sqlx connection helpers.  The driver is
// go-sql-driver/mysql, which also works with MariaDB.
//
// Public entry points:
//
//	Open(dsn, password)                           – conservative pool sizes.
//	OpenWithOptions(dsn, password, maxOpen, maxIdle) – fine-grained control.
//	BuildDSN(dsn, password)                       – inject the secret only.
//
// Both Open helpers Ping the database before returning so callers can fail
// fast during bootstrap.  Callers should Close() the returned *sqlx.DB.
package database

import (
	"fmt"
	"time"

	"github.com/go-sql-driver/mysql"
	"github.com/jmoiron/sqlx"
)

// BuildDSN parses dsn and sets its password.  An empty password leaves
// the DSN's own password in place.  parseTime is always enabled.
func BuildDSN(dsn, password string) (string, error) {
	cfg, err := mysql.ParseDSN(dsn)
	if err != nil {
		return "", fmt.Errorf("parse dsn: %w", err)
	}
	if password != "" {
		cfg.Passwd = password
	}
	cfg.ParseTime = true
	return cfg.FormatDSN(), nil
}

// Open returns a *sqlx.DB with sane defaults: 10 max open, 5 idle, and a
// 30-minute connection lifetime.
func Open(dsn, password string) (*sqlx.DB, error) {
	return OpenWithOptions(dsn, password, 10, 5)
}

// OpenWithOptions lets callers tune maxOpen and maxIdle per pool.
func OpenWithOptions(dsn, password string, maxOpen, maxIdle int) (*sqlx.DB, error) {
	full, err := BuildDSN(dsn, password)
	if err != nil {
		return nil, err
	}

	db, err := sqlx.Open("mysql", full)
	if err != nil {
		return nil, err
	}

	db.SetMaxOpenConns(maxOpen)
	db.SetMaxIdleConns(maxIdle)
	db.SetConnMaxLifetime(30 * time.Minute)

	if err := db.Ping(); err != nil {
		_ = db.Close()
		return nil, err
	}
	return db, nil
}
