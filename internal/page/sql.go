package page

import (
	"context"
	"database/sql"
	"errors"
	"strings"

	"github.com/jmoiron/sqlx"
)

// SQLStore reads descriptors from the `page` table:
//
//	CREATE TABLE page (
//	  slug        VARCHAR(200) PRIMARY KEY,
//	  descriptor  MEDIUMTEXT   NOT NULL,
//	  updated_at  DATETIME     NOT NULL,
//	  deleted_at  DATETIME     NULL
//	);
//
// Soft-deleted rows are invisible.
type SQLStore struct {
	db *sqlx.DB
}

// NewSQLStore returns a store backed by db.
func NewSQLStore(db *sqlx.DB) *SQLStore { return &SQLStore{db: db} }

const selectPage = `SELECT slug, descriptor FROM page WHERE slug = ? AND deleted_at IS NULL LIMIT 1`

type pageRow struct {
	Slug       string `db:"slug"`
	Descriptor string `db:"descriptor"`
}

func (s *SQLStore) Get(ctx context.Context, slug string) (*Page, error) {
	slug, err := NormalizeSlug(slug)
	if err != nil {
		return nil, err
	}

	var row pageRow
	if err := s.db.GetContext(ctx, &row, selectPage, slug); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, ErrNotFound
		}
		return nil, err
	}

	p, err := Decode(strings.NewReader(row.Descriptor))
	if err != nil {
		return nil, err
	}
	return finish(p, row.Slug)
}
