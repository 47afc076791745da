package repository

import (
	"database/sql"

	sq "github.com/Masterminds/squirrel"
)

// sqliteRepo provides a base for Squirrel-based SQLite repositories.
type sqliteRepo struct {
	db *sql.DB
	sq sq.StatementBuilderType
}

func newSQLiteRepo(db *sql.DB) sqliteRepo {
	return sqliteRepo{db: db, sq: sq.StatementBuilder.PlaceholderFormat(sq.Question)}
}
