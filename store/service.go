package store

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	"gitlab.com/avolkov/dau_transfer/pkg/log"

	sq "github.com/Masterminds/squirrel"
	_ "github.com/lib/pq"
)

type Store struct {
	DB         *sql.DB
	sqlBuilder sq.StatementBuilderType // SQL query builder from squirrel
}

// establish DB connection
func New(user, password, host, port, dbname string) (*Store, error) {
	connStr := fmt.Sprintf(
		"postgres://%s:%s@%s:%s/%s?sslmode=disable",
		user, password, host, port, dbname,
	)

	db, err := sql.Open("postgres", connStr)
	if err != nil {
		return nil, fmt.Errorf("db open connection error: %w", err)
	}

	for i := 0; i < 5; i++ {
		err = db.Ping()
		if err == nil {
			break
		}
		log.Warn("Database not ready yet, retrying in 2s...")
		time.Sleep(2 * time.Second)
	}

	if err != nil {
		return nil, fmt.Errorf("cannot connect to database after retries: %w", err)
	}

	log.Info("store: connected to database")

	s := NewWithDB(db)
	if err := s.EnsureSchema(context.Background()); err != nil {
		return nil, err
	}
	return s, nil
}

// NewWithDB wraps an already opened connection.
func NewWithDB(db *sql.DB) *Store {
	return &Store{
		DB:         db,
		sqlBuilder: sq.StatementBuilder.PlaceholderFormat(sq.Dollar),
	}
}

func (s *Store) Close() error {
	return s.DB.Close()
}
