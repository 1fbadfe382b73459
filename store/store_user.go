package store

import (
	"context"
	"fmt"

	"gitlab.com/avolkov/dau_transfer/pkg/log"
)

// EnsureUser registers a Telegram account and returns its users.id.
// created is false when the account was already there. An empty username
// never overwrites a stored one.
func (s *Store) EnsureUser(ctx context.Context, telegramID int64, username string) (id int64, created bool, err error) {
	query, args, err := s.sqlBuilder.
		Insert("users").
		Columns("telegram_id", "username").
		Values(telegramID, username).
		Suffix("ON CONFLICT (telegram_id) DO UPDATE SET username = COALESCE(NULLIF(EXCLUDED.username, ''), users.username) " +
			"RETURNING id, (xmax = 0) AS created").
		ToSql()
	if err != nil {
		return 0, false, fmt.Errorf("build ensure user query: %w", err)
	}

	// xmax is 0 only for a row this statement inserted
	if err := s.DB.QueryRowContext(ctx, query, args...).Scan(&id, &created); err != nil {
		return 0, false, fmt.Errorf("exec ensure user query: %w", err)
	}

	if created {
		log.Infof("store: tg_user_id %d registered as user %d", telegramID, id)
	}
	return id, created, nil
}
