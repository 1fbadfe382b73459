package store

import (
	"context"
	"fmt"
)

var schema = []string{
	`CREATE TABLE IF NOT EXISTS users (
		id          BIGSERIAL PRIMARY KEY,
		telegram_id BIGINT NOT NULL UNIQUE,
		username    TEXT NOT NULL DEFAULT '',
		created_at  TIMESTAMPTZ NOT NULL DEFAULT now()
	)`,
	`CREATE TABLE IF NOT EXISTS transfers (
		id               BIGSERIAL PRIMARY KEY,
		user_id          BIGINT NOT NULL REFERENCES users(id) ON DELETE CASCADE,
		send_currency    VARCHAR(8) NOT NULL,
		receive_currency VARCHAR(8) NOT NULL,
		fee_tier         VARCHAR(16) NOT NULL,
		amount           NUMERIC(38, 18) NOT NULL,
		total_fee        NUMERIC(38, 18) NOT NULL,
		receive_amount   NUMERIC(38, 18) NOT NULL,
		created_at       TIMESTAMPTZ NOT NULL
	)`,
	`CREATE INDEX IF NOT EXISTS transfers_user_id_created_at_idx ON transfers (user_id, created_at DESC)`,
}

func (s *Store) EnsureSchema(ctx context.Context) error {
	for _, stmt := range schema {
		if _, err := s.DB.ExecContext(ctx, stmt); err != nil {
			return fmt.Errorf("apply schema: %w", err)
		}
	}
	return nil
}
