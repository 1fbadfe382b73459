package store

import (
	"context"
	"fmt"
	"time"

	sq "github.com/Masterminds/squirrel"
	t "gitlab.com/avolkov/dau_transfer/pkg/types"
)

func (s *Store) AddTransfer(ctx context.Context, dbUserID int64, tr *t.TransferRecord) error {
	if tr.CreatedAt.IsZero() {
		tr.CreatedAt = time.Now()
	}

	query, args, err := s.sqlBuilder.
		Insert("transfers").
		Columns("user_id", "send_currency", "receive_currency", "fee_tier",
			"amount", "total_fee", "receive_amount", "created_at").
		Values(
			dbUserID,
			tr.SendCurrency,
			tr.ReceiveCurrency,
			tr.FeeTier,
			tr.Amount,
			tr.TotalFee,
			tr.ReceiveAmount,
			tr.CreatedAt,
		).
		Suffix("RETURNING id").
		ToSql()
	if err != nil {
		return fmt.Errorf("build add transfer query: %w", err)
	}

	if err := s.DB.QueryRowContext(ctx, query, args...).Scan(&tr.ID); err != nil {
		return fmt.Errorf("exec add transfer query: %w", err)
	}

	return nil
}

// GetLastTransfers returns up to limit transfers, newest first.
func (s *Store) GetLastTransfers(ctx context.Context, dbUserID int64, limit uint64) ([]t.TransferRecord, error) {
	query, args, err := s.sqlBuilder.
		Select("id", "send_currency", "receive_currency", "fee_tier",
			"amount", "total_fee", "receive_amount", "created_at").
		From("transfers").
		Where(sq.Eq{
			"user_id": dbUserID,
		}).
		OrderBy("created_at DESC", "id DESC").
		Limit(limit).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("build GetLastTransfers query: %w", err)
	}

	rows, err := s.DB.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("exec GetLastTransfers query: %w", err)
	}
	defer rows.Close()

	var result []t.TransferRecord
	for rows.Next() {
		var tr t.TransferRecord
		if err := rows.Scan(
			&tr.ID,
			&tr.SendCurrency,
			&tr.ReceiveCurrency,
			&tr.FeeTier,
			&tr.Amount,
			&tr.TotalFee,
			&tr.ReceiveAmount,
			&tr.CreatedAt,
		); err != nil {
			return nil, fmt.Errorf("scan transfer row: %w", err)
		}
		result = append(result, tr)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate transfer rows: %w", err)
	}

	return result, nil
}
