package repository

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/jackc/pgx/v5/pgxpool"

	"stock-screener-backend/internal/domain"
)

// PostgresHistoryRepository persists per-symbol scoring snapshots so the
// score of a stock can be tracked across scans.
type PostgresHistoryRepository struct {
	pool *pgxpool.Pool
}

func NewPostgresHistoryRepository(pool *pgxpool.Pool) *PostgresHistoryRepository {
	return &PostgresHistoryRepository{pool: pool}
}

func (r *PostgresHistoryRepository) SaveSnapshots(ctx context.Context, snaps []domain.ScoreSnapshot) error {
	for _, s := range snaps {
		cats, err := json.Marshal(s.CategoryScores)
		if err != nil {
			return fmt.Errorf("marshal category scores for %s: %w", s.Symbol, err)
		}
		_, err = r.pool.Exec(ctx, `
			insert into stock_score_history(
				symbol, scanned_at, price, total_score, classification, category_scores
			) values ($1,$2,$3,$4,$5,$6)
		`,
			s.Symbol,
			s.ScannedAt,
			s.Price,
			s.TotalScore,
			s.Classification,
			cats,
		)
		if err != nil {
			return fmt.Errorf("insert snapshot for %s: %w", s.Symbol, err)
		}
	}
	return nil
}

func (r *PostgresHistoryRepository) GetHistory(ctx context.Context, symbol string, limit int) ([]domain.ScoreSnapshot, error) {
	if limit <= 0 {
		limit = 30
	}
	rows, err := r.pool.Query(ctx, `
		select symbol, scanned_at, price, total_score, classification, category_scores
		from stock_score_history
		where symbol = $1
		order by scanned_at desc
		limit $2
	`, symbol, limit)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	snaps := make([]domain.ScoreSnapshot, 0, limit)
	for rows.Next() {
		var snap domain.ScoreSnapshot
		var cats []byte
		if err := rows.Scan(&snap.Symbol, &snap.ScannedAt, &snap.Price, &snap.TotalScore, &snap.Classification, &cats); err != nil {
			return nil, err
		}
		if len(cats) > 0 {
			if err := json.Unmarshal(cats, &snap.CategoryScores); err != nil {
				return nil, fmt.Errorf("unmarshal category scores for %s: %w", snap.Symbol, err)
			}
		}
		snaps = append(snaps, snap)
	}
	return snaps, rows.Err()
}
