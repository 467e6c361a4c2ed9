package db

import (
	"context"

	"github.com/jackc/pgx/v5/pgxpool"
)

// Migrate creates the minimal tables needed by this app.
// This keeps setup simple (no external migration tool), but still gives persistence.
func Migrate(ctx context.Context, pool *pgxpool.Pool) error {
	stmts := []string{
		`create table if not exists stock_score_history (
			id bigserial primary key,
			symbol text not null,
			scanned_at timestamptz not null,
			price double precision not null,
			total_score int not null,
			classification text not null,
			category_scores jsonb not null default '{}'::jsonb
		);`,
		`create index if not exists stock_score_history_symbol_scanned_at_idx on stock_score_history(symbol, scanned_at desc);`,
		`create table if not exists device_tokens (
			token text primary key,
			platform text not null default '',
			registered_at timestamptz not null default now()
		);`,
	}

	for _, stmt := range stmts {
		if _, err := pool.Exec(ctx, stmt); err != nil {
			return err
		}
	}
	return nil
}
