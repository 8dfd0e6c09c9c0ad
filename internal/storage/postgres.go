package storage

import (
	"context"
	"errors"

	"github.com/GlebRadaev/ticketbooking/internal/pg"
	"github.com/jackc/pgx/v5"
	"go.uber.org/zap"
)

type PostgresBackend struct {
	db pg.Database
}

func NewPostgresBackend(db pg.Database) *PostgresBackend {
	return &PostgresBackend{
		db: db,
	}
}

func (b *PostgresBackend) Read(ctx context.Context, name string) ([]byte, error) {
	var data []byte
	err := b.db.QueryRow(ctx, "SELECT data FROM ledger_resources WHERE name = $1", name).Scan(&data)
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, ErrNotFound
	}
	if err != nil {
		zap.L().Error("can't read resource", zap.String("resource", name), zap.Error(err))
		return nil, err
	}
	return data, nil
}

func (b *PostgresBackend) Write(ctx context.Context, name string, data []byte) error {
	query := `
		INSERT INTO ledger_resources (name, data, updated_at)
		VALUES ($1, $2, now())
		ON CONFLICT (name) DO UPDATE SET data = EXCLUDED.data, updated_at = EXCLUDED.updated_at
	`
	_, err := b.db.Exec(ctx, query, name, data)
	if err != nil {
		zap.L().Error("can't write resource", zap.String("resource", name), zap.Error(err))
		return err
	}
	return nil
}
