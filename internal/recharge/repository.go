package recharge

import (
	"context"
	"errors"
	"fmt"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/cyssxt/yunchaoplus-wallet/internal/record"
)

// Repository persists recharge records. Recharges are insert-only: no
// update or delete operation exists.
type Repository interface {
	Create(ctx context.Context, input CreateInput) (Recharge, error)
	Get(ctx context.Context, walletID, id string) (Recharge, error)
	List(ctx context.Context, walletID string, q record.PageQuery) ([]Recharge, error)
}

const columns = `id, type, created, amount, recharge_amount, fee, succeeded, time_succeeded, wallet_id, description, extra, settle`

// PostgresRepository stores recharges in PostgreSQL.
type PostgresRepository struct {
	db *pgxpool.Pool
}

// NewPostgresRepository builds a repository backed by PostgreSQL.
func NewPostgresRepository(db *pgxpool.Pool) *PostgresRepository {
	return &PostgresRepository{db: db}
}

// Create inserts a recharge row. amount is bound to the same value as
// recharge_amount and fee starts at zero.
func (r *PostgresRepository) Create(ctx context.Context, input CreateInput) (Recharge, error) {
	row := r.db.QueryRow(ctx, `INSERT INTO recharge (id, wallet_id, recharge_amount, amount, settle, description, extra)
        VALUES ($1, $2, $3, $3, $4, $5, $6)
        RETURNING `+columns,
		uuid.NewString(), input.WalletID, input.RechargeAmount, input.Settle, input.Description, input.Extra)

	rec, err := scanRecharge(row)
	if err != nil {
		return Recharge{}, fmt.Errorf("%w: insert recharge: %v", record.ErrStorage, err)
	}
	return rec, nil
}

// Get fetches a recharge scoped by wallet and id together. An id that
// exists under a different wallet is reported as not found.
func (r *PostgresRepository) Get(ctx context.Context, walletID, id string) (Recharge, error) {
	row := r.db.QueryRow(ctx, `SELECT `+columns+` FROM recharge WHERE wallet_id = $1 AND id = $2 LIMIT 1`,
		walletID, id)

	rec, err := scanRecharge(row)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return Recharge{}, record.ErrNotFound
		}
		return Recharge{}, fmt.Errorf("%w: get recharge: %v", record.ErrStorage, err)
	}
	return rec, nil
}

// List returns one page of the wallet's recharges, optionally narrowed to
// an inclusive window on created. An empty page is not an error.
func (r *PostgresRepository) List(ctx context.Context, walletID string, q record.PageQuery) ([]Recharge, error) {
	sql, args := q.Compile(`SELECT `+columns+` FROM recharge WHERE wallet_id = $1`, []any{walletID})

	rows, err := r.db.Query(ctx, sql, args...)
	if err != nil {
		return nil, fmt.Errorf("%w: list recharges: %v", record.ErrStorage, err)
	}
	defer rows.Close()

	recs := []Recharge{}
	for rows.Next() {
		rec, err := scanRecharge(rows)
		if err != nil {
			return nil, fmt.Errorf("%w: %v", record.ErrRowMapping, err)
		}
		recs = append(recs, rec)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("%w: list recharges: %v", record.ErrStorage, err)
	}
	return recs, nil
}

// scanRecharge materializes one row column by column. Any missing or
// mistyped column aborts the whole entity.
func scanRecharge(row pgx.Row) (Recharge, error) {
	var rec Recharge
	err := row.Scan(
		&rec.ID,
		&rec.Type,
		&rec.Created,
		&rec.Amount,
		&rec.RechargeAmount,
		&rec.Fee,
		&rec.Succeeded,
		&rec.TimeSucceeded,
		&rec.WalletID,
		&rec.Description,
		&rec.Extra,
		&rec.Settle,
	)
	if err != nil {
		return Recharge{}, err
	}
	return rec, nil
}
