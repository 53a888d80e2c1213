package withdraw

import (
	"context"
	"errors"
	"fmt"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/cyssxt/yunchaoplus-wallet/internal/record"
)

// Repository persists withdraw records. Withdrawals are never deleted;
// status is the only mutable field.
type Repository interface {
	Create(ctx context.Context, input CreateInput) (Withdraw, error)
	Get(ctx context.Context, walletID, id string) (Withdraw, error)
	List(ctx context.Context, walletID string, q record.PageQuery) ([]Withdraw, error)
	SetStatus(ctx context.Context, walletID, id string, target Status) (Withdraw, error)
}

const columns = `id, type, created, extra, description, status, wallet_id, settle, time_canceled, time_succeeded, amount`

// setStatusSQL stamps time_canceled together with the terminal status so
// the terminal-timestamp invariant holds without relying on a trigger.
const setStatusSQL = `UPDATE withdraw
        SET status = $3,
            time_canceled = CASE WHEN $3 = 'canceled' THEN now() ELSE time_canceled END
        WHERE wallet_id = $1 AND id = $2
        RETURNING ` + columns

// PostgresRepository stores withdrawals in PostgreSQL. With strict enabled,
// SetStatus checks the record's current status against the transition table
// inside a row-locking transaction instead of overwriting blindly.
type PostgresRepository struct {
	db     *pgxpool.Pool
	strict bool
}

// NewPostgresRepository builds a repository backed by PostgreSQL.
func NewPostgresRepository(db *pgxpool.Pool, strict bool) *PostgresRepository {
	return &PostgresRepository{db: db, strict: strict}
}

// Create inserts a withdrawal row with status defaulting to created.
func (r *PostgresRepository) Create(ctx context.Context, input CreateInput) (Withdraw, error) {
	row := r.db.QueryRow(ctx, `INSERT INTO withdraw (id, wallet_id, settle, amount, description, extra)
        VALUES ($1, $2, $3, $4, $5, $6)
        RETURNING `+columns,
		uuid.NewString(), input.WalletID, input.Settle, input.Amount, input.Description, input.Extra)

	w, err := scanWithdraw(row)
	if err != nil {
		return Withdraw{}, fmt.Errorf("%w: insert withdraw: %v", record.ErrStorage, err)
	}
	return w, nil
}

// Get fetches a withdrawal scoped by wallet and id together.
func (r *PostgresRepository) Get(ctx context.Context, walletID, id string) (Withdraw, error) {
	row := r.db.QueryRow(ctx, `SELECT `+columns+` FROM withdraw WHERE wallet_id = $1 AND id = $2 LIMIT 1`,
		walletID, id)

	w, err := scanWithdraw(row)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return Withdraw{}, record.ErrNotFound
		}
		return Withdraw{}, fmt.Errorf("%w: get withdraw: %v", record.ErrStorage, err)
	}
	return w, nil
}

// List returns one page of the wallet's withdrawals, optionally narrowed to
// an inclusive window on created.
func (r *PostgresRepository) List(ctx context.Context, walletID string, q record.PageQuery) ([]Withdraw, error) {
	sql, args := q.Compile(`SELECT `+columns+` FROM withdraw WHERE wallet_id = $1`, []any{walletID})

	rows, err := r.db.Query(ctx, sql, args...)
	if err != nil {
		return nil, fmt.Errorf("%w: list withdraws: %v", record.ErrStorage, err)
	}
	defer rows.Close()

	ws := []Withdraw{}
	for rows.Next() {
		w, err := scanWithdraw(rows)
		if err != nil {
			return nil, fmt.Errorf("%w: %v", record.ErrRowMapping, err)
		}
		ws = append(ws, w)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("%w: list withdraws: %v", record.ErrStorage, err)
	}
	return ws, nil
}

// SetStatus moves the withdrawal to target, scoped by wallet and id
// together. Target validity is checked before any store access.
func (r *PostgresRepository) SetStatus(ctx context.Context, walletID, id string, target Status) (Withdraw, error) {
	if err := checkTarget(target); err != nil {
		return Withdraw{}, err
	}
	if r.strict {
		return r.setStatusStrict(ctx, walletID, id, target)
	}

	row := r.db.QueryRow(ctx, setStatusSQL, walletID, id, target)
	w, err := scanWithdraw(row)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return Withdraw{}, record.ErrNotFound
		}
		return Withdraw{}, fmt.Errorf("%w: update withdraw status: %v", record.ErrStorage, err)
	}
	return w, nil
}

func (r *PostgresRepository) setStatusStrict(ctx context.Context, walletID, id string, target Status) (Withdraw, error) {
	tx, err := r.db.BeginTx(ctx, pgx.TxOptions{})
	if err != nil {
		return Withdraw{}, fmt.Errorf("%w: begin transaction: %v", record.ErrStorage, err)
	}
	defer tx.Rollback(ctx) // nolint:errcheck

	var current Status
	err = tx.QueryRow(ctx, `SELECT status FROM withdraw WHERE wallet_id = $1 AND id = $2 FOR UPDATE`,
		walletID, id).Scan(&current)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return Withdraw{}, record.ErrNotFound
		}
		return Withdraw{}, fmt.Errorf("%w: lock withdraw: %v", record.ErrStorage, err)
	}

	if !CanTransition(current, target) {
		return Withdraw{}, fmt.Errorf("%w: %s -> %s", ErrIllegalTransition, current, target)
	}

	row := tx.QueryRow(ctx, setStatusSQL, walletID, id, target)
	w, err := scanWithdraw(row)
	if err != nil {
		return Withdraw{}, fmt.Errorf("%w: update withdraw status: %v", record.ErrStorage, err)
	}

	if err := tx.Commit(ctx); err != nil {
		return Withdraw{}, fmt.Errorf("%w: commit: %v", record.ErrStorage, err)
	}
	return w, nil
}

// scanWithdraw materializes one row column by column. Any missing or
// mistyped column aborts the whole entity.
func scanWithdraw(row pgx.Row) (Withdraw, error) {
	var w Withdraw
	err := row.Scan(
		&w.ID,
		&w.Type,
		&w.Created,
		&w.Extra,
		&w.Description,
		&w.Status,
		&w.WalletID,
		&w.Settle,
		&w.TimeCanceled,
		&w.TimeSucceeded,
		&w.Amount,
	)
	if err != nil {
		return Withdraw{}, err
	}
	return w, nil
}
