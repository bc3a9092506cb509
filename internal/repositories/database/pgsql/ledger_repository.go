package pgsql

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/SscSPs/grouphome_ledger/internal/apperrors"
	"github.com/SscSPs/grouphome_ledger/internal/core/domain"
	portsrepo "github.com/SscSPs/grouphome_ledger/internal/core/ports/repositories"
	"github.com/SscSPs/grouphome_ledger/internal/utils/pagination"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

type PgxLedgerRepository struct {
	BaseRepository
}

// newPgxLedgerRepository creates a new repository for the cash ledger tables.
func newPgxLedgerRepository(pool *pgxpool.Pool) *PgxLedgerRepository {
	return &PgxLedgerRepository{BaseRepository: BaseRepository{Pool: pool}}
}

var _ portsrepo.LedgerRepositoryFacade = (*PgxLedgerRepository)(nil)

// WithinResidentTx locks the resident row with SELECT ... FOR UPDATE, which serialises every
// ledger write of that resident across instances, then runs fn in the same transaction.
func (r *PgxLedgerRepository) WithinResidentTx(ctx context.Context, residentID int64, fn portsrepo.ResidentTxFunc) error {
	tx, err := r.Begin(ctx)
	if err != nil {
		return err
	}
	defer r.Rollback(ctx, tx)

	var locked int64
	err = tx.QueryRow(ctx, `SELECT id FROM residents WHERE id = $1 FOR UPDATE;`, residentID).Scan(&locked)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return apperrors.NewNotFoundError(fmt.Sprintf("resident %d not found", residentID))
		}
		return apperrors.NewInternalServerError("failed to lock resident", err)
	}

	if err := fn(ctx, &pgxLedgerTxStore{tx: tx}); err != nil {
		return err
	}
	return r.Commit(ctx, tx)
}

func (r *PgxLedgerRepository) SumTransactions(ctx context.Context, residentID int64, asOf *time.Time) (int64, error) {
	return sumTransactions(ctx, r.Pool, residentID, asOf)
}

func (r *PgxLedgerRepository) FindOpenAllowance(ctx context.Context, residentID int64, day time.Time) (*domain.Allowance, error) {
	return findOpenAllowance(ctx, r.Pool, residentID, day)
}

func (r *PgxLedgerRepository) ListTransactionsBetween(ctx context.Context, residentID int64, from, to time.Time) ([]domain.Transaction, error) {
	return listTransactionsBetween(ctx, r.Pool, residentID, from, to)
}

func (r *PgxLedgerRepository) ListTransactionsPage(ctx context.Context, residentID int64, limit int, cursor *pagination.Cursor) ([]domain.Transaction, error) {
	return listTransactionsPage(ctx, r.Pool, residentID, limit, cursor)
}

func (r *PgxLedgerRepository) FindLatestCashCount(ctx context.Context, residentID int64) (*domain.CashCount, error) {
	return findLatestCashCount(ctx, r.Pool, residentID)
}

func (r *PgxLedgerRepository) ListCashCountsBetween(ctx context.Context, residentIDs []int64, from, to time.Time) ([]domain.CashCount, error) {
	if len(residentIDs) == 0 {
		return []domain.CashCount{}, nil
	}
	return listCashCountsBetween(ctx, r.Pool, residentIDs, from, to)
}

// pgxLedgerTxStore runs the ledger primitives inside the resident transaction.
type pgxLedgerTxStore struct {
	tx pgx.Tx
}

var _ portsrepo.LedgerTxStore = (*pgxLedgerTxStore)(nil)

func (s *pgxLedgerTxStore) InsertTransaction(ctx context.Context, txn domain.Transaction) (domain.Transaction, error) {
	query := `
		INSERT INTO cash_transactions (resident_id, amount_cents, reason, entered_by, allowance_id, created_at)
		VALUES ($1, $2, $3, $4, $5, $6)
		RETURNING ` + transactionColumns + `;
	`
	created, err := scanTransaction(s.tx.QueryRow(ctx, query,
		txn.ResidentID,
		txn.AmountCents,
		txn.Reason,
		int64(txn.EnteredBy),
		txn.AllowanceID,
		txn.CreatedAt,
	))
	if err != nil {
		return domain.Transaction{}, classify(err, "failed to insert transaction")
	}
	return created, nil
}

func (s *pgxLedgerTxStore) SumTransactions(ctx context.Context, residentID int64, asOf *time.Time) (int64, error) {
	return sumTransactions(ctx, s.tx, residentID, asOf)
}

func (s *pgxLedgerTxStore) InsertAllowance(ctx context.Context, a domain.Allowance) (domain.Allowance, error) {
	query := `
		INSERT INTO cash_allowances (resident_id, period_start, period_end, amount_cents, created_at)
		VALUES ($1, $2::DATE, $3::DATE, $4, $5)
		RETURNING ` + allowanceColumns + `;
	`
	created, err := scanAllowance(s.tx.QueryRow(ctx, query,
		a.ResidentID,
		a.PeriodStart,
		a.PeriodEnd,
		a.AmountCents,
		a.CreatedAt,
	))
	if err != nil {
		return domain.Allowance{}, classify(err, "failed to insert allowance")
	}
	return *created, nil
}

func (s *pgxLedgerTxStore) FindOpenAllowance(ctx context.Context, residentID int64, day time.Time) (*domain.Allowance, error) {
	return findOpenAllowance(ctx, s.tx, residentID, day)
}

func (s *pgxLedgerTxStore) FindAllowanceByID(ctx context.Context, allowanceID int64) (*domain.Allowance, error) {
	query := `SELECT ` + allowanceColumns + ` FROM cash_allowances WHERE id = $1;`
	a, err := scanAllowance(s.tx.QueryRow(ctx, query, allowanceID))
	if err != nil {
		return nil, classify(err, fmt.Sprintf("allowance %d", allowanceID))
	}
	return a, nil
}

func (s *pgxLedgerTxStore) FindTransactionByID(ctx context.Context, transactionID int64) (*domain.Transaction, error) {
	query := `SELECT ` + transactionColumns + ` FROM cash_transactions WHERE id = $1;`
	txn, err := scanTransaction(s.tx.QueryRow(ctx, query, transactionID))
	if err != nil {
		return nil, classify(err, fmt.Sprintf("transaction %d", transactionID))
	}
	return &txn, nil
}

func (s *pgxLedgerTxStore) InsertCashCount(ctx context.Context, c domain.CashCount) (domain.CashCount, error) {
	query := `
		INSERT INTO cash_counts (resident_id, balance_cents, diff_cents, is_mismatch, staff_id, counted_at)
		VALUES ($1, $2, $3, $4, $5, $6)
		RETURNING ` + cashCountColumns + `;
	`
	created, err := scanCashCount(s.tx.QueryRow(ctx, query,
		c.ResidentID,
		c.BalanceCents,
		c.DiffCents,
		c.IsMismatch,
		int64(c.StaffID),
		c.CountedAt,
	))
	if err != nil {
		return domain.CashCount{}, classify(err, "failed to insert cash count")
	}
	return created, nil
}
