package pgsql

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/SscSPs/grouphome_ledger/internal/apperrors"
	"github.com/SscSPs/grouphome_ledger/internal/core/domain"
	"github.com/SscSPs/grouphome_ledger/internal/models"
	"github.com/SscSPs/grouphome_ledger/internal/utils/mapping"
	"github.com/SscSPs/grouphome_ledger/internal/utils/pagination"
	"github.com/jackc/pgx/v5"
)

const (
	transactionColumns = `id, resident_id, amount_cents, reason, entered_by, allowance_id, created_at`
	allowanceColumns   = `id, resident_id, period_start, period_end, amount_cents, created_at`
	cashCountColumns   = `id, resident_id, balance_cents, diff_cents, is_mismatch, staff_id, counted_at`
)

// The functions below run against the pool or an open transaction alike.

func sumTransactions(ctx context.Context, db dbtx, residentID int64, asOf *time.Time) (int64, error) {
	query := `
		SELECT COALESCE(SUM(amount_cents), 0)::BIGINT
		FROM cash_transactions
		WHERE resident_id = $1 AND ($2::TIMESTAMPTZ IS NULL OR created_at <= $2);
	`
	var sum int64
	if err := db.QueryRow(ctx, query, residentID, asOf).Scan(&sum); err != nil {
		return 0, apperrors.NewInternalServerError("failed to sum transactions", err)
	}
	return sum, nil
}

func findOpenAllowance(ctx context.Context, db dbtx, residentID int64, day time.Time) (*domain.Allowance, error) {
	query := `
		SELECT ` + allowanceColumns + `
		FROM cash_allowances
		WHERE resident_id = $1
		  AND period_start <= $2::DATE
		  AND (period_end IS NULL OR period_end >= $2::DATE)
		ORDER BY period_start DESC, id DESC
		LIMIT 1;
	`
	a, err := scanAllowance(db.QueryRow(ctx, query, residentID, day))
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, apperrors.NewInternalServerError("failed to find open allowance", err)
	}
	return a, nil
}

func scanAllowance(row pgx.Row) (*domain.Allowance, error) {
	var m models.CashAllowance
	if err := row.Scan(&m.ID, &m.ResidentID, &m.PeriodStart, &m.PeriodEnd, &m.AmountCents, &m.CreatedAt); err != nil {
		return nil, err
	}
	a := mapping.ToDomainAllowance(m)
	return &a, nil
}

func scanTransaction(row pgx.Row) (domain.Transaction, error) {
	var m models.CashTransaction
	if err := row.Scan(&m.ID, &m.ResidentID, &m.AmountCents, &m.Reason, &m.EnteredBy, &m.AllowanceID, &m.CreatedAt); err != nil {
		return domain.Transaction{}, err
	}
	return mapping.ToDomainTransaction(m), nil
}

func scanCashCount(row pgx.Row) (domain.CashCount, error) {
	var m models.CashCount
	if err := row.Scan(&m.ID, &m.ResidentID, &m.BalanceCents, &m.DiffCents, &m.IsMismatch, &m.StaffID, &m.CountedAt); err != nil {
		return domain.CashCount{}, err
	}
	return mapping.ToDomainCashCount(m), nil
}

func collectTransactions(rows pgx.Rows, err error) ([]domain.Transaction, error) {
	if err != nil {
		return nil, apperrors.NewInternalServerError("failed to query transactions", err)
	}
	defer rows.Close()

	txns := []domain.Transaction{}
	for rows.Next() {
		t, err := scanTransaction(rows)
		if err != nil {
			return nil, apperrors.NewInternalServerError("failed to scan transaction", err)
		}
		txns = append(txns, t)
	}
	if err := rows.Err(); err != nil {
		return nil, apperrors.NewInternalServerError("error iterating transactions", err)
	}
	return txns, nil
}

func listTransactionsBetween(ctx context.Context, db dbtx, residentID int64, from, to time.Time) ([]domain.Transaction, error) {
	query := `
		SELECT ` + transactionColumns + `
		FROM cash_transactions
		WHERE resident_id = $1 AND created_at >= $2 AND created_at < $3
		ORDER BY created_at DESC, id DESC;
	`
	return collectTransactions(db.Query(ctx, query, residentID, from, to))
}

func listTransactionsPage(ctx context.Context, db dbtx, residentID int64, limit int, cursor *pagination.Cursor) ([]domain.Transaction, error) {
	if cursor == nil {
		query := `
			SELECT ` + transactionColumns + `
			FROM cash_transactions
			WHERE resident_id = $1
			ORDER BY created_at DESC, id DESC
			LIMIT $2;
		`
		return collectTransactions(db.Query(ctx, query, residentID, limit))
	}
	query := `
		SELECT ` + transactionColumns + `
		FROM cash_transactions
		WHERE resident_id = $1 AND (created_at, id) < ($2, $3)
		ORDER BY created_at DESC, id DESC
		LIMIT $4;
	`
	return collectTransactions(db.Query(ctx, query, residentID, cursor.CreatedAt, cursor.ID, limit))
}

func findLatestCashCount(ctx context.Context, db dbtx, residentID int64) (*domain.CashCount, error) {
	query := `
		SELECT ` + cashCountColumns + `
		FROM cash_counts
		WHERE resident_id = $1
		ORDER BY counted_at DESC, id DESC
		LIMIT 1;
	`
	c, err := scanCashCount(db.QueryRow(ctx, query, residentID))
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, apperrors.NewInternalServerError(fmt.Sprintf("failed to load latest cash count of resident %d", residentID), err)
	}
	return &c, nil
}

func listCashCountsBetween(ctx context.Context, db dbtx, residentIDs []int64, from, to time.Time) ([]domain.CashCount, error) {
	query := `
		SELECT ` + cashCountColumns + `
		FROM cash_counts
		WHERE resident_id = ANY($1) AND counted_at >= $2 AND counted_at < $3
		ORDER BY counted_at DESC, id DESC;
	`
	rows, err := db.Query(ctx, query, residentIDs, from, to)
	if err != nil {
		return nil, apperrors.NewInternalServerError("failed to query cash counts", err)
	}
	defer rows.Close()

	counts := []domain.CashCount{}
	for rows.Next() {
		c, err := scanCashCount(rows)
		if err != nil {
			return nil, apperrors.NewInternalServerError("failed to scan cash count", err)
		}
		counts = append(counts, c)
	}
	if err := rows.Err(); err != nil {
		return nil, apperrors.NewInternalServerError("error iterating cash counts", err)
	}
	return counts, nil
}
