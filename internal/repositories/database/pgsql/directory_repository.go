package pgsql

import (
	"context"
	"fmt"

	"github.com/SscSPs/grouphome_ledger/internal/apperrors"
	"github.com/SscSPs/grouphome_ledger/internal/core/domain"
	portsrepo "github.com/SscSPs/grouphome_ledger/internal/core/ports/repositories"
	"github.com/SscSPs/grouphome_ledger/internal/models"
	"github.com/SscSPs/grouphome_ledger/internal/utils/mapping"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

const residentColumns = `id, first_name, last_name, group_home_id`

// PgxDirectoryRepository reads residents and staff. Both tables belong to the wider
// group-home system; the ledger only looks names up and patches residents.
type PgxDirectoryRepository struct {
	BaseRepository
}

func newPgxDirectoryRepository(pool *pgxpool.Pool) *PgxDirectoryRepository {
	return &PgxDirectoryRepository{BaseRepository: BaseRepository{Pool: pool}}
}

var _ portsrepo.DirectoryRepositoryFacade = (*PgxDirectoryRepository)(nil)

func scanResident(row pgx.Row) (*domain.Resident, error) {
	var m models.Resident
	if err := row.Scan(&m.ID, &m.FirstName, &m.LastName, &m.GroupHomeID); err != nil {
		return nil, err
	}
	r := mapping.ToDomainResident(m)
	return &r, nil
}

func (r *PgxDirectoryRepository) FindResidentByID(ctx context.Context, residentID int64) (*domain.Resident, error) {
	query := `SELECT ` + residentColumns + ` FROM residents WHERE id = $1;`
	res, err := scanResident(r.Pool.QueryRow(ctx, query, residentID))
	if err != nil {
		return nil, classify(err, fmt.Sprintf("resident %d", residentID))
	}
	return res, nil
}

func (r *PgxDirectoryRepository) ListResidentsByHome(ctx context.Context, homeID int64) ([]domain.Resident, error) {
	query := `
		SELECT ` + residentColumns + `
		FROM residents
		WHERE group_home_id = $1
		ORDER BY last_name ASC, id ASC;
	`
	rows, err := r.Pool.Query(ctx, query, homeID)
	if err != nil {
		return nil, apperrors.NewInternalServerError("failed to list residents", err)
	}
	defer rows.Close()

	var ms []models.Resident
	for rows.Next() {
		var m models.Resident
		if err := rows.Scan(&m.ID, &m.FirstName, &m.LastName, &m.GroupHomeID); err != nil {
			return nil, apperrors.NewInternalServerError("failed to scan resident", err)
		}
		ms = append(ms, m)
	}
	if err := rows.Err(); err != nil {
		return nil, apperrors.NewInternalServerError("error iterating residents", err)
	}
	return mapping.ToDomainResidentSlice(ms), nil
}

// UpdateResident writes only the fields present in update. Absent fields keep their value
// through COALESCE, so the statement never clears a column.
func (r *PgxDirectoryRepository) UpdateResident(ctx context.Context, residentID int64, update domain.ResidentUpdate) (*domain.Resident, error) {
	query := `
		UPDATE residents
		SET first_name    = COALESCE($2, first_name),
		    last_name     = COALESCE($3, last_name),
		    group_home_id = COALESCE($4, group_home_id)
		WHERE id = $1
		RETURNING ` + residentColumns + `;
	`
	res, err := scanResident(r.Pool.QueryRow(ctx, query, residentID, update.FirstName, update.LastName, update.GroupHomeID))
	if err != nil {
		return nil, classify(err, fmt.Sprintf("update resident %d", residentID))
	}
	return res, nil
}

func (r *PgxDirectoryRepository) FindStaffByIDs(ctx context.Context, staffIDs []domain.StaffID) (map[domain.StaffID]domain.Staff, error) {
	out := make(map[domain.StaffID]domain.Staff, len(staffIDs))
	if len(staffIDs) == 0 {
		return out, nil
	}
	ids := make([]int64, len(staffIDs))
	for i, id := range staffIDs {
		ids[i] = int64(id)
	}

	rows, err := r.Pool.Query(ctx, `SELECT id, first_name, last_name FROM staff WHERE id = ANY($1);`, ids)
	if err != nil {
		return nil, apperrors.NewInternalServerError("failed to query staff", err)
	}
	defer rows.Close()

	for rows.Next() {
		var m models.Staff
		if err := rows.Scan(&m.ID, &m.FirstName, &m.LastName); err != nil {
			return nil, apperrors.NewInternalServerError("failed to scan staff", err)
		}
		st := mapping.ToDomainStaff(m)
		out[st.ID] = st
	}
	if err := rows.Err(); err != nil {
		return nil, apperrors.NewInternalServerError("error iterating staff", err)
	}
	return out, nil
}
