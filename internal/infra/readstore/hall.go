package readstore

import (
	"context"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgtype"

	"hall-booking/internal/infra"
	"hall-booking/internal/pkg/pgconv"
	"hall-booking/internal/usecase/queries"
)

type HallReadStore struct {
	db infra.DBTX
}

func NewHallReadStore(db infra.DBTX) *HallReadStore {
	return &HallReadStore{db: db}
}

const hallColumns = `id, code, name, description, capacity, created_at, updated_at`

func (s *HallReadStore) FindByID(ctx context.Context, id uuid.UUID) (*queries.HallView, error) {
	row := s.db.QueryRow(ctx, `SELECT `+hallColumns+` FROM halls WHERE id = $1`, id)
	view, err := scanHallView(row)
	if err != nil {
		if pgconv.IsNoRows(err) {
			return nil, infra.WrapRepoErr("hall not found", err, infra.KindNotFound)
		}
		return nil, infra.WrapRepoErr("failed to find hall by ID", err)
	}
	return view, nil
}

func (s *HallReadStore) FindByCode(ctx context.Context, code string) (*queries.HallView, error) {
	row := s.db.QueryRow(ctx, `SELECT `+hallColumns+` FROM halls WHERE code = $1`, code)
	view, err := scanHallView(row)
	if err != nil {
		if pgconv.IsNoRows(err) {
			return nil, infra.WrapRepoErr("hall not found", err, infra.KindNotFound)
		}
		return nil, infra.WrapRepoErr("failed to find hall by code", err)
	}
	return view, nil
}

func (s *HallReadStore) List(ctx context.Context) ([]*queries.HallView, error) {
	rows, err := s.db.Query(ctx, `SELECT `+hallColumns+` FROM halls ORDER BY code`)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to list halls", err)
	}
	defer rows.Close()

	var result []*queries.HallView
	for rows.Next() {
		view, err := scanHallView(rows)
		if err != nil {
			return nil, infra.WrapRepoErr("failed to scan hall row", err)
		}
		result = append(result, view)
	}
	if err := rows.Err(); err != nil {
		return nil, infra.WrapRepoErr("failed to iterate hall rows", err)
	}
	return result, nil
}

func scanHallView(row pgx.Row) (*queries.HallView, error) {
	var (
		view      queries.HallView
		createdAt pgtype.Timestamptz
		updatedAt pgtype.Timestamptz
	)
	if err := row.Scan(&view.ID, &view.Code, &view.Name, &view.Description, &view.Capacity, &createdAt, &updatedAt); err != nil {
		return nil, err
	}
	view.CreatedAt = pgconv.TimeFromPgtype(createdAt)
	view.UpdatedAt = pgconv.TimeFromPgtype(updatedAt)
	return &view, nil
}
