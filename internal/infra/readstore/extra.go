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

type ExtraReadStore struct {
	db infra.DBTX
}

func NewExtraReadStore(db infra.DBTX) *ExtraReadStore {
	return &ExtraReadStore{db: db}
}

const extraServiceColumns = `id, code, name, scheme, unit_size, created_at`

func (s *ExtraReadStore) List(ctx context.Context) ([]*queries.ExtraServiceView, error) {
	rows, err := s.db.Query(ctx, `SELECT `+extraServiceColumns+` FROM extra_services ORDER BY code`)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to list extra services", err)
	}
	defer rows.Close()

	var result []*queries.ExtraServiceView
	for rows.Next() {
		view, err := scanExtraServiceView(rows)
		if err != nil {
			return nil, infra.WrapRepoErr("failed to scan extra service row", err)
		}
		result = append(result, view)
	}
	if err := rows.Err(); err != nil {
		return nil, infra.WrapRepoErr("failed to iterate extra service rows", err)
	}
	return result, nil
}

func (s *ExtraReadStore) FindByID(ctx context.Context, id uuid.UUID) (*queries.ExtraServiceView, error) {
	row := s.db.QueryRow(ctx, `SELECT `+extraServiceColumns+` FROM extra_services WHERE id = $1`, id)
	view, err := scanExtraServiceView(row)
	if err != nil {
		if pgconv.IsNoRows(err) {
			return nil, infra.WrapRepoErr("extra service not found", err, infra.KindNotFound)
		}
		return nil, infra.WrapRepoErr("failed to find extra service by ID", err)
	}
	return view, nil
}

func scanExtraServiceView(row pgx.Row) (*queries.ExtraServiceView, error) {
	var (
		view      queries.ExtraServiceView
		unitSize  pgtype.Int4
		createdAt pgtype.Timestamptz
	)
	if err := row.Scan(&view.ID, &view.Code, &view.Name, &view.Scheme, &unitSize, &createdAt); err != nil {
		return nil, err
	}
	view.UnitSize = int32PtrToIntPtr(pgconv.Int32PtrFromPgtype(unitSize))
	view.CreatedAt = pgconv.TimeFromPgtype(createdAt)
	return &view, nil
}

const listExtraPricesSQL = `
SELECT ep.id, ep.extra_service_id, ep.price_set_id, ps.code,
       ep.base_price, ep.additional_unit_price, ep.unit_label
FROM extra_service_prices ep
JOIN price_sets ps ON ps.id = ep.price_set_id
WHERE ep.extra_service_id = $1
ORDER BY ps.code
`

func (s *ExtraReadStore) ListPrices(ctx context.Context, serviceID uuid.UUID) ([]*queries.ExtraPriceView, error) {
	rows, err := s.db.Query(ctx, listExtraPricesSQL, serviceID)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to list extra prices", err)
	}
	defer rows.Close()

	var result []*queries.ExtraPriceView
	for rows.Next() {
		var (
			view       queries.ExtraPriceView
			basePrice  pgtype.Numeric
			additional pgtype.Numeric
		)
		if err := rows.Scan(
			&view.ID, &view.ServiceID, &view.PriceSetID, &view.PriceSetCode,
			&basePrice, &additional, &view.UnitLabel,
		); err != nil {
			return nil, infra.WrapRepoErr("failed to scan extra price row", err)
		}
		if view.BasePrice, err = pgconv.DecimalFromNumeric(basePrice); err != nil {
			return nil, infra.WrapRepoErr("failed to convert extra base price", err)
		}
		if view.AdditionalUnitPrice, err = pgconv.DecimalPtrFromNumeric(additional); err != nil {
			return nil, infra.WrapRepoErr("failed to convert extra additional price", err)
		}
		result = append(result, &view)
	}
	if err := rows.Err(); err != nil {
		return nil, infra.WrapRepoErr("failed to iterate extra price rows", err)
	}
	return result, nil
}
