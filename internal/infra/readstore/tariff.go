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

type TariffReadStore struct {
	db infra.DBTX
}

func NewTariffReadStore(db infra.DBTX) *TariffReadStore {
	return &TariffReadStore{db: db}
}

const priceSetColumns = `id, code, name, created_at`

func (s *TariffReadStore) ListPriceSets(ctx context.Context) ([]*queries.PriceSetView, error) {
	rows, err := s.db.Query(ctx, `SELECT `+priceSetColumns+` FROM price_sets ORDER BY code`)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to list price sets", err)
	}
	defer rows.Close()

	var result []*queries.PriceSetView
	for rows.Next() {
		view, err := scanPriceSetView(rows)
		if err != nil {
			return nil, infra.WrapRepoErr("failed to scan price set row", err)
		}
		result = append(result, view)
	}
	if err := rows.Err(); err != nil {
		return nil, infra.WrapRepoErr("failed to iterate price set rows", err)
	}
	return result, nil
}

func (s *TariffReadStore) FindPriceSetByCode(ctx context.Context, code string) (*queries.PriceSetView, error) {
	row := s.db.QueryRow(ctx, `SELECT `+priceSetColumns+` FROM price_sets WHERE code = $1`, code)
	view, err := scanPriceSetView(row)
	if err != nil {
		if pgconv.IsNoRows(err) {
			return nil, infra.WrapRepoErr("price set not found", err, infra.KindNotFound)
		}
		return nil, infra.WrapRepoErr("failed to find price set by code", err)
	}
	return view, nil
}

func scanPriceSetView(row pgx.Row) (*queries.PriceSetView, error) {
	var (
		view      queries.PriceSetView
		createdAt pgtype.Timestamptz
	)
	if err := row.Scan(&view.ID, &view.Code, &view.Name, &createdAt); err != nil {
		return nil, err
	}
	view.CreatedAt = pgconv.TimeFromPgtype(createdAt)
	return &view, nil
}

const listSeasonRulesSQL = `
SELECT sr.id, sr.price_set_id, ps.code, sr.start_date, sr.end_date,
       sr.weekdays, sr.priority, sr.description, sr.created_at
FROM season_rules sr
JOIN price_sets ps ON ps.id = sr.price_set_id
ORDER BY sr.priority DESC, sr.id
`

func (s *TariffReadStore) ListSeasonRules(ctx context.Context) ([]*queries.SeasonRuleView, error) {
	rows, err := s.db.Query(ctx, listSeasonRulesSQL)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to list season rules", err)
	}
	defer rows.Close()

	var result []*queries.SeasonRuleView
	for rows.Next() {
		var (
			view        queries.SeasonRuleView
			startDate   pgtype.Date
			endDate     pgtype.Date
			weekdays    []int32
			description pgtype.Text
			createdAt   pgtype.Timestamptz
		)
		if err := rows.Scan(
			&view.ID, &view.PriceSetID, &view.PriceSetCode,
			&startDate, &endDate, &weekdays, &view.Priority,
			&description, &createdAt,
		); err != nil {
			return nil, infra.WrapRepoErr("failed to scan season rule row", err)
		}
		view.StartDate = pgconv.DateFromPgtype(startDate)
		view.EndDate = pgconv.DateFromPgtype(endDate)
		view.Weekdays = make([]int, len(weekdays))
		for i, d := range weekdays {
			view.Weekdays[i] = int(d)
		}
		view.Description = pgconv.StringPtrFromPgtype(description)
		view.CreatedAt = pgconv.TimeFromPgtype(createdAt)
		result = append(result, &view)
	}
	if err := rows.Err(); err != nil {
		return nil, infra.WrapRepoErr("failed to iterate season rule rows", err)
	}
	return result, nil
}

const listRateCardsSQL = `
SELECT hr.id, hr.hall_id, hr.price_set_id, ps.code,
       hr.weekday_day_rate, hr.weekday_evening_rate, hr.friday_saturday_rate, hr.sunday_rate,
       hr.cleaning_fee_small, hr.cleaning_fee_large, hr.after_hours_surcharge,
       hr.min_hours, hr.min_hours_saturday, hr.food_alcohol_from_hours,
       hr.service_open_min, hr.late_cutoff_min,
       hr.created_at, hr.updated_at
FROM hall_rates hr
JOIN price_sets ps ON ps.id = hr.price_set_id
WHERE hr.hall_id = $1
ORDER BY ps.code
`

func (s *TariffReadStore) ListRateCards(ctx context.Context, hallID uuid.UUID) ([]*queries.RateCardView, error) {
	rows, err := s.db.Query(ctx, listRateCardsSQL, hallID)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to list rate cards", err)
	}
	defer rows.Close()

	var result []*queries.RateCardView
	for rows.Next() {
		view, err := scanRateCardView(rows)
		if err != nil {
			return nil, infra.WrapRepoErr("failed to scan rate card row", err)
		}
		result = append(result, view)
	}
	if err := rows.Err(); err != nil {
		return nil, infra.WrapRepoErr("failed to iterate rate card rows", err)
	}
	return result, nil
}

func scanRateCardView(row pgx.Row) (*queries.RateCardView, error) {
	var (
		view        queries.RateCardView
		dayRate     pgtype.Numeric
		eveningRate pgtype.Numeric
		friSatRate  pgtype.Numeric
		sundayRate  pgtype.Numeric
		cleanSmall  pgtype.Numeric
		cleanLarge  pgtype.Numeric
		surcharge   pgtype.Numeric
		openMin     pgtype.Int4
		cutoffMin   pgtype.Int4
		createdAt   pgtype.Timestamptz
		updatedAt   pgtype.Timestamptz
	)
	if err := row.Scan(
		&view.ID, &view.HallID, &view.PriceSetID, &view.PriceSetCode,
		&dayRate, &eveningRate, &friSatRate, &sundayRate,
		&cleanSmall, &cleanLarge, &surcharge,
		&view.Rate.MinHours, &view.Rate.MinHoursSaturday, &view.Rate.FoodAlcoholFromHours,
		&openMin, &cutoffMin,
		&createdAt, &updatedAt,
	); err != nil {
		return nil, err
	}

	var err error
	if view.Rate.WeekdayDayRate, err = pgconv.DecimalFromNumeric(dayRate); err != nil {
		return nil, err
	}
	if view.Rate.WeekdayEveningRate, err = pgconv.DecimalFromNumeric(eveningRate); err != nil {
		return nil, err
	}
	if view.Rate.FridaySaturdayRate, err = pgconv.DecimalFromNumeric(friSatRate); err != nil {
		return nil, err
	}
	if view.Rate.SundayRate, err = pgconv.DecimalFromNumeric(sundayRate); err != nil {
		return nil, err
	}
	if view.Rate.CleaningFeeSmall, err = pgconv.DecimalFromNumeric(cleanSmall); err != nil {
		return nil, err
	}
	if view.Rate.CleaningFeeLarge, err = pgconv.DecimalFromNumeric(cleanLarge); err != nil {
		return nil, err
	}
	if view.Rate.AfterHoursSurcharge, err = pgconv.DecimalFromNumeric(surcharge); err != nil {
		return nil, err
	}
	view.Rate.ServiceOpenMin = int32PtrToIntPtr(pgconv.Int32PtrFromPgtype(openMin))
	view.Rate.LateCutoffMin = int32PtrToIntPtr(pgconv.Int32PtrFromPgtype(cutoffMin))
	view.CreatedAt = pgconv.TimeFromPgtype(createdAt)
	view.UpdatedAt = pgconv.TimeFromPgtype(updatedAt)
	return &view, nil
}

func int32PtrToIntPtr(i *int32) *int {
	if i == nil {
		return nil
	}
	v := int(*i)
	return &v
}
