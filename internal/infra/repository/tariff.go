package repository

import (
	"context"

	"github.com/google/uuid"

	"hall-booking/internal/domain/extra"
	"hall-booking/internal/domain/tariff"
	"hall-booking/internal/infra"
	"hall-booking/internal/pkg/pgconv"
)

type TariffRepository struct{}

func NewTariffRepository() *TariffRepository {
	return &TariffRepository{}
}

const createPriceSetSQL = `
INSERT INTO price_sets (id, code, name)
VALUES ($1, $2, $3)
RETURNING id
`

func (r *TariffRepository) CreatePriceSet(ctx context.Context, db infra.DBTX, ps *tariff.PriceSet) (uuid.UUID, error) {
	var id uuid.UUID
	err := db.QueryRow(ctx, createPriceSetSQL, ps.ID(), ps.Code(), ps.Name()).Scan(&id)
	if err != nil {
		return uuid.Nil, infra.WrapRepoErr("failed to create price set", err, infra.KindFromPgErr(err))
	}
	return id, nil
}

const deletePriceSetSQL = `DELETE FROM price_sets WHERE id = $1`

func (r *TariffRepository) DeletePriceSet(ctx context.Context, db infra.DBTX, id uuid.UUID) error {
	tag, err := db.Exec(ctx, deletePriceSetSQL, id)
	if err != nil {
		return infra.WrapRepoErr("failed to delete price set", err, infra.KindFromPgErr(err))
	}
	if tag.RowsAffected() == 0 {
		return infra.WrapRepoErr("price set not found", pgconv.ErrNoRowsAffected, infra.KindNotFound)
	}
	return nil
}

const createSeasonRuleSQL = `
INSERT INTO season_rules (price_set_id, start_date, end_date, weekdays, priority, description)
VALUES ($1, $2, $3, $4, $5, $6)
RETURNING id
`

func (r *TariffRepository) CreateSeasonRule(ctx context.Context, db infra.DBTX, rule *tariff.SeasonRule) (int64, error) {
	weekdays := make([]int32, 0, 7)
	for _, d := range rule.Weekdays().Days() {
		weekdays = append(weekdays, int32(d))
	}

	var id int64
	err := db.QueryRow(ctx, createSeasonRuleSQL,
		rule.PriceSetID(),
		pgconv.DateToPgtype(rule.StartDate()),
		pgconv.DateToPgtype(rule.EndDate()),
		weekdays,
		rule.Priority(),
		rule.Description(),
	).Scan(&id)
	if err != nil {
		return 0, infra.WrapRepoErr("failed to create season rule", err, infra.KindFromPgErr(err))
	}
	return id, nil
}

const deleteSeasonRuleSQL = `DELETE FROM season_rules WHERE id = $1`

func (r *TariffRepository) DeleteSeasonRule(ctx context.Context, db infra.DBTX, id int64) error {
	tag, err := db.Exec(ctx, deleteSeasonRuleSQL, id)
	if err != nil {
		return infra.WrapRepoErr("failed to delete season rule", err, infra.KindFromPgErr(err))
	}
	if tag.RowsAffected() == 0 {
		return infra.WrapRepoErr("season rule not found", pgconv.ErrNoRowsAffected, infra.KindNotFound)
	}
	return nil
}

const upsertRateCardSQL = `
INSERT INTO hall_rates (
    id, hall_id, price_set_id,
    weekday_day_rate, weekday_evening_rate, friday_saturday_rate, sunday_rate,
    cleaning_fee_small, cleaning_fee_large, after_hours_surcharge,
    min_hours, min_hours_saturday, food_alcohol_from_hours,
    service_open_min, late_cutoff_min
)
VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14, $15)
ON CONFLICT (hall_id, price_set_id) DO UPDATE SET
    weekday_day_rate = EXCLUDED.weekday_day_rate,
    weekday_evening_rate = EXCLUDED.weekday_evening_rate,
    friday_saturday_rate = EXCLUDED.friday_saturday_rate,
    sunday_rate = EXCLUDED.sunday_rate,
    cleaning_fee_small = EXCLUDED.cleaning_fee_small,
    cleaning_fee_large = EXCLUDED.cleaning_fee_large,
    after_hours_surcharge = EXCLUDED.after_hours_surcharge,
    min_hours = EXCLUDED.min_hours,
    min_hours_saturday = EXCLUDED.min_hours_saturday,
    food_alcohol_from_hours = EXCLUDED.food_alcohol_from_hours,
    service_open_min = EXCLUDED.service_open_min,
    late_cutoff_min = EXCLUDED.late_cutoff_min,
    updated_at = now()
RETURNING id
`

func (r *TariffRepository) UpsertRateCard(ctx context.Context, db infra.DBTX, card *tariff.RateCard) (uuid.UUID, error) {
	rate := card.Rate()

	var id uuid.UUID
	err := db.QueryRow(ctx, upsertRateCardSQL,
		card.ID(), card.HallID(), card.PriceSetID(),
		pgconv.NumericFromDecimal(rate.WeekdayDayRate),
		pgconv.NumericFromDecimal(rate.WeekdayEveningRate),
		pgconv.NumericFromDecimal(rate.FridaySaturdayRate),
		pgconv.NumericFromDecimal(rate.SundayRate),
		pgconv.NumericFromDecimal(rate.CleaningFeeSmall),
		pgconv.NumericFromDecimal(rate.CleaningFeeLarge),
		pgconv.NumericFromDecimal(rate.AfterHoursSurcharge),
		rate.MinHours,
		rate.MinHoursSaturday,
		rate.FoodAlcoholFromHours,
		pgconv.Int32PtrToPgtype(intPtrToInt32Ptr(rate.ServiceOpenMin)),
		pgconv.Int32PtrToPgtype(intPtrToInt32Ptr(rate.LateCutoffMin)),
	).Scan(&id)
	if err != nil {
		return uuid.Nil, infra.WrapRepoErr("failed to upsert rate card", err, infra.KindFromPgErr(err))
	}
	return id, nil
}

const deleteRateCardSQL = `DELETE FROM hall_rates WHERE hall_id = $1 AND price_set_id = $2`

func (r *TariffRepository) DeleteRateCard(ctx context.Context, db infra.DBTX, hallID, priceSetID uuid.UUID) error {
	tag, err := db.Exec(ctx, deleteRateCardSQL, hallID, priceSetID)
	if err != nil {
		return infra.WrapRepoErr("failed to delete rate card", err, infra.KindFromPgErr(err))
	}
	if tag.RowsAffected() == 0 {
		return infra.WrapRepoErr("rate card not found", pgconv.ErrNoRowsAffected, infra.KindNotFound)
	}
	return nil
}

const upsertExtraPriceSQL = `
INSERT INTO extra_service_prices (id, extra_service_id, price_set_id, base_price, additional_unit_price, unit_label)
VALUES ($1, $2, $3, $4, $5, $6)
ON CONFLICT (extra_service_id, price_set_id) DO UPDATE SET
    base_price = EXCLUDED.base_price,
    additional_unit_price = EXCLUDED.additional_unit_price,
    unit_label = EXCLUDED.unit_label,
    updated_at = now()
RETURNING id
`

func (r *TariffRepository) UpsertExtraPrice(ctx context.Context, db infra.DBTX, price *extra.Price) (uuid.UUID, error) {
	var id uuid.UUID
	err := db.QueryRow(ctx, upsertExtraPriceSQL,
		price.ID(), price.ServiceID(), price.PriceSetID(),
		pgconv.NumericFromDecimal(price.BasePrice()),
		pgconv.NumericFromDecimalPtr(price.AdditionalUnitPrice()),
		price.UnitLabel(),
	).Scan(&id)
	if err != nil {
		return uuid.Nil, infra.WrapRepoErr("failed to upsert extra price", err, infra.KindFromPgErr(err))
	}
	return id, nil
}

const deleteExtraPriceSQL = `DELETE FROM extra_service_prices WHERE extra_service_id = $1 AND price_set_id = $2`

func (r *TariffRepository) DeleteExtraPrice(ctx context.Context, db infra.DBTX, serviceID, priceSetID uuid.UUID) error {
	tag, err := db.Exec(ctx, deleteExtraPriceSQL, serviceID, priceSetID)
	if err != nil {
		return infra.WrapRepoErr("failed to delete extra price", err, infra.KindFromPgErr(err))
	}
	if tag.RowsAffected() == 0 {
		return infra.WrapRepoErr("extra price not found", pgconv.ErrNoRowsAffected, infra.KindNotFound)
	}
	return nil
}

func intPtrToInt32Ptr(i *int) *int32 {
	if i == nil {
		return nil
	}
	v := int32(*i)
	return &v
}
