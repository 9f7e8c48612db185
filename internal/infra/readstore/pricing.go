package readstore

import (
	"context"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgtype"

	"hall-booking/internal/domain/pricing"
	"hall-booking/internal/infra"
	"hall-booking/internal/pkg/pgconv"
)

// PricingReadStore assembles the snapshot the pricing engine computes
// over: every season rule, the hall's rate card per price set, and every
// extra price keyed by price set code.
type PricingReadStore struct {
	db infra.DBTX
}

func NewPricingReadStore(db infra.DBTX) *PricingReadStore {
	return &PricingReadStore{db: db}
}

func (s *PricingReadStore) LoadSnapshot(ctx context.Context, hallID uuid.UUID) (*pricing.Snapshot, error) {
	snap := &pricing.Snapshot{
		HallRates:   make(map[string]pricing.HallRate),
		Extras:      make(map[string]pricing.ExtraSpec),
		ExtraPrices: make(map[string]map[string]pricing.ExtraPrice),
	}

	if err := s.loadSeasonRules(ctx, snap); err != nil {
		return nil, err
	}
	if err := s.loadHallRates(ctx, hallID, snap); err != nil {
		return nil, err
	}
	if err := s.loadExtras(ctx, snap); err != nil {
		return nil, err
	}
	return snap, nil
}

const snapshotSeasonRulesSQL = `
SELECT sr.id, ps.code, sr.start_date, sr.end_date, sr.weekdays, sr.priority
FROM season_rules sr
JOIN price_sets ps ON ps.id = sr.price_set_id
`

func (s *PricingReadStore) loadSeasonRules(ctx context.Context, snap *pricing.Snapshot) error {
	rows, err := s.db.Query(ctx, snapshotSeasonRulesSQL)
	if err != nil {
		return infra.WrapRepoErr("failed to load season rules", err)
	}
	defer rows.Close()

	for rows.Next() {
		var (
			rule      pricing.SeasonRule
			startDate pgtype.Date
			endDate   pgtype.Date
			weekdays  []int32
		)
		if err := rows.Scan(&rule.ID, &rule.PriceSet, &startDate, &endDate, &weekdays, &rule.Priority); err != nil {
			return infra.WrapRepoErr("failed to scan season rule", err)
		}
		rule.StartDate = pgconv.DateFromPgtype(startDate)
		rule.EndDate = pgconv.DateFromPgtype(endDate)
		for _, d := range weekdays {
			rule.Weekdays |= 1 << uint(d)
		}
		snap.Rules = append(snap.Rules, rule)
	}
	return rows.Err()
}

const snapshotHallRatesSQL = `
SELECT ps.code,
       hr.weekday_day_rate, hr.weekday_evening_rate, hr.friday_saturday_rate, hr.sunday_rate,
       hr.cleaning_fee_small, hr.cleaning_fee_large, hr.after_hours_surcharge,
       hr.min_hours, hr.min_hours_saturday, hr.food_alcohol_from_hours,
       hr.service_open_min, hr.late_cutoff_min
FROM hall_rates hr
JOIN price_sets ps ON ps.id = hr.price_set_id
WHERE hr.hall_id = $1
`

func (s *PricingReadStore) loadHallRates(ctx context.Context, hallID uuid.UUID, snap *pricing.Snapshot) error {
	rows, err := s.db.Query(ctx, snapshotHallRatesSQL, hallID)
	if err != nil {
		return infra.WrapRepoErr("failed to load hall rates", err)
	}
	defer rows.Close()

	for rows.Next() {
		var (
			code        string
			rate        pricing.HallRate
			dayRate     pgtype.Numeric
			eveningRate pgtype.Numeric
			friSatRate  pgtype.Numeric
			sundayRate  pgtype.Numeric
			cleanSmall  pgtype.Numeric
			cleanLarge  pgtype.Numeric
			surcharge   pgtype.Numeric
			openMin     pgtype.Int4
			cutoffMin   pgtype.Int4
		)
		if err := rows.Scan(
			&code,
			&dayRate, &eveningRate, &friSatRate, &sundayRate,
			&cleanSmall, &cleanLarge, &surcharge,
			&rate.MinHours, &rate.MinHoursSaturday, &rate.FoodAlcoholFromHours,
			&openMin, &cutoffMin,
		); err != nil {
			return infra.WrapRepoErr("failed to scan hall rate", err)
		}

		if rate.WeekdayDayRate, err = pgconv.DecimalFromNumeric(dayRate); err != nil {
			return infra.WrapRepoErr("failed to convert hall rate", err)
		}
		if rate.WeekdayEveningRate, err = pgconv.DecimalFromNumeric(eveningRate); err != nil {
			return infra.WrapRepoErr("failed to convert hall rate", err)
		}
		if rate.FridaySaturdayRate, err = pgconv.DecimalFromNumeric(friSatRate); err != nil {
			return infra.WrapRepoErr("failed to convert hall rate", err)
		}
		if rate.SundayRate, err = pgconv.DecimalFromNumeric(sundayRate); err != nil {
			return infra.WrapRepoErr("failed to convert hall rate", err)
		}
		if rate.CleaningFeeSmall, err = pgconv.DecimalFromNumeric(cleanSmall); err != nil {
			return infra.WrapRepoErr("failed to convert hall rate", err)
		}
		if rate.CleaningFeeLarge, err = pgconv.DecimalFromNumeric(cleanLarge); err != nil {
			return infra.WrapRepoErr("failed to convert hall rate", err)
		}
		if rate.AfterHoursSurcharge, err = pgconv.DecimalFromNumeric(surcharge); err != nil {
			return infra.WrapRepoErr("failed to convert hall rate", err)
		}
		rate.ServiceOpenMin = int32PtrToIntPtr(pgconv.Int32PtrFromPgtype(openMin))
		rate.LateCutoffMin = int32PtrToIntPtr(pgconv.Int32PtrFromPgtype(cutoffMin))

		snap.HallRates[code] = rate
	}
	return rows.Err()
}

const snapshotExtraServicesSQL = `
SELECT code, name, scheme, unit_size FROM extra_services
`

// Services and prices load separately: a service with no price row for
// the resolved price set must still be visible so quoting can report the
// configuration gap instead of an unknown code.
func (s *PricingReadStore) loadExtras(ctx context.Context, snap *pricing.Snapshot) error {
	rows, err := s.db.Query(ctx, snapshotExtraServicesSQL)
	if err != nil {
		return infra.WrapRepoErr("failed to load extra services", err)
	}
	defer rows.Close()

	for rows.Next() {
		var (
			spec     pricing.ExtraSpec
			scheme   string
			unitSize pgtype.Int4
		)
		if err := rows.Scan(&spec.Code, &spec.Name, &scheme, &unitSize); err != nil {
			return infra.WrapRepoErr("failed to scan extra service", err)
		}
		spec.Scheme = pricing.Scheme(scheme)
		spec.UnitSize = int32PtrToIntPtr(pgconv.Int32PtrFromPgtype(unitSize))
		snap.Extras[spec.Code] = spec
	}
	if err := rows.Err(); err != nil {
		return infra.WrapRepoErr("failed to iterate extra services", err)
	}

	return s.loadExtraPrices(ctx, snap)
}

const snapshotExtraPricesSQL = `
SELECT es.code, ps.code, ep.base_price, ep.additional_unit_price, ep.unit_label
FROM extra_service_prices ep
JOIN extra_services es ON es.id = ep.extra_service_id
JOIN price_sets ps ON ps.id = ep.price_set_id
`

func (s *PricingReadStore) loadExtraPrices(ctx context.Context, snap *pricing.Snapshot) error {
	rows, err := s.db.Query(ctx, snapshotExtraPricesSQL)
	if err != nil {
		return infra.WrapRepoErr("failed to load extra prices", err)
	}
	defer rows.Close()

	for rows.Next() {
		var (
			price        pricing.ExtraPrice
			serviceCode  string
			priceSetCode string
			basePrice    pgtype.Numeric
			additional   pgtype.Numeric
		)
		if err := rows.Scan(&serviceCode, &priceSetCode, &basePrice, &additional, &price.UnitLabel); err != nil {
			return infra.WrapRepoErr("failed to scan extra price", err)
		}
		if price.BasePrice, err = pgconv.DecimalFromNumeric(basePrice); err != nil {
			return infra.WrapRepoErr("failed to convert extra price", err)
		}
		if price.AdditionalUnitPrice, err = pgconv.DecimalPtrFromNumeric(additional); err != nil {
			return infra.WrapRepoErr("failed to convert extra price", err)
		}

		if snap.ExtraPrices[serviceCode] == nil {
			snap.ExtraPrices[serviceCode] = make(map[string]pricing.ExtraPrice)
		}
		snap.ExtraPrices[serviceCode][priceSetCode] = price
	}
	return rows.Err()
}
