package pricing

import "time"

// ResolvePriceSet picks the price set effective on the given calendar date.
// A rule matches when the date falls inside its range and the date's weekday
// is in the rule's set. Among matches the highest priority wins; equal
// priority resolves to the lowest rule ID so that overlapping rules at the
// same priority (a data-authoring mistake) still price deterministically.
func ResolvePriceSet(rules []SeasonRule, date time.Time) (string, error) {
	day := truncateToDate(date)
	weekday := day.Weekday()

	var best *SeasonRule
	for i := range rules {
		r := &rules[i]
		if day.Before(truncateToDate(r.StartDate)) || day.After(truncateToDate(r.EndDate)) {
			continue
		}
		if !r.Weekdays.Contains(weekday) {
			continue
		}
		if best == nil ||
			r.Priority > best.Priority ||
			(r.Priority == best.Priority && r.ID < best.ID) {
			best = r
		}
	}

	if best == nil {
		return "", ErrNoPriceSet
	}
	return best.PriceSet, nil
}

func truncateToDate(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, time.UTC)
}
