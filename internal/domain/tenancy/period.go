package tenancy

import "time"

// NormalizePeriod truncates a date to the first day of its month.
func NormalizePeriod(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), 1, 0, 0, 0, 0, t.Location())
}

// FirstInvoicePeriod computes the billing period of a tenant's first
// invoice. It starts at the month of check-in; when the tenant moves in
// after the monthly due day has already passed, billing rolls forward
// to the next month.
func FirstInvoicePeriod(startDate time.Time, dueDate int) time.Time {
	period := NormalizePeriod(startDate)
	if startDate.Day() > dueDate {
		period = period.AddDate(0, 1, 0)
	}
	return period
}
