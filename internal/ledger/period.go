// Package ledger groups ledger entries and budgets by year and month for
// display and sums expenses by category for charts.
package ledger

import (
	"errors"
	"fmt"
	"strconv"
	"strings"
	"time"
)

// ErrMalformedDate is returned for dates that are not YYYY-MM-DD.
var ErrMalformedDate = errors.New("malformed date")

// ErrInvalidPeriod is returned for year/month pairs that cannot name a month.
var ErrInvalidPeriod = errors.New("invalid period")

// Period names one calendar month. Year is four digits, Month two.
type Period struct {
	Year  string `json:"year"`
	Month string `json:"month"`
}

// NewPeriod validates a year/month pair. A single digit month is zero-padded.
func NewPeriod(year, month string) (Period, error) {
	if len(year) != 4 || !digits(year) {
		return Period{}, fmt.Errorf("%w: year %q", ErrInvalidPeriod, year)
	}
	label, err := MonthLabel(month)
	if err != nil {
		return Period{}, err
	}
	return Period{Year: year, Month: label}, nil
}

// PeriodOf returns the period containing t.
func PeriodOf(t time.Time) Period {
	return Period{Year: fmt.Sprintf("%04d", t.Year()), Month: fmt.Sprintf("%02d", int(t.Month()))}
}

// Prefix returns "YYYY-MM", the leading part of every date in the period.
func (p Period) Prefix() string {
	return p.Year + "-" + p.Month
}

// FirstDay returns the "YYYY-MM-01" date entries recorded for a month get.
func (p Period) FirstDay() string {
	return p.Prefix() + "-01"
}

// MonthLabel normalizes "1".."12" or "01".."12" to the two digit label.
func MonthLabel(month string) (string, error) {
	month = strings.TrimSpace(month)
	if month == "" || len(month) > 2 || !digits(month) {
		return "", fmt.Errorf("%w: month %q", ErrInvalidPeriod, month)
	}
	n, _ := strconv.Atoi(month)
	if n < 1 || n > 12 {
		return "", fmt.Errorf("%w: month %q", ErrInvalidPeriod, month)
	}
	return fmt.Sprintf("%02d", n), nil
}

// SplitDate splits a YYYY-MM-DD date into its parts. It only checks shape;
// month and day ranges are not validated.
func SplitDate(date string) (year, month, day string, err error) {
	parts := strings.Split(date, "-")
	if len(parts) != 3 || len(parts[0]) != 4 || len(parts[1]) != 2 || len(parts[2]) != 2 {
		return "", "", "", fmt.Errorf("%w: %q", ErrMalformedDate, date)
	}
	for _, p := range parts {
		if !digits(p) {
			return "", "", "", fmt.Errorf("%w: %q", ErrMalformedDate, date)
		}
	}
	return parts[0], parts[1], parts[2], nil
}

// ValidDate reports whether date is a real YYYY-MM-DD calendar date.
func ValidDate(date string) bool {
	if _, _, _, err := SplitDate(date); err != nil {
		return false
	}
	_, err := time.Parse(time.DateOnly, date)
	return err == nil
}

func digits(s string) bool {
	for _, r := range s {
		if r < '0' || r > '9' {
			return false
		}
	}
	return s != ""
}
