// Package dashboard evaluates a user's current-month totals against the
// planned budget and raises advisory alerts.
package dashboard

import (
	"fmt"
	"time"

	"carteira/internal/money"
)

const (
	// monthWindow is the fixed month length used for the end-of-month alert.
	monthWindow = 30
	// endOfMonthThreshold is the number of remaining days at which the alert fires.
	endOfMonthThreshold = 3
)

// AlertKind identifies an alert.
type AlertKind string

const (
	AlertOverspend  AlertKind = "overspend"
	AlertEndOfMonth AlertKind = "end_of_month"
)

// Input holds the month's aggregates, in cents. Zero means no data.
type Input struct {
	Income  int64
	Expense int64
	Planned int64
}

// Alert is an advisory message shown on the dashboard.
type Alert struct {
	Kind    AlertKind `json:"kind"`
	Message string    `json:"message"`

	// Overage is set for overspend alerts, in cents.
	Overage int64 `json:"overage,omitempty"`
	// OverageFormatted is Overage rendered as currency.
	OverageFormatted string `json:"overage_formatted,omitempty"`
	// DaysRemaining is set for end-of-month alerts. It can be 0 on day 31.
	DaysRemaining *int `json:"days_remaining,omitempty"`
}

// Summary is the evaluated dashboard state.
type Summary struct {
	TotalIncome  int64   `json:"total_income"`
	TotalExpense int64   `json:"total_expense"`
	Balance      int64   `json:"balance"`
	Planned      int64   `json:"planned"`
	Actual       int64   `json:"actual"`
	Alerts       []Alert `json:"alerts"`
}

// Evaluate computes the balance and the alerts for the month containing now.
func Evaluate(in Input, now time.Time) Summary {
	s := Summary{
		TotalIncome:  in.Income,
		TotalExpense: in.Expense,
		Balance:      in.Income - in.Expense,
		Planned:      in.Planned,
		Actual:       in.Expense,
		Alerts:       []Alert{},
	}

	if alert, ok := Overspend(s.Planned, s.Actual); ok {
		s.Alerts = append(s.Alerts, alert)
	}
	if alert, ok := EndOfMonth(now); ok {
		s.Alerts = append(s.Alerts, alert)
	}
	return s
}

// Overspend fires when actual spending exceeds a positive plan.
func Overspend(planned, actual int64) (Alert, bool) {
	if planned <= 0 || actual <= planned {
		return Alert{}, false
	}
	overage := actual - planned
	formatted := money.FormatCurrency(overage)
	return Alert{
		Kind:             AlertOverspend,
		Message:          fmt.Sprintf("Você ultrapassou o orçamento do mês em %s.", formatted),
		Overage:          overage,
		OverageFormatted: formatted,
	}, true
}

// EndOfMonth fires when at most endOfMonthThreshold days remain in a
// monthWindow-day month. Day 31 counts as zero days left.
func EndOfMonth(now time.Time) (Alert, bool) {
	remaining := monthWindow - now.Day()
	if remaining > endOfMonthThreshold {
		return Alert{}, false
	}
	if remaining < 0 {
		remaining = 0
	}
	return Alert{
		Kind:          AlertEndOfMonth,
		Message:       fmt.Sprintf("Faltam %d dias para o fim do mês.", remaining),
		DaysRemaining: &remaining,
	}, true
}
