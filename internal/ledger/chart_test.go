package ledger

import (
	"errors"
	"reflect"
	"testing"

	"carteira/internal/models"
)

func TestExpensesByCategory(t *testing.T) {
	t.Run("sums_expenses_only", func(t *testing.T) {
		entries := []models.LedgerEntry{
			entry("1", "2025-03-01", models.EntryTypeExpense, "Food", 50),
			entry("2", "2025-03-01", models.EntryTypeExpense, "Food", 30),
			entry("3", "2025-03-01", models.EntryTypeExpense, "Rent", 100),
			entry("4", "2025-03-01", models.EntryTypeIncome, "Food", 20),
		}

		got, err := ExpensesByCategory(entries, nil)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		want := map[string]int64{"Food": 80, "Rent": 100}
		if !reflect.DeepEqual(got, want) {
			t.Errorf("expected %v, got %v", want, got)
		}
	})

	t.Run("filters_by_period", func(t *testing.T) {
		entries := []models.LedgerEntry{
			entry("1", "2025-03-01", models.EntryTypeExpense, "Food", 50),
			entry("2", "2025-04-01", models.EntryTypeExpense, "Food", 30),
			entry("3", "2024-03-01", models.EntryTypeExpense, "Rent", 100),
		}
		period, err := NewPeriod("2025", "3")
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}

		got, err := ExpensesByCategory(entries, &period)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		want := map[string]int64{"Food": 50}
		if !reflect.DeepEqual(got, want) {
			t.Errorf("expected %v, got %v", want, got)
		}
	})

	t.Run("no_zero_fill", func(t *testing.T) {
		entries := []models.LedgerEntry{
			entry("1", "2025-03-01", models.EntryTypeIncome, "Salary", 500),
		}
		got, err := ExpensesByCategory(entries, nil)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if len(got) != 0 {
			t.Errorf("expected empty map, got %v", got)
		}
	})

	t.Run("malformed_date_with_filter", func(t *testing.T) {
		entries := []models.LedgerEntry{entry("1", "march", models.EntryTypeExpense, "Food", 1)}
		period := Period{Year: "2025", Month: "03"}
		if _, err := ExpensesByCategory(entries, &period); !errors.Is(err, ErrMalformedDate) {
			t.Errorf("expected ErrMalformedDate, got %v", err)
		}
	})
}
