package ledger

import "carteira/internal/models"

// ExpensesByCategory sums expense amounts per category. With a non-nil
// filter only entries dated inside that period count. Categories with no
// matching expense are absent from the result.
func ExpensesByCategory(entries []models.LedgerEntry, filter *Period) (map[string]int64, error) {
	totals := make(map[string]int64)
	for _, e := range entries {
		if e.Type != models.EntryTypeExpense {
			continue
		}
		if filter != nil {
			year, month, _, err := SplitDate(e.Date)
			if err != nil {
				return nil, err
			}
			if year != filter.Year || month != filter.Month {
				continue
			}
		}
		totals[e.Category] += e.Amount
	}
	return totals, nil
}
