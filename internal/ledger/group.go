package ledger

import (
	"sort"

	"carteira/internal/models"
)

// Grouped maps year to month to the items filed there. Items keep the
// order they were given in.
type Grouped[T any] map[string]map[string][]T

func (g Grouped[T]) add(year, month string, item T) {
	months, ok := g[year]
	if !ok {
		months = make(map[string][]T)
		g[year] = months
	}
	months[month] = append(months[month], item)
}

// Years returns the years present, most recent first.
func (g Grouped[T]) Years() []string {
	years := make([]string, 0, len(g))
	for y := range g {
		years = append(years, y)
	}
	sort.Sort(sort.Reverse(sort.StringSlice(years)))
	return years
}

// Months returns the months present in year, most recent first.
func (g Grouped[T]) Months(year string) []string {
	months := make([]string, 0, len(g[year]))
	for m := range g[year] {
		months = append(months, m)
	}
	sort.Sort(sort.Reverse(sort.StringSlice(months)))
	return months
}

// Len returns the number of items across all groups.
func (g Grouped[T]) Len() int {
	n := 0
	for _, months := range g {
		for _, items := range months {
			n += len(items)
		}
	}
	return n
}

// YearSection is one year of a Grouped value in display order.
type YearSection[T any] struct {
	Year   string            `json:"year"`
	Months []MonthSection[T] `json:"months"`
}

// MonthSection is one month of a YearSection.
type MonthSection[T any] struct {
	Month string `json:"month"`
	Items []T    `json:"items"`
}

// Sections flattens g into years and months sorted most recent first.
func (g Grouped[T]) Sections() []YearSection[T] {
	sections := make([]YearSection[T], 0, len(g))
	for _, y := range g.Years() {
		section := YearSection[T]{Year: y}
		for _, m := range g.Months(y) {
			section.Months = append(section.Months, MonthSection[T]{Month: m, Items: g[y][m]})
		}
		sections = append(sections, section)
	}
	return sections
}

// GroupEntries files each entry under the year and month of its date. The
// first malformed date aborts the grouping.
func GroupEntries(entries []models.LedgerEntry) (Grouped[models.LedgerEntry], error) {
	grouped := make(Grouped[models.LedgerEntry])
	for _, e := range entries {
		year, month, _, err := SplitDate(e.Date)
		if err != nil {
			return nil, err
		}
		grouped.add(year, month, e)
	}
	return grouped, nil
}

// GroupBudgets files every budget under the given year and its month label.
// Budgets are not calendar dated, so the year is a fixed setting rather than
// anything derived from the rows.
func GroupBudgets(budgets []models.Budget, year string) Grouped[models.Budget] {
	grouped := make(Grouped[models.Budget])
	for _, b := range budgets {
		grouped.add(year, b.Month, b)
	}
	return grouped
}
