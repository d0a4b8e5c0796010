package dashboard

import (
	"encoding/json"
	"strings"
	"testing"
	"time"
)

func day(d int) time.Time {
	return time.Date(2025, time.March, d, 12, 0, 0, 0, time.UTC)
}

func TestEvaluate(t *testing.T) {
	t.Run("totals_and_balance", func(t *testing.T) {
		s := Evaluate(Input{Income: 500000, Expense: 120000, Planned: 200000}, day(10))

		if s.TotalIncome != 500000 || s.TotalExpense != 120000 {
			t.Errorf("unexpected totals: %+v", s)
		}
		if s.Balance != 380000 {
			t.Errorf("expected balance 380000, got %d", s.Balance)
		}
		if s.Actual != s.TotalExpense {
			t.Errorf("expected actual to equal expense, got %d", s.Actual)
		}
		if len(s.Alerts) != 0 {
			t.Errorf("expected no alerts, got %+v", s.Alerts)
		}
	})

	t.Run("no_data_is_zero", func(t *testing.T) {
		s := Evaluate(Input{}, day(10))
		if s.Balance != 0 || s.Planned != 0 || s.Actual != 0 {
			t.Errorf("expected zero summary, got %+v", s)
		}
		if s.Alerts == nil {
			t.Error("expected non-nil empty alerts slice")
		}
	})

	t.Run("both_alerts_are_independent", func(t *testing.T) {
		s := Evaluate(Input{Expense: 15000, Planned: 10000}, day(28))
		if len(s.Alerts) != 2 {
			t.Fatalf("expected 2 alerts, got %+v", s.Alerts)
		}
		if s.Alerts[0].Kind != AlertOverspend || s.Alerts[1].Kind != AlertEndOfMonth {
			t.Errorf("unexpected alert kinds: %+v", s.Alerts)
		}
	})
}

func TestOverspend(t *testing.T) {
	tests := []struct {
		name     string
		planned  int64
		actual   int64
		wantFire bool
		overage  int64
	}{
		{name: "over_plan", planned: 10000, actual: 15000, wantFire: true, overage: 5000},
		{name: "zero_plan", planned: 0, actual: 15000},
		{name: "equal_plan", planned: 10000, actual: 10000},
		{name: "under_plan", planned: 10000, actual: 9999},
		{name: "one_cent_over", planned: 10000, actual: 10001, wantFire: true, overage: 1},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			alert, ok := Overspend(tt.planned, tt.actual)
			if ok != tt.wantFire {
				t.Fatalf("fired = %v, want %v", ok, tt.wantFire)
			}
			if !ok {
				return
			}
			if alert.Overage != tt.overage {
				t.Errorf("overage = %d, want %d", alert.Overage, tt.overage)
			}
		})
	}

	alert, _ := Overspend(10000, 15000)
	if alert.OverageFormatted != "R$ 50,00" {
		t.Errorf("expected R$ 50,00, got %q", alert.OverageFormatted)
	}
}

func TestEndOfMonth(t *testing.T) {
	tests := []struct {
		day       int
		wantFire  bool
		remaining int
	}{
		{day: 10},
		{day: 26},
		{day: 27, wantFire: true, remaining: 3},
		{day: 28, wantFire: true, remaining: 2},
		{day: 30, wantFire: true, remaining: 0},
		{day: 31, wantFire: true, remaining: 0},
	}

	for _, tt := range tests {
		alert, ok := EndOfMonth(day(tt.day))
		if ok != tt.wantFire {
			t.Errorf("day %d: fired = %v, want %v", tt.day, ok, tt.wantFire)
			continue
		}
		if ok && (alert.DaysRemaining == nil || *alert.DaysRemaining != tt.remaining) {
			t.Errorf("day %d: remaining = %v, want %d", tt.day, alert.DaysRemaining, tt.remaining)
		}
	}
}

func TestAlertJSONDaysRemaining(t *testing.T) {
	overspend, ok := Overspend(10000, 15000)
	if !ok {
		t.Fatal("expected overspend alert")
	}
	raw, err := json.Marshal(overspend)
	if err != nil {
		t.Fatalf("marshal failed: %v", err)
	}
	if strings.Contains(string(raw), "days_remaining") {
		t.Errorf("overspend alert should not carry days_remaining: %s", raw)
	}

	lastDay, ok := EndOfMonth(day(31))
	if !ok {
		t.Fatal("expected end-of-month alert")
	}
	raw, err = json.Marshal(lastDay)
	if err != nil {
		t.Fatalf("marshal failed: %v", err)
	}
	if !strings.Contains(string(raw), `"days_remaining":0`) {
		t.Errorf("day 31 alert should carry days_remaining 0: %s", raw)
	}
}
