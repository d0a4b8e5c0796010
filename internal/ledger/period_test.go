package ledger

import (
	"errors"
	"testing"
	"time"
)

func TestNewPeriod(t *testing.T) {
	tests := []struct {
		name    string
		year    string
		month   string
		want    Period
		wantErr bool
	}{
		{name: "padded", year: "2025", month: "3", want: Period{Year: "2025", Month: "03"}},
		{name: "two_digit", year: "2025", month: "12", want: Period{Year: "2025", Month: "12"}},
		{name: "month_zero", year: "2025", month: "0", wantErr: true},
		{name: "month_13", year: "2025", month: "13", wantErr: true},
		{name: "short_year", year: "25", month: "03", wantErr: true},
		{name: "text_month", year: "2025", month: "mar", wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := NewPeriod(tt.year, tt.month)
			if tt.wantErr {
				if !errors.Is(err, ErrInvalidPeriod) {
					t.Fatalf("expected ErrInvalidPeriod, got %v", err)
				}
				return
			}
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			if got != tt.want {
				t.Errorf("expected %+v, got %+v", tt.want, got)
			}
		})
	}
}

func TestPeriodOf(t *testing.T) {
	p := PeriodOf(time.Date(2026, time.February, 28, 10, 0, 0, 0, time.UTC))
	if p.Prefix() != "2026-02" {
		t.Errorf("expected 2026-02, got %s", p.Prefix())
	}
	if p.FirstDay() != "2026-02-01" {
		t.Errorf("expected 2026-02-01, got %s", p.FirstDay())
	}
}

func TestValidDate(t *testing.T) {
	if !ValidDate("2024-02-29") {
		t.Error("expected leap day to be valid")
	}
	if ValidDate("2025-02-30") {
		t.Error("expected 2025-02-30 to be invalid")
	}
	if ValidDate("2025-2-01") {
		t.Error("expected unpadded month to be invalid")
	}
}
