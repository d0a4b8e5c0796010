package validator

import (
	"testing"

	"github.com/gin-gonic/gin/binding"
	"github.com/go-playground/validator/v10"
)

type sample struct {
	Type  string `binding:"omitempty,entry_type"`
	Month string `binding:"omitempty,month_label"`
	Date  string `binding:"omitempty,entry_date"`
}

func TestRegister(t *testing.T) {
	Register()

	v, ok := binding.Validator.Engine().(*validator.Validate)
	if !ok {
		t.Fatal("expected go-playground validator engine")
	}
	v.SetTagName("binding")

	tests := []struct {
		name  string
		in    sample
		valid bool
	}{
		{name: "income", in: sample{Type: "income"}, valid: true},
		{name: "expense", in: sample{Type: "expense"}, valid: true},
		{name: "transfer", in: sample{Type: "transfer"}},
		{name: "month_padded", in: sample{Month: "03"}, valid: true},
		{name: "month_bare", in: sample{Month: "3"}, valid: true},
		{name: "month_13", in: sample{Month: "13"}},
		{name: "date_ok", in: sample{Date: "2025-03-01"}, valid: true},
		{name: "date_bad_day", in: sample{Date: "2025-02-30"}},
		{name: "date_slashes", in: sample{Date: "2025/03/01"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := v.Struct(tt.in)
			if tt.valid && err != nil {
				t.Errorf("expected valid, got %v", err)
			}
			if !tt.valid && err == nil {
				t.Error("expected validation error")
			}
		})
	}
}
