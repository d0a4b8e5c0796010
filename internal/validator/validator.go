// Package validator provides custom validation functions for Gin's binding engine.
package validator

import (
	"github.com/gin-gonic/gin/binding"
	"github.com/go-playground/validator/v10"

	"carteira/internal/ledger"
	"carteira/internal/models"
)

// Register registers all custom validators with the Gin binding engine.
func Register() {
	if v, ok := binding.Validator.Engine().(*validator.Validate); ok {
		_ = v.RegisterValidation("entry_type", validateEntryType)
		_ = v.RegisterValidation("month_label", validateMonthLabel)
		_ = v.RegisterValidation("entry_date", validateEntryDate)
	}
}

func validateEntryType(fl validator.FieldLevel) bool {
	return models.EntryType(fl.Field().String()).Valid()
}

// validateMonthLabel accepts "1".."12" with or without a leading zero.
func validateMonthLabel(fl validator.FieldLevel) bool {
	_, err := ledger.MonthLabel(fl.Field().String())
	return err == nil
}

func validateEntryDate(fl validator.FieldLevel) bool {
	return ledger.ValidDate(fl.Field().String())
}
