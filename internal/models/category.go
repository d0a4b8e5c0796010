package models

// Category is a shared, user-independent label for entries and budgets.
type Category struct {
	Base
	Name string `gorm:"uniqueIndex;not null" json:"name"`
}
