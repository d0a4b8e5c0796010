package models

// EntryType tags a ledger entry as money in or money out.
type EntryType string

const (
	EntryTypeIncome  EntryType = "income"
	EntryTypeExpense EntryType = "expense"
)

// Valid reports whether t is one of the two supported tags.
func (t EntryType) Valid() bool {
	return t == EntryTypeIncome || t == EntryTypeExpense
}

// LedgerEntry is one income or expense record ("lançamento"). Date is kept as
// the YYYY-MM-DD text the user's month selection produced so that month
// prefix filters and descending sorts work the same on every backend.
type LedgerEntry struct {
	Base
	UserID      string    `gorm:"type:uuid;not null;index" json:"user_id"`
	Date        string    `gorm:"type:varchar(10);not null;index" json:"date"`
	Description string    `gorm:"not null;default:''" json:"description"`
	Category    string    `gorm:"not null;default:''" json:"category"`
	Type        EntryType `gorm:"type:varchar(10);not null" json:"type"`
	Amount      int64     `gorm:"type:bigint;not null" json:"amount"`
}
