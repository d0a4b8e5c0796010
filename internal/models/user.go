package models

// User represents the user model in the database. Balances are stored in
// cents.
type User struct {
	Base
	Username         string `gorm:"uniqueIndex;not null" json:"username"`
	Password         string `gorm:"not null" json:"-"`
	Name             string `gorm:"not null;default:''" json:"name"`
	Email            string `gorm:"not null;default:''" json:"email"`
	CashBalance      int64  `gorm:"type:bigint;not null;default:0" json:"cash_balance"`
	ReserveBalance   int64  `gorm:"type:bigint;not null;default:0" json:"reserve_balance"`
	DarkMode         bool   `gorm:"not null;default:false" json:"dark_mode"`
	CashBank         string `gorm:"not null;default:''" json:"cash_bank"`
	ReserveBank      string `gorm:"not null;default:''" json:"reserve_bank"`
	PhotoURL         string `gorm:"not null;default:''" json:"photo_url"`
	RefreshTokenHash string `gorm:"size:64" json:"-"`

	Entries     []LedgerEntry `gorm:"foreignKey:UserID;constraint:OnDelete:CASCADE" json:"-"`
	Budgets     []Budget      `gorm:"foreignKey:UserID;constraint:OnDelete:CASCADE" json:"-"`
	Investments []Investment  `gorm:"foreignKey:UserID;constraint:OnDelete:CASCADE" json:"-"`
}
