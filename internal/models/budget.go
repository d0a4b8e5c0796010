package models

// Budget is the planned spending for one category in one month
// ("orçamento"). Month is a two digit label ("01".."12") with no year.
type Budget struct {
	Base
	UserID   string `gorm:"type:uuid;not null;index" json:"user_id"`
	Month    string `gorm:"type:varchar(2);not null" json:"month"`
	Category string `gorm:"not null;default:''" json:"category"`
	Amount   int64  `gorm:"type:bigint;not null" json:"amount"`
}
