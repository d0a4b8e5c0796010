package models

// Investment is a holding of a quantity of some asset at a unit price in cents.
type Investment struct {
	Base
	UserID    string `gorm:"type:uuid;not null;index" json:"user_id"`
	Kind      string `gorm:"not null;default:''" json:"kind"`
	Code      string `gorm:"not null;default:''" json:"code"`
	Quantity  int64  `gorm:"not null;default:0" json:"quantity"`
	UnitPrice int64  `gorm:"type:bigint;not null;default:0" json:"unit_price"`
}

// Value returns quantity times unit price, in cents.
func (i Investment) Value() int64 {
	return i.Quantity * i.UnitPrice
}
