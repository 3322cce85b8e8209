package models

// Card is a payment card withdrawals can be charged against.
type Card struct {
	ID         uint   `gorm:"primaryKey" json:"id"`
	CardName   string `gorm:"size:128;not null;index" json:"card_name"`
	CardNumber string `gorm:"size:32" json:"card_number"`
	Stamps
}
