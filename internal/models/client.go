package models

// Client is a customer whose deposits and withdrawals are tracked.
type Client struct {
	ID           uint   `gorm:"primaryKey" json:"id"`
	ClientName   string `gorm:"size:128;not null;index" json:"client_name"`
	Email        string `gorm:"size:128" json:"email"`
	MobileNumber string `gorm:"size:20" json:"mobile_number"`
	Address      string `gorm:"size:255" json:"address"`
	Stamps
}
