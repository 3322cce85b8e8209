package models

// Bank represents a bank account money moves through.
type Bank struct {
	ID            uint   `gorm:"primaryKey" json:"id"`
	BankName      string `gorm:"size:128;not null;index" json:"bank_name"`
	AccountNumber string `gorm:"size:32" json:"account_number"`
	IFSCCode      string `gorm:"size:16" json:"ifsc_code"`
	Branch        string `gorm:"size:128" json:"branch"`
	Stamps
}
