package models

import "github.com/shopspring/decimal"

// Profile is a profiler balance sheet for a client or a bank.
// Balance is the running sum of the profile's transactions: deposits add,
// withdrawals subtract.
type Profile struct {
	ID          uint            `gorm:"primaryKey" json:"id"`
	ProfileName string          `gorm:"size:128;not null;index" json:"profile_name"`
	ClientID    *uint           `gorm:"index" json:"client_id"`
	BankID      *uint           `gorm:"index" json:"bank_id"`
	Balance     decimal.Decimal `gorm:"type:decimal(14,2);not null" json:"balance"`
	Stamps
}

// ProfileTransaction is a deposit or withdrawal against a profile.
type ProfileTransaction struct {
	ID                uint            `gorm:"primaryKey" json:"id"`
	ProfileID         uint            `gorm:"not null;index" json:"profile_id"`
	TransactionType   int             `gorm:"not null;index" json:"transaction_type"`
	TransactionAmount decimal.Decimal `gorm:"type:decimal(12,2);not null" json:"transaction_amount"`
	Remark            string          `gorm:"size:255" json:"remark"`
	Stamps
}

// SignedAmount is the amount with the sign the profile balance sees.
func (p *ProfileTransaction) SignedAmount() decimal.Decimal {
	if p.TransactionType == TypeWithdraw {
		return p.TransactionAmount.Neg()
	}
	return p.TransactionAmount
}
