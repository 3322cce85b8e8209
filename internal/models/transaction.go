package models

import "github.com/shopspring/decimal"

// Transaction types. The numeric values are part of the wire contract.
const (
	TypeDeposit  = 0
	TypeWithdraw = 1
)

// Transaction is a single deposit or withdrawal for a client.
// ClientName is denormalized from Client so lists can search and sort on it
// without a join. Bank/card references and charges apply to withdrawals only.
//
// WidthdrawCharges keeps the historical field spelling: it is what every
// existing API consumer sends and expects back.
type Transaction struct {
	ID                uint             `gorm:"primaryKey" json:"id"`
	ClientID          uint             `gorm:"not null;index" json:"client_id"`
	ClientName        string           `gorm:"size:128;not null;index" json:"client_name"`
	TransactionType   int              `gorm:"not null;index" json:"transaction_type"`
	TransactionAmount decimal.Decimal  `gorm:"type:decimal(12,2);not null" json:"transaction_amount"`
	BankID            *uint            `gorm:"index" json:"bank_id"`
	CardID            *uint            `gorm:"index" json:"card_id"`
	WidthdrawCharges  *decimal.Decimal `gorm:"type:decimal(5,2)" json:"widthdraw_charges"`
	Remark            string           `gorm:"size:255" json:"remark"`
	Stamps
}

// IsWithdraw reports whether the record is a withdrawal.
func (t *Transaction) IsWithdraw() bool { return t.TransactionType == TypeWithdraw }
