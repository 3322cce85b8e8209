package client

import "github.com/shopspring/decimal"

// Transaction types, matching the wire values.
const (
	TypeDeposit  = 0
	TypeWithdraw = 1
)

// Record is any API entity addressable by id.
type Record interface {
	RecordID() uint
}

// Stamps are the audit columns every record carries.
type Stamps struct {
	CreateDate string  `json:"create_date"`
	CreateTime string  `json:"create_time"`
	ModifyDate *string `json:"modify_date"`
	ModifyTime *string `json:"modify_time"`
}

type Bank struct {
	ID            uint   `json:"id"`
	BankName      string `json:"bank_name"`
	AccountNumber string `json:"account_number"`
	IFSCCode      string `json:"ifsc_code"`
	Branch        string `json:"branch"`
	Stamps
}

func (b Bank) RecordID() uint { return b.ID }

// ClientRecord is a customer. Named to avoid colliding with the SDK's
// Client type.
type ClientRecord struct {
	ID           uint   `json:"id"`
	ClientName   string `json:"client_name"`
	Email        string `json:"email"`
	MobileNumber string `json:"mobile_number"`
	Address      string `json:"address"`
	Stamps
}

func (c ClientRecord) RecordID() uint { return c.ID }

type Card struct {
	ID         uint   `json:"id"`
	CardName   string `json:"card_name"`
	CardNumber string `json:"card_number"`
	Stamps
}

func (c Card) RecordID() uint { return c.ID }

type Transaction struct {
	ID                uint             `json:"id"`
	ClientID          uint             `json:"client_id"`
	ClientName        string           `json:"client_name"`
	TransactionType   int              `json:"transaction_type"`
	TransactionAmount decimal.Decimal  `json:"transaction_amount"`
	BankID            *uint            `json:"bank_id"`
	CardID            *uint            `json:"card_id"`
	WidthdrawCharges  *decimal.Decimal `json:"widthdraw_charges"`
	Remark            string           `json:"remark"`
	Stamps
}

func (t Transaction) RecordID() uint { return t.ID }

type Profile struct {
	ID          uint            `json:"id"`
	ProfileName string          `json:"profile_name"`
	ClientID    *uint           `json:"client_id"`
	BankID      *uint           `json:"bank_id"`
	Balance     decimal.Decimal `json:"balance"`
	Stamps
}

func (p Profile) RecordID() uint { return p.ID }

type ProfileTransaction struct {
	ID                uint            `json:"id"`
	ProfileID         uint            `json:"profile_id"`
	TransactionType   int             `json:"transaction_type"`
	TransactionAmount decimal.Decimal `json:"transaction_amount"`
	Remark            string          `json:"remark"`
	Stamps
}

func (p ProfileTransaction) RecordID() uint { return p.ID }

// Suggestion is one autocomplete result.
type Suggestion struct {
	ID   uint   `json:"id"`
	Name string `json:"name"`
}

// Pagination is the server's cursor state. The server is authoritative;
// every response overwrites the local copy.
type Pagination struct {
	CurrentPage     int   `json:"current_page"`
	PageSize        int   `json:"page_size"`
	TotalRecords    int64 `json:"total_records"`
	TotalPages      int   `json:"total_pages"`
	HasNextPage     bool  `json:"has_next_page"`
	HasPreviousPage bool  `json:"has_previous_page"`
}

// SortApplied echoes the sort the server actually used.
type SortApplied struct {
	SortBy    string `json:"sort_by"`
	SortOrder string `json:"sort_order"`
}

// Page is one paginated list response.
type Page[T any] struct {
	Data           []T                    `json:"data"`
	Pagination     Pagination             `json:"pagination"`
	FiltersApplied map[string]interface{} `json:"filters_applied"`
	SearchApplied  string                 `json:"search_applied"`
	SortApplied    SortApplied            `json:"sort_applied"`
}

// ---------- write inputs ----------

// BankInput is the create/update payload for banks. ID is ignored on create.
type BankInput struct {
	ID            uint   `json:"id,omitempty"`
	BankName      string `json:"bank_name"`
	AccountNumber string `json:"account_number,omitempty"`
	IFSCCode      string `json:"ifsc_code,omitempty"`
	Branch        string `json:"branch,omitempty"`
}

type ClientInput struct {
	ID           uint   `json:"id,omitempty"`
	ClientName   string `json:"client_name"`
	Email        string `json:"email,omitempty"`
	MobileNumber string `json:"mobile_number,omitempty"`
	Address      string `json:"address,omitempty"`
}

type CardInput struct {
	ID         uint   `json:"id,omitempty"`
	CardName   string `json:"card_name"`
	CardNumber string `json:"card_number,omitempty"`
}

type TransactionInput struct {
	ID                uint             `json:"id,omitempty"`
	ClientID          uint             `json:"client_id"`
	TransactionType   *int             `json:"transaction_type"`
	TransactionAmount decimal.Decimal  `json:"transaction_amount"`
	BankID            *uint            `json:"bank_id,omitempty"`
	CardID            *uint            `json:"card_id,omitempty"`
	WidthdrawCharges  *decimal.Decimal `json:"widthdraw_charges,omitempty"`
	Remark            string           `json:"remark,omitempty"`
}

type ProfileInput struct {
	ID          uint   `json:"id,omitempty"`
	ProfileName string `json:"profile_name"`
	ClientID    *uint  `json:"client_id,omitempty"`
	BankID      *uint  `json:"bank_id,omitempty"`
}

type ProfileTransactionInput struct {
	ProfileID         uint            `json:"profile_id"`
	TransactionType   *int            `json:"transaction_type"`
	TransactionAmount decimal.Decimal `json:"transaction_amount"`
	Remark            string          `json:"remark,omitempty"`
}
