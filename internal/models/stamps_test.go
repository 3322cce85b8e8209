package models

import (
	"testing"
	"time"

	"github.com/shopspring/decimal"
)

func TestStamps(t *testing.T) {
	now := time.Date(2026, 3, 15, 9, 30, 5, 0, time.UTC)

	var s Stamps
	s.Stamp(now)
	if s.CreateDate != "2026-03-15" {
		t.Errorf("CreateDate = %q, want 2026-03-15", s.CreateDate)
	}
	if s.CreateTime != "09:30:05" {
		t.Errorf("CreateTime = %q, want 09:30:05", s.CreateTime)
	}
	if s.ModifyDate != nil || s.ModifyTime != nil {
		t.Error("modify columns must stay nil until the first update")
	}

	later := now.Add(48 * time.Hour)
	s.Restamp(later)
	if s.CreateDate != "2026-03-15" {
		t.Error("Restamp must not touch the creation columns")
	}
	if s.ModifyDate == nil || *s.ModifyDate != "2026-03-17" {
		t.Errorf("ModifyDate = %v, want 2026-03-17", s.ModifyDate)
	}
}

func TestProfileTransactionSignedAmount(t *testing.T) {
	amount := decimal.NewFromInt(75)

	dep := ProfileTransaction{TransactionType: TypeDeposit, TransactionAmount: amount}
	if !dep.SignedAmount().Equal(amount) {
		t.Errorf("deposit SignedAmount = %s, want %s", dep.SignedAmount(), amount)
	}

	wd := ProfileTransaction{TransactionType: TypeWithdraw, TransactionAmount: amount}
	if !wd.SignedAmount().Equal(amount.Neg()) {
		t.Errorf("withdraw SignedAmount = %s, want %s", wd.SignedAmount(), amount.Neg())
	}
}

func TestTransactionIsWithdraw(t *testing.T) {
	if (&Transaction{TransactionType: TypeDeposit}).IsWithdraw() {
		t.Error("deposit reported as withdraw")
	}
	if !(&Transaction{TransactionType: TypeWithdraw}).IsWithdraw() {
		t.Error("withdraw not reported as withdraw")
	}
}
