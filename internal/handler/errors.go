package handler

import "errors"

var (
	errAmountRange = errors.New("max amount is less than min amount")
	errBadType     = errors.New("transaction type must be 0 (deposit) or 1 (withdraw)")
	errProfileMove = errors.New("transaction cannot move between profiles")
)
