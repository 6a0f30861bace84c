package services

import "errors"

// Domain errors returned by the ledger operations. Controllers translate
// these into HTTP statuses and bilingual messages.
var (
	ErrRoomNotFound       = errors.New("room not found")
	ErrUserNotFound       = errors.New("user not found")
	ErrNoActiveSession    = errors.New("no active session")
	ErrInvalidCard        = errors.New("card number out of range")
	ErrInsufficientFunds  = errors.New("insufficient balance")
	ErrCardTaken          = errors.New("card already taken")
	ErrDuplicateIdentity  = errors.New("telegram account already registered")
	ErrDuplicateName      = errors.New("username already taken")
	ErrInvalidCode        = errors.New("invalid otp code")
	ErrInvalidCredentials = errors.New("invalid username or password")
	ErrInvalidAmount      = errors.New("invalid amount")
)
