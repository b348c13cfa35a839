package service

import (
	"errors"
	"fmt"
	"time"
)

// Errors reported to the command surface; each maps to a distinct
// user-facing message there.
var (
	ErrInvalidBet        = errors.New("bet must be positive")
	ErrInsufficientFunds = errors.New("insufficient funds")
	ErrInvalidAmount     = errors.New("balance cannot be negative")
	ErrInvalidChoice     = errors.New("choice must be heads or tails")
	ErrUnauthorized      = errors.New("not authorized for this operation")
	ErrIllegalTransition = errors.New("no decision expected in this phase")
	ErrSessionNotFound   = errors.New("blackjack session not found")
	ErrSessionInProgress = errors.New("a blackjack hand is already in progress")
)

// CooldownActiveError reports that the daily reward is not yet available
type CooldownActiveError struct {
	Remaining time.Duration
}

func (e *CooldownActiveError) Error() string {
	h, m := e.HoursMinutes()
	return fmt.Sprintf("daily reward on cooldown for %dh %dm", h, m)
}

// HoursMinutes returns the remaining time as whole hours and whole
// minutes, truncated.
func (e *CooldownActiveError) HoursMinutes() (int, int) {
	hours := int(e.Remaining / time.Hour)
	minutes := int((e.Remaining % time.Hour) / time.Minute)
	return hours, minutes
}
