package models

// RewardResult is the outcome of a successful daily claim
type RewardResult struct {
	Amount     int64
	NewBalance int64
}

// SpinResult is the outcome of a slot machine spin
type SpinResult struct {
	Symbols    [3]string
	Jackpot    bool
	Payout     int64
	NewBalance int64
}

// CoinSide is a coin flip call or outcome
type CoinSide string

const (
	CoinHeads CoinSide = "heads"
	CoinTails CoinSide = "tails"
)

// Valid reports whether the side is one of heads/tails
func (s CoinSide) Valid() bool {
	return s == CoinHeads || s == CoinTails
}

// FlipResult is the outcome of a coin flip wager
type FlipResult struct {
	Call       CoinSide
	Outcome    CoinSide
	Won        bool
	Payout     int64
	NewBalance int64
}
