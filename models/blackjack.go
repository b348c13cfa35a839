package models

// BlackjackState is the phase of a blackjack session
type BlackjackState string

const (
	BlackjackStateDealt      BlackjackState = "dealt"
	BlackjackStatePlayerTurn BlackjackState = "player_turn"
	BlackjackStatePlayerBust BlackjackState = "player_bust"
	BlackjackStateDealerTurn BlackjackState = "dealer_turn"
	BlackjackStateResolved   BlackjackState = "resolved"
)

// BlackjackOutcome is the result of a resolved hand
type BlackjackOutcome string

const (
	BlackjackOutcomeWin  BlackjackOutcome = "win"
	BlackjackOutcomeLoss BlackjackOutcome = "loss"
	BlackjackOutcomeBust BlackjackOutcome = "bust"
	BlackjackOutcomePush BlackjackOutcome = "push"
)

// BlackjackView is a player-facing snapshot of a session. The dealer's
// hole card is omitted until the hand resolves.
type BlackjackView struct {
	SessionID   string
	State       BlackjackState
	PlayerHand  Hand
	PlayerValue int
	DealerHand  Hand
	DealerValue int
	HoleHidden  bool
	Bet         int64
}

// BlackjackResult is the outcome of a resolved blackjack session
type BlackjackResult struct {
	Outcome     BlackjackOutcome
	PlayerHand  Hand
	PlayerValue int
	DealerHand  Hand
	DealerValue int
	Payout      int64
	NewBalance  int64
}
