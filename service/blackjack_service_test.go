package service

import (
	"context"
	"testing"
	"time"

	"croupier/events"
	"croupier/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newBlackjackFixture(rng Rand, timeout time.Duration) (BlackjackService, LedgerService) {
	ledger, _ := newLedgerFixture(100)
	svc := NewBlackjackService(ledger, events.NewBus(), newUserLocks(), rng, timeout)
	return svc, ledger
}

func TestBlackjack_StandWinsWhenDealerBusts(t *testing.T) {
	// Player 10+J=20; dealer Q+6=16 must draw and busts on the K
	rng := &stubRand{shuffleFn: riggedShuffle("10", "J", "Q", "6", "K")}
	svc, _ := newBlackjackFixture(rng, time.Minute)
	ctx := context.Background()

	view, result, err := svc.Start(ctx, 111, "alice", 50)
	require.NoError(t, err)
	require.Nil(t, result)
	require.NotNil(t, view)
	assert.Equal(t, models.BlackjackStatePlayerTurn, view.State)
	assert.Equal(t, 20, view.PlayerValue)
	assert.True(t, view.HoleHidden)
	require.Len(t, view.DealerHand, 1)
	assert.Equal(t, models.Card("Q"), view.DealerHand[0])

	view, result, err = svc.SubmitDecision(ctx, view.SessionID, 111, DecisionStand)
	require.NoError(t, err)
	assert.Nil(t, view)
	require.NotNil(t, result)
	assert.Equal(t, models.BlackjackOutcomeWin, result.Outcome)
	assert.Equal(t, 26, result.DealerValue)
	assert.Equal(t, int64(50), result.Payout)
	assert.Equal(t, int64(150), result.NewBalance)
}

func TestBlackjack_DealerStandsAtSeventeen(t *testing.T) {
	// Dealer opens on 10+7 and must not draw a third card
	rng := &stubRand{shuffleFn: riggedShuffle("9", "9", "10", "7")}
	svc, _ := newBlackjackFixture(rng, time.Minute)
	ctx := context.Background()

	view, _, err := svc.Start(ctx, 111, "alice", 50)
	require.NoError(t, err)

	_, result, err := svc.SubmitDecision(ctx, view.SessionID, 111, DecisionStand)
	require.NoError(t, err)
	require.NotNil(t, result)
	require.Len(t, result.DealerHand, 2)
	assert.Equal(t, 17, result.DealerValue)
	assert.Equal(t, models.BlackjackOutcomeWin, result.Outcome)
}

func TestBlackjack_HitBeyondTwentyOneBusts(t *testing.T) {
	// Player 10+6 hits into a K and busts
	rng := &stubRand{shuffleFn: riggedShuffle("10", "6", "Q", "9", "K")}
	svc, ledger := newBlackjackFixture(rng, time.Minute)
	ctx := context.Background()

	view, _, err := svc.Start(ctx, 111, "alice", 50)
	require.NoError(t, err)

	_, result, err := svc.SubmitDecision(ctx, view.SessionID, 111, DecisionHit)
	require.NoError(t, err)
	require.NotNil(t, result)
	assert.Equal(t, models.BlackjackOutcomeBust, result.Outcome)
	assert.Equal(t, 26, result.PlayerValue)
	assert.Equal(t, int64(-50), result.Payout)
	assert.Equal(t, int64(50), result.NewBalance)

	account, err := ledger.GetOrCreateAccount(ctx, 111, "alice")
	require.NoError(t, err)
	assert.Equal(t, int64(50), account.Balance)
}

func TestBlackjack_HitBelowTwentyOneContinues(t *testing.T) {
	// Player 5+6 hits into a 9 and the turn stays open
	rng := &stubRand{shuffleFn: riggedShuffle("5", "6", "10", "7", "9")}
	svc, _ := newBlackjackFixture(rng, time.Minute)
	ctx := context.Background()

	view, _, err := svc.Start(ctx, 111, "alice", 50)
	require.NoError(t, err)

	view, result, err := svc.SubmitDecision(ctx, view.SessionID, 111, DecisionHit)
	require.NoError(t, err)
	assert.Nil(t, result)
	require.NotNil(t, view)
	assert.Equal(t, 20, view.PlayerValue)
	assert.True(t, view.HoleHidden)

	_, result, err = svc.SubmitDecision(ctx, view.SessionID, 111, DecisionStand)
	require.NoError(t, err)
	require.NotNil(t, result)
	assert.Equal(t, models.BlackjackOutcomeWin, result.Outcome)
}

func TestBlackjack_EqualTotalsPush(t *testing.T) {
	rng := &stubRand{shuffleFn: riggedShuffle("K", "Q", "J", "10")}
	svc, ledger := newBlackjackFixture(rng, time.Minute)
	ctx := context.Background()

	view, _, err := svc.Start(ctx, 111, "alice", 50)
	require.NoError(t, err)

	_, result, err := svc.SubmitDecision(ctx, view.SessionID, 111, DecisionStand)
	require.NoError(t, err)
	require.NotNil(t, result)
	assert.Equal(t, models.BlackjackOutcomePush, result.Outcome)
	assert.Equal(t, int64(0), result.Payout)

	account, err := ledger.GetOrCreateAccount(ctx, 111, "alice")
	require.NoError(t, err)
	assert.Equal(t, int64(100), account.Balance)
}

func TestBlackjack_TwentyOneOffTheDealResolvesImmediately(t *testing.T) {
	rng := &stubRand{shuffleFn: riggedShuffle("A", "K", "9", "8")}
	svc, _ := newBlackjackFixture(rng, time.Minute)

	view, result, err := svc.Start(context.Background(), 111, "alice", 50)
	require.NoError(t, err)
	assert.Nil(t, view)
	require.NotNil(t, result)
	assert.Equal(t, 21, result.PlayerValue)
	assert.Equal(t, models.BlackjackOutcomeWin, result.Outcome)
	assert.Equal(t, int64(150), result.NewBalance)
}

func TestBlackjack_SecondHandBlockedWhileFirstActive(t *testing.T) {
	rng := &stubRand{shuffleFn: riggedShuffle("5", "6", "10", "7")}
	svc, _ := newBlackjackFixture(rng, time.Minute)
	ctx := context.Background()

	_, _, err := svc.Start(ctx, 111, "alice", 10)
	require.NoError(t, err)

	rng.shuffleFn = riggedShuffle("5", "6", "10", "7")
	_, _, err = svc.Start(ctx, 111, "alice", 10)
	assert.ErrorIs(t, err, ErrSessionInProgress)
}

func TestBlackjack_ResolvedSessionRejectsFurtherDecisions(t *testing.T) {
	rng := &stubRand{shuffleFn: riggedShuffle("K", "Q", "J", "10")}
	svc, _ := newBlackjackFixture(rng, time.Minute)
	ctx := context.Background()

	view, _, err := svc.Start(ctx, 111, "alice", 50)
	require.NoError(t, err)
	sessionID := view.SessionID

	_, _, err = svc.SubmitDecision(ctx, sessionID, 111, DecisionStand)
	require.NoError(t, err)

	_, _, err = svc.SubmitDecision(ctx, sessionID, 111, DecisionHit)
	assert.ErrorIs(t, err, ErrSessionNotFound)
}

func TestBlackjack_DecisionFromAnotherUserRejected(t *testing.T) {
	rng := &stubRand{shuffleFn: riggedShuffle("5", "6", "10", "7")}
	svc, _ := newBlackjackFixture(rng, time.Minute)
	ctx := context.Background()

	view, _, err := svc.Start(ctx, 111, "alice", 50)
	require.NoError(t, err)

	_, _, err = svc.SubmitDecision(ctx, view.SessionID, 222, DecisionHit)
	assert.ErrorIs(t, err, ErrSessionNotFound)
}

func TestBlackjack_UnknownDecisionRejected(t *testing.T) {
	rng := &stubRand{shuffleFn: riggedShuffle("5", "6", "10", "7")}
	svc, _ := newBlackjackFixture(rng, time.Minute)
	ctx := context.Background()

	view, _, err := svc.Start(ctx, 111, "alice", 50)
	require.NoError(t, err)

	_, _, err = svc.SubmitDecision(ctx, view.SessionID, 111, Decision("double"))
	assert.ErrorIs(t, err, ErrIllegalTransition)
}

func TestBlackjack_RejectedStartLeavesNoSession(t *testing.T) {
	rng := &stubRand{shuffleFn: riggedShuffle("5", "6", "10", "7")}
	svc, ledger := newBlackjackFixture(rng, time.Minute)
	ctx := context.Background()

	_, _, err := svc.Start(ctx, 111, "alice", 500)
	assert.ErrorIs(t, err, ErrInsufficientFunds)

	account, err := ledger.GetOrCreateAccount(ctx, 111, "alice")
	require.NoError(t, err)
	assert.Equal(t, int64(100), account.Balance)

	// The failed attempt must not block a valid hand
	_, _, err = svc.Start(ctx, 111, "alice", 50)
	require.NoError(t, err)
}

func TestBlackjack_TimeoutStandsAutomatically(t *testing.T) {
	// Player 10+9=19 vs dealer K+8=18; the lapsed window stands and wins
	rng := &stubRand{shuffleFn: riggedShuffle("10", "9", "K", "8")}
	svc, ledger := newBlackjackFixture(rng, 20*time.Millisecond)
	ctx := context.Background()

	expired := make(chan *models.BlackjackResult, 1)
	svc.SetExpireHandler(func(sessionID string, discordID int64, result *models.BlackjackResult) {
		expired <- result
	})

	view, _, err := svc.Start(ctx, 111, "alice", 50)
	require.NoError(t, err)

	var result *models.BlackjackResult
	select {
	case result = <-expired:
	case <-time.After(2 * time.Second):
		t.Fatal("blackjack session did not expire")
	}

	assert.Equal(t, models.BlackjackOutcomeWin, result.Outcome)
	assert.Equal(t, int64(50), result.Payout)
	assert.Equal(t, int64(150), result.NewBalance)

	_, _, err = svc.SubmitDecision(ctx, view.SessionID, 111, DecisionHit)
	assert.ErrorIs(t, err, ErrSessionNotFound)

	account, err := ledger.GetOrCreateAccount(ctx, 111, "alice")
	require.NoError(t, err)
	assert.Equal(t, int64(150), account.Balance)
}
