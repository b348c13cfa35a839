package service

import (
	"context"
	"fmt"
	"sync"
	"time"

	"croupier/events"
	"croupier/lock"
	"croupier/models"

	"github.com/google/uuid"
	log "github.com/sirupsen/logrus"
)

// dealerStand is the total at which the dealer stops drawing
const dealerStand = 17

// blackjackSession holds one in-flight hand. At most one session per
// user may be active.
type blackjackSession struct {
	id        string
	discordID int64
	username  string
	bet       int64
	deck      []models.Card
	player    models.Hand
	dealer    models.Hand
	state     models.BlackjackState
	timer     *time.Timer
}

// blackjackService implements the BlackjackService interface
type blackjackService struct {
	ledger         LedgerService
	eventPublisher EventPublisher
	userLocks      *lock.UserLock
	rng            Rand
	timeout        time.Duration

	mu       sync.Mutex
	sessions map[string]*blackjackSession
	byUser   map[int64]string
	expireFn func(sessionID string, discordID int64, result *models.BlackjackResult)
}

// NewBlackjackService creates a new blackjack service. The timeout is
// the window a player has to hit or stand before the hand auto-stands.
func NewBlackjackService(ledger LedgerService, eventPublisher EventPublisher, userLocks *lock.UserLock, rng Rand, timeout time.Duration) BlackjackService {
	return &blackjackService{
		ledger:         ledger,
		eventPublisher: eventPublisher,
		userLocks:      userLocks,
		rng:            rng,
		timeout:        timeout,
		sessions:       make(map[string]*blackjackSession),
		byUser:         make(map[int64]string),
	}
}

// SetExpireHandler registers a callback invoked when a session's
// decision window lapses and the hand auto-stands
func (s *blackjackService) SetExpireHandler(fn func(sessionID string, discordID int64, result *models.BlackjackResult)) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.expireFn = fn
}

// Start validates the wager and deals a fresh hand
func (s *blackjackService) Start(ctx context.Context, discordID int64, username string, bet int64) (*models.BlackjackView, *models.BlackjackResult, error) {
	err := s.userLocks.WithLock(discordID, func() error {
		account, err := s.ledger.GetOrCreateAccount(ctx, discordID, username)
		if err != nil {
			return err
		}
		if bet <= 0 {
			return ErrInvalidBet
		}
		if bet > account.Balance {
			return ErrInsufficientFunds
		}
		return nil
	})
	if err != nil {
		return nil, nil, err
	}

	sess := &blackjackSession{
		id:        uuid.NewString(),
		discordID: discordID,
		username:  username,
		bet:       bet,
		deck:      s.newDeck(),
		state:     models.BlackjackStateDealt,
	}
	sess.player = models.Hand{sess.draw(), sess.draw()}
	sess.dealer = models.Hand{sess.draw(), sess.draw()}

	s.mu.Lock()
	defer s.mu.Unlock()

	if _, active := s.byUser[discordID]; active {
		return nil, nil, ErrSessionInProgress
	}
	s.sessions[sess.id] = sess
	s.byUser[discordID] = sess.id

	// A 21 off the deal skips the player turn entirely
	if sess.player.Value() >= 21 {
		sess.state = models.BlackjackStateDealerTurn
		s.dealerPlay(sess)
		result, err := s.resolve(ctx, sess)
		if err != nil {
			return nil, nil, err
		}
		return nil, result, nil
	}

	sess.state = models.BlackjackStatePlayerTurn
	sess.timer = time.AfterFunc(s.timeout, func() { s.expire(sess.id) })

	return s.view(sess), nil, nil
}

// SubmitDecision applies a hit or stand to an active session. Decisions
// are serialized under the service mutex, so they apply in arrival
// order.
func (s *blackjackService) SubmitDecision(ctx context.Context, sessionID string, discordID int64, decision Decision) (*models.BlackjackView, *models.BlackjackResult, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	sess, ok := s.sessions[sessionID]
	if !ok || sess.discordID != discordID {
		return nil, nil, ErrSessionNotFound
	}
	if sess.state != models.BlackjackStatePlayerTurn {
		return nil, nil, ErrIllegalTransition
	}

	switch decision {
	case DecisionHit:
		sess.player = append(sess.player, sess.draw())
		value := sess.player.Value()

		if value > 21 {
			sess.timer.Stop()
			sess.state = models.BlackjackStatePlayerBust
			result, err := s.resolve(ctx, sess)
			return nil, result, err
		}
		if value == 21 {
			sess.timer.Stop()
			sess.state = models.BlackjackStateDealerTurn
			s.dealerPlay(sess)
			result, err := s.resolve(ctx, sess)
			return nil, result, err
		}

		sess.timer.Reset(s.timeout)
		return s.view(sess), nil, nil

	case DecisionStand:
		sess.timer.Stop()
		sess.state = models.BlackjackStateDealerTurn
		s.dealerPlay(sess)
		result, err := s.resolve(ctx, sess)
		return nil, result, err

	default:
		return nil, nil, fmt.Errorf("%w: unknown decision %q", ErrIllegalTransition, decision)
	}
}

// expire handles a lapsed decision window as an implicit stand
func (s *blackjackService) expire(sessionID string) {
	s.mu.Lock()

	sess, ok := s.sessions[sessionID]
	if !ok || sess.state != models.BlackjackStatePlayerTurn {
		s.mu.Unlock()
		return
	}

	sess.state = models.BlackjackStateDealerTurn
	s.dealerPlay(sess)
	result, err := s.resolve(context.Background(), sess)
	fn := s.expireFn
	s.mu.Unlock()

	if err != nil {
		log.WithFields(log.Fields{
			"sessionID": sessionID,
			"discordID": sess.discordID,
		}).Errorf("Failed to resolve timed-out blackjack session: %v", err)
		return
	}
	if fn != nil {
		fn(sessionID, sess.discordID, result)
	}
}

// dealerPlay draws for the dealer until the stand threshold. Runs only
// when the player did not bust.
func (s *blackjackService) dealerPlay(sess *blackjackSession) {
	for sess.dealer.Value() < dealerStand {
		sess.dealer = append(sess.dealer, sess.draw())
	}
}

// resolve settles the hand, applies the payout exactly once and removes
// the session. Callers hold s.mu.
func (s *blackjackService) resolve(ctx context.Context, sess *blackjackSession) (*models.BlackjackResult, error) {
	playerValue := sess.player.Value()
	dealerValue := sess.dealer.Value()

	var outcome models.BlackjackOutcome
	var payout int64
	var txType models.TransactionType
	switch {
	case playerValue > 21:
		outcome = models.BlackjackOutcomeBust
		payout = -sess.bet
		txType = models.TransactionTypeBlackjackLoss
	case dealerValue > 21 || playerValue > dealerValue:
		outcome = models.BlackjackOutcomeWin
		payout = sess.bet
		txType = models.TransactionTypeBlackjackWin
	case playerValue < dealerValue:
		outcome = models.BlackjackOutcomeLoss
		payout = -sess.bet
		txType = models.TransactionTypeBlackjackLoss
	default:
		outcome = models.BlackjackOutcomePush
		payout = 0
		txType = models.TransactionTypeBlackjackPush
	}

	sess.state = models.BlackjackStateResolved
	delete(s.sessions, sess.id)
	delete(s.byUser, sess.discordID)
	if sess.timer != nil {
		sess.timer.Stop()
	}

	var newBalance int64
	err := s.userLocks.WithLock(sess.discordID, func() error {
		var err error
		newBalance, err = s.ledger.AdjustBalance(ctx, sess.discordID, payout, txType, map[string]any{
			"bet":          sess.bet,
			"outcome":      string(outcome),
			"player_hand":  sess.player,
			"dealer_hand":  sess.dealer,
			"player_value": playerValue,
			"dealer_value": dealerValue,
		})
		return err
	})
	if err != nil {
		return nil, fmt.Errorf("failed to apply blackjack payout: %w", err)
	}

	s.eventPublisher.Emit(ctx, events.GameResolvedEvent{
		DiscordID: sess.discordID,
		Game:      "blackjack",
		Bet:       sess.bet,
		Payout:    payout,
	})

	return &models.BlackjackResult{
		Outcome:     outcome,
		PlayerHand:  sess.player,
		PlayerValue: playerValue,
		DealerHand:  sess.dealer,
		DealerValue: dealerValue,
		Payout:      payout,
		NewBalance:  newBalance,
	}, nil
}

// view builds the player-facing snapshot; the dealer's hole card stays
// hidden until resolution.
func (s *blackjackService) view(sess *blackjackSession) *models.BlackjackView {
	return &models.BlackjackView{
		SessionID:   sess.id,
		State:       sess.state,
		PlayerHand:  append(models.Hand{}, sess.player...),
		PlayerValue: sess.player.Value(),
		DealerHand:  models.Hand{sess.dealer[0]},
		DealerValue: sess.dealer[0].Value(),
		HoleHidden:  true,
		Bet:         sess.bet,
	}
}

// newDeck builds four rank sets and shuffles them
func (s *blackjackService) newDeck() []models.Card {
	deck := make([]models.Card, 0, 4*len(models.Ranks))
	for i := 0; i < 4; i++ {
		deck = append(deck, models.Ranks...)
	}
	s.rng.Shuffle(len(deck), func(i, j int) {
		deck[i], deck[j] = deck[j], deck[i]
	})
	return deck
}

// draw pops the top card
func (sess *blackjackSession) draw() models.Card {
	card := sess.deck[len(sess.deck)-1]
	sess.deck = sess.deck[:len(sess.deck)-1]
	return card
}
