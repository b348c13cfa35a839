package service

import (
	"croupier/events"
	"croupier/lock"
	"croupier/models"
	"croupier/repository"
)

// stubRand replays scripted draws. Exhausted scripts yield zero values.
type stubRand struct {
	ints      []int
	int63s    []int64
	floats    []float64
	shuffleFn func(n int, swap func(i, j int))
}

func (r *stubRand) Intn(n int) int {
	if len(r.ints) == 0 {
		return 0
	}
	v := r.ints[0]
	r.ints = r.ints[1:]
	return v % n
}

func (r *stubRand) Int63n(n int64) int64 {
	if len(r.int63s) == 0 {
		return 0
	}
	v := r.int63s[0]
	r.int63s = r.int63s[1:]
	return v % n
}

func (r *stubRand) Float64() float64 {
	if len(r.floats) == 0 {
		return 0
	}
	v := r.floats[0]
	r.floats = r.floats[1:]
	return v
}

func (r *stubRand) Shuffle(n int, swap func(i, j int)) {
	if r.shuffleFn != nil {
		r.shuffleFn(n, swap)
	}
}

// riggedShuffle arranges a fresh four-suit deck so that cards come off
// the top in the given order. It mirrors the deck layout the shuffle is
// invoked on and selects each wanted rank into place.
func riggedShuffle(draws ...models.Card) func(n int, swap func(i, j int)) {
	return func(n int, swap func(i, j int)) {
		deck := make([]models.Card, 0, n)
		for i := 0; i < 4; i++ {
			deck = append(deck, models.Ranks...)
		}
		for k, want := range draws {
			target := n - 1 - k
			for idx := 0; idx <= target; idx++ {
				if deck[idx] == want {
					deck[idx], deck[target] = deck[target], deck[idx]
					swap(idx, target)
					break
				}
			}
		}
	}
}

// newLedgerFixture wires a ledger service onto fresh in-memory
// repositories
func newLedgerFixture(startingBalance int64) (LedgerService, LedgerEntryRepository) {
	accountRepo := repository.NewAccountRepository()
	entryRepo := repository.NewLedgerEntryRepository()
	ledger := NewLedgerService(accountRepo, entryRepo, events.NewBus(), startingBalance)
	return ledger, entryRepo
}

func newUserLocks() *lock.UserLock {
	return lock.NewUserLock()
}
