package models

// Card is a playing card rank; suits carry no value in blackjack so they
// are not modeled.
type Card string

// Ranks holds the 13 card ranks of one suit
var Ranks = []Card{"2", "3", "4", "5", "6", "7", "8", "9", "10", "J", "Q", "K", "A"}

// cardValues maps each rank to its blackjack value, aces high
var cardValues = map[Card]int{
	"2": 2, "3": 3, "4": 4, "5": 5, "6": 6, "7": 7, "8": 8,
	"9": 9, "10": 10, "J": 10, "Q": 10, "K": 10, "A": 11,
}

// Value returns the card's blackjack value with aces counted as 11
func (c Card) Value() int {
	return cardValues[c]
}

// Hand is an ordered sequence of dealt cards
type Hand []Card

// Value computes the hand total, reducing aces from 11 to 1 one at a
// time while the total exceeds 21.
func (h Hand) Value() int {
	value := 0
	aces := 0
	for _, c := range h {
		value += c.Value()
		if c == "A" {
			aces++
		}
	}
	for value > 21 && aces > 0 {
		value -= 10
		aces--
	}
	return value
}
