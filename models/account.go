package models

import (
	"time"
)

// Account represents a Discord user with a currency-point balance
type Account struct {
	DiscordID int64
	Username  string
	Balance   int64
	CreatedAt time.Time
	UpdatedAt time.Time
}
