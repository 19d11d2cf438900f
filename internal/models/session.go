package models

import "time"

// Session is the server-side state of one questionnaire session
type Session struct {
	ID            string
	Data          InputRecord
	PremiumAccess bool
	CreatedAt     time.Time
	LastSeen      time.Time
}
