package domain

import "time"

// Message content length bounds, enforced at intake.
const (
	MessageMinLen = 10
	MessageMaxLen = 300
)

// Message is a single anonymous message delivered to an account.
// There is deliberately no sender identity anywhere on this type.
type Message struct {
	ID        string
	AccountID string
	Content   string
	CreatedAt time.Time
}
