package domain

import "time"

// Command is a parsed user intent. The variant set is closed: dispatch
// switches over it exhaustively instead of comparing strings.
type Command interface {
	isCommand()
}

type RecordTransaction struct {
	Amount      float64
	Category    string
	Description string
	// OccurredAt is stamped by the dispatcher when left zero.
	OccurredAt time.Time
}

type Summarize struct{}

// Unknown is the defined fallback for unrecognized input, not an error.
type Unknown struct {
	Raw string
}

func (RecordTransaction) isCommand() {}
func (Summarize) isCommand()         {}
func (Unknown) isCommand()           {}

// CategoryTotal is one line of a ledger summary. Order is the order the
// backend returned the categories in.
type CategoryTotal struct {
	Category string
	Total    float64
}
