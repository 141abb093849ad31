package domain

import (
	"fmt"
	"time"
)

// Role of a chat message author
type Role string

const (
	RoleUser      Role = "user"
	RoleAssistant Role = "assistant"
)

// ChatMessage represents one turn of a conversation
type ChatMessage struct {
	Role      Role      `json:"role"`
	Content   string    `json:"content"`
	CreatedAt time.Time `json:"created_at"`
}

// RowState tracks the summarize action of a single result row
type RowState string

const (
	RowIdle        RowState = "idle"
	RowFetching    RowState = "fetching"
	RowSummarizing RowState = "summarizing"
	RowDisplayed   RowState = "displayed"
	RowFailed      RowState = "failed"
)

// rowTransitions lists allowed moves; Displayed and Failed restart at Fetching
var rowTransitions = map[RowState][]RowState{
	RowIdle:        {RowFetching},
	RowFetching:    {RowSummarizing, RowFailed},
	RowSummarizing: {RowDisplayed, RowFailed},
	RowDisplayed:   {RowFetching},
	RowFailed:      {RowFetching},
}

// Next validates a move from s to next and returns next
func (s RowState) Next(next RowState) (RowState, error) {
	from := s
	if from == "" {
		from = RowIdle
	}
	for _, allowed := range rowTransitions[from] {
		if allowed == next {
			return next, nil
		}
	}
	return s, Fail(KindInvalidTransition, fmt.Sprintf("can't move row from %s to %s", from, next), nil)
}

// InFlight reports whether a summarize action is running for the row
func (s RowState) InFlight() bool {
	return s == RowFetching || s == RowSummarizing
}

// Terminal reports whether the row reached a final state until retriggered
func (s RowState) Terminal() bool {
	return s == RowDisplayed || s == RowFailed
}

// RowSummary is a cached summary for one result row of the current query
type RowSummary struct {
	Key       string
	State     RowState
	Result    SummaryResult
	UpdatedAt time.Time
}
