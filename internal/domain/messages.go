package domain

import "fmt"

// MessageTag classifies a log entry. Tags are used only for caller-side
// styling and carry no engine behavior.
type MessageTag string

const (
	TagInfo        MessageTag = "info"
	TagBuy         MessageTag = "buy"
	TagSell        MessageTag = "sell"
	TagDanger      MessageTag = "danger"
	TagJump        MessageTag = "jump"
	TagRepair      MessageTag = "repair"
	TagContract    MessageTag = "contract"
	TagMining      MessageTag = "mining"
	TagInvestment  MessageTag = "investment"
	TagProfit      MessageTag = "profit"
	TagMaintenance MessageTag = "maintenance"
	TagPhase       MessageTag = "phase"
	TagCritical    MessageTag = "critical"
	TagBreach      MessageTag = "breach"
	TagDebt        MessageTag = "debt"
)

// Message is one entry in the session log.
type Message struct {
	Day  int        `json:"day"`
	Text string     `json:"text"`
	Tag  MessageTag `json:"tag"`
}

// messageRetentionDays bounds how far back the log is kept.
const messageRetentionDays = 5

// Log appends a formatted entry to the session log.
func (s *GameState) Log(tag MessageTag, format string, args ...any) {
	s.Messages = append(s.Messages, Message{
		Day:  s.Day,
		Text: fmt.Sprintf(format, args...),
		Tag:  tag,
	})
}

// PruneMessages drops entries older than the retention window.
func (s *GameState) PruneMessages() {
	cutoff := s.Day - messageRetentionDays
	if cutoff <= 0 {
		return
	}
	kept := s.Messages[:0]
	for _, m := range s.Messages {
		if m.Day > cutoff {
			kept = append(kept, m)
		}
	}
	s.Messages = kept
}
