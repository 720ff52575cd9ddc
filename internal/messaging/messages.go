package messaging

import (
	"encoding/json"
	"time"
)

// OutboundMessage is a reply or notification addressed to a user's phone.
// A delivery gateway drains the outbound queue and talks to the messaging
// provider.
type OutboundMessage struct {
	Phone     string    `json:"phone"`
	Text      string    `json:"text"`
	Timestamp time.Time `json:"timestamp"`
}

func NewOutboundMessage(phone, text string) *OutboundMessage {
	return &OutboundMessage{
		Phone:     phone,
		Text:      text,
		Timestamp: time.Now(),
	}
}

func (m *OutboundMessage) ToJSON() ([]byte, error) {
	return json.Marshal(m)
}

func OutboundMessageFromJSON(data []byte) (*OutboundMessage, error) {
	var msg OutboundMessage
	if err := json.Unmarshal(data, &msg); err != nil {
		return nil, err
	}
	return &msg, nil
}

// ExpenseSyncMessage asks the sheets worker to export one expense. It
// carries only the ID; the worker fetches the row from storage.
type ExpenseSyncMessage struct {
	ID        int64     `json:"id"`
	Timestamp time.Time `json:"timestamp"`
}

func NewExpenseSyncMessage(id int64) *ExpenseSyncMessage {
	return &ExpenseSyncMessage{
		ID:        id,
		Timestamp: time.Now(),
	}
}

func (m *ExpenseSyncMessage) ToJSON() ([]byte, error) {
	return json.Marshal(m)
}

func ExpenseSyncMessageFromJSON(data []byte) (*ExpenseSyncMessage, error) {
	var msg ExpenseSyncMessage
	if err := json.Unmarshal(data, &msg); err != nil {
		return nil, err
	}
	return &msg, nil
}
