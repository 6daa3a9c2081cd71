package models

import (
	"sort"
	"time"
)

// Message is a single chat entry inside a conversation. Messages are
// append-only; there is no delivery or read state.
type Message struct {
	Sender string    `bson:"sender" json:"sender"`
	Text   string    `bson:"text" json:"text"`
	SentAt time.Time `bson:"sentAt" json:"sentAt"`
}

// Conversation is the unique thread between exactly two participants.
// Participants are stored sorted so the unordered pair maps to one document.
type Conversation struct {
	ID           string    `bson:"id" json:"id"`
	Participants []string  `bson:"participants" json:"participants"`
	Messages     []Message `bson:"messages" json:"messages"`
	CreatedAt    time.Time `bson:"created_at" json:"createdAt"`
	UpdatedAt    time.Time `bson:"updated_at" json:"updatedAt"`
}

// ParticipantPair returns the two ids in canonical (sorted) order.
func ParticipantPair(a, b string) []string {
	pair := []string{a, b}
	sort.Strings(pair)
	return pair
}

// ConversationView is a conversation with participant ids resolved to names.
type ConversationView struct {
	Conversation
	ParticipantNames map[string]string `json:"participantNames"`
}
