package chat

import (
	"fmt"
	"time"

	chatRepo "cleanly/database/repository/chat"
	userRepo "cleanly/database/repository/user"
	"cleanly/models"
	"cleanly/utils"

	"github.com/google/uuid"
)

// ChatService manages two-party conversations. Delivery is pull-based: a
// message is persisted and read back later, never pushed.
type ChatService interface {
	// SendMessage appends a message to the pair's conversation, creating the
	// conversation on first contact, and returns the full thread.
	SendMessage(senderID, recipientID, text string) (*models.Conversation, error)
	// Conversations returns the user's threads with participant names resolved.
	Conversations(userID string) ([]models.ConversationView, error)
}

// DefaultChatService is the standard ChatService implementation.
type DefaultChatService struct {
	Repo  chatRepo.ConversationRepository
	Users userRepo.UserRepository
}

// SendMessage appends a message to the conversation between sender and
// recipient, creating it lazily on first contact.
func (s *DefaultChatService) SendMessage(senderID, recipientID, text string) (*models.Conversation, error) {
	if text == "" {
		return nil, utils.ValidationError{Reason: "Message text is required"}
	}
	if senderID == recipientID {
		return nil, utils.ValidationError{Reason: "Cannot start a conversation with yourself"}
	}

	recipient, err := s.Users.GetByID(recipientID)
	if err != nil {
		return nil, fmt.Errorf("failed to fetch recipient: %w", err)
	}
	if recipient == nil {
		return nil, utils.NotFoundError{Resource: "Recipient"}
	}

	conv, err := s.Repo.FindByParticipants(senderID, recipientID)
	if err != nil {
		return nil, fmt.Errorf("failed to look up conversation: %w", err)
	}
	if conv == nil {
		conv = &models.Conversation{
			ID:           uuid.New().String(),
			Participants: models.ParticipantPair(senderID, recipientID),
		}
		if err := s.Repo.Create(conv); err != nil {
			return nil, fmt.Errorf("failed to create conversation: %w", err)
		}
	}

	msg := models.Message{Sender: senderID, Text: text, SentAt: time.Now()}
	updated, err := s.Repo.AppendMessage(conv.ID, msg)
	if err != nil {
		return nil, fmt.Errorf("failed to append message: %w", err)
	}
	return updated, nil
}

// Conversations returns the user's threads with participant ids resolved to
// display names. A participant whose account was deleted keeps an empty name.
func (s *DefaultChatService) Conversations(userID string) ([]models.ConversationView, error) {
	conversations, err := s.Repo.ListByParticipant(userID)
	if err != nil {
		return nil, fmt.Errorf("failed to list conversations: %w", err)
	}

	views := make([]models.ConversationView, 0, len(conversations))
	for _, conv := range conversations {
		names := make(map[string]string, len(conv.Participants))
		for _, id := range conv.Participants {
			if u, err := s.Users.GetByID(id); err == nil && u != nil {
				names[id] = u.Name
			}
		}
		views = append(views, models.ConversationView{Conversation: conv, ParticipantNames: names})
	}
	return views, nil
}
