package chatRepo

import (
	"context"
	"fmt"
	"time"

	"cleanly/models"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

// ConversationRepository defines methods for conversation data access.
type ConversationRepository interface {
	// FindByParticipants retrieves the conversation for an unordered pair;
	// nil if the pair has never exchanged messages.
	FindByParticipants(a, b string) (*models.Conversation, error)
	// Create inserts a new conversation record.
	Create(conv *models.Conversation) error
	// AppendMessage pushes a message onto a conversation and returns the
	// updated document.
	AppendMessage(id string, msg models.Message) (*models.Conversation, error)
	// ListByParticipant retrieves all conversations containing the user.
	ListByParticipant(userID string) ([]models.Conversation, error)
}

// MongoConversationRepo implements ConversationRepository using MongoDB.
type MongoConversationRepo struct {
	coll *mongo.Collection
}

// NewMongoConversationRepo creates a new instance of ConversationRepository using MongoDB.
func NewMongoConversationRepo(db *mongo.Database) ConversationRepository {
	repo := &MongoConversationRepo{coll: db.Collection("conversations")}
	if err := repo.ensureIndexes(); err != nil {
		fmt.Printf("failed to create indexes: %v\n", err)
	}
	return repo
}

// newContext creates a context with the given timeout.
func newContext(timeout time.Duration) (context.Context, context.CancelFunc) {
	return context.WithTimeout(context.Background(), timeout)
}

// ensureIndexes creates indexes for fields frequently used in queries.
// Participants are stored sorted, so the pair lookup is an exact-array match
// backed by the multikey index.
func (r *MongoConversationRepo) ensureIndexes() error {
	ctx, cancel := newContext(10 * time.Second)
	defer cancel()

	indexModels := []mongo.IndexModel{
		{Keys: bson.D{{Key: "id", Value: 1}}, Options: options.Index().SetUnique(true)},
		{Keys: bson.D{{Key: "participants", Value: 1}}},
	}

	_, err := r.coll.Indexes().CreateMany(ctx, indexModels)
	if err != nil {
		return fmt.Errorf("failed to create indexes: %w", err)
	}
	return nil
}

// FindByParticipants retrieves the conversation for an unordered pair.
func (r *MongoConversationRepo) FindByParticipants(a, b string) (*models.Conversation, error) {
	ctx, cancel := newContext(5 * time.Second)
	defer cancel()

	filter := bson.M{"participants": models.ParticipantPair(a, b)}
	var conv models.Conversation
	if err := r.coll.FindOne(ctx, filter).Decode(&conv); err != nil {
		if err == mongo.ErrNoDocuments {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to fetch conversation: %w", err)
	}
	return &conv, nil
}

// Create inserts a new conversation document.
func (r *MongoConversationRepo) Create(conv *models.Conversation) error {
	ctx, cancel := newContext(5 * time.Second)
	defer cancel()

	now := time.Now()
	conv.CreatedAt = now
	conv.UpdatedAt = now

	if _, err := r.coll.InsertOne(ctx, conv); err != nil {
		return fmt.Errorf("failed to create conversation: %w", err)
	}
	return nil
}

// AppendMessage pushes a message onto a conversation and returns the updated document.
func (r *MongoConversationRepo) AppendMessage(id string, msg models.Message) (*models.Conversation, error) {
	ctx, cancel := newContext(5 * time.Second)
	defer cancel()

	update := bson.M{
		"$push": bson.M{"messages": msg},
		"$set":  bson.M{"updated_at": time.Now()},
	}
	opts := options.FindOneAndUpdate().SetReturnDocument(options.After)

	var conv models.Conversation
	err := r.coll.FindOneAndUpdate(ctx, bson.M{"id": id}, update, opts).Decode(&conv)
	if err != nil {
		if err == mongo.ErrNoDocuments {
			return nil, fmt.Errorf("conversation with id %s not found", id)
		}
		return nil, fmt.Errorf("failed to append message to conversation %s: %w", id, err)
	}
	return &conv, nil
}

// ListByParticipant retrieves all conversations containing the user.
func (r *MongoConversationRepo) ListByParticipant(userID string) ([]models.Conversation, error) {
	ctx, cancel := newContext(10 * time.Second)
	defer cancel()

	cursor, err := r.coll.Find(ctx, bson.M{"participants": userID})
	if err != nil {
		return nil, fmt.Errorf("failed to retrieve conversations for user %s: %w", userID, err)
	}
	defer cursor.Close(ctx)

	conversations := make([]models.Conversation, 0)
	for cursor.Next(ctx) {
		var c models.Conversation
		if err := cursor.Decode(&c); err != nil {
			return nil, fmt.Errorf("failed to decode conversation: %w", err)
		}
		conversations = append(conversations, c)
	}
	return conversations, nil
}
