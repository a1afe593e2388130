package repository

import (
	"context"
	"fmt"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo/options"

	"AtsAssistant/entity"
)

const maxMessagesPerSession = 100

// SaveChatMessage inserts a chat message and trims the session to the newest 100.
func (m *MongoDB) SaveChatMessage(ctx context.Context, msg entity.ChatMessage) error {
	connection, err := m.connect(ctx)
	if err != nil {
		return err
	}
	defer m.disconnect(ctx, connection)

	collection := connection.Database(m.database).Collection(chatMessagesCollection)

	_, err = collection.InsertOne(ctx, msg)
	if err != nil {
		return fmt.Errorf("mongodb insert chat message: %w", err)
	}

	filter := bson.D{{Key: "session_id", Value: msg.SessionID}}
	count, err := collection.CountDocuments(ctx, filter)
	if err != nil {
		return fmt.Errorf("mongodb count chat messages: %w", err)
	}

	if count > maxMessagesPerSession {
		opts := options.FindOne().SetSort(bson.D{{Key: "created_at", Value: -1}}).SetSkip(maxMessagesPerSession - 1)
		var cutoff entity.ChatMessage
		err = collection.FindOne(ctx, filter, opts).Decode(&cutoff)
		if err != nil {
			return fmt.Errorf("mongodb find cutoff message: %w", err)
		}

		deleteFilter := bson.D{
			{Key: "session_id", Value: msg.SessionID},
			{Key: "created_at", Value: bson.D{{Key: "$lt", Value: cutoff.CreatedAt}}},
		}
		_, err = collection.DeleteMany(ctx, deleteFilter)
		if err != nil {
			return fmt.Errorf("mongodb trim chat messages: %w", err)
		}
	}

	return nil
}

// GetChatMessages returns messages for a session, paginated (newest first).
// A non-positive limit yields an empty list, as in MemoryHistory.
func (m *MongoDB) GetChatMessages(ctx context.Context, sessionID string, limit, offset int) ([]entity.ChatMessage, error) {
	if limit <= 0 {
		return []entity.ChatMessage{}, nil
	}

	connection, err := m.connect(ctx)
	if err != nil {
		return nil, err
	}
	defer m.disconnect(ctx, connection)

	collection := connection.Database(m.database).Collection(chatMessagesCollection)

	filter := bson.D{{Key: "session_id", Value: sessionID}}
	opts := options.Find().
		SetSort(bson.D{{Key: "created_at", Value: -1}}).
		SetLimit(int64(limit)).
		SetSkip(int64(offset))

	cursor, err := collection.Find(ctx, filter, opts)
	if err != nil {
		return nil, fmt.Errorf("mongodb find chat messages: %w", err)
	}
	defer cursor.Close(ctx)

	messages := make([]entity.ChatMessage, 0)
	if err = cursor.All(ctx, &messages); err != nil {
		return nil, fmt.Errorf("mongodb decode chat messages: %w", err)
	}

	return messages, nil
}

// DeleteChatMessages removes the whole conversation of a session.
func (m *MongoDB) DeleteChatMessages(ctx context.Context, sessionID string) error {
	connection, err := m.connect(ctx)
	if err != nil {
		return err
	}
	defer m.disconnect(ctx, connection)

	collection := connection.Database(m.database).Collection(chatMessagesCollection)

	_, err = collection.DeleteMany(ctx, bson.D{{Key: "session_id", Value: sessionID}})
	if err != nil {
		return fmt.Errorf("mongodb delete chat messages: %w", err)
	}
	return nil
}
