package repository

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"chatvault/backend/internal/model"
)

type sqliteChatRepository struct {
	db *sql.DB
}

func NewSQLiteChatRepository(db *sql.DB) ChatRepository {
	return &sqliteChatRepository{db: db}
}

func (r *sqliteChatRepository) ChatOwnedBy(ctx context.Context, chatID string, userID int64) (bool, error) {
	query := "SELECT EXISTS(SELECT 1 FROM chats WHERE id = ? AND user_id = ?)"
	var owned bool
	if err := r.db.QueryRowContext(ctx, query, chatID, userID).Scan(&owned); err != nil {
		return false, err
	}
	return owned, nil
}

func (r *sqliteChatRepository) CreateChat(ctx context.Context, chat *model.Chat) error {
	query := "INSERT INTO chats (id, user_id, name, model, created_at, updated_at) VALUES (?, ?, ?, ?, ?, ?)"
	_, err := r.db.ExecContext(ctx, query, chat.ID, chat.UserID, chat.Name, chat.Model, chat.CreatedAt, chat.UpdatedAt)
	if err != nil {
		if isUniqueViolation(err) {
			return ErrConflict
		}
		return fmt.Errorf("could not insert chat: %w", err)
	}
	return nil
}

func (r *sqliteChatRepository) GetChat(ctx context.Context, chatID string) (*model.Chat, error) {
	query := "SELECT id, user_id, name, model, created_at, updated_at FROM chats WHERE id = ?"
	row := r.db.QueryRowContext(ctx, query, chatID)
	var chat model.Chat
	err := row.Scan(&chat.ID, &chat.UserID, &chat.Name, &chat.Model, &chat.CreatedAt, &chat.UpdatedAt)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, ErrNotFound
		}
		return nil, err
	}
	return &chat, nil
}

// GetChatSummaries lists the user's chats, most recently active first, each
// with the content of its newest message.
func (r *sqliteChatRepository) GetChatSummaries(ctx context.Context, userID int64) ([]model.ChatSummary, error) {
	query := `
		SELECT c.id, c.user_id, c.name, c.model, c.created_at, c.updated_at,
			(SELECT m.content FROM messages m
			 WHERE m.chat_id = c.id
			 ORDER BY m.timestamp DESC, m.id DESC
			 LIMIT 1) AS last_message
		FROM chats c
		WHERE c.user_id = ?
		ORDER BY c.updated_at DESC, c.created_at DESC
	`
	rows, err := r.db.QueryContext(ctx, query, userID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	chats := []model.ChatSummary{}
	for rows.Next() {
		var s model.ChatSummary
		var lastMessage sql.NullString
		if err := rows.Scan(&s.ID, &s.UserID, &s.Name, &s.Model, &s.CreatedAt, &s.UpdatedAt, &lastMessage); err != nil {
			return nil, err
		}
		if lastMessage.Valid {
			s.LastMessage = &lastMessage.String
		}
		chats = append(chats, s)
	}
	return chats, rows.Err()
}

func (r *sqliteChatRepository) UpdateChatName(ctx context.Context, chatID, name string) error {
	query := "UPDATE chats SET name = ?, updated_at = ? WHERE id = ?"
	res, err := r.db.ExecContext(ctx, query, name, time.Now().UTC(), chatID)
	if err != nil {
		return err
	}
	return requireAffected(res)
}

// DeleteChat removes the chat; its messages go with it through the
// ON DELETE CASCADE foreign key.
func (r *sqliteChatRepository) DeleteChat(ctx context.Context, chatID string) error {
	res, err := r.db.ExecContext(ctx, "DELETE FROM chats WHERE id = ?", chatID)
	if err != nil {
		return err
	}
	return requireAffected(res)
}
