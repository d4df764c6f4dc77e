package repository

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	"chatvault/backend/internal/model"
)

type sqliteMessageRepository struct {
	db *sql.DB
}

func NewSQLiteMessageRepository(db *sql.DB) MessageRepository {
	return &sqliteMessageRepository{db: db}
}

const insertMessageQuery = `
	INSERT INTO messages (chat_id, sender, content, model, response_info, timestamp)
	VALUES (?, ?, ?, ?, ?, ?)
`

const touchChatQuery = "UPDATE chats SET updated_at = ? WHERE id = ?"

// AddMessage inserts the message and moves the chat's updated_at to the
// message timestamp in one transaction, so neither write is visible alone.
// message.ID is filled in on success.
func (r *sqliteMessageRepository) AddMessage(ctx context.Context, message *model.Message) error {
	tx, err := r.db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("could not begin transaction: %w", err)
	}
	defer func() { _ = tx.Rollback() }()

	res, err := tx.ExecContext(ctx, insertMessageQuery,
		message.ChatID,
		message.Sender,
		message.Content,
		message.Model,
		message.ResponseInfo,
		message.Timestamp,
	)
	if err != nil {
		return fmt.Errorf("could not insert message: %w", err)
	}
	id, err := res.LastInsertId()
	if err != nil {
		return fmt.Errorf("could not read message id: %w", err)
	}

	res, err = tx.ExecContext(ctx, touchChatQuery, message.Timestamp, message.ChatID)
	if err != nil {
		return fmt.Errorf("could not update chat timestamp: %w", err)
	}
	if err := requireAffected(res); err != nil {
		return err
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("could not commit message: %w", err)
	}
	message.ID = id
	return nil
}

func (r *sqliteMessageRepository) GetMessagesByChatID(ctx context.Context, chatID string) ([]model.Message, error) {
	query := `
		SELECT id, chat_id, sender, content, model, response_info, timestamp
		FROM messages
		WHERE chat_id = ?
		ORDER BY timestamp ASC, id ASC
	`
	rows, err := r.db.QueryContext(ctx, query, chatID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	messages := []model.Message{}
	for rows.Next() {
		var msg model.Message
		var modelName, responseInfo sql.NullString
		if err := rows.Scan(&msg.ID, &msg.ChatID, &msg.Sender, &msg.Content, &modelName, &responseInfo, &msg.Timestamp); err != nil {
			return nil, err
		}
		if modelName.Valid {
			msg.Model = &modelName.String
		}
		if responseInfo.Valid {
			msg.ResponseInfo = &responseInfo.String
		}
		messages = append(messages, msg)
	}
	return messages, rows.Err()
}

// ReplaceMessages deletes every message of the chat and inserts messages in
// the given order. Messages with a zero Timestamp are stamped with now.
// The whole swap commits or rolls back as a unit, but an append that
// committed before the delete is still lost: this is an overwrite, not a merge.
func (r *sqliteMessageRepository) ReplaceMessages(ctx context.Context, chatID string, messages []model.Message, now time.Time) error {
	tx, err := r.db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("could not begin transaction: %w", err)
	}
	defer func() { _ = tx.Rollback() }()

	if _, err := tx.ExecContext(ctx, "DELETE FROM messages WHERE chat_id = ?", chatID); err != nil {
		return fmt.Errorf("could not delete messages: %w", err)
	}

	stmt, err := tx.PrepareContext(ctx, insertMessageQuery)
	if err != nil {
		return fmt.Errorf("could not prepare message insert: %w", err)
	}
	defer stmt.Close()

	for i := range messages {
		msg := &messages[i]
		msg.ChatID = chatID
		if msg.Timestamp.IsZero() {
			msg.Timestamp = now
		}
		res, err := stmt.ExecContext(ctx, msg.ChatID, msg.Sender, msg.Content, msg.Model, msg.ResponseInfo, msg.Timestamp)
		if err != nil {
			return fmt.Errorf("could not insert message %d: %w", i, err)
		}
		if msg.ID, err = res.LastInsertId(); err != nil {
			return fmt.Errorf("could not read message id: %w", err)
		}
	}

	res, err := tx.ExecContext(ctx, touchChatQuery, now, chatID)
	if err != nil {
		return fmt.Errorf("could not update chat timestamp: %w", err)
	}
	if err := requireAffected(res); err != nil {
		return err
	}

	return tx.Commit()
}
