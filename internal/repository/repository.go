package repository

import (
	"context"
	"time"

	"chatvault/backend/internal/model"
)

// UserRepository stores user accounts.
type UserRepository interface {
	CreateUser(ctx context.Context, user *model.User) error
	// UserExists reports whether any user has the given username or email.
	UserExists(ctx context.Context, username, email string) (bool, error)
	// GetUserByLogin finds a user whose username or email equals login.
	GetUserByLogin(ctx context.Context, login string) (*model.User, error)
	GetUserByID(ctx context.Context, userID int64) (*model.User, error)
	UpdateUserTheme(ctx context.Context, userID int64, theme string) error
}

// ChatRepository stores chat sessions. Ownership is checked by the caller
// through ChatOwnedBy before any other method is used.
type ChatRepository interface {
	ChatOwnedBy(ctx context.Context, chatID string, userID int64) (bool, error)
	CreateChat(ctx context.Context, chat *model.Chat) error
	GetChat(ctx context.Context, chatID string) (*model.Chat, error)
	GetChatSummaries(ctx context.Context, userID int64) ([]model.ChatSummary, error)
	UpdateChatName(ctx context.Context, chatID, name string) error
	DeleteChat(ctx context.Context, chatID string) error
}

// MessageRepository stores the messages of a chat. Every write also bumps the
// parent chat's updated_at inside the same transaction.
type MessageRepository interface {
	AddMessage(ctx context.Context, message *model.Message) error
	GetMessagesByChatID(ctx context.Context, chatID string) ([]model.Message, error)
	ReplaceMessages(ctx context.Context, chatID string, messages []model.Message, now time.Time) error
}
