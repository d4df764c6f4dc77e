package repository_test

import (
	"context"
	"database/sql"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"chatvault/backend/internal/database"
	"chatvault/backend/internal/model"
	"chatvault/backend/internal/repository"
)

type stores struct {
	db       *sql.DB
	users    repository.UserRepository
	chats    repository.ChatRepository
	messages repository.MessageRepository
}

// setupStores opens a fresh, fully migrated SQLite database for one test.
func setupStores(t *testing.T) stores {
	t.Helper()
	db, err := database.InitDB(filepath.Join(t.TempDir(), "test.db"), 4)
	require.NoError(t, err)
	t.Cleanup(func() { _ = db.Close() })

	return stores{
		db:       db,
		users:    repository.NewSQLiteUserRepository(db),
		chats:    repository.NewSQLiteChatRepository(db),
		messages: repository.NewSQLiteMessageRepository(db),
	}
}

func createUser(t *testing.T, s stores, username string) *model.User {
	t.Helper()
	now := time.Now().UTC()
	u := &model.User{
		Username:     username,
		Email:        username + "@example.com",
		PasswordHash: "hash",
		Theme:        model.ThemeLight,
		CreatedAt:    now,
		UpdatedAt:    now,
	}
	require.NoError(t, s.users.CreateUser(context.Background(), u))
	return u
}

func createChat(t *testing.T, s stores, userID int64, chatID string, at time.Time) *model.Chat {
	t.Helper()
	c := &model.Chat{ID: chatID, UserID: userID, Name: "Chat " + chatID, Model: "llama2", CreatedAt: at, UpdatedAt: at}
	require.NoError(t, s.chats.CreateChat(context.Background(), c))
	return c
}

func addMessage(t *testing.T, s stores, chatID, sender, content string, at time.Time) *model.Message {
	t.Helper()
	m := &model.Message{ChatID: chatID, Sender: sender, Content: content, Timestamp: at}
	require.NoError(t, s.messages.AddMessage(context.Background(), m))
	return m
}
