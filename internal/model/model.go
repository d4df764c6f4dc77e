package model

import "time"

const (
	ThemeLight = "light"
	ThemeDark  = "dark"

	SenderUser = "user"
	SenderAI   = "ai"
)

// User is the stored account record. PasswordHash never leaves the server.
type User struct {
	ID           int64
	Username     string
	Email        string
	PasswordHash string
	Theme        string
	CreatedAt    time.Time
	UpdatedAt    time.Time
}

// Profile returns the client-facing view of the user.
func (u *User) Profile() *UserProfile {
	return &UserProfile{
		ID:        u.ID,
		Username:  u.Username,
		Email:     u.Email,
		Theme:     u.Theme,
		CreatedAt: u.CreatedAt,
		UpdatedAt: u.UpdatedAt,
	}
}

// UserProfile is what the API returns for a user.
type UserProfile struct {
	ID        int64     `json:"id"`
	Username  string    `json:"username"`
	Email     string    `json:"email"`
	Theme     string    `json:"theme"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

// Chat stores metadata about a conversation.
type Chat struct {
	ID        string    `json:"id"`
	UserID    int64     `json:"user_id"`
	Name      string    `json:"name"`
	Model     string    `json:"model"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

// ChatSummary is a chat annotated with the content of its newest message.
// LastMessage is nil for a chat without messages.
type ChatSummary struct {
	Chat
	LastMessage *string `json:"last_message"`
}

// Message stores a single message in a chat.
type Message struct {
	ID           int64     `json:"id"`
	ChatID       string    `json:"chat_id"`
	Sender       string    `json:"sender"`
	Content      string    `json:"content"`
	Model        *string   `json:"model,omitempty"`
	ResponseInfo *string   `json:"response_info,omitempty"`
	Timestamp    time.Time `json:"timestamp"`
}

// FullChat includes the chat metadata and all its messages in timestamp order.
type FullChat struct {
	Chat
	Messages []Message `json:"messages"`
}
