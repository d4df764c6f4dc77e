package interfaces

import (
	"context"

	"chatvault/backend/internal/auth"
	"chatvault/backend/internal/model"
	"chatvault/backend/internal/service"
)

// The API layer depends on these interfaces rather than on the concrete
// services, so handlers can be tested against mocks.

// AuthService covers accounts, credentials and bearer tokens.
type AuthService interface {
	Register(ctx context.Context, req *service.RegisterRequest) (*service.AuthResponse, error)
	Login(ctx context.Context, req *service.LoginRequest) (*service.AuthResponse, error)
	Authenticate(token string) (*auth.Claims, error)
	GetProfile(ctx context.Context, userID int64) (*model.UserProfile, error)
	UpdateTheme(ctx context.Context, userID int64, req *service.UpdateThemeRequest) error
}

// ChatService covers chat sessions owned by the calling user.
type ChatService interface {
	ListChats(ctx context.Context, userID int64) ([]model.ChatSummary, error)
	CreateChat(ctx context.Context, userID int64, req *service.CreateChatRequest) (*model.Chat, error)
	GetFullChat(ctx context.Context, userID int64, chatID string) (*model.FullChat, error)
	RenameChat(ctx context.Context, userID int64, chatID string, req *service.RenameChatRequest) error
	DeleteChat(ctx context.Context, userID int64, chatID string) error
}

// MessageService covers the messages of a chat owned by the calling user.
type MessageService interface {
	AppendMessage(ctx context.Context, userID int64, chatID string, req *service.AppendMessageRequest) (*model.Message, error)
	ReplaceMessages(ctx context.Context, userID int64, chatID string, req *service.ReplaceMessagesRequest) ([]model.Message, error)
}

var (
	_ AuthService    = (*service.AuthService)(nil)
	_ ChatService    = (*service.ChatService)(nil)
	_ MessageService = (*service.MessageService)(nil)
)
