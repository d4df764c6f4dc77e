package service

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"chatvault/backend/internal/model"
	"chatvault/backend/internal/repository"
	"chatvault/backend/internal/validation"
)

// CreateChatRequest is the payload for creating a chat. The id is chosen by
// the client and must be unique across all users.
type CreateChatRequest struct {
	ID    string `json:"id" validate:"required" example:"c1"`
	Name  string `json:"name" validate:"required" example:"Test"`
	Model string `json:"model" validate:"required" example:"llama2"`
}

// RenameChatRequest is the payload for renaming a chat.
type RenameChatRequest struct {
	Name string `json:"name" validate:"required" example:"My Custom Chat Name"`
}

type ChatService struct {
	chats    repository.ChatRepository
	messages repository.MessageRepository
	guard    *OwnershipGuard
	now      func() time.Time
}

func NewChatService(chats repository.ChatRepository, messages repository.MessageRepository, guard *OwnershipGuard) *ChatService {
	return &ChatService{chats: chats, messages: messages, guard: guard, now: time.Now}
}

// ListChats returns the user's chats, most recently active first, each with
// its last message.
func (s *ChatService) ListChats(ctx context.Context, userID int64) ([]model.ChatSummary, error) {
	chats, err := s.chats.GetChatSummaries(ctx, userID)
	if err != nil {
		return nil, fmt.Errorf("could not list chats: %w", err)
	}
	return chats, nil
}

// CreateChat stores a new chat owned by userID. An id already taken by any
// user is a conflict; it never transfers ownership.
func (s *ChatService) CreateChat(ctx context.Context, userID int64, req *CreateChatRequest) (*model.Chat, error) {
	if err := validation.Struct(req); err != nil {
		return nil, err
	}

	now := s.now().UTC()
	chat := &model.Chat{
		ID:        req.ID,
		UserID:    userID,
		Name:      req.Name,
		Model:     req.Model,
		CreatedAt: now,
		UpdatedAt: now,
	}
	if err := s.chats.CreateChat(ctx, chat); err != nil {
		return nil, translate(fmt.Sprintf("create chat %q", req.ID), err)
	}
	slog.Info("Created chat", "chat_id", chat.ID, "user_id", userID)
	return chat, nil
}

// GetFullChat retrieves a chat's metadata and all its messages.
func (s *ChatService) GetFullChat(ctx context.Context, userID int64, chatID string) (*model.FullChat, error) {
	if err := s.guard.Require(ctx, userID, chatID); err != nil {
		return nil, err
	}
	chat, err := s.chats.GetChat(ctx, chatID)
	if err != nil {
		return nil, translate("get chat", err)
	}
	messages, err := s.messages.GetMessagesByChatID(ctx, chatID)
	if err != nil {
		return nil, fmt.Errorf("could not get messages: %w", err)
	}
	return &model.FullChat{Chat: *chat, Messages: messages}, nil
}

// RenameChat handles the logic for manually updating a chat's name.
func (s *ChatService) RenameChat(ctx context.Context, userID int64, chatID string, req *RenameChatRequest) error {
	if err := s.guard.Require(ctx, userID, chatID); err != nil {
		return err
	}
	if err := validation.Struct(req); err != nil {
		return err
	}
	if err := s.chats.UpdateChatName(ctx, chatID, req.Name); err != nil {
		return translate("rename chat", err)
	}
	slog.Info("Renamed chat", "chat_id", chatID, "name", req.Name)
	return nil
}

// DeleteChat deletes a chat together with all of its messages.
func (s *ChatService) DeleteChat(ctx context.Context, userID int64, chatID string) error {
	if err := s.guard.Require(ctx, userID, chatID); err != nil {
		return err
	}
	if err := s.chats.DeleteChat(ctx, chatID); err != nil {
		return translate("delete chat", err)
	}
	slog.Info("Deleted chat", "chat_id", chatID, "user_id", userID)
	return nil
}
