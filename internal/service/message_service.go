package service

import (
	"context"
	"log/slog"
	"time"

	"chatvault/backend/internal/model"
	"chatvault/backend/internal/repository"
	"chatvault/backend/internal/validation"
)

// AppendMessageRequest is the payload for adding one message to a chat.
type AppendMessageRequest struct {
	Sender       string  `json:"sender" validate:"required,oneof=user ai" example:"user"`
	Content      string  `json:"content" validate:"required" example:"Hello"`
	Model        *string `json:"model,omitempty" example:"llama2"`
	ResponseInfo *string `json:"response_info,omitempty" example:"1.2s, 42 tokens"`
}

// SyncMessage is one entry of a full transcript upload. A missing timestamp
// is filled in by the server.
type SyncMessage struct {
	Sender       string     `json:"sender" validate:"required,oneof=user ai"`
	Content      string     `json:"content" validate:"required"`
	Model        *string    `json:"model,omitempty"`
	ResponseInfo *string    `json:"response_info,omitempty"`
	Timestamp    *time.Time `json:"timestamp,omitempty"`
}

// ReplaceMessagesRequest carries the complete, ordered transcript of a chat.
type ReplaceMessagesRequest struct {
	Messages []SyncMessage `json:"messages" validate:"required,dive"`
}

type MessageService struct {
	messages repository.MessageRepository
	guard    *OwnershipGuard
	now      func() time.Time
}

func NewMessageService(messages repository.MessageRepository, guard *OwnershipGuard) *MessageService {
	return &MessageService{messages: messages, guard: guard, now: time.Now}
}

// AppendMessage stores a message with a server timestamp and moves the
// chat's updated_at to that same instant.
func (s *MessageService) AppendMessage(ctx context.Context, userID int64, chatID string, req *AppendMessageRequest) (*model.Message, error) {
	if err := s.guard.Require(ctx, userID, chatID); err != nil {
		return nil, err
	}
	if err := validation.Struct(req); err != nil {
		return nil, err
	}

	msg := &model.Message{
		ChatID:       chatID,
		Sender:       req.Sender,
		Content:      req.Content,
		Model:        req.Model,
		ResponseInfo: req.ResponseInfo,
		Timestamp:    s.now().UTC(),
	}
	if err := s.messages.AddMessage(ctx, msg); err != nil {
		return nil, translate("append message", err)
	}
	slog.Debug("Appended message", "chat_id", chatID, "message_id", msg.ID, "sender", msg.Sender)
	return msg, nil
}

// ReplaceMessages overwrites the chat's transcript with req.Messages, in
// order. Appends that land between a client's read and this call are lost;
// callers that need stronger guarantees must serialize writes per chat.
func (s *MessageService) ReplaceMessages(ctx context.Context, userID int64, chatID string, req *ReplaceMessagesRequest) ([]model.Message, error) {
	if err := s.guard.Require(ctx, userID, chatID); err != nil {
		return nil, err
	}
	if err := validation.Struct(req); err != nil {
		return nil, err
	}

	messages := make([]model.Message, 0, len(req.Messages))
	for _, m := range req.Messages {
		msg := model.Message{
			ChatID:       chatID,
			Sender:       m.Sender,
			Content:      m.Content,
			Model:        m.Model,
			ResponseInfo: m.ResponseInfo,
		}
		if m.Timestamp != nil {
			msg.Timestamp = m.Timestamp.UTC()
		}
		messages = append(messages, msg)
	}

	if err := s.messages.ReplaceMessages(ctx, chatID, messages, s.now().UTC()); err != nil {
		return nil, translate("replace messages", err)
	}
	slog.Info("Replaced chat transcript", "chat_id", chatID, "count", len(messages))
	return messages, nil
}
