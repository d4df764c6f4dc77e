package api

import (
	"net/http"

	"github.com/go-chi/chi/v5"

	"chatvault/backend/internal/interfaces"
	"chatvault/backend/internal/service"
)

// ChatHandler handles HTTP requests for chat sessions.
type ChatHandler struct {
	service interfaces.ChatService
}

func NewChatHandler(svc interfaces.ChatService) *ChatHandler {
	return &ChatHandler{service: svc}
}

// ListChats godoc
// @Summary      List chats
// @Description  Returns the caller's chats, most recently active first, each with the content of its last message.
// @Tags         Chats
// @Produce      json
// @Security     BearerAuth
// @Success      200  {array}   model.ChatSummary
// @Failure      401  {object}  ErrorResponse
// @Router       /chats [get]
func (h *ChatHandler) ListChats(w http.ResponseWriter, r *http.Request) {
	userID, err := requestUserID(r)
	if err != nil {
		respondWithError(w, err)
		return
	}
	chats, err := h.service.ListChats(r.Context(), userID)
	if err != nil {
		respondWithError(w, err)
		return
	}
	respondWithJSON(w, http.StatusOK, chats)
}

// CreateChat godoc
// @Summary      Create a chat
// @Description  The chat id is chosen by the client and must not be in use.
// @Tags         Chats
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        request  body      service.CreateChatRequest  true  "Chat"
// @Success      201      {object}  model.Chat
// @Failure      400      {object}  ErrorResponse
// @Failure      409      {object}  ErrorResponse
// @Router       /chats [post]
func (h *ChatHandler) CreateChat(w http.ResponseWriter, r *http.Request) {
	userID, err := requestUserID(r)
	if err != nil {
		respondWithError(w, err)
		return
	}
	var req service.CreateChatRequest
	if err := decodeJSON(r, &req); err != nil {
		respondWithError(w, err)
		return
	}
	chat, err := h.service.CreateChat(r.Context(), userID, &req)
	if err != nil {
		respondWithError(w, err)
		return
	}
	respondWithJSON(w, http.StatusCreated, chat)
}

// GetChat godoc
// @Summary      Get a chat with its messages
// @Tags         Chats
// @Produce      json
// @Security     BearerAuth
// @Param        chatID  path      string  true  "Chat ID"
// @Success      200     {object}  model.FullChat
// @Failure      404     {object}  ErrorResponse
// @Router       /chats/{chatID} [get]
func (h *ChatHandler) GetChat(w http.ResponseWriter, r *http.Request) {
	userID, err := requestUserID(r)
	if err != nil {
		respondWithError(w, err)
		return
	}
	fullChat, err := h.service.GetFullChat(r.Context(), userID, chi.URLParam(r, "chatID"))
	if err != nil {
		respondWithError(w, err)
		return
	}
	respondWithJSON(w, http.StatusOK, fullChat)
}

// RenameChat godoc
// @Summary      Rename a chat
// @Tags         Chats
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        chatID   path      string                     true  "Chat ID"
// @Param        request  body      service.RenameChatRequest  true  "New name"
// @Success      200      {object}  StatusResponse
// @Failure      400      {object}  ErrorResponse
// @Failure      404      {object}  ErrorResponse
// @Router       /chats/{chatID} [patch]
func (h *ChatHandler) RenameChat(w http.ResponseWriter, r *http.Request) {
	userID, err := requestUserID(r)
	if err != nil {
		respondWithError(w, err)
		return
	}
	var req service.RenameChatRequest
	if err := decodeJSON(r, &req); err != nil {
		respondWithError(w, err)
		return
	}
	if err := h.service.RenameChat(r.Context(), userID, chi.URLParam(r, "chatID"), &req); err != nil {
		respondWithError(w, err)
		return
	}
	respondWithJSON(w, http.StatusOK, statusOK)
}

// DeleteChat godoc
// @Summary      Delete a chat
// @Description  Deletes the chat and all of its messages.
// @Tags         Chats
// @Produce      json
// @Security     BearerAuth
// @Param        chatID  path      string  true  "Chat ID"
// @Success      200     {object}  StatusResponse
// @Failure      404     {object}  ErrorResponse
// @Router       /chats/{chatID} [delete]
func (h *ChatHandler) DeleteChat(w http.ResponseWriter, r *http.Request) {
	userID, err := requestUserID(r)
	if err != nil {
		respondWithError(w, err)
		return
	}
	if err := h.service.DeleteChat(r.Context(), userID, chi.URLParam(r, "chatID")); err != nil {
		respondWithError(w, err)
		return
	}
	respondWithJSON(w, http.StatusOK, statusOK)
}
